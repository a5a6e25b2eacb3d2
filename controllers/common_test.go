package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestRespondLookupError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing document yields 404 with the given message", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondLookupError(c, mongo.ErrNoDocuments, "Complaint not found")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Complaint not found")
	})

	t.Run("store failure yields a generic 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondLookupError(c, errors.New("connection reset by peer"), "Complaint not found")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.NotContains(t, w.Body.String(), "Complaint not found")
		assert.NotContains(t, w.Body.String(), "connection reset")
	})

	t.Run("wrapped driver error still counts as missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondLookupError(c, mongo.ErrNoDocuments, "User not found")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})
}
