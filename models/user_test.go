package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	user := &User{Password: "secret123"}

	require.NoError(t, user.HashPassword())
	assert.NotEqual(t, "secret123", user.Password)

	assert.True(t, user.ComparePassword("secret123"))
	assert.False(t, user.ComparePassword("secret124"))
	assert.False(t, user.ComparePassword(""))
}

func TestValidCategory(t *testing.T) {
	for _, category := range []string{"Electricity", "Water", "Gas", "Road", "Sewer"} {
		assert.True(t, ValidCategory(category), category)
	}

	assert.False(t, ValidCategory("Sanitation"))
	assert.False(t, ValidCategory("water"))
	assert.False(t, ValidCategory(""))
}
