package routes

import (
	"complaintdesk-be/controllers"
	"complaintdesk-be/middlewares"
	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
)

// ReviewRoutes sets up the review submission route
func ReviewRoutes(r *gin.Engine) {
	r.POST("/reviews/:ticketId", middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleUser), controllers.AddReview)
}
