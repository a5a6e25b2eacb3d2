package routes

import (
	"complaintdesk-be/controllers"
	"complaintdesk-be/middlewares"
	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
)

// UserRoutes sets up the filer-facing complaint routes
func UserRoutes(r *gin.Engine) {
	user := r.Group("/", middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleUser))
	{
		user.GET("/profile", controllers.ViewProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/complaints", middlewares.ComplaintRateLimiter(5), controllers.CreateComplaint)
		user.GET("/complaints", controllers.MyComplaints)
		user.GET("/complaints/:ticketId", controllers.SingleComplaint)
		user.GET("/completed-complaints", controllers.CompletedComplaints)
		user.POST("/complaints/:ticketId/messages", controllers.SendMessage)
		user.GET("/complaints/:ticketId/messages", controllers.GetMessages)
	}
}
