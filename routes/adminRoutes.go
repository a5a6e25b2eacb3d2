package routes

import (
	"complaintdesk-be/controllers"
	"complaintdesk-be/middlewares"
	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the admin oversight and assignment routes
func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin", middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAdmin))
	{
		admin.POST("/agents", controllers.CreateAgent)
		admin.GET("/users", controllers.GetAllUsers)
		admin.GET("/agents", controllers.GetAllAgents)
		admin.GET("/complaints", controllers.GetAllComplaints)
		admin.GET("/unassigned-complaints", controllers.GetUnassignedComplaints)
		admin.GET("/agents-by-category/:ticketId", controllers.GetAgentsByCategory)
		admin.POST("/assign/:ticketId", controllers.AssignComplaint)
	}
}
