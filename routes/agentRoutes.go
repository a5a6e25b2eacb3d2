package routes

import (
	"complaintdesk-be/controllers"
	"complaintdesk-be/middlewares"
	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
)

// AgentRoutes sets up the agent-facing complaint routes
func AgentRoutes(r *gin.Engine) {
	agent := r.Group("/agent", middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleAgent))
	{
		agent.GET("/complaints", controllers.AssignedComplaints)
		agent.GET("/complaints/:ticketId", controllers.SingleComplaint)
		agent.PUT("/complaints/:ticketId/in-progress", controllers.StartProgress)
		agent.PUT("/complaints/:ticketId/resolve", controllers.ResolveComplaint)
		agent.POST("/complaints/:ticketId/messages", controllers.SendMessage)
		agent.GET("/complaints/:ticketId/messages", controllers.GetMessages)
	}
}
