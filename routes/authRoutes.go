package routes

import (
	"complaintdesk-be/controllers"
	"complaintdesk-be/middlewares"
	"complaintdesk-be/models"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up signup, login and account deletion
func AuthRoutes(r *gin.Engine) {
	r.POST("/signup", controllers.SignupUser)
	r.POST("/login", controllers.LoginUser)
	r.DELETE("/account", middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleUser), controllers.DeleteAccount)
}
