package routes

import (
	"paysadmin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathUsers     = "/users"
	PathDashboard = "/dashboard"
	PathAadhaar   = "/aadhaar"
)

func addAdminRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, debtHandler *handlers.DebtHandler, aadhaarHandler *handlers.AadhaarHandler) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", auth, authHandler.Logout)
	}

	users := rg.Group(PathUsers, auth)
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:unique_id", userHandler.GetProfile)
		users.POST("/:unique_id/debts/:debt_id/actions", debtHandler.SubmitAction)
	}

	dashboard := rg.Group(PathDashboard, auth)
	{
		dashboard.GET("/stats", userHandler.Stats)
	}

	aadhaar := rg.Group(PathAadhaar, auth)
	{
		aadhaar.GET("/*document_path", aadhaarHandler.GetDocument)
	}
}
