package routes

import (
	"nelly_tech/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPhoneMask     = "/phone-mask"
	PathQuoteRequests = "/quote-requests"
	PathAuth          = "/auth"
	PathAdmin         = "/admin"
	PathDashboard     = "/dashboard"
	PathSettings      = "/settings"
	PathProjects      = "/projects"
)

type routeHandlers struct {
	quotes    *handlers.QuoteRequestHandler
	projects  *handlers.ProjectHandler
	dashboard *handlers.DashboardHandler
	auth      *handlers.AuthHandler
	settings  *handlers.SettingsHandler
}

// addPublicRoutes registers what the public site calls without a session.
func addPublicRoutes(rg *gin.RouterGroup, h routeHandlers) {
	rg.GET(PathPhoneMask, h.settings.PhoneMask)
	rg.POST(PathQuoteRequests, h.quotes.Submit)
	rg.POST(PathAuth+"/login", h.auth.Login)
}

func addAdminRoutes(rg *gin.RouterGroup, h routeHandlers, requireAdmin gin.HandlerFunc) {
	auth := rg.Group(PathAuth, requireAdmin)
	{
		auth.POST("/logout", h.auth.Logout)
		auth.GET("/me", h.auth.Me)
	}

	admin := rg.Group(PathAdmin, requireAdmin)
	{
		admin.GET(PathDashboard, h.dashboard.Overview)
		admin.GET(PathSettings, h.settings.Settings)

		quotes := admin.Group(PathQuoteRequests)
		quotes.GET("", h.quotes.List)
		quotes.GET("/:id", h.quotes.Get)
		quotes.PATCH("/:id/status", h.quotes.UpdateStatus)
		quotes.DELETE("/:id", h.quotes.Delete)

		projects := admin.Group(PathProjects)
		projects.GET("", h.projects.List)
		projects.POST("", h.projects.Create)
		projects.GET("/:id", h.projects.Get)
		projects.PUT("/:id", h.projects.Update)
		projects.DELETE("/:id", h.projects.Delete)
		projects.POST("/:id/image", h.projects.UploadImage)
	}
}
