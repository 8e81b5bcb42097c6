package routes

import (
	"servineta/internal/adapter/http/handlers"
	"servineta/internal/adapter/http/middleware"
	"servineta/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth            = "/auth"
	PathProfile         = "/profile"
	PathServices        = "/services"
	PathCatalog         = "/catalog"
	PathCategories      = "/categories"
	PathServiceRequests = "/service-requests"
	PathQuotations      = "/quotations"
	PathNotifications   = "/notifications"
	PathUsers           = "/users"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, secret string) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", middleware.Auth(secret), authHandler.Logout)
		auth.GET("/me", middleware.Auth(secret), authHandler.Me)
	}
}

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	secret string,
	serviceHandler *handlers.ServiceHandler,
	categoryHandler *handlers.CategoryHandler,
	requestHandler *handlers.ServiceRequestHandler,
	quotationHandler *handlers.QuotationHandler,
	notificationHandler *handlers.NotificationHandler,
	profileHandler *handlers.ProfileHandler,
) {
	authed := rg.Group("", middleware.Auth(secret))

	profile := authed.Group(PathProfile)
	{
		profile.GET("", profileHandler.Get)
		profile.PUT("", profileHandler.Update)
		profile.POST("/picture", profileHandler.UpdatePicture)
		profile.DELETE("/picture", profileHandler.DeletePicture)
	}

	catalog := authed.Group(PathCatalog)
	{
		catalog.GET("", serviceHandler.Catalog)
		catalog.GET("/categories", categoryHandler.ListActive)
	}

	services := authed.Group(PathServices)
	{
		services.POST("", serviceHandler.Create)
		services.GET("", serviceHandler.ListMine)
		services.GET("/:service_id", serviceHandler.Get)
		services.PUT("/:service_id", serviceHandler.Update)
		services.DELETE("/:service_id", serviceHandler.Delete)
		services.PATCH("/:service_id/toggle", serviceHandler.Toggle)
		services.DELETE("/:service_id/images/:file_id", serviceHandler.DeleteImage)
	}

	requests := authed.Group(PathServiceRequests)
	{
		requests.POST("", requestHandler.Create)
		requests.GET("", requestHandler.ListMine)
		requests.PATCH("/:request_id/cancel", requestHandler.Cancel)
		requests.GET("/:request_id/quotations", requestHandler.ListQuotations)
	}

	quotations := authed.Group(PathQuotations)
	{
		quotations.GET("", quotationHandler.ListMine)
		quotations.PATCH("/:quotation_id", quotationHandler.Submit)
		quotations.PATCH("/:quotation_id/accept", quotationHandler.Accept)
		quotations.PATCH("/:quotation_id/reject", quotationHandler.Reject)
		quotations.PATCH("/:quotation_id/rate", quotationHandler.Rate)
	}

	notifications := authed.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread-count", notificationHandler.UnreadCount)
		notifications.PATCH("/:notification_id/read", notificationHandler.MarkRead)
		notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
		notifications.DELETE("/:notification_id", notificationHandler.Delete)
		notifications.DELETE("/read", notificationHandler.DeleteAllRead)
	}
}

func addAdminRoutes(
	rg *gin.RouterGroup,
	secret string,
	categoryHandler *handlers.CategoryHandler,
	userHandler *handlers.UserHandler,
) {
	admin := rg.Group("", middleware.Auth(secret), middleware.RequireRole(string(entities.RoleSuperAdmin), string(entities.RoleAdmin)))

	categories := admin.Group(PathCategories)
	{
		categories.GET("", categoryHandler.List)
		categories.POST("", categoryHandler.Create)
		categories.PUT("/:category_id", categoryHandler.Update)
		categories.DELETE("/:category_id", categoryHandler.Delete)
		categories.PATCH("/:category_id/toggle", categoryHandler.Toggle)
	}

	users := admin.Group(PathUsers)
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.PUT("/:user_id", userHandler.Update)
		users.DELETE("/:user_id", userHandler.Delete)
		users.PATCH("/:user_id/toggle", userHandler.Toggle)
	}
}
