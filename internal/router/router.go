package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tms/internal/config"
	"tms/internal/domain"
	"tms/internal/handler"
	"tms/internal/middleware"
	"tms/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Health     *handler.HealthHandler
	Validation *handler.ValidationHandler
	Record     *handler.RecordHandler
	Attachment *handler.AttachmentHandler
	Lookup     *handler.LookupHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Logger(cfg.Log.Debug()))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Rule catalog and stateless validation
	protected.GET("/rules", h.Validation.Rules)
	protected.GET("/modules", h.Validation.Modules)
	protected.POST("/validate/field", h.Validation.ValidateField)

	modules := protected.Group("/modules/:module")
	modules.POST("/validate", h.Validation.ValidateForm)
	modules.GET("/export", h.Record.Export)
	modules.POST("/import", h.Record.Import)

	records := modules.Group("/records")
	records.POST("", h.Record.Create)
	records.GET("", h.Record.List)
	records.GET("/:id", h.Record.GetByID)
	records.PATCH("/:id", h.Record.Update)
	records.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Record.Delete)
	records.POST("/:id/attachments", h.Attachment.Upload)
	records.GET("/:id/attachments", h.Attachment.ListByRecord)

	protected.GET("/customers/next-code", h.Record.NextCustomerCode)

	attachments := protected.Group("/attachments")
	attachments.GET("/:id", h.Attachment.GetByID)
	attachments.DELETE("/:id", h.Attachment.Delete)

	lookups := protected.Group("/lookups")
	lookups.GET("/pincode/:pincode", h.Lookup.Pincode)
	lookups.GET("/ifsc/:ifsc", h.Lookup.IFSC)

	// User management
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	return r
}
