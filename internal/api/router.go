// Package api exposes the admin dashboard over HTTP: enriched read
// views from the appdata provider and mutations through the action
// catalog.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lingohub/admind/internal/appdata"
	"github.com/lingohub/admind/internal/cache"
	"github.com/lingohub/admind/internal/db"
	"github.com/lingohub/admind/pkg/logging"
	"github.com/lingohub/admind/pkg/telemetry"
)

// Router sets up API routes
type Router struct {
	provider *appdata.Provider
	db       *db.DB
	cache    *cache.Cache
	logger   *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(provider *appdata.Provider, database *db.DB, redisCache *cache.Cache) *Router {
	return &Router{
		provider: provider,
		db:       database,
		cache:    redisCache,
		logger:   logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.Use(r.traceMiddleware)

	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	api := engine.Group("/api/v1")

	// Community feed and engagement
	api.GET("/posts", r.listPosts)
	api.POST("/posts/:id/like", r.toggleLike)
	api.POST("/posts/:id/view", r.toggleView)
	api.DELETE("/comments/:id", r.softDeleteComment)
	api.POST("/comments/:id/restore", r.restoreComment)

	// User-scoped views
	api.GET("/users/:id/liked-posts", r.likedPosts)
	api.GET("/users/:id/commented-posts", r.commentedPosts)
	api.GET("/users/:id/viewed-posts", r.viewedPosts)
	api.GET("/users/:id/removed-comments", r.removedComments)
	api.PATCH("/users/:id", r.updateUser)

	// Moderation
	api.GET("/violations", r.listViolations)
	api.POST("/violations", r.addViolation)
	api.DELETE("/violations", r.removeViolationByTarget)
	api.GET("/appeals", r.listAppeals)
	api.POST("/appeals", r.createAppeal)
	api.POST("/appeals/:id/resolve", r.resolveAppeal)

	// Community rules
	api.GET("/rules", r.listRules)
	api.POST("/rules", r.createRule)
	api.PATCH("/rules/:id", r.updateRule)
	api.DELETE("/rules/:id", r.deleteRule)

	// Achievements and grants
	api.GET("/achievements", r.listAchievements)
	api.POST("/achievements", r.createAchievement)
	api.PATCH("/achievements/:id", r.updateAchievement)
	api.DELETE("/achievements/:id", r.deleteAchievement)
	api.POST("/achievements/:id/grant", r.grantAchievement)
	api.GET("/user-achievements", r.listUserAchievements)

	// Badge ladder
	api.GET("/badges", r.listBadges)
	api.POST("/badges", r.createBadge)
	api.PATCH("/badges/:id", r.updateBadge)
	api.DELETE("/badges/:id", r.deleteBadge)

	// Exams
	api.GET("/exams", r.listExams)
	api.POST("/exams", r.createExam)
	api.PATCH("/exams/:id", r.updateExam)
	api.DELETE("/exams/:id", r.deleteExam)

	// Billing
	api.GET("/subscriptions", r.listSubscriptions)
	api.POST("/subscriptions", r.createSubscription)
	api.PATCH("/subscriptions/:id", r.updateSubscription)
	api.DELETE("/subscriptions/:id", r.deleteSubscription)
	api.GET("/user-subscriptions", r.listUserSubscriptions)
	api.POST("/user-subscriptions", r.createUserSubscription)
	api.PATCH("/user-subscriptions/:id", r.updateUserSubscription)
	api.GET("/payments", r.listPayments)
	api.POST("/payments", r.createPayment)
	api.PATCH("/payments/:id", r.updatePayment)
	api.GET("/refunds", r.listRefunds)
	api.POST("/refunds", r.createRefund)
	api.PATCH("/refunds/:id", r.updateRefund)

	// Notifications
	api.GET("/notifications", r.listNotifications)
	api.POST("/notifications", r.createNotification)
	api.POST("/notifications/:id/read", r.markNotificationRead)
	api.POST("/notifications/publish", r.publishNotifications)

	// Audit log
	api.GET("/audit-log", r.listAuditLog)
}

// traceMiddleware opens a span per request and threads its context
// through, so collaborator spans nest under the handler's.
func (r *Router) traceMiddleware(c *gin.Context) {
	name := c.FullPath()
	if name == "" {
		name = c.Request.URL.Path
	}
	ctx, span := telemetry.StartSpan(c.Request.Context(), c.Request.Method+" "+name)
	defer span.End()

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "OK",
		"service": "admind-api",
	})
}
