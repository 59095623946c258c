// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"nextu/internal/admins"
	"nextu/internal/categories"
	"nextu/internal/drafts"
	"nextu/internal/events"
	"nextu/internal/levels"
	"nextu/internal/memberships"
	"nextu/internal/notifications"
	"nextu/internal/rooms"
	"nextu/internal/shared/config"
	"nextu/internal/shared/database"
	"nextu/pkg/cache"
	"nextu/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Router holds all route dependencies
type Router struct {
	config        *config.Config
	db            *database.DB
	cacheService  cache.Service
	notifications notifications.Service
	log           *logger.Logger

	// services shared across modules
	categoryService categories.Service
	levelService    levels.Service
	eventService    events.Service
	adminService    admins.Service
}

// NewRouter creates a new router instance. The admin service is built in
// main because the notification pipeline needs it before routing exists.
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, notificationService notifications.Service, adminService admins.Service, log *logger.Logger) *Router {
	return &Router{
		config:        cfg,
		db:            db,
		cacheService:  cacheService,
		notifications: notificationService,
		adminService:  adminService,
		log:           log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Attribute modules first: the draft workflow injects them.
		r.setupCategoryRoutes(api)
		r.setupLevelRoutes(api)
		r.setupAdminRoutes(api)

		r.setupEventRoutes(api)
		r.setupDraftRoutes(api)

		r.setupRoomRoutes(api)
		r.setupMembershipRoutes(api)
		r.setupNotificationRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "nextu-admin-api",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "nextu-admin-api",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupCategoryRoutes(rg *gin.RouterGroup) {
	repo := categories.NewRepository(r.db.GetPostgreSQL())
	r.categoryService = categories.NewService(repo)
	controller := categories.NewController(r.categoryService)

	categories.SetupCategoryRoutes(rg, controller)
}

func (r *Router) setupLevelRoutes(rg *gin.RouterGroup) {
	repo := levels.NewRepository(r.db.GetPostgreSQL())
	r.levelService = levels.NewService(repo)
	controller := levels.NewController(r.levelService)

	levels.SetupLevelRoutes(rg, controller)
}

func (r *Router) setupAdminRoutes(rg *gin.RouterGroup) {
	controller := admins.NewController(r.adminService)

	admins.SetupAdminRoutes(rg, controller)
}

func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	repo := events.NewRepository(r.db.GetPostgreSQL())
	r.eventService = events.NewService(repo, r.notifications, r.log)
	controller := events.NewController(r.eventService)

	events.SetupEventRoutes(rg, controller)
}

func (r *Router) setupDraftRoutes(rg *gin.RouterGroup) {
	store := drafts.NewRedisStore(r.cacheService, r.config.Draft.TTL, r.config.Draft.SubmitLockTTL)
	service := drafts.NewService(store, r.categoryService, r.levelService, r.eventService, r.log)
	controller := drafts.NewController(service)

	drafts.SetupDraftRoutes(rg, controller)
}

func (r *Router) setupRoomRoutes(rg *gin.RouterGroup) {
	repo := rooms.NewRepository(r.db.GetPostgreSQL())
	service := rooms.NewService(repo, r.cacheService)
	controller := rooms.NewController(service)

	rooms.SetupRoomRoutes(rg, controller)
}

func (r *Router) setupMembershipRoutes(rg *gin.RouterGroup) {
	repo := memberships.NewRepository(r.db.GetPostgreSQL())
	service := memberships.NewService(repo, r.notifications, r.log)
	controller := memberships.NewController(service)

	memberships.SetupMembershipRoutes(rg, controller)
}

func (r *Router) setupNotificationRoutes(rg *gin.RouterGroup) {
	controller := notifications.NewController(r.notifications)

	notifications.SetupNotificationRoutes(rg, controller)
}

// AdminDirectory adapts the admin service to the notification pipeline's
// recipient lookup.
type AdminDirectory struct {
	Admins admins.Service
}

func (d AdminDirectory) Lookup(accountID string) (string, string, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return "", "", err
	}
	admin, err := d.Admins.GetAdminByID(id)
	if err != nil {
		return "", "", err
	}
	return admin.Email, admin.Name, nil
}
