package handler

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Lucien-Luc/Programs/internal/config"
	"github.com/Lucien-Luc/Programs/internal/middleware"
	"github.com/Lucien-Luc/Programs/internal/pkg/redis"
	"github.com/Lucien-Luc/Programs/internal/pkg/session"
	"github.com/Lucien-Luc/Programs/internal/pkg/translate"
	"github.com/Lucien-Luc/Programs/internal/pkg/upload"
	"github.com/Lucien-Luc/Programs/internal/repository"
	"github.com/Lucien-Luc/Programs/internal/service"
)

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	// Session store: redis when configured, in-process otherwise
	var store session.Store
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		store = session.NewRedisStore(redisClient)
		log.Println("Session store: redis")
	} else {
		store = session.NewMemoryStore()
		log.Println("Session store: in-memory")
	}
	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := session.NewManager(store, sessionTTL)

	uploadStore, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	// Repositories
	programRepo := repository.NewProgramRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)
	tableConfigRepo := repository.NewTableConfigRepository(gormDB)
	columnHeaderRepo := repository.NewColumnHeaderRepository(gormDB)
	suggestionRepo := repository.NewSuggestionRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Services
	programSvc := service.NewProgramService(programRepo)
	activitySvc := service.NewActivityService(activityRepo)
	tableConfigSvc := service.NewTableConfigService(tableConfigRepo, columnHeaderRepo)
	suggestionSvc := service.NewSuggestionService(suggestionRepo)
	authSvc := service.NewAuthService(userRepo, sessions)
	backupSvc := service.NewBackupService(programRepo, activityRepo, func() string {
		return time.Now().UTC().Format(time.RFC3339)
	})

	// Handlers
	programHandler := NewProgramHandler(programSvc)
	activityHandler := NewActivityHandler(activitySvc)
	tableConfigHandler := NewTableConfigHandler(tableConfigSvc)
	suggestionHandler := NewSuggestionHandler(suggestionSvc)
	authHandler := NewAuthHandler(authSvc, cfg.SessionCookie, int(sessionTTL.Seconds()), cfg.CookieSecure)
	uploadHandler := NewUploadHandler(uploadStore)
	translateHandler := NewTranslateHandler(translate.NewEngine())
	systemHandler := NewSystemHandler(gormDB, programRepo)
	backupHandler := NewBackupHandler(backupSvc)

	sessionMw := middleware.NewSessionMiddleware(authSvc, cfg.SessionCookie)

	r.GET("/health", systemHandler.Health)
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	api.Use(sessionMw.Resolve())
	{
		// Programs
		programs := api.Group("/programs")
		{
			programs.GET("", programHandler.List)
			programs.POST("", programHandler.Create)
			programs.GET("/:id", programHandler.Get)
			programs.PUT("/:id", programHandler.Update)
			programs.DELETE("/:id", programHandler.Delete)
			programs.GET("/:id/activities", activityHandler.ListByProgram)
		}

		// Activities; writes are admin-gated
		activities := api.Group("/activities")
		{
			activities.GET("", activityHandler.List)
			activities.POST("", sessionMw.RequireAdmin(), activityHandler.Create)
			activities.PUT("/:id", sessionMw.RequireAdmin(), activityHandler.Update)
			activities.DELETE("/:id", sessionMw.RequireAdmin(), activityHandler.Delete)
		}

		// Table configuration and column headers
		api.GET("/table-config/:tableName", tableConfigHandler.GetConfig)
		api.POST("/table-config", sessionMw.RequireAdmin(), tableConfigHandler.UpsertConfig)
		api.GET("/column-headers/:tableName", tableConfigHandler.GetHeaders)
		api.POST("/column-headers", sessionMw.RequireAdmin(), tableConfigHandler.UpsertHeader)

		// Program suggestions
		api.GET("/program-suggestions", suggestionHandler.Search)
		api.POST("/program-suggestions", sessionMw.RequireAdmin(), suggestionHandler.Create)

		// Auth
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/signup", authHandler.Signup)
			auth.GET("/user", authHandler.CurrentUser)
			auth.GET("/admin-exists", authHandler.AdminExists)
		}

		// Uploads
		uploads := api.Group("/upload")
		{
			uploads.POST("/image", uploadHandler.Image)
			uploads.POST("/document", uploadHandler.Document)
			uploads.POST("/user-file", uploadHandler.UserFile)
		}

		// Translation
		api.POST("/translate", translateHandler.Translate)

		// Health probes; both legacy paths check the live backend
		api.GET("/health/postgres", systemHandler.DatabaseHealth)
		api.GET("/health/firebase", systemHandler.StoreHealth)

		// Export / import
		api.GET("/export/programs", backupHandler.Export)
		api.POST("/import/programs", backupHandler.Import)
		api.POST("/sync/database", backupHandler.SyncDatabase)
	}

	return r, nil
}
