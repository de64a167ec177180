package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	boardapp "github.com/ongcloud/backend/internal/application/board"
	identityapp "github.com/ongcloud/backend/internal/application/identity"
	ngoapp "github.com/ongcloud/backend/internal/application/ngo"
	projectapp "github.com/ongcloud/backend/internal/application/project"
	"github.com/ongcloud/backend/internal/infrastructure/auth"
	"github.com/ongcloud/backend/internal/infrastructure/config"
	"github.com/ongcloud/backend/internal/infrastructure/logger"
	"github.com/ongcloud/backend/internal/infrastructure/persistence"
	"github.com/ongcloud/backend/internal/interfaces/http/handler"
	"github.com/ongcloud/backend/internal/interfaces/http/middleware"
	"github.com/ongcloud/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting ONG platform backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	ongRepo := persistence.NewGormOngRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	coverageRepo := persistence.NewGormCoverageRepository(db.DB)
	commitmentRepo := persistence.NewGormCommitmentRepository(db.DB)
	boardRepo := persistence.NewGormBoardRepository(db.DB)
	observationRepo := persistence.NewGormObservationRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, cfg.Admin.Email)
	ongService := ngoapp.NewOngService(ongRepo, userRepo, projectRepo, coverageRepo, commitmentRepo, txScope)
	projectService := projectapp.NewProjectService(projectRepo, ongRepo, coverageRepo, txScope)
	observationService := boardapp.NewObservationService(observationRepo, boardRepo, projectRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	ongHandler := handler.NewOngHandler(ongService)
	projectHandler := handler.NewProjectHandler(projectService)
	observationHandler := handler.NewObservationHandler(observationService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, then auth.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/auth/token",
			"/health",
		},
		Logger: log,
	}
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))
	engine.Use(middleware.ActorMiddleware(authService))

	// Health check endpoint
	engine.GET("/health", systemHandler.Health)

	// Route registration
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/token", authHandler.Token)

	ongRoutes := router.NewDomainGroup("ngo", "/ongs")
	ongRoutes.POST("/", ongHandler.Create)
	ongRoutes.GET("/", ongHandler.List)
	ongRoutes.POST("/:proyecto_id/participar", ongHandler.Participate)
	ongRoutes.GET("/compromisos", ongHandler.ListCommitments)
	ongRoutes.POST("/pedidos/:pedido_id/comprometerse", ongHandler.Commit)
	ongRoutes.PUT("/compromisos/:compromiso_id/marcar-realizado", ongHandler.MarkRealizado)

	projectRoutes := router.NewDomainGroup("project", "/proyectos")
	projectRoutes.POST("/", projectHandler.Create)
	projectRoutes.GET("/", projectHandler.List)
	projectRoutes.POST("/full/", projectHandler.CreateFull)
	projectRoutes.GET("/:id", projectHandler.Get)
	projectRoutes.POST("/:id/participantes/:ong_id", projectHandler.AddParticipant)
	projectRoutes.GET("/:id/participantes", projectHandler.ListParticipants)
	projectRoutes.GET("/:id/etapas", projectHandler.ListStages)
	projectRoutes.PUT("/:id/etapas/:etapa_id/marcar-cumplida", projectHandler.MarkStageCumplida)
	projectRoutes.GET("/:id/pedidos", projectHandler.ListRequests)

	observationRoutes := router.NewDomainGroup("board", "/observaciones")
	observationRoutes.POST("/proyectos/:proyecto_id", observationHandler.Create)
	observationRoutes.GET("/all", observationHandler.ListAll)
	observationRoutes.GET("/proyectos/:proyecto_id", observationHandler.ListByProject)
	observationRoutes.GET("/proyectos/:proyecto_id/admin", observationHandler.ListByProjectAdmin)

	r := router.NewRouter(engine)
	r.Register(authRoutes).
		Register(ongRoutes).
		Register(projectRoutes).
		Register(observationRoutes)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
