// Package integration exercises the backend end to end: a real gin engine
// wired exactly like cmd/server, backed by a throwaway SQLite database.
package integration

import (
	"context"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	boardapp "github.com/ongcloud/backend/internal/application/board"
	identityapp "github.com/ongcloud/backend/internal/application/identity"
	ngoapp "github.com/ongcloud/backend/internal/application/ngo"
	projectapp "github.com/ongcloud/backend/internal/application/project"
	"github.com/ongcloud/backend/internal/infrastructure/auth"
	"github.com/ongcloud/backend/internal/infrastructure/config"
	"github.com/ongcloud/backend/internal/infrastructure/persistence"
	"github.com/ongcloud/backend/internal/infrastructure/seed"
	"github.com/ongcloud/backend/internal/interfaces/http/handler"
	"github.com/ongcloud/backend/internal/interfaces/http/middleware"
	"github.com/ongcloud/backend/internal/interfaces/http/router"
	"github.com/ongcloud/backend/tests/testutil"
)

const adminEmail = "admin@ejemplo.com"

// baseFixture seeds two NGOs, an oversight board, and one user for each
// role the API distinguishes.
const baseFixture = `
ongs:
  - ONG Alpha
  - ONG Beta
tipos_cobertura:
  - Salud
consejos:
  - Consejo Norte
usuarios:
  - nombre: Ana
    apellido: Pérez
    edad: 30
    email: ana@ejemplo.com
    password: "123"
    ong: ONG Alpha
  - nombre: Bruno
    apellido: Gómez
    edad: 41
    email: bruno@ejemplo.com
    password: "123"
    ong: ONG Beta
  - nombre: Carla
    apellido: Díaz
    edad: 52
    email: carla@ejemplo.com
    password: "123"
    consejo: Consejo Norte
  - nombre: Admin
    apellido: Root
    edad: 99
    email: admin@ejemplo.com
    password: "123"
`

// TestServer bundles the wired engine with its backing database.
type TestServer struct {
	Engine *gin.Engine
	DB     *persistence.Database
	JWT    *auth.JWTService
}

// NewTestServer builds the full application against a fresh SQLite file
// and loads the base fixture.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			Path:         filepath.Join(t.TempDir(), "test.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		JWT: config.JWTConfig{
			Secret:                "integration-test-secret-0123456789abcdef",
			AccessTokenExpiration: 30 * time.Minute,
			Issuer:                "ongcloud-test",
		},
		Admin: config.AdminConfig{Email: adminEmail},
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, persistence.AutoMigrate(db.DB), "Failed to migrate schema")

	fixture, err := seed.Parse([]byte(baseFixture))
	require.NoError(t, err, "Failed to parse base fixture")
	require.NoError(t, seed.Apply(context.Background(), db.DB, fixture), "Failed to seed test data")

	userRepo := persistence.NewGormUserRepository(db.DB)
	ongRepo := persistence.NewGormOngRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	coverageRepo := persistence.NewGormCoverageRepository(db.DB)
	commitmentRepo := persistence.NewGormCommitmentRepository(db.DB)
	boardRepo := persistence.NewGormBoardRepository(db.DB)
	observationRepo := persistence.NewGormObservationRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, cfg.Admin.Email)
	ongService := ngoapp.NewOngService(ongRepo, userRepo, projectRepo, coverageRepo, commitmentRepo, txScope)
	projectService := projectapp.NewProjectService(projectRepo, ongRepo, coverageRepo, txScope)
	observationService := boardapp.NewObservationService(observationRepo, boardRepo, projectRepo)

	authHandler := handler.NewAuthHandler(authService)
	ongHandler := handler.NewOngHandler(ongService)
	projectHandler := handler.NewProjectHandler(projectService)
	observationHandler := handler.NewObservationHandler(observationService)
	systemHandler := handler.NewSystemHandler(db)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths:  []string{"/auth/token", "/health"},
		Logger:     zap.NewNop(),
	}))
	engine.Use(middleware.ActorMiddleware(authService))

	engine.GET("/health", systemHandler.Health)

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

	return &TestServer{Engine: engine, DB: db, JWT: jwtService}
}

// Login obtains a bearer token through the real token endpoint.
func (s *TestServer) Login(t *testing.T, email, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	w := testutil.DoForm(t, s.Engine, http.MethodPost, "/auth/token", form)
	require.Equal(t, http.StatusOK, w.Code, "Login failed: %s", w.Body.String())

	resp := testutil.ParseJSON(t, w)
	token, _ := resp["access_token"].(string)
	require.NotEmpty(t, token, "Token missing from login response")
	require.Equal(t, "bearer", resp["token_type"])
	return token
}
