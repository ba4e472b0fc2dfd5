package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/crm-api/internal/auth"
	"github.com/BruksfildServices01/crm-api/internal/config"
	domainContact "github.com/BruksfildServices01/crm-api/internal/domain/contact"
	domainProject "github.com/BruksfildServices01/crm-api/internal/domain/project"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/handlers"
	"github.com/BruksfildServices01/crm-api/internal/infra/storage"
	"github.com/BruksfildServices01/crm-api/internal/logger"
	"github.com/BruksfildServices01/crm-api/internal/metrics"
	"github.com/BruksfildServices01/crm-api/internal/middleware"
	ucAuth "github.com/BruksfildServices01/crm-api/internal/usecase/auth"
	ucContact "github.com/BruksfildServices01/crm-api/internal/usecase/contact"
	ucDashboard "github.com/BruksfildServices01/crm-api/internal/usecase/dashboard"
	ucProject "github.com/BruksfildServices01/crm-api/internal/usecase/project"
	ucUser "github.com/BruksfildServices01/crm-api/internal/usecase/user"
	"github.com/BruksfildServices01/crm-api/internal/validators"
)

// Deps is everything the HTTP layer is built from. Objects may be nil, in
// which case the avatar route is not mounted.
type Deps struct {
	Config *config.Config

	Users       domainUser.Repository
	Contacts    domainContact.Repository
	Projects    domainProject.Repository
	Revocations auth.RevocationStore
	Objects     storage.ObjectStore

	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// NewRouter builds the engine with the global middleware, health and
// metrics endpoints, and the API.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware())
	r.Use(d.Metrics.Middleware())
	r.Use(middleware.CORS(d.Config.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	log := d.Logger
	if log == nil {
		log = logger.Get()
	}

	validators.Setup()

	emailDomain := validators.AcceptAll
	if cfg.EmailDomainCheck {
		emailDomain = validators.IsEmailDomainValid
	}

	// ======================================================
	// INFRA
	// ======================================================
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	authenticator := middleware.NewAuthenticator(issuer, d.Revocations, d.Users)

	// ======================================================
	// USE CASES: USERS
	// ======================================================
	createUserUC := ucUser.NewCreateUser(d.Users, emailDomain)
	listUsersUC := ucUser.NewListUsers(d.Users)
	getUserUC := ucUser.NewGetUser(d.Users)
	updateUserUC := ucUser.NewUpdateUser(d.Users, emailDomain, d.Metrics)
	deleteUserUC := ucUser.NewDeleteUser(d.Users, d.Metrics)

	var avatarUC *ucUser.UploadAvatar
	if d.Objects != nil {
		avatarUC = ucUser.NewUploadAvatar(d.Users, d.Objects, cfg.AvatarMaxPx, d.Metrics)
	}

	// ======================================================
	// USE CASES: AUTH
	// ======================================================
	registerUC := ucAuth.NewRegister(createUserUC, issuer, d.Metrics)
	loginUC := ucAuth.NewLogin(d.Users, issuer, d.Metrics)
	logoutUC := ucAuth.NewLogout(d.Revocations, d.Metrics)
	forgotUC := ucAuth.NewForgotPassword(d.Users, log)
	resetUC := ucAuth.NewResetPassword(d.Users, cfg.AllowUnverifiedPasswordReset, d.Metrics, log)

	// ======================================================
	// USE CASES: CONTACTS / PROJECTS / DASHBOARD
	// ======================================================
	listContactsUC := ucContact.NewListContacts(d.Contacts)
	getContactUC := ucContact.NewGetContact(d.Contacts, d.Users, d.Metrics)
	createContactUC := ucContact.NewCreateContact(d.Contacts, d.Users, d.Metrics, log)
	updateContactUC := ucContact.NewUpdateContact(d.Contacts, d.Users, d.Metrics, log)
	deleteContactUC := ucContact.NewDeleteContact(d.Contacts, d.Metrics)

	listProjectsUC := ucProject.NewListProjects(d.Projects)
	getProjectUC := ucProject.NewGetProject(d.Projects, d.Users, d.Metrics)
	createProjectUC := ucProject.NewCreateProject(d.Projects, d.Contacts)
	updateProjectUC := ucProject.NewUpdateProject(d.Projects, d.Contacts, d.Metrics)
	deleteProjectUC := ucProject.NewDeleteProject(d.Projects, d.Metrics)

	statsUC := ucDashboard.NewGetStats(d.Users, d.Contacts, d.Projects)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, forgotUC, resetUC)
	userHandler := handlers.NewUserHandler(
		listUsersUC,
		getUserUC,
		createUserUC,
		updateUserUC,
		deleteUserUC,
		avatarUC,
		cfg.DefaultPerPage,
	)
	contactHandler := handlers.NewContactHandler(
		listContactsUC,
		getContactUC,
		createContactUC,
		updateContactUC,
		deleteContactUC,
		cfg.DefaultPerPage,
	)
	projectHandler := handlers.NewProjectHandler(
		listProjectsUC,
		getProjectUC,
		createProjectUC,
		updateProjectUC,
		deleteProjectUC,
		cfg.DefaultPerPage,
	)
	dashboardHandler := handlers.NewDashboardHandler(statsUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (public)
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(authenticator.Middleware())
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/users", userHandler.List)
			secured.POST("/users", userHandler.Create)
			secured.GET("/users/:id", userHandler.Show)
			secured.PUT("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)
			if avatarUC != nil {
				secured.POST("/users/:id/avatar", userHandler.UploadAvatar)
			}

			secured.GET("/contacts", contactHandler.List)
			secured.POST("/contacts", contactHandler.Create)
			secured.GET("/contacts/:id", contactHandler.Show)
			secured.PUT("/contacts/:id", contactHandler.Update)
			secured.DELETE("/contacts/:id", contactHandler.Delete)

			secured.GET("/projects", projectHandler.List)
			secured.POST("/projects", projectHandler.Create)
			secured.GET("/projects/:id", projectHandler.Show)
			secured.PUT("/projects/:id", projectHandler.Update)
			secured.DELETE("/projects/:id", projectHandler.Delete)

			secured.GET("/dashboard/stats", dashboardHandler.Stats)
		}
	}
}
