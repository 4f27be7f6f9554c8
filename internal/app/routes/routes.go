package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prithu-10/criminal-dbms-project/internal/app/controllers"
	"github.com/prithu-10/criminal-dbms-project/internal/app/middleware"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
)

// SetupRouterWithContainer wires routes against the service container. The
// caller owns the engine so it can load templates and choose the redis
// client.
func SetupRouterWithContainer(r *gin.Engine, serviceContainer *container.ServiceContainer) *gin.Engine {
	return setupRoutes(r, serviceContainer)
}

func setupRoutes(r *gin.Engine, serviceContainer *container.ServiceContainer) *gin.Engine {
	middleware.InitAuthMiddleware(serviceContainer)

	r.Use(middleware.IPRateLimiter(30, 50))
	r.Use(middleware.EnsureSession())

	registerPublicRoutes(r, serviceContainer)
	registerAuthenticatedRoutes(r, serviceContainer)
	return r
}

// registerPublicRoutes registers routes reachable without a login.
func registerPublicRoutes(r *gin.Engine, container *container.ServiceContainer) {
	r.GET("/", controllers.HandleAuthFunc(container, "index"))
	r.GET("/healthz", controllers.HandleHealthFunc(container))

	r.GET("/login", controllers.HandleAuthFunc(container, "loginPage"))
	// tighter bucket against credential guessing
	r.POST("/login", middleware.PathRateLimiter(2, 5), controllers.HandleAuthFunc(container, "login"))
	r.GET("/logout", controllers.HandleAuthFunc(container, "logout"))
}

// registerAuthenticatedRoutes registers every route behind the auth guard.
func registerAuthenticatedRoutes(r *gin.Engine, container *container.ServiceContainer) {
	auth := r.Group("/")
	auth.Use(middleware.RequireOfficer())

	auth.GET("/dashboard", controllers.HandleReportFunc(container, "dashboard"))
	auth.GET("/reports", controllers.HandleReportFunc(container, "reports"))

	auth.GET("/search", controllers.HandleSearchFunc(container, "searchPage"))
	auth.POST("/search", controllers.HandleSearchFunc(container, "search"))

	criminalGroup := auth.Group("/criminals")
	{
		criminalGroup.GET("", controllers.HandleCriminalFunc(container, "list"))
		criminalGroup.GET("/add", controllers.HandleCriminalFunc(container, "addPage"))
		criminalGroup.POST("/add", controllers.HandleCriminalFunc(container, "add"))
		criminalGroup.GET("/edit/:id", controllers.HandleCriminalFunc(container, "editPage"))
		criminalGroup.POST("/edit/:id", controllers.HandleCriminalFunc(container, "edit"))
		criminalGroup.POST("/delete/:id", controllers.HandleCriminalFunc(container, "delete"))
	}

	caseGroup := auth.Group("/cases")
	{
		caseGroup.GET("", controllers.HandleCaseFunc(container, "list"))
		caseGroup.GET("/add", controllers.HandleCaseFunc(container, "addPage"))
		caseGroup.POST("/add", controllers.HandleCaseFunc(container, "add"))
		caseGroup.GET("/edit/:id", controllers.HandleCaseFunc(container, "editPage"))
		caseGroup.POST("/edit/:id", controllers.HandleCaseFunc(container, "edit"))
		caseGroup.POST("/delete/:id", controllers.HandleCaseFunc(container, "delete"))
	}
}
