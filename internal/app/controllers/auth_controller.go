package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/prithu-10/criminal-dbms-project/internal/app/middleware"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
	"github.com/prithu-10/criminal-dbms-project/pkg/logger"
)

// InterfaceAuthController defines the authentication controller interface
type InterfaceAuthController interface {
	Index()
	LoginPage()
	Login()
	Logout()
}

// AuthController handles login, logout and the root redirect
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new authentication controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAuthFunc returns a gin handler dispatching to an auth method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "index":
			controller.Index()
		case "loginPage":
			controller.LoginPage()
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		default:
			redirect(ctx, "/login")
		}
	}
}

// Index redirects the root path to the login page.
func (c *AuthController) Index() {
	redirect(c.Ctx, "/login")
}

// LoginPage renders the login form.
func (c *AuthController) LoginPage() {
	render(c.Ctx, c.Container, "login.html", nil)
}

// Login authenticates an officer and populates the session. The session id
// is rotated on success so a pre-login cookie never becomes an
// authenticated one.
func (c *AuthController) Login() {
	username := c.Ctx.PostForm("username")
	password := c.Ctx.PostForm("password")

	officerService := c.Container.GetService("officer").(services.InterfaceOfficerService)
	officer, err := officerService.Authenticate(c.Ctx.Request.Context(), username, password)
	if err != nil {
		switch code.Kind(err) {
		case code.ErrPasswordIncorrect:
			flash(c.Ctx, c.Container, "error", code.GetMessage(code.ErrPasswordIncorrect))
		case code.ErrConnectionUnavailable:
			flash(c.Ctx, c.Container, "error", code.GetMessage(code.ErrConnectionUnavailable))
		default:
			logger.Error("login failed for %q: %v", username, err)
			flash(c.Ctx, c.Container, "error", "Login error: "+code.GetMessage(code.Kind(err)))
		}
		render(c.Ctx, c.Container, "login.html", nil)
		return
	}

	sessionService := sessions(c.Container)
	newSessionID, err := sessionService.Create(c.Ctx.Request.Context(), &services.SessionData{
		OfficerID:   officer.ID,
		Username:    officer.Username,
		OfficerName: officer.FullName(),
		Flashes:     []services.Flash{{Level: "success", Message: "Login successful!"}},
	})
	if err != nil {
		logger.Error("failed to create session: %v", err)
		flash(c.Ctx, c.Container, "error", code.GetMessage(code.ErrUnknown))
		render(c.Ctx, c.Container, "login.html", nil)
		return
	}

	if oldSessionID := c.Ctx.GetString(middleware.CtxSessionID); oldSessionID != "" {
		if err := sessionService.Destroy(c.Ctx.Request.Context(), oldSessionID); err != nil {
			logger.Warning("failed to destroy pre-login session: %v", err)
		}
	}

	if err := middleware.SetSessionCookie(c.Ctx, newSessionID); err != nil {
		logger.Error("failed to issue session cookie: %v", err)
		render(c.Ctx, c.Container, "login.html", nil)
		return
	}

	redirect(c.Ctx, "/dashboard")
}

// Logout clears the entire session and bounces back to the login page.
func (c *AuthController) Logout() {
	sessionService := sessions(c.Container)

	if sessionID := c.Ctx.GetString(middleware.CtxSessionID); sessionID != "" {
		if err := sessionService.Destroy(c.Ctx.Request.Context(), sessionID); err != nil {
			logger.Warning("failed to destroy session on logout: %v", err)
		}
	}

	newSessionID, err := sessionService.Create(c.Ctx.Request.Context(), &services.SessionData{
		Flashes: []services.Flash{{Level: "success", Message: "You have been logged out."}},
	})
	if err == nil {
		if err := middleware.SetSessionCookie(c.Ctx, newSessionID); err != nil {
			logger.Warning("failed to issue session cookie: %v", err)
		}
	}

	redirect(c.Ctx, "/login")
}
