package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prithu-10/criminal-dbms-project/internal/app/middleware"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
	"github.com/prithu-10/criminal-dbms-project/pkg/logger"
)

// formDateLayout is the layout of the <input type="date"> form fields.
const formDateLayout = "2006-01-02"

func sessions(sc *container.ServiceContainer) services.InterfaceSessionService {
	return sc.GetService("session").(services.InterfaceSessionService)
}

// flash queues a one-shot notification for the next rendered view. A
// missing session (store down) only loses the notification, never the
// request.
func flash(ctx *gin.Context, sc *container.ServiceContainer, level, message string) {
	sessionID := ctx.GetString(middleware.CtxSessionID)
	if sessionID == "" {
		return
	}
	if err := sessions(sc).AddFlash(ctx.Request.Context(), sessionID, level, message); err != nil {
		logger.Warning("failed to queue flash message: %v", err)
	}
}

// render drains pending flashes into the template data and renders a view.
func render(ctx *gin.Context, sc *container.ServiceContainer, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if sessionID := ctx.GetString(middleware.CtxSessionID); sessionID != "" {
		flashes, err := sessions(sc).PopFlashes(ctx.Request.Context(), sessionID)
		if err != nil {
			logger.Warning("failed to pop flash messages: %v", err)
		}
		data["flashes"] = flashes
	}

	if officerName, ok := ctx.Get(middleware.CtxOfficerName); ok {
		data["officer_name"] = officerName
	}
	data["now"] = time.Now().UTC()

	ctx.HTML(http.StatusOK, template, data)
}

// redirect issues a found redirect, the terminal step of every mutation.
func redirect(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusFound, location)
}

// paramID parses the numeric :id path parameter.
func paramID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	return uint(id), err
}

// parseFormDate parses a required date field.
func parseFormDate(value string) (time.Time, error) {
	return time.Parse(formDateLayout, value)
}

// parseOptionalFormDate parses an optional date field, empty meaning unset.
func parseOptionalFormDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(formDateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseOptionalFormUint parses an optional numeric field, empty meaning
// unset.
func parseOptionalFormUint(value string) (*uint, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, err
	}
	u := uint(n)
	return &u, nil
}
