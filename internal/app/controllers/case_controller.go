package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/models"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
	"github.com/prithu-10/criminal-dbms-project/pkg/logger"
)

// InterfaceCaseController defines the case controller interface
type InterfaceCaseController interface {
	List()
	AddPage()
	Add()
	EditPage()
	Edit()
	Delete()
}

// CaseController handles case CRUD
type CaseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCaseController creates a new case controller
func NewCaseController(ctx *gin.Context, container *container.ServiceContainer) *CaseController {
	return &CaseController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCaseFunc returns a gin handler dispatching to a case method
func HandleCaseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCaseController(ctx, container)

		switch method {
		case "list":
			controller.List()
		case "addPage":
			controller.AddPage()
		case "add":
			controller.Add()
		case "editPage":
			controller.EditPage()
		case "edit":
			controller.Edit()
		case "delete":
			controller.Delete()
		default:
			redirect(ctx, "/cases")
		}
	}
}

func (c *CaseController) service() services.InterfaceCaseService {
	return c.Container.GetService("case").(services.InterfaceCaseService)
}

func (c *CaseController) locations() []models.Location {
	locationService := c.Container.GetService("location").(services.InterfaceLocationService)
	locations, err := locationService.List(c.Ctx.Request.Context())
	if err != nil {
		logger.Error("location list failed: %v", err)
		flash(c.Ctx, c.Container, "error", "Error loading locations: "+code.GetMessage(code.Kind(err)))
	}
	return locations
}

// caseInputFromForm reads the case form fields.
func (c *CaseController) caseInputFromForm() (services.CaseInput, error) {
	dateReported, err := parseFormDate(c.Ctx.PostForm("date_reported"))
	if err != nil {
		return services.CaseInput{}, err
	}

	dateClosed, err := parseOptionalFormDate(c.Ctx.PostForm("date_closed"))
	if err != nil {
		return services.CaseInput{}, err
	}

	locationID, err := parseOptionalFormUint(c.Ctx.PostForm("location_id"))
	if err != nil {
		return services.CaseInput{}, err
	}

	return services.CaseInput{
		CaseTitle:            c.Ctx.PostForm("case_title"),
		Description:          c.Ctx.PostForm("description"),
		DateReported:         dateReported,
		DateClosed:           dateClosed,
		Status:               c.Ctx.PostForm("status"),
		Priority:             c.Ctx.PostForm("priority"),
		LocationID:           locationID,
		InvestigatingOfficer: c.Ctx.PostForm("investigating_officer"),
	}, nil
}

// List renders all cases with their location and association aggregates.
func (c *CaseController) List() {
	cases, err := c.service().ListWithAggregates(c.Ctx.Request.Context())
	if err != nil {
		logger.Error("case list failed: %v", err)
		flash(c.Ctx, c.Container, "error", "Error loading cases: "+code.GetMessage(code.Kind(err)))
	}

	render(c.Ctx, c.Container, "cases.html", gin.H{
		"cases": cases,
	})
}

// AddPage renders the add-case form with the location dropdown.
func (c *CaseController) AddPage() {
	render(c.Ctx, c.Container, "add_case.html", gin.H{
		"locations": c.locations(),
	})
}

// Add creates a case; the case number is generated server-side.
func (c *CaseController) Add() {
	input, err := c.caseInputFromForm()
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Error adding case: invalid form value")
		redirect(c.Ctx, "/cases")
		return
	}

	if _, err := c.service().Create(c.Ctx.Request.Context(), input); err != nil {
		logger.Error("case create failed: %v", err)
		flash(c.Ctx, c.Container, "error", "Error adding case: "+code.GetMessage(code.Kind(err)))
		redirect(c.Ctx, "/cases")
		return
	}

	flash(c.Ctx, c.Container, "success", "Case added successfully!")
	redirect(c.Ctx, "/cases")
}

// EditPage renders the edit form pre-filled with the stored case.
func (c *CaseController) EditPage() {
	id, err := paramID(c.Ctx)
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Case not found!")
		redirect(c.Ctx, "/cases")
		return
	}

	kase, err := c.service().Get(c.Ctx.Request.Context(), id)
	if err != nil {
		if code.Kind(err) == code.ErrRecordNotFound {
			flash(c.Ctx, c.Container, "error", "Case not found!")
		} else {
			logger.Error("case fetch failed: %v", err)
			flash(c.Ctx, c.Container, "error", "Error fetching case data: "+code.GetMessage(code.Kind(err)))
		}
		redirect(c.Ctx, "/cases")
		return
	}

	render(c.Ctx, c.Container, "edit_case.html", gin.H{
		"case":      kase,
		"locations": c.locations(),
	})
}

// Edit replaces the stored case with the submitted form. The case number
// never changes.
func (c *CaseController) Edit() {
	id, err := paramID(c.Ctx)
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Case not found!")
		redirect(c.Ctx, "/cases")
		return
	}

	input, err := c.caseInputFromForm()
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Error updating case: invalid form value")
		redirect(c.Ctx, "/cases")
		return
	}

	if err := c.service().Update(c.Ctx.Request.Context(), id, input); err != nil {
		if code.Kind(err) == code.ErrRecordNotFound {
			flash(c.Ctx, c.Container, "error", "Case not found!")
		} else {
			logger.Error("case update failed: %v", err)
			flash(c.Ctx, c.Container, "error", "Error updating case: "+code.GetMessage(code.Kind(err)))
		}
		redirect(c.Ctx, "/cases")
		return
	}

	flash(c.Ctx, c.Container, "success", "Case updated successfully!")
	redirect(c.Ctx, "/cases")
}

// Delete removes a case and its association rows.
func (c *CaseController) Delete() {
	id, err := paramID(c.Ctx)
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Case not found!")
		redirect(c.Ctx, "/cases")
		return
	}

	if err := c.service().Delete(c.Ctx.Request.Context(), id); err != nil {
		if code.Kind(err) == code.ErrRecordNotFound {
			flash(c.Ctx, c.Container, "error", "Case not found!")
		} else {
			logger.Error("case delete failed: %v", err)
			flash(c.Ctx, c.Container, "error", "Error deleting case: "+code.GetMessage(code.Kind(err)))
		}
		redirect(c.Ctx, "/cases")
		return
	}

	flash(c.Ctx, c.Container, "success", "Case deleted successfully.")
	redirect(c.Ctx, "/cases")
}
