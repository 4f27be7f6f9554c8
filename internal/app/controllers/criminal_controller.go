package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
	"github.com/prithu-10/criminal-dbms-project/pkg/logger"
)

// InterfaceCriminalController defines the criminal controller interface
type InterfaceCriminalController interface {
	List()
	AddPage()
	Add()
	EditPage()
	Edit()
	Delete()
}

// CriminalController handles criminal record CRUD
type CriminalController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCriminalController creates a new criminal controller
func NewCriminalController(ctx *gin.Context, container *container.ServiceContainer) *CriminalController {
	return &CriminalController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCriminalFunc returns a gin handler dispatching to a criminal method
func HandleCriminalFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCriminalController(ctx, container)

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
			redirect(ctx, "/criminals")
		}
	}
}

func (c *CriminalController) service() services.InterfaceCriminalService {
	return c.Container.GetService("criminal").(services.InterfaceCriminalService)
}

// criminalInputFromForm reads the criminal form fields. There is no
// field-level validation beyond date parsing, matching the legacy behavior
// of letting the database reject bad values.
func (c *CriminalController) criminalInputFromForm() (services.CriminalInput, error) {
	dob, err := parseFormDate(c.Ctx.PostForm("dob"))
	if err != nil {
		return services.CriminalInput{}, err
	}

	input := services.CriminalInput{
		FirstName:   c.Ctx.PostForm("first_name"),
		LastName:    c.Ctx.PostForm("last_name"),
		DateOfBirth: dob,
		Gender:      c.Ctx.PostForm("gender"),
		NationalID:  c.Ctx.PostForm("national_id"),
		Address:     c.Ctx.PostForm("address"),
		Status:      c.Ctx.PostForm("status"),
		DangerLevel: c.Ctx.PostForm("danger_level"),
	}

	if caseTitle := c.Ctx.PostForm("case_title"); caseTitle != "" {
		caseDescription := c.Ctx.PostForm("case_description")
		input.CaseTitle = &caseTitle
		input.CaseDescription = &caseDescription
	}

	return input, nil
}

// List renders all criminal records, newest first.
func (c *CriminalController) List() {
	criminals, err := c.service().List(c.Ctx.Request.Context())
	if err != nil {
		logger.Error("criminal list failed: %v", err)
		flash(c.Ctx, c.Container, "error", "Error loading criminals: "+code.GetMessage(code.Kind(err)))
	}

	render(c.Ctx, c.Container, "criminals.html", gin.H{
		"criminals": criminals,
	})
}

// AddPage renders the empty add-criminal form.
func (c *CriminalController) AddPage() {
	render(c.Ctx, c.Container, "add_criminal.html", nil)
}

// Add creates a criminal record via the combined criminal+case procedure.
func (c *CriminalController) Add() {
	input, err := c.criminalInputFromForm()
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Error adding criminal: invalid date of birth")
		redirect(c.Ctx, "/criminals")
		return
	}

	if _, err := c.service().Create(c.Ctx.Request.Context(), input); err != nil {
		logger.Error("criminal create failed: %v", err)
		flash(c.Ctx, c.Container, "error", "Error adding criminal: "+code.GetMessage(code.Kind(err)))
		redirect(c.Ctx, "/criminals")
		return
	}

	flash(c.Ctx, c.Container, "success", "Successfully added criminal: "+input.FirstName+" "+input.LastName)
	redirect(c.Ctx, "/criminals")
}

// EditPage renders the edit form pre-filled with the stored record.
func (c *CriminalController) EditPage() {
	id, err := paramID(c.Ctx)
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Criminal not found!")
		redirect(c.Ctx, "/criminals")
		return
	}

	criminal, err := c.service().Get(c.Ctx.Request.Context(), id)
	if err != nil {
		if code.Kind(err) == code.ErrRecordNotFound {
			flash(c.Ctx, c.Container, "error", "Criminal not found!")
		} else {
			logger.Error("criminal fetch failed: %v", err)
			flash(c.Ctx, c.Container, "error", "Error fetching criminal data: "+code.GetMessage(code.Kind(err)))
		}
		redirect(c.Ctx, "/criminals")
		return
	}

	render(c.Ctx, c.Container, "edit_criminal.html", gin.H{
		"criminal": criminal,
	})
}

// Edit replaces the stored record with the submitted form.
func (c *CriminalController) Edit() {
	id, err := paramID(c.Ctx)
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Criminal not found!")
		redirect(c.Ctx, "/criminals")
		return
	}

	input, err := c.criminalInputFromForm()
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Error updating criminal: invalid date of birth")
		redirect(c.Ctx, "/criminals")
		return
	}

	if err := c.service().Update(c.Ctx.Request.Context(), id, input); err != nil {
		if code.Kind(err) == code.ErrRecordNotFound {
			flash(c.Ctx, c.Container, "error", "Criminal not found!")
		} else {
			logger.Error("criminal update failed: %v", err)
			flash(c.Ctx, c.Container, "error", "Error updating criminal: "+code.GetMessage(code.Kind(err)))
		}
		redirect(c.Ctx, "/criminals")
		return
	}

	flash(c.Ctx, c.Container, "success", "Criminal record updated successfully!")
	redirect(c.Ctx, "/criminals")
}

// Delete removes a criminal record. A record still referenced by a case
// association stays put and gets the friendly foreign-key message.
func (c *CriminalController) Delete() {
	id, err := paramID(c.Ctx)
	if err != nil {
		flash(c.Ctx, c.Container, "error", "Criminal not found!")
		redirect(c.Ctx, "/criminals")
		return
	}

	if err := c.service().Delete(c.Ctx.Request.Context(), id); err != nil {
		switch code.Kind(err) {
		case code.ErrForeignKeyViolation:
			flash(c.Ctx, c.Container, "error", "Error: Cannot delete criminal. They are still associated with one or more cases.")
		case code.ErrRecordNotFound:
			flash(c.Ctx, c.Container, "error", "Criminal not found!")
		default:
			logger.Error("criminal delete failed: %v", err)
			flash(c.Ctx, c.Container, "error", "Error deleting criminal: "+code.GetMessage(code.Kind(err)))
		}
		redirect(c.Ctx, "/criminals")
		return
	}

	flash(c.Ctx, c.Container, "success", "Criminal record deleted successfully.")
	redirect(c.Ctx, "/criminals")
}
