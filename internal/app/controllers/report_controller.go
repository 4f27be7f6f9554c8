package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
	"github.com/prithu-10/criminal-dbms-project/pkg/logger"
)

// InterfaceReportController defines the dashboard/reports controller
// interface
type InterfaceReportController interface {
	Dashboard()
	Reports()
}

// ReportController renders the read-only aggregate views
type ReportController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewReportController creates a new report controller
func NewReportController(ctx *gin.Context, container *container.ServiceContainer) *ReportController {
	return &ReportController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleReportFunc returns a gin handler dispatching to a report method
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReportController(ctx, container)

		switch method {
		case "dashboard":
			controller.Dashboard()
		case "reports":
			controller.Reports()
		default:
			redirect(ctx, "/dashboard")
		}
	}
}

// Dashboard renders the scalar counts and recent-activity feed. On a
// database failure the page still renders, with zero data and a flash.
func (c *ReportController) Dashboard() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)

	stats, err := reportService.Dashboard(c.Ctx.Request.Context())
	if err != nil {
		logger.Error("dashboard query failed: %v", err)
		flash(c.Ctx, c.Container, "error", "Error loading dashboard data: "+code.GetMessage(code.Kind(err)))
		stats = &services.DashboardStats{}
	}

	render(c.Ctx, c.Container, "dashboard.html", gin.H{
		"total_criminals":   stats.TotalCriminals,
		"open_cases":        stats.OpenCases,
		"closed_cases":      stats.ClosedCases,
		"crime_types":       stats.CrimeTypes,
		"recent_activities": stats.RecentActivities,
	})
}

// Reports renders the three grouped-count breakdowns, each tolerating zero
// rows.
func (c *ReportController) Reports() {
	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	ctx := c.Ctx.Request.Context()

	var (
		caseStatusReport     []services.StatusCount
		crimeStats           []services.CrimeStat
		criminalStatusReport []services.StatusCount
		err                  error
	)

	caseStatusReport, err = reportService.CaseStatusReport(ctx)
	if err == nil {
		crimeStats, err = reportService.CrimeStats(ctx)
	}
	if err == nil {
		criminalStatusReport, err = reportService.CriminalStatusReport(ctx)
	}
	if err != nil {
		logger.Error("reports query failed: %v", err)
		flash(c.Ctx, c.Container, "error", "Error loading reports: "+code.GetMessage(code.Kind(err)))
	}

	render(c.Ctx, c.Container, "reports.html", gin.H{
		"case_status_report":     caseStatusReport,
		"crime_stats":            crimeStats,
		"criminal_status_report": criminalStatusReport,
	})
}
