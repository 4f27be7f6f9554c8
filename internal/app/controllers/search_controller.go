package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/prithu-10/criminal-dbms-project/internal/domain/services"
	"github.com/prithu-10/criminal-dbms-project/internal/domain/services/container"
	"github.com/prithu-10/criminal-dbms-project/internal/error/code"
	"github.com/prithu-10/criminal-dbms-project/pkg/logger"
)

// InterfaceSearchController defines the search controller interface
type InterfaceSearchController interface {
	SearchPage()
	Search()
}

// SearchController handles the entity search form
type SearchController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSearchController creates a new search controller
func NewSearchController(ctx *gin.Context, container *container.ServiceContainer) *SearchController {
	return &SearchController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSearchFunc returns a gin handler dispatching to a search method
func HandleSearchFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSearchController(ctx, container)

		switch method {
		case "searchPage":
			controller.SearchPage()
		case "search":
			controller.Search()
		default:
			redirect(ctx, "/search")
		}
	}
}

// SearchPage renders the empty search form.
func (c *SearchController) SearchPage() {
	render(c.Ctx, c.Container, "search.html", gin.H{
		"search_type": "",
		"query":       "",
	})
}

// Search runs a search when both a type and a query were submitted; a blank
// or untyped submission renders a warning and never touches the database.
func (c *SearchController) Search() {
	searchType := c.Ctx.PostForm("search_type")
	queryTerm := c.Ctx.PostForm("query")

	data := gin.H{
		"search_type": searchType,
		"query":       queryTerm,
	}

	if searchType == "" || queryTerm == "" {
		flash(c.Ctx, c.Container, "warning", "Please select a search type and enter a query.")
		render(c.Ctx, c.Container, "search.html", data)
		return
	}

	searchService := c.Container.GetService("search").(services.InterfaceSearchService)
	result, err := searchService.Search(c.Ctx.Request.Context(), searchType, queryTerm)
	if err != nil {
		logger.Error("search failed: %v", err)
		flash(c.Ctx, c.Container, "error", "Search error: "+code.GetMessage(code.Kind(err)))
		render(c.Ctx, c.Container, "search.html", data)
		return
	}

	if result.Count() == 0 {
		flash(c.Ctx, c.Container, "info", "No results found.")
	} else {
		flash(c.Ctx, c.Container, "success", fmt.Sprintf("Found %d result(s).", result.Count()))
	}

	data["criminal_results"] = result.Criminals
	data["case_results"] = result.Cases
	render(c.Ctx, c.Container, "search.html", data)
}
