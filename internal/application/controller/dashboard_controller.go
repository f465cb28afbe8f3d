package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"beltempo/internal/application/view"
	"beltempo/internal/domain/entity"
	"beltempo/internal/domain/model"
	"beltempo/internal/domain/usecase/dashboard"
	"beltempo/internal/infra/metrics"
	"beltempo/pkg/msg"
)

type DashboardController struct {
	api         *echo.Group
	contextPath string
	useCase     dashboard.UseCase
}

func NewDashboardController(api *echo.Group, contextPath string, useCase dashboard.UseCase) *DashboardController {
	return &DashboardController{
		api:         api,
		contextPath: strings.TrimRight(contextPath, "/"),
		useCase:     useCase,
	}
}

// InitDashboardRoutes initializes the page, its assets and the JSON dashboard routes
func (controller *DashboardController) InitDashboardRoutes() {
	controller.api.GET("/", controller.RenderByIP)
	controller.api.POST("/", controller.RenderBySearch)
	controller.api.StaticFS("/static", view.Static())

	controller.api.GET("/api/v1/dashboard", controller.GetDashboard)
	controller.api.POST("/api/v1/dashboard", controller.SearchDashboard)
}

// RenderByIP renders the dashboard for the visitor's location
func (controller *DashboardController) RenderByIP(c echo.Context) error {
	record := controller.useCase.BuildByIP(c.Request().Context(), ClientIP(c.Request()))
	return controller.render(c, record)
}

// RenderBySearch renders the dashboard for the submitted form field "search"
func (controller *DashboardController) RenderBySearch(c echo.Context) error {
	record := controller.useCase.BuildByName(c.Request().Context(), c.FormValue("search"))
	return controller.render(c, record)
}

// GetDashboard godoc
// @Summary Dashboard for the caller or a place
// @Description Builds the dashboard for the caller's IP address, or for the place named by the search query parameter
// @Tags dashboard
// @Produce json
// @Param search query string false "Country or city name"
// @Success 200 {object} entity.DisplayRecord "Dashboard, possibly partial"
// @Router /api/v1/dashboard [get]
func (controller *DashboardController) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var record entity.DisplayRecord
	if search := strings.TrimSpace(c.QueryParam("search")); search != "" {
		record = controller.useCase.BuildByName(ctx, search)
	} else {
		record = controller.useCase.BuildByIP(ctx, ClientIP(c.Request()))
	}

	recordDashboard(record)
	return c.JSON(http.StatusOK, record)
}

// SearchDashboard godoc
// @Summary Dashboard for a place
// @Description Builds the dashboard for a country (resolved to its capital) or a city. Unknown places fall back to London.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param search body model.SearchDTO true "Place to search"
// @Success 200 {object} entity.DisplayRecord "Dashboard, possibly partial"
// @Failure 400 {object} map[string]string "Invalid request body or missing search"
// @Router /api/v1/dashboard [post]
func (controller *DashboardController) SearchDashboard(c echo.Context) error {
	var dto model.SearchDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if strings.TrimSpace(dto.Search) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("dashboard.search-required")})
	}

	record := controller.useCase.BuildByName(c.Request().Context(), dto.Search)
	recordDashboard(record)
	return c.JSON(http.StatusOK, record)
}

func (controller *DashboardController) render(c echo.Context, record entity.DisplayRecord) error {
	recordDashboard(record)
	return c.Render(http.StatusOK, view.DashboardTemplate, view.Page{
		DisplayRecord: record,
		RootPath:      controller.contextPath + "/",
		StaticPath:    controller.contextPath + "/static",
	})
}

func recordDashboard(record entity.DisplayRecord) {
	metrics.RecordDashboard(string(record.LocationSource), record.ForecastAvailable, record.SummaryAvailable)
}
