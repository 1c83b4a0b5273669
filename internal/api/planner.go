package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careme/internal/labor"
	"careme/internal/models"
	"careme/internal/monitoring"
	"careme/internal/prep"
	"careme/internal/yield"
)

// PlannerAPI represents the stateless HTTP surface over the planning
// core. Every endpoint takes a snapshot in the request body and returns
// freshly computed values; the server holds only loaded configuration,
// never schedule or event state.
type PlannerAPI struct {
	Router     *gin.Engine
	Catalog    models.YieldCatalog
	Recipes    map[string]models.Recipe
	Standards  []models.StandardRule
	Compliance models.ComplianceConfig
	Planner    *prep.Planner
	Metrics    *monitoring.MetricsCollector
}

// NewPlannerAPI creates a new planner API instance
func NewPlannerAPI(catalog models.YieldCatalog, recipes map[string]models.Recipe,
	standards []models.StandardRule, compliance models.ComplianceConfig,
	plannerCfg prep.PlannerConfig, metrics *monitoring.MetricsCollector) *PlannerAPI {

	api := &PlannerAPI{
		Router:     gin.Default(),
		Catalog:    catalog,
		Recipes:    recipes,
		Standards:  standards,
		Compliance: compliance,
		Planner:    prep.NewPlanner(recipes, plannerCfg),
		Metrics:    metrics,
	}
	api.setupRoutes()
	return api
}

// setupRoutes configures all API endpoints
func (p *PlannerAPI) setupRoutes() {
	p.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "careme planning API is running"})
	})

	v1 := p.Router.Group("/api/v1")
	{
		// Yield engine
		v1.POST("/yield/convert", p.ConvertYield)
		v1.POST("/yield/merge", p.MergeCatalogs)

		// Prep scheduling engine
		v1.POST("/events/plan", p.PlanEvent)
		v1.POST("/recipes/analyze", p.AnalyzeRecipe)

		// Labor engine
		v1.POST("/compliance/evaluate", p.EvaluateCompliance)
		v1.POST("/schedule/coverage", p.ScheduleCoverage)
	}
}

// ConvertYield converts a finished quantity to required raw product
func (p *PlannerAPI) ConvertYield(c *gin.Context) {
	var req models.YieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := yield.CalculateRawFromFinished(p.Catalog, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, yield.ErrUnknownItem) || errors.Is(err, yield.ErrUnknownPreparation) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if p.Metrics != nil {
		p.Metrics.RecordYieldConversion(req.ItemID)
	}
	c.JSON(http.StatusOK, result)
}

// MergeCatalogs layers an extension catalog over a base catalog
func (p *PlannerAPI) MergeCatalogs(c *gin.Context) {
	var req struct {
		Base      models.YieldCatalog `json:"base"`
		Extension models.YieldCatalog `json:"extension"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, yield.MergeYieldCatalog(req.Base, req.Extension))
}

// PlanEvent computes the full prep plan for an event snapshot
func (p *PlannerAPI) PlanEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateEvent(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counts := p.Planner.CalculateDailyPrepCounts(event)
	racks := p.Planner.GenerateSpeedRacks(event)
	staffing := p.Planner.CalculateStaffingRequirements(counts)

	if p.Metrics != nil {
		p.Metrics.RecordPrepPlan(counts)
	}
	c.JSON(http.StatusOK, gin.H{
		"daily_prep_counts":     counts,
		"speed_racks":           racks,
		"staffing_requirements": staffing,
	})
}

// AnalyzeRecipe sizes the prep footprint of one recipe at a quantity
func (p *PlannerAPI) AnalyzeRecipe(c *gin.Context) {
	var req struct {
		RecipeID  string    `json:"recipe_id"`
		Quantity  float64   `json:"quantity"`
		EventDate time.Time `json:"event_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, ok := p.Recipes[req.RecipeID]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown recipe: " + req.RecipeID})
		return
	}
	c.JSON(http.StatusOK, p.Planner.AnalyzeRecipePrepRequirements(recipe, req.Quantity, req.EventDate))
}

// EvaluateCompliance checks a schedule snapshot against labor rules.
// The config in the body overrides the server's when present.
func (p *PlannerAPI) EvaluateCompliance(c *gin.Context) {
	var req struct {
		Shifts []models.ShiftRow        `json:"shifts"`
		Config *models.ComplianceConfig `json:"config,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := p.Compliance
	if req.Config != nil {
		cfg = *req.Config
	}
	result := labor.EvaluateCompliance(req.Shifts, cfg)

	if p.Metrics != nil {
		p.Metrics.RecordComplianceResult(result)
	}
	c.JSON(http.StatusOK, result)
}

// ScheduleCoverage builds the required-versus-scheduled staffing grid
// from a schedule snapshot and a covers forecast
func (p *PlannerAPI) ScheduleCoverage(c *gin.Context) {
	var req struct {
		Shifts   []models.ShiftRow      `json:"shifts"`
		Forecast []labor.CoversForecast `json:"forecast"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cells": labor.CompareScheduleToStandard(req.Shifts, p.Standards, req.Forecast),
	})
}
