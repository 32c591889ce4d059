package weather

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/controller"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
)

type reporter interface {
	GetWeather(ctx context.Context, city string) string
}

type searcher interface {
	Apply(ctx context.Context, state models.Session, ev controller.Event) controller.Outcome
}

type searchRecorder interface {
	ObserveSearch()
}

type Handler struct {
	Service  reporter
	ctrl     searcher
	recorder searchRecorder
}

func NewHandler(svc reporter, ctrl searcher, recorder searchRecorder) *Handler {
	return &Handler{Service: svc, ctrl: ctrl, recorder: recorder}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ReportResponse struct {
	City   string `json:"city"`
	Report string `json:"report"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResponse struct {
	Query     string `json:"query"`
	City      string `json:"city"`
	Extracted bool   `json:"extracted"`
	Report    string `json:"report"`
}

// GetWeather
// @Summary Get current weather report
// @Description Returns the formatted weather report for a given city
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Router /weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "city query parameter is required"})
		return
	}

	report := h.Service.GetWeather(c.Request.Context(), city)

	c.JSON(http.StatusOK, ReportResponse{City: city, Report: report})
}

// Search
// @Summary Extract a city from free text and report its weather
// @Description Runs the same pipeline as the Search button without touching any session
// @Tags weather
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Free-text query"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /search [post]
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if h.recorder != nil {
		h.recorder.ObserveSearch()
	}

	out := h.ctrl.Apply(c.Request.Context(), models.Session{}, controller.Search{Input: req.Query})

	resp := SearchResponse{Query: req.Query, Report: out.State.WeatherReport}
	if out.Extraction != nil {
		resp.City = out.Extraction.City
		resp.Extracted = !out.Extraction.IsFallback()
	}

	c.JSON(http.StatusOK, resp)
}

// Health is the liveness probe mounted outside the API group.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
