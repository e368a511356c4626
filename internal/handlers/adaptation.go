package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gramtop961/aiduc-backend/internal/services"
)

type AdaptationHandler struct {
	adaptationService services.AdaptationService
}

func NewAdaptationHandler(adaptationService services.AdaptationService) *AdaptationHandler {
	return &AdaptationHandler{adaptationService: adaptationService}
}

type AskRequest struct {
	Question string `json:"question" binding:"required,min=3"`
	Level    string `json:"level"`
}

// Ask answers a lesson question with the rule-based tutor.
func (ah *AdaptationHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Level == "" {
		req.Level = "umum"
	}
	RespondOK(c, ah.adaptationService.Ask(req.Question, req.Level))
}

type ConvertRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// Convert produces the Flexa accessible renditions of source text.
func (ah *AdaptationHandler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	RespondOK(c, ah.adaptationService.Convert(req.Text))
}

type ScanRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

// Scan summarizes text read from a camera or document scan.
func (ah *AdaptationHandler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	RespondOK(c, ah.adaptationService.Scan(req.Text))
}

type PlanRequest struct {
	Topic       string `json:"topic" binding:"required,min=2"`
	Proficiency *int   `json:"proficiency" binding:"omitempty,min=1,max=5"`
}

// Plan builds a tiered learning path for a topic. Proficiency defaults
// to 3 when omitted; an explicit out-of-range value, zero included, is
// rejected by the binding layer.
func (ah *AdaptationHandler) Plan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	proficiency := 3
	if req.Proficiency != nil {
		proficiency = *req.Proficiency
	}
	RespondOK(c, ah.adaptationService.Plan(req.Topic, proficiency))
}
