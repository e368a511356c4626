package services

import (
	"strings"

	"github.com/gramtop961/aiduc-backend/internal/engine"
	"github.com/gramtop961/aiduc-backend/internal/logger"
)

// AskResult mirrors engine.TutorAnswer at the response boundary.
type AskResult struct {
	Answer string   `json:"answer"`
	Steps  []string `json:"steps"`
	Tips   []string `json:"tips"`
}

// ConvertResult is the Flexa output. AudioURL is always nil until audio
// synthesis is implemented; the field stays so the wire shape is stable.
type ConvertResult struct {
	AudioURL  *string  `json:"audio_url"`
	LargeText string   `json:"large_text"`
	Summary   string   `json:"summary"`
	SignGloss []string `json:"sign_gloss"`
}

// ScanResult is the EyeRead output for camera/scan text.
type ScanResult struct {
	Text     string  `json:"text"`
	Summary  string  `json:"summary"`
	AudioURL *string `json:"audio_url"`
}

// AdaptationService is the single entry surface over the content
// adaptation rule engine. Every method is pure and never fails; input
// validation happens at the request binding layer.
type AdaptationService interface {
	Ask(question, level string) AskResult
	Convert(text string) ConvertResult
	Scan(text string) ScanResult
	Plan(topic string, proficiency int) engine.PathwayPlan
}

type adaptationService struct {
	log *logger.Logger
}

func NewAdaptationService(log *logger.Logger) AdaptationService {
	serviceLog := log.With("service", "AdaptationService")
	return &adaptationService{log: serviceLog}
}

func (as *adaptationService) Ask(question, level string) AskResult {
	answer := engine.AnswerQuestion(question, level)
	as.log.Debug("Answered question", "branch", answer.Branch)
	return AskResult{
		Answer: answer.Answer,
		Steps:  answer.Steps,
		Tips:   answer.Tips,
	}
}

func (as *adaptationService) Convert(text string) ConvertResult {
	trimmed := strings.TrimSpace(text)
	return ConvertResult{
		AudioURL:  nil,
		LargeText: trimmed,
		Summary:   engine.Summarize(trimmed),
		SignGloss: engine.ExtractGloss(trimmed),
	}
}

func (as *adaptationService) Scan(text string) ScanResult {
	trimmed := strings.TrimSpace(text)
	return ScanResult{
		Text:     trimmed,
		Summary:  engine.Summarize(trimmed),
		AudioURL: nil,
	}
}

func (as *adaptationService) Plan(topic string, proficiency int) engine.PathwayPlan {
	return engine.PlanPath(topic, proficiency)
}
