package handlers

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/logger"
	"github.com/Conceptual-Machines/vibe-chords/internal/metrics"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/Conceptual-Machines/vibe-chords/internal/render"
	"github.com/Conceptual-Machines/vibe-chords/internal/services"
	"github.com/gin-gonic/gin"
)

type ProgressionHandler struct {
	resolver      *progression.Resolver
	history       *services.HistoryService
	sentryMetrics *metrics.SentryMetrics
	cloudwatch    *metrics.Client
}

func NewProgressionHandler(resolver *progression.Resolver, history *services.HistoryService, cloudwatch *metrics.Client) *ProgressionHandler {
	return &ProgressionHandler{
		resolver:      resolver,
		history:       history,
		sentryMetrics: metrics.NewSentryMetrics(),
		cloudwatch:    cloudwatch,
	}
}

// ProgressionRequest asks for one progression. TemplateIndex pins the template instead of picking at random.
type ProgressionRequest struct {
	Key           string `json:"key" binding:"required"`
	Mood          string `json:"mood" binding:"required"`
	TemplateIndex *int   `json:"template_index,omitempty"`
}

// ProgressionResponse is the generated progression plus its display forms
type ProgressionResponse struct {
	Progression *progression.Result `json:"progression"`
	NumeralText string              `json:"numeral_text"`
	ChordText   string              `json:"chord_text"`
	Unresolved  []string            `json:"unresolved"`
}

// RenderResponse adds the arranged notes and a Standard MIDI File
type RenderResponse struct {
	ProgressionResponse
	Arrangement *render.Arrangement `json:"arrangement"`
	MIDIBase64  string              `json:"midi_base64"`
}

// Generate handles POST /api/v1/progressions
func (h *ProgressionHandler) Generate(c *gin.Context) {
	result, ok := h.generate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newProgressionResponse(result))
}

// Render handles POST /api/v1/progressions/render
func (h *ProgressionHandler) Render(c *gin.Context) {
	result, ok := h.generate(c)
	if !ok {
		return
	}

	start := time.Now()
	perf, err := h.resolver.Catalogue().Performance(result.Mood)
	if err != nil {
		respondError(c, err)
		return
	}

	arr, err := render.Arrange(result, perf)
	if err != nil {
		respondError(c, err)
		return
	}
	midi, err := render.EncodeMIDI(arr)
	if err != nil {
		respondError(c, err)
		return
	}

	duration := time.Since(start)
	h.sentryMetrics.RecordRender(c.Request.Context(), "midi", len(midi), duration)
	h.cloudwatch.RecordRender("midi", duration)

	c.JSON(http.StatusOK, RenderResponse{
		ProgressionResponse: newProgressionResponse(result),
		Arrangement:         arr,
		MIDIBase64:          base64.StdEncoding.EncodeToString(midi),
	})
}

// generate binds the request, resolves it and records it. It writes the error response itself.
func (h *ProgressionHandler) generate(c *gin.Context) (*progression.Result, bool) {
	var req ProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalid_request"})
		return nil, false
	}

	start := time.Now()
	mood := catalogue.MoodID(req.Mood)

	var result *progression.Result
	var err error
	if req.TemplateIndex != nil {
		result, err = h.resolver.ResolveTemplate(req.Key, mood, *req.TemplateIndex)
	} else {
		result, err = h.resolver.Resolve(req.Key, mood)
	}

	duration := time.Since(start)
	if err != nil {
		h.sentryMetrics.RecordGeneration(c.Request.Context(), req.Mood, 0, duration, false)
		respondError(c, err)
		return nil, false
	}

	unresolved := len(result.Unresolved())
	h.sentryMetrics.RecordGeneration(c.Request.Context(), req.Mood, unresolved, duration, true)
	h.cloudwatch.RecordGeneration(req.Mood, unresolved)
	logger.LogProgression(c.Request.Context(), string(result.Mood), result.Key, result.Chords, unresolved, duration, logger.WithContext(c))

	if err := h.history.Record(result, c.GetString("request_id"), sourceAPI); err != nil {
		// History is best effort; the caller still gets the progression
		logger.Error("Failed to record generation history", err, logger.WithContext(c))
	}

	return result, true
}

func newProgressionResponse(result *progression.Result) ProgressionResponse {
	unresolved := result.Unresolved()
	if unresolved == nil {
		unresolved = []string{}
	}
	return ProgressionResponse{
		Progression: result,
		NumeralText: result.NumeralString(),
		ChordText:   result.ChordString(),
		Unresolved:  unresolved,
	}
}
