package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/harmony"
	"github.com/gin-gonic/gin"
)

type CatalogueHandler struct {
	catalogue *catalogue.Catalogue
}

func NewCatalogueHandler(cat *catalogue.Catalogue) *CatalogueHandler {
	return &CatalogueHandler{catalogue: cat}
}

// MoodSummary is one entry of the mood listing
type MoodSummary struct {
	ID            catalogue.MoodID      `json:"id"`
	Description   string                `json:"description"`
	Performance   catalogue.Performance `json:"performance"`
	TemplateCount int                   `json:"template_count"`
}

// ListMoods returns the catalogue moods in catalogue order
func (h *CatalogueHandler) ListMoods(c *gin.Context) {
	ids := h.catalogue.Moods()
	moods := make([]MoodSummary, 0, len(ids))
	for _, id := range ids {
		mood, err := h.catalogue.Mood(id)
		if err != nil {
			respondError(c, err)
			return
		}
		moods = append(moods, MoodSummary{
			ID:            mood.ID,
			Description:   mood.Description,
			Performance:   mood.Performance,
			TemplateCount: len(mood.Templates),
		})
	}

	c.JSON(http.StatusOK, gin.H{"moods": moods})
}

// GetMood returns one mood with all of its templates
func (h *CatalogueHandler) GetMood(c *gin.Context) {
	mood, err := h.catalogue.Mood(catalogue.MoodID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mood)
}

// ListKeys returns the 24 accepted key spellings
func (h *CatalogueHandler) ListKeys(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"keys": harmony.KeyNames()})
}

// GetField returns the harmonic field of a key, e.g. GET /api/v1/fields/F%23m
func (h *CatalogueHandler) GetField(c *gin.Context) {
	key, err := harmony.ParseKey(c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":   key.String(),
		"mode":  key.Mode.String(),
		"field": harmony.BuildHarmonicField(key).Symbols(),
	})
}
