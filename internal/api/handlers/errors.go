package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/harmony"
	"github.com/Conceptual-Machines/vibe-chords/internal/logger"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP statuses. Caller mistakes are 400s, the rest 500s.
func respondError(c *gin.Context, err error) {
	var unknownMood *catalogue.UnknownMoodError
	var invalidKey *harmony.InvalidKeyError

	switch {
	case errors.As(err, &unknownMood):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  "unknown_mood",
			"mood":  unknownMood.Mood,
		})
	case errors.As(err, &invalidKey):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  "invalid_key",
			"key":   invalidKey.Input,
		})
	case errors.Is(err, progression.ErrTemplateOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"code":  "template_out_of_range",
		})
	default:
		logger.Error("Request failed", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Internal server error",
			"request_id": c.GetString("request_id"),
		})
	}
}
