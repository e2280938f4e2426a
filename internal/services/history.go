package services

import (
	"errors"
	"strings"

	"github.com/Conceptual-Machines/vibe-chords/internal/models"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"gorm.io/gorm"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ErrHistoryDisabled is returned when no database is configured
var ErrHistoryDisabled = errors.New("generation history is disabled")

// HistoryService persists generated progressions. A nil service or nil db disables it.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Enabled reports whether records are persisted
func (s *HistoryService) Enabled() bool {
	return s != nil && s.db != nil
}

// NewGenerationRecord converts a result into its persisted form
func NewGenerationRecord(result *progression.Result, requestID, source string) *models.GenerationRecord {
	return &models.GenerationRecord{
		RequestID:  requestID,
		Source:     source,
		Key:        result.Key,
		Mood:       string(result.Mood),
		Numerals:   strings.Join(result.Numerals, " "),
		Chords:     strings.Join(result.Chords, " "),
		Unresolved: len(result.Unresolved()),
	}
}

// Record stores a result. It is a no-op when history is disabled.
func (s *HistoryService) Record(result *progression.Result, requestID, source string) error {
	if !s.Enabled() {
		return nil
	}
	return s.db.Create(NewGenerationRecord(result, requestID, source)).Error
}

// Recent returns the latest records, newest first, optionally filtered by mood
func (s *HistoryService) Recent(limit int, mood string) ([]models.GenerationRecord, error) {
	if !s.Enabled() {
		return nil, ErrHistoryDisabled
	}

	query := s.db.Order("created_at DESC").Limit(ClampHistoryLimit(limit))
	if mood != "" {
		query = query.Where("mood = ?", mood)
	}

	var records []models.GenerationRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ClampHistoryLimit applies the default and maximum page size
func ClampHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
