package models

import (
	"strings"
	"time"
)

// GenerationRecord is one persisted progression, kept for the history endpoint
type GenerationRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	RequestID  string    `gorm:"size:36;index" json:"request_id"`
	Source     string    `gorm:"size:16;not null;default:'api'" json:"source"` // "api" or "cli"
	Key        string    `gorm:"size:4;not null" json:"key"`
	Mood       string    `gorm:"size:64;not null;index" json:"mood"`
	Numerals   string    `gorm:"not null" json:"numerals"` // space separated
	Chords     string    `gorm:"not null" json:"chords"`   // space separated
	Unresolved int       `gorm:"default:0" json:"unresolved"`
}

// TableName overrides the default table name
func (GenerationRecord) TableName() string {
	return "generation_history"
}

// ChordList splits the stored chords back into a sequence
func (r *GenerationRecord) ChordList() []string {
	return strings.Fields(r.Chords)
}

// NumeralList splits the stored numerals back into a sequence
func (r *GenerationRecord) NumeralList() []string {
	return strings.Fields(r.Numerals)
}
