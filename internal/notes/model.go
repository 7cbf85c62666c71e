package notes

import (
	"errors"
	"fmt"
	"strings"
)

// NoteType enumerates the content classifications a note can carry.
type NoteType string

const (
	// NoteTypeURL marks content that contains a link or bare domain.
	NoteTypeURL NoteType = "url"
	// NoteTypeTodo marks content recognized as an actionable checklist.
	NoteTypeTodo NoteType = "todo"
	// NoteTypeNote is the free-form fallback classification.
	NoteTypeNote NoteType = "note"
)

// DefaultCategory is stored whenever a caller omits or blanks the category.
const DefaultCategory = "Unsorted"

// FilterAll is the sentinel query value that disables a type or category filter.
const FilterAll = "all"

const maxIdentifierLength = 190

var (
	// ErrInvalidNoteID indicates that a note identifier is empty or exceeds storage bounds.
	ErrInvalidNoteID = errors.New("notes: invalid note id")
	// ErrEmptyContent indicates that content is empty after trimming.
	ErrEmptyContent = errors.New("notes: content is empty")
	// ErrNoteNotFound indicates that no note exists for the given identifier.
	ErrNoteNotFound = errors.New("notes: note not found")
)

// NoteID represents a validated note identifier.
type NoteID string

// NewNoteID validates raw input and returns a NoteID.
func NewNoteID(rawInput string) (NoteID, error) {
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidNoteID)
	}
	if len(trimmed) > maxIdentifierLength {
		return "", fmt.Errorf("%w: exceeds %d characters", ErrInvalidNoteID, maxIdentifierLength)
	}
	return NoteID(trimmed), nil
}

// String returns the underlying string identifier.
func (id NoteID) String() string {
	return string(id)
}

// NormalizeContent trims content and rejects empty captures.
func NormalizeContent(rawContent string) (string, error) {
	trimmed := strings.TrimSpace(rawContent)
	if trimmed == "" {
		return "", ErrEmptyContent
	}
	return trimmed, nil
}

// NormalizeCategory trims the category and falls back to DefaultCategory when blank.
func NormalizeCategory(rawCategory string) string {
	trimmed := strings.TrimSpace(rawCategory)
	if trimmed == "" {
		return DefaultCategory
	}
	return trimmed
}

// Note models a single captured item.
type Note struct {
	ID               string `gorm:"column:id;primaryKey;size:190;not null"`
	Content          string `gorm:"column:content;type:text;not null"`
	Type             string `gorm:"column:type;size:16;not null;index:idx_notes_type"`
	Category         string `gorm:"column:category;size:190;not null;default:'Unsorted';index:idx_notes_category"`
	CreatedAtSeconds int64  `gorm:"column:created_at_s;not null;index:idx_notes_created"`
	UpdatedAtSeconds int64  `gorm:"column:updated_at_s;not null"`
}

// TableName provides the explicit table binding for GORM.
func (Note) TableName() string {
	return "notes"
}
