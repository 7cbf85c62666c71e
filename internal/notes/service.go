package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	errMissingDatabase   = errors.New("database handle is required")
	errMissingIDProvider = errors.New("id provider is required")
	noOpLogger           = zap.NewNop()
)

// ServiceError wraps a failure with a stable operation.reason code.
type ServiceError struct {
	code string
	err  error
}

func (e *ServiceError) Error() string {
	if e.err == nil {
		return e.code
	}
	return fmt.Sprintf("%s: %v", e.code, e.err)
}

func (e *ServiceError) Unwrap() error {
	return e.err
}

func (e *ServiceError) Code() string {
	return e.code
}

const (
	opServiceNew = "notes.service.new"
	opCreate     = "notes.create"
	opList       = "notes.list"
	opGet        = "notes.get"
	opUpdate     = "notes.update"
	opToggle     = "notes.toggle_line"
	opDelete     = "notes.delete"
	opCount      = "notes.count"
)

func newServiceError(operation, reason string, cause error) error {
	code := fmt.Sprintf("%s.%s", operation, reason)
	return &ServiceError{code: code, err: cause}
}

// IDProvider issues unique note identifiers.
type IDProvider interface {
	NewID() (string, error)
}

// ServiceConfig carries the collaborators a Service needs.
type ServiceConfig struct {
	Database   *gorm.DB
	Clock      func() time.Time
	IDProvider IDProvider
	Logger     *zap.Logger
}

// Service owns note persistence: capture, filtered listing, edits, deletes.
type Service struct {
	db         *gorm.DB
	clock      func() time.Time
	idProvider IDProvider
	logger     *zap.Logger
}

// NewService validates the configuration and returns a Service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Database == nil {
		return nil, newServiceError(opServiceNew, "missing_database", errMissingDatabase)
	}
	if cfg.IDProvider == nil {
		return nil, newServiceError(opServiceNew, "missing_id_provider", errMissingIDProvider)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = noOpLogger
	}

	return &Service{
		db:         cfg.Database,
		clock:      clock,
		idProvider: cfg.IDProvider,
		logger:     logger,
	}, nil
}

// CreateNoteInput is the capture payload.
type CreateNoteInput struct {
	Content  string
	Category string
}

// CreateNote classifies, formats, and persists a capture. Blank content fails
// with ErrEmptyContent before anything reaches storage.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (Note, error) {
	content, err := NormalizeContent(input.Content)
	if err != nil {
		return Note{}, newServiceError(opCreate, "empty_content", err)
	}

	noteType := Classify(content)
	stored := FormatForStorage(content, noteType)

	id, err := s.idProvider.NewID()
	if err != nil {
		s.logError(opCreate, "id_generation_failed", err)
		return Note{}, newServiceError(opCreate, "id_generation_failed", err)
	}

	now := s.clock().UTC().Unix()
	note := Note{
		ID:               id,
		Content:          stored,
		Type:             string(noteType),
		Category:         NormalizeCategory(input.Category),
		CreatedAtSeconds: now,
		UpdatedAtSeconds: now,
	}

	if err := s.db.WithContext(ctx).Create(&note).Error; err != nil {
		s.logError(opCreate, "insert_failed", err, zap.String("note_id", id))
		return Note{}, newServiceError(opCreate, "insert_failed", err)
	}

	s.logger.Info("note captured",
		zap.String("note_id", note.ID),
		zap.String("type", note.Type),
		zap.String("category", note.Category))
	return note, nil
}

// ListFilter narrows ListNotes results. Empty fields and the "all" sentinel
// disable the corresponding filter; all present filters combine with AND.
type ListFilter struct {
	Search   string
	Type     string
	Category string
}

// ListNotes returns the notes matching the filter, newest first. Ties on the
// creation second resolve to the most recently created note via the
// time-ordered identifier.
func (s *Service) ListNotes(ctx context.Context, filter ListFilter) ([]Note, error) {
	query := s.db.WithContext(ctx).Model(&Note{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(content) LIKE ? OR LOWER(category) LIKE ?", needle, needle)
	}
	if noteType := strings.TrimSpace(filter.Type); noteType != "" && noteType != FilterAll {
		query = query.Where("type = ?", noteType)
	}
	if category := strings.TrimSpace(filter.Category); category != "" && category != FilterAll {
		query = query.Where("category = ?", category)
	}

	var results []Note
	if err := query.Order("created_at_s DESC, id DESC").Find(&results).Error; err != nil {
		s.logError(opList, "query_failed", err)
		return nil, newServiceError(opList, "query_failed", err)
	}
	return results, nil
}

// GetNote loads a single note by identifier.
func (s *Service) GetNote(ctx context.Context, id NoteID) (Note, error) {
	var note Note
	err := s.db.WithContext(ctx).Where("id = ?", id.String()).Take(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Note{}, newServiceError(opGet, "not_found", ErrNoteNotFound)
	}
	if err != nil {
		s.logError(opGet, "query_failed", err, zap.String("note_id", id.String()))
		return Note{}, newServiceError(opGet, "query_failed", err)
	}
	return note, nil
}

// UpdateNoteInput replaces a note's content and category.
type UpdateNoteInput struct {
	Content  string
	Category string
}

// UpdateNote replaces content and category and refreshes the update timestamp.
// The stored type is deliberately left alone even when the new content would
// classify differently.
func (s *Service) UpdateNote(ctx context.Context, id NoteID, input UpdateNoteInput) (Note, error) {
	content, err := NormalizeContent(input.Content)
	if err != nil {
		return Note{}, newServiceError(opUpdate, "empty_content", err)
	}

	note, err := s.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return Note{}, newServiceError(opUpdate, "not_found", ErrNoteNotFound)
		}
		return Note{}, err
	}

	note.Content = content
	note.Category = NormalizeCategory(input.Category)
	note.UpdatedAtSeconds = s.clock().UTC().Unix()

	if err := s.db.WithContext(ctx).Save(&note).Error; err != nil {
		s.logError(opUpdate, "save_failed", err, zap.String("note_id", id.String()))
		return Note{}, newServiceError(opUpdate, "save_failed", err)
	}
	return note, nil
}

// ToggleTodoLine flips the checkbox on one line of a note's content and
// persists the result. A toggle that changes nothing is a no-op: the record,
// including its update timestamp, is left untouched.
func (s *Service) ToggleTodoLine(ctx context.Context, id NoteID, lineIndex int) (Note, error) {
	note, err := s.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return Note{}, newServiceError(opToggle, "not_found", ErrNoteNotFound)
		}
		return Note{}, err
	}

	toggled, changed := ToggleLine(note.Content, lineIndex)
	if !changed {
		return note, nil
	}

	note.Content = toggled
	note.UpdatedAtSeconds = s.clock().UTC().Unix()

	if err := s.db.WithContext(ctx).Save(&note).Error; err != nil {
		s.logError(opToggle, "save_failed", err, zap.String("note_id", id.String()))
		return Note{}, newServiceError(opToggle, "save_failed", err)
	}
	return note, nil
}

// DeleteNote removes a note permanently.
func (s *Service) DeleteNote(ctx context.Context, id NoteID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&Note{})
	if result.Error != nil {
		s.logError(opDelete, "delete_failed", result.Error, zap.String("note_id", id.String()))
		return newServiceError(opDelete, "delete_failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return newServiceError(opDelete, "not_found", ErrNoteNotFound)
	}
	return nil
}

// CountNotes reports the number of stored notes for the health check.
func (s *Service) CountNotes(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&Note{}).Count(&count).Error; err != nil {
		s.logError(opCount, "query_failed", err)
		return 0, newServiceError(opCount, "query_failed", err)
	}
	return count, nil
}

func (s *Service) logError(operation, reason string, err error, fields ...zap.Field) {
	attrs := []zap.Field{
		zap.String("operation", operation),
		zap.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, zap.Error(err))
	}
	attrs = append(attrs, fields...)
	s.loggerOrDefault().Error("notes service error", attrs...)
}

func (s *Service) loggerOrDefault() *zap.Logger {
	if s == nil || s.logger == nil {
		return noOpLogger
	}
	return s.logger
}
