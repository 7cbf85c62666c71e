package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/laterpad/laterpad/internal/notes"
	"go.uber.org/zap"
)

var errMissingNotesService = errors.New("notes service dependency required")

// Dependencies carries the collaborators the HTTP layer needs.
type Dependencies struct {
	NotesService *notes.Service
	Logger       *zap.Logger
}

// NewHTTPHandler builds the gin router serving the LaterPad JSON API.
func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.NotesService == nil {
		return nil, errMissingNotesService
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	handler := &httpHandler{
		notesService: deps.NotesService,
		logger:       logger,
	}

	api := router.Group("/api")
	api.GET("/health", handler.handleHealth)
	api.GET("/notes", handler.handleListNotes)
	api.POST("/notes", handler.handleCreateNote)
	api.PUT("/notes/:id", handler.handleUpdateNote)
	api.POST("/notes/:id/toggle", handler.handleToggleLine)
	api.DELETE("/notes/:id", handler.handleDeleteNote)

	return router, nil
}

type httpHandler struct {
	notesService *notes.Service
	logger       *zap.Logger
}

type notePayload struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Icon        string `json:"icon"`
	Preview     string `json:"preview"`
	IsTruncated bool   `json:"is_truncated"`
}

func toNotePayload(note notes.Note) notePayload {
	preview := notes.Truncate(note.Content, notes.DefaultTruncateLength)
	return notePayload{
		ID:          note.ID,
		Content:     note.Content,
		Type:        note.Type,
		Category:    note.Category,
		CreatedAt:   time.Unix(note.CreatedAtSeconds, 0).UTC().Format(time.RFC3339),
		UpdatedAt:   time.Unix(note.UpdatedAtSeconds, 0).UTC().Format(time.RFC3339),
		Icon:        notes.TypeIcon(notes.NoteType(note.Type)),
		Preview:     preview.Text,
		IsTruncated: preview.IsTruncated,
	}
}

func (h *httpHandler) handleHealth(c *gin.Context) {
	count, err := h.notesService.CountNotes(c.Request.Context())
	if err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"database":   "connected",
		"note_count": count,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *httpHandler) handleListNotes(c *gin.Context) {
	filter := notes.ListFilter{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Category: c.Query("category"),
	}

	results, err := h.notesService.ListNotes(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list notes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_failed", "details": err.Error()})
		return
	}

	payloads := make([]notePayload, 0, len(results))
	for _, note := range results {
		payloads = append(payloads, toNotePayload(note))
	}
	c.JSON(http.StatusOK, payloads)
}

type createNoteRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (h *httpHandler) handleCreateNote(c *gin.Context) {
	var request createNoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	note, err := h.notesService.CreateNote(c.Request.Context(), notes.CreateNoteInput{
		Content:  request.Content,
		Category: request.Category,
	})
	if err != nil {
		h.respondServiceError(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, toNotePayload(note))
}

type updateNoteRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (h *httpHandler) handleUpdateNote(c *gin.Context) {
	noteID, err := notes.NewNoteID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_note_id"})
		return
	}

	var request updateNoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	note, err := h.notesService.UpdateNote(c.Request.Context(), noteID, notes.UpdateNoteInput{
		Content:  request.Content,
		Category: request.Category,
	})
	if err != nil {
		h.respondServiceError(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, toNotePayload(note))
}

type toggleLineRequest struct {
	Line *int `json:"line" binding:"required"`
}

func (h *httpHandler) handleToggleLine(c *gin.Context) {
	noteID, err := notes.NewNoteID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_note_id"})
		return
	}

	var request toggleLineRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Line == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	note, err := h.notesService.ToggleTodoLine(c.Request.Context(), noteID, *request.Line)
	if err != nil {
		h.respondServiceError(c, "toggle", err)
		return
	}

	c.JSON(http.StatusOK, toNotePayload(note))
}

func (h *httpHandler) handleDeleteNote(c *gin.Context) {
	noteID, err := notes.NewNoteID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_note_id"})
		return
	}

	if err := h.notesService.DeleteNote(c.Request.Context(), noteID); err != nil {
		h.respondServiceError(c, "delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *httpHandler) respondServiceError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, notes.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "content_required"})
	case errors.Is(err, notes.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "note_not_found"})
	default:
		h.logger.Error("note operation failed", zap.String("operation", operation), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": operation + "_failed", "details": err.Error()})
	}
}
