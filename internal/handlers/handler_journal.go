package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// RegisterJournalRoutes registers routes related to journal entries.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createJournalEntry)
		entries.GET("", h.listJournalEntries)
		entries.GET("/:id", h.getJournalEntry)
		entries.POST("/:id/post", h.postJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Create a journal entry
// @Description Creates an entry with its lines. Entries created POSTED update account balances in the same transaction.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Entry header and lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error, empty or unbalanced entry"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Unknown account"
// @Failure 500 {object} dto.ErrorResponse "Failed to create journal entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create journal entry", slog.Int("line_count", len(req.Lines)))
	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// postJournalEntry godoc
// @Summary Post a draft journal entry
// @Description Moves a DRAFT entry to POSTED and applies its lines to account balances
// @Tags journal
// @Produce  json
// @Param   id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry already posted"
// @Failure 500 {object} dto.ErrorResponse "Failed to post journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id}/post [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entryID := c.Param("id")
	entry, err := h.journalService.PostJournalEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("journal_entry_id", entryID)), err, "Failed to post journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// getJournalEntry godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce  json
// @Param   id path string true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse "Journal entry not found"
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.journalService.GetJournalEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("journal_entry_id", entryID)), err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Tags journal
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   offset query int false "Rows to skip"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c, logger)
	if !ok {
		return
	}

	entries, err := h.journalService.ListJournalEntries(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{JournalEntries: dto.ToJournalEntryResponses(entries)})
}
