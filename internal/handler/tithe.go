package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/congregate-app/congregate/internal/ctxkeys"
	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/repository"
	"github.com/congregate-app/congregate/internal/service"
	"github.com/congregate-app/congregate/internal/validation"
)

type titheHandler struct {
	titheService   *service.TitheService
	receiptService *service.ReceiptService
	userService    *service.UserService
}

func NewTitheHandler(titheService *service.TitheService, receiptService *service.ReceiptService, userService *service.UserService) *titheHandler {
	return &titheHandler{
		titheService:   titheService,
		receiptService: receiptService,
		userService:    userService,
	}
}

type createTitheRequest struct {
	Username string `json:"username"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
}

type titheResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
}

func titheToResponse(record *model.TithingRecord) titheResponse {
	return titheResponse{
		ID:     record.ID,
		UserID: record.UserID,
		Amount: service.FormatAmount(record.AmountCents),
		Date:   record.Date,
	}
}

func (h *titheHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := ctxkeys.Principal(r.Context())

	var req createTitheRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.titheService.AddRecord(actor, req.Username, req.Amount, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthorized):
			respondError(w, http.StatusForbidden, "only admins may add tithing records")
		case errors.Is(err, service.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "no such user")
		case errors.Is(err, validation.ErrInvalidAmount), errors.Is(err, validation.ErrInvalidDate):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to add tithing record", "error", err, "actor_id", actor.UserID)
			respondError(w, http.StatusInternalServerError, "failed to add record")
		}
		return
	}

	respondJSON(w, http.StatusCreated, titheToResponse(record))
}

// List returns the caller's own giving history. Admins may pass
// ?username= to view another member's.
func (h *titheHandler) List(w http.ResponseWriter, r *http.Request) {
	principal := ctxkeys.Principal(r.Context())

	userID := principal.UserID
	if username := r.URL.Query().Get("username"); username != "" && principal.IsAdmin() {
		user, err := h.userService.ByUsername(username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				respondError(w, http.StatusNotFound, "no such user")
				return
			}
			slog.Error("failed to look up user", "error", err, "username", username)
			respondError(w, http.StatusInternalServerError, "something went wrong")
			return
		}
		userID = user.ID
	}

	records, err := h.titheService.RecordsFor(userID)
	if err != nil {
		slog.Error("failed to list tithing records", "error", err, "user_id", userID)
		respondError(w, http.StatusInternalServerError, "failed to list records")
		return
	}

	out := make([]titheResponse, 0, len(records))
	for _, record := range records {
		out = append(out, titheToResponse(record))
	}

	respondJSON(w, http.StatusOK, out)
}

// Receipt streams the PDF receipt for one record. Only the record's
// owner or an admin may download it.
func (h *titheHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	principal := ctxkeys.Principal(r.Context())
	recordID := r.PathValue("id")

	record, err := h.titheService.Record(recordID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "record not found")
			return
		}
		slog.Error("failed to get tithing record", "error", err, "record_id", recordID)
		respondError(w, http.StatusInternalServerError, "failed to get record")
		return
	}

	if record.UserID != principal.UserID && !principal.IsAdmin() {
		respondError(w, http.StatusForbidden, "not your record")
		return
	}

	doc, err := h.receiptService.Render(recordID)
	if err != nil {
		slog.Error("failed to render receipt", "error", err, "record_id", recordID)
		respondError(w, http.StatusInternalServerError, "failed to render receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", h.receiptService.Filename(recordID)))

	_, err = w.Write(doc)
	if err != nil {
		slog.Error("failed to write receipt", "error", err, "record_id", recordID)
	}
}
