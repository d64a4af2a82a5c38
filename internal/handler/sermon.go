package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/congregate-app/congregate/internal/ctxkeys"
	"github.com/congregate-app/congregate/internal/repository"
	"github.com/congregate-app/congregate/internal/service"
)

type sermonHandler struct {
	sermonService *service.SermonService
}

func NewSermonHandler(sermonService *service.SermonService) *sermonHandler {
	return &sermonHandler{
		sermonService: sermonService,
	}
}

type createSermonRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Preacher string `json:"preacher"`
	Date     string `json:"date"`
}

func (h *sermonHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := ctxkeys.Principal(r.Context())

	var req createSermonRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sermon, err := h.sermonService.Create(actor, req.Title, req.Body, req.Preacher, req.Date)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthorized) {
			respondError(w, http.StatusForbidden, "only admins may post sermons")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, sermon)
}

func (h *sermonHandler) List(w http.ResponseWriter, r *http.Request) {
	sermons, err := h.sermonService.List()
	if err != nil {
		slog.Error("failed to list sermons", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list sermons")
		return
	}

	respondJSON(w, http.StatusOK, sermons)
}

func (h *sermonHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	sermon, err := h.sermonService.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrSermonNotFound) {
			respondError(w, http.StatusNotFound, "sermon not found")
			return
		}
		slog.Error("failed to get sermon", "error", err, "sermon_id", id)
		respondError(w, http.StatusInternalServerError, "failed to get sermon")
		return
	}

	respondJSON(w, http.StatusOK, sermon)
}
