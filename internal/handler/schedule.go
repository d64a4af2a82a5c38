package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/congregate-app/congregate/internal/ctxkeys"
	"github.com/congregate-app/congregate/internal/service"
)

type scheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *scheduleHandler {
	return &scheduleHandler{
		scheduleService: scheduleService,
	}
}

type createServiceItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
}

func (h *scheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := ctxkeys.Principal(r.Context())

	var req createServiceItemRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.scheduleService.Create(actor, req.Title, req.Description, req.Category, req.Date, req.Time, req.Location)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthorized) {
			respondError(w, http.StatusForbidden, "only admins may edit the schedule")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

func (h *scheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.scheduleService.List()
	if err != nil {
		slog.Error("failed to list service items", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list schedule")
		return
	}

	respondJSON(w, http.StatusOK, items)
}
