package list_seats

import (
	"net/http"
	"strconv"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
)

const msgInvalidTableID = "некорректный ID стола"

type Handler struct {
	service BanquetService
	logger  Logger
}

func NewHandler(service BanquetService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /banquet/seat/
// Query params: tableId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var tableID *int64

	if tableIDStr := r.URL.Query().Get("tableId"); tableIDStr != "" {
		id, err := strconv.ParseInt(tableIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /banquet/seat - Invalid table ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTableID)
			return
		}
		tableID = &id
	}

	seats, err := h.service.ListSeats(r.Context(), tableID)
	if err != nil {
		h.logger.Error("GET /banquet/seat - Failed to list seats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /banquet/seat - Seats listed successfully: count=%d", seats.Total)
	handlers.RespondJSON(w, http.StatusOK, seats)
}
