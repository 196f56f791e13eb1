package get_seat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet"
)

const (
	msgInvalidSeatID = "некорректный ID места"
	msgSeatNotFound  = "место не найдено"
)

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

// Handle GET /banquet/seat/{seatId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	seatIDStr := vars["seatId"]

	seatID, err := strconv.ParseInt(seatIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /banquet/seat/{id} - Invalid seat ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSeatID)
		return
	}

	seat, err := h.service.GetSeat(r.Context(), seatID)
	if err != nil {
		switch {
		case errors.Is(err, banquet.ErrSeatNotFound):
			h.logger.Warn("GET /banquet/seat/{id} - Seat not found: seat_id=%d", seatID)
			handlers.RespondNotFound(w, msgSeatNotFound)

		default:
			h.logger.Error("GET /banquet/seat/{id} - Failed to get seat: seat_id=%d, error=%v", seatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /banquet/seat/{id} - Seat retrieved successfully: seat_id=%d", seatID)
	handlers.RespondJSON(w, http.StatusOK, seat)
}
