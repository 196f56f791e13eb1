package get_available_time_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
	getAvailableTimeSlots "github.com/tak4ma/VMS-BanquetService/internal/usecase/get_available_time_slots"
)

const (
	msgInvalidSpiritID = "некорректный ID духа"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /banquet/{spiritId}/available_time_slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	spiritIDStr := vars["spiritId"]
	spiritID, err := strconv.ParseInt(spiritIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /banquet/{id}/available_time_slots - Invalid spirit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpiritID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /banquet/{id}/available_time_slots - Missing date: spirit_id=%d", spiritID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(spiritID, dateStr)
	if err != nil {
		h.logger.Warn("GET /banquet/{id}/available_time_slots - Invalid date format %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /banquet/{id}/available_time_slots - Invalid input: spirit_id=%d, error=%v", spiritID, err)
			handlers.RespondBadRequest(w, msgInvalidSpiritID)

		default:
			h.logger.Error("GET /banquet/{id}/available_time_slots - Failed to get slots: spirit_id=%d, date=%s, error=%v",
				spiritID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /banquet/{id}/available_time_slots - Slots retrieved: spirit_id=%d, date=%s, slots_count=%d",
		spiritID, dateStr, len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
