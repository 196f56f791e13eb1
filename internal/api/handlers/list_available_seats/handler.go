package list_available_seats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
	listAvailableSeats "github.com/tak4ma/VMS-BanquetService/internal/usecase/list_available_seats"
)

const (
	msgInvalidSpiritID    = "некорректный ID духа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingDatetime    = "поле datetime обязательно"
	msgInvalidDatetime    = "некорректный формат datetime, ожидается RFC3339 или YYYY-MM-DD"
)

type Handler struct {
	useCase ListAvailableSeatsUseCase
	logger  Logger
}

func NewHandler(useCase ListAvailableSeatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /banquet/table/available/{spiritId}
// Body: {"datetime": "2026-05-20T19:00:00Z"} или {"datetime": "2026-05-20"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	spiritIDStr := vars["spiritId"]
	spiritID, err := strconv.ParseInt(spiritIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /banquet/table/available/{id} - Invalid spirit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpiritID)
		return
	}

	var req AvailableSeatsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /banquet/table/available/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Datetime == "" {
		h.logger.Warn("POST /banquet/table/available/{id} - Missing datetime: spirit_id=%d", spiritID)
		handlers.RespondBadRequest(w, msgMissingDatetime)
		return
	}

	startTime, err := req.ParseDatetime()
	if err != nil {
		h.logger.Warn("POST /banquet/table/available/{id} - Invalid datetime %q: %v", req.Datetime, err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listAvailableSeats.Request{
		SpiritID:  spiritID,
		StartTime: startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, listAvailableSeats.ErrInvalidInput):
			h.logger.Warn("POST /banquet/table/available/{id} - Invalid input: spirit_id=%d, error=%v", spiritID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /banquet/table/available/{id} - Failed to compute availability: spirit_id=%d, error=%v",
				spiritID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /banquet/table/available/{id} - Availability computed: spirit_id=%d, tables_count=%d",
		spiritID, len(response.Tables))
	handlers.RespondJSON(w, http.StatusOK, response)
}
