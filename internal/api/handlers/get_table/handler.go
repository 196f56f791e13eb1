package get_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet"
)

const (
	msgInvalidTableID = "некорректный ID стола"
	msgTableNotFound  = "стол не найден"
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

// Handle GET /banquet/table/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableIDStr := vars["tableId"]

	tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /banquet/table/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	table, err := h.service.GetTable(r.Context(), tableID)
	if err != nil {
		switch {
		case errors.Is(err, banquet.ErrTableNotFound):
			h.logger.Warn("GET /banquet/table/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("GET /banquet/table/{id} - Failed to get table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /banquet/table/{id} - Table retrieved successfully: table_id=%d", tableID)
	handlers.RespondJSON(w, http.StatusOK, table)
}
