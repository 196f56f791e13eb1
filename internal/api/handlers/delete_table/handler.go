package delete_table

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

// Handle DELETE /banquet/table/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableIDStr := vars["tableId"]

	tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /banquet/table/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	if err := h.service.DeleteTable(r.Context(), tableID); err != nil {
		switch {
		case errors.Is(err, banquet.ErrTableNotFound):
			h.logger.Warn("DELETE /banquet/table/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		default:
			h.logger.Error("DELETE /banquet/table/{id} - Failed to delete table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /banquet/table/{id} - Table deleted successfully: table_id=%d", tableID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
