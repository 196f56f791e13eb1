package update_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet"
	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet/models"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTableNotFound      = "стол не найден"
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

// Handle PUT /banquet/table/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableIDStr := vars["tableId"]

	tableID, err := strconv.ParseInt(tableIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /banquet/table/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req models.UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /banquet/table/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.UpdateTable(r.Context(), tableID, &req)
	if err != nil {
		switch {
		case errors.Is(err, banquet.ErrTableNotFound):
			h.logger.Warn("PUT /banquet/table/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, banquet.ErrInvalidInput):
			h.logger.Warn("PUT /banquet/table/{id} - Invalid input: table_id=%d, error=%v", tableID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /banquet/table/{id} - Failed to update table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /banquet/table/{id} - Table updated successfully: table_id=%d, state=%t",
		tableID, table.State)
	handlers.RespondJSON(w, http.StatusOK, table)
}
