package create_table

import (
	"errors"
	"net/http"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet"
	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCapacity    = "некорректная вместимость стола"
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

// Handle POST /banquet/table/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /banquet/table - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.CreateTable(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, banquet.ErrInvalidInput):
			h.logger.Warn("POST /banquet/table - Invalid capacity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		default:
			h.logger.Error("POST /banquet/table - Failed to create table: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /banquet/table - Table created successfully: table_id=%d, capacity=%d",
		table.ID, table.Capacity)
	handlers.RespondJSON(w, http.StatusCreated, table)
}
