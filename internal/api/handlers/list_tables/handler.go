package list_tables

import (
	"net/http"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
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

// Handle GET /banquet/table/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.ListTables(r.Context())
	if err != nil {
		h.logger.Error("GET /banquet/table - Failed to list tables: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /banquet/table - Tables listed successfully: count=%d", tables.Total)
	handlers.RespondJSON(w, http.StatusOK, tables)
}
