package list_type_relations

import (
	"net/http"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
)

type Handler struct {
	service TypeRelationService
	logger  Logger
}

func NewHandler(service TypeRelationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /type-relations/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	relations, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /type-relations - Failed to list relations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /type-relations - Relations listed successfully: count=%d", relations.Total)
	handlers.RespondJSON(w, http.StatusOK, relations)
}
