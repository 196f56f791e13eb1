package get_type_relation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation"
)

const (
	msgInvalidRelationID = "некорректный ID правила"
	msgRelationNotFound  = "правило не найдено"
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

// Handle GET /type-relations/{relationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	relationIDStr := vars["relationId"]

	relationID, err := strconv.ParseInt(relationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /type-relations/{id} - Invalid relation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRelationID)
		return
	}

	relation, err := h.service.GetByID(r.Context(), relationID)
	if err != nil {
		switch {
		case errors.Is(err, typerelation.ErrRelationNotFound):
			h.logger.Warn("GET /type-relations/{id} - Relation not found: relation_id=%d", relationID)
			handlers.RespondNotFound(w, msgRelationNotFound)

		default:
			h.logger.Error("GET /type-relations/{id} - Failed to get relation: relation_id=%d, error=%v", relationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /type-relations/{id} - Relation retrieved successfully: relation_id=%d", relationID)
	handlers.RespondJSON(w, http.StatusOK, relation)
}
