package delete_type_relation

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

// Handle DELETE /type-relations/{relationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	relationIDStr := vars["relationId"]

	relationID, err := strconv.ParseInt(relationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /type-relations/{id} - Invalid relation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRelationID)
		return
	}

	if err := h.service.Delete(r.Context(), relationID); err != nil {
		switch {
		case errors.Is(err, typerelation.ErrRelationNotFound):
			h.logger.Warn("DELETE /type-relations/{id} - Relation not found: relation_id=%d", relationID)
			handlers.RespondNotFound(w, msgRelationNotFound)

		default:
			h.logger.Error("DELETE /type-relations/{id} - Failed to delete relation: relation_id=%d, error=%v", relationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /type-relations/{id} - Relation deleted successfully: relation_id=%d", relationID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
