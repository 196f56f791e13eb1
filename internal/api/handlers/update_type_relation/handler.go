package update_type_relation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation"
	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation/models"
)

const (
	msgInvalidRelationID  = "некорректный ID правила"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRelationNotFound   = "правило не найдено"
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

// Handle PUT /type-relations/{relationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	relationIDStr := vars["relationId"]

	relationID, err := strconv.ParseInt(relationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /type-relations/{id} - Invalid relation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRelationID)
		return
	}

	var req models.UpdateTypeRelationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /type-relations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	relation, err := h.service.Update(r.Context(), relationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, typerelation.ErrRelationNotFound):
			h.logger.Warn("PUT /type-relations/{id} - Relation not found: relation_id=%d", relationID)
			handlers.RespondNotFound(w, msgRelationNotFound)

		case errors.Is(err, typerelation.ErrInvalidInput):
			h.logger.Warn("PUT /type-relations/{id} - Invalid input: relation_id=%d, error=%v", relationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /type-relations/{id} - Failed to update relation: relation_id=%d, error=%v", relationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /type-relations/{id} - Relation updated successfully: relation_id=%d, relation=%s",
		relationID, relation.Relation)
	handlers.RespondJSON(w, http.StatusOK, relation)
}
