package create_type_relation

import (
	"errors"
	"net/http"

	"github.com/tak4ma/VMS-BanquetService/internal/api/handlers"
	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation"
	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRelation    = "некорректное правило, ожидается allow, separation или forbidden"
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

// Handle POST /type-relations/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTypeRelationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /type-relations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	relation, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, typerelation.ErrInvalidInput):
			h.logger.Warn("POST /type-relations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRelation)

		default:
			h.logger.Error("POST /type-relations - Failed to create relation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /type-relations - Relation created successfully: relation_id=%d, source=%d, target=%d, relation=%s",
		relation.ID, relation.SourceTypeID, relation.TargetTypeID, relation.Relation)
	handlers.RespondJSON(w, http.StatusCreated, relation)
}
