package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pessoas/internal/person/models"
	"pessoas/internal/person/service"
	id "pessoas/pkg/domain"
	dErrors "pessoas/pkg/domain-errors"
	"pessoas/pkg/platform/httputil"
	request "pessoas/pkg/platform/middleware/request"
)

// Service defines the registry operations the handler depends on.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Create(ctx context.Context, cmd service.CreateCommand) (*models.Person, error)
	FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error)
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, term string) ([]*models.Person, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/pessoas", h.HandleSearch)
	r.Get("/pessoas/{id}", h.HandleFind)
	r.Post("/pessoas", h.HandleCreate)
	r.Get("/contagem-pessoas", h.HandleCount)
}

// HandleCreate registers a person and answers with the stored record and
// its location.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreatePersonRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	person, err := h.service.Create(ctx, req.ToCommand())
	if err != nil {
		h.logFailure(ctx, "create person failed", err, requestID)
		httputil.WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/pessoas/"+person.ID().String())
	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(person))
}

// HandleFind returns one person. Ids that do not parse cannot belong to any
// stored person and are answered like unknown ids.
func (h *Handler) HandleFind(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	personID, err := id.ParsePersonID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "person not found"))
		return
	}

	person, err := h.service.FindByID(ctx, personID)
	if err != nil {
		h.logFailure(ctx, "find person failed", err, requestID, "person_id", personID.String())
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPersonResponse(person))
}

// HandleSearch answers GET /pessoas?t=term.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	persons, err := h.service.Search(ctx, r.URL.Query().Get("t"))
	if err != nil {
		h.logFailure(ctx, "search persons failed", err, requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPersonResponses(persons))
}

// HandleCount answers with the number of registered persons as a bare JSON integer.
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	n, err := h.service.Count(ctx)
	if err != nil {
		h.logFailure(ctx, "count persons failed", err, requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, n)
}

// logFailure logs client errors at warn and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, requestID string, attrs ...any) {
	args := append([]any{"error", err, "request_id", requestID}, attrs...)
	if dErrors.HasCode(err, dErrors.CodeValidation) || dErrors.HasCode(err, dErrors.CodeNotFound) {
		h.logger.WarnContext(ctx, msg, args...)
		return
	}
	h.logger.ErrorContext(ctx, msg, args...)
}
