package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/sarisari-api/internal/api/shared"
	"github.com/phrazzld/sarisari-api/internal/domain"
	"github.com/phrazzld/sarisari-api/internal/platform/logger"
	"github.com/phrazzld/sarisari-api/internal/store"
)

// SearchParam is the query parameter carrying the list filter.
const SearchParam = "q"

// ResourceHandler serves the CRUD endpoints of one entity kind.
type ResourceHandler[T any] struct {
	store  store.RecordStore[T]
	kind   domain.Kind
	logger *slog.Logger
}

// NewResourceHandler creates a handler over s. The entity kind is taken
// from the store.
func NewResourceHandler[T any](s store.RecordStore[T], logger *slog.Logger) *ResourceHandler[T] {
	if s == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	kind := s.Kind()
	return &ResourceHandler[T]{
		store:  s,
		kind:   kind,
		logger: logger.With(slog.String("component", kind.Name+"_handler")),
	}
}

// Kind returns the entity kind this handler serves.
func (h *ResourceHandler[T]) Kind() domain.Kind {
	return h.kind
}

// Routes mounts the handler on r. Reads go through optional, writes through
// required.
func (h *ResourceHandler[T]) Routes(r chi.Router, optional, required func(http.Handler) http.Handler) {
	r.Route(h.kind.Path, func(r chi.Router) {
		r.With(optional).Get("/", h.List)
		r.With(optional).Get("/{id}", h.Get)
		r.With(required).Post("/", h.Create)
		r.With(required).Put("/{id}", h.Update)
		r.With(required).Delete("/{id}", h.Delete)
	})
}

// List handles GET <path>?q=... requests.
func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	search := r.URL.Query().Get(SearchParam)

	records, err := h.store.List(r.Context(), store.ListQuery{Search: search})
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	if records == nil {
		records = []T{}
	}

	log.Debug("listed records",
		slog.String("kind", h.kind.Name),
		slog.Int("count", len(records)))
	shared.Respond(w, r, http.StatusOK, map[string]any{h.kind.Plural: records})
}

// Get handles GET <path>/{id} requests.
func (h *ResourceHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	record, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.Respond(w, r, http.StatusOK, record)
}

// Create handles POST <path> requests. The body is validated against the
// full field table; the stored record is returned with a Location header.
func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	values, messages := domain.Validate(h.kind, shared.DecodePayload(r), false)
	if len(messages) > 0 {
		log.Debug("create payload rejected",
			slog.String("kind", h.kind.Name),
			slog.Any("errors", messages))
		shared.RespondWithValidationErrors(w, r, messages)
		return
	}

	id, err := h.store.Create(r.Context(), values)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	record, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	log.Info("record created",
		slog.String("kind", h.kind.Name),
		slog.Int64("id", id))
	w.Header().Set("Location", fmt.Sprintf("%s/%d", h.kind.Path, id))
	shared.Respond(w, r, http.StatusCreated, record)
}

// Update handles PUT <path>/{id} requests. Only allow-listed fields present
// in the body are written.
func (h *ResourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	payload := h.kind.Filter(shared.DecodePayload(r))
	if len(payload) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgNoValidFields)
		return
	}

	values, messages := domain.Validate(h.kind, payload, true)
	if len(messages) > 0 {
		log.Debug("update payload rejected",
			slog.String("kind", h.kind.Name),
			slog.Int64("id", id),
			slog.Any("errors", messages))
		shared.RespondWithValidationErrors(w, r, messages)
		return
	}

	if err := h.store.Update(r.Context(), id, values); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	record, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	log.Info("record updated",
		slog.String("kind", h.kind.Name),
		slog.Int64("id", id),
		slog.Any("fields", values.Columns(h.kind)))
	shared.Respond(w, r, http.StatusOK, record)
}

// Delete handles DELETE <path>/{id} requests.
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("record deleted",
		slog.String("kind", h.kind.Name),
		slog.Int64("id", id))
	shared.Respond(w, r, http.StatusOK, shared.MessageResponse{Message: h.kind.DeletedMessage()})
}

// pathID parses the id path parameter. A malformed id can never match a
// record, so it is answered like a missing one.
func (h *ResourceHandler[T]) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, h.kind.NotFoundMessage(), err)
		return 0, false
	}
	return id, true
}

func (h *ResourceHandler[T]) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), kindErrorMessage(h.kind, err), err)
}
