package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/authors-api/internal/api/shared"
	"github.com/phrazzld/authors-api/internal/platform/logger"
	"github.com/phrazzld/authors-api/internal/service"
)

// AuthorHandler handles author-related HTTP requests
type AuthorHandler struct {
	authorService service.AuthorService
	logger        *slog.Logger
}

// NewAuthorHandler creates a new AuthorHandler
func NewAuthorHandler(authorService service.AuthorService, logger *slog.Logger) *AuthorHandler {
	if authorService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("authorService cannot be nil for AuthorHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthorHandler")
	}

	return &AuthorHandler{
		authorService: authorService,
		logger:        logger.With(slog.String("component", "author_handler")),
	}
}

// ListAuthors handles GET /authors requests
func (h *AuthorHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.authorService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authorsToResponse(authors))
}

// GetAuthor handles GET /authors/{author_id} requests
func (h *AuthorHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, AuthorIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	author, err := h.authorService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authorToResponse(author))
}

// CreateAuthor handles POST /authors requests
func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateAuthorRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	author, err := h.authorService.Create(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("author created via API", slog.Int64("author_id", author.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, authorToResponse(author))
}

// UpdateAuthor handles PUT /authors/{author_id} requests.
// Both names are replaced; an id in the body is ignored.
func (h *AuthorHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, AuthorIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateAuthorRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.ID != nil && *req.ID != id {
		log.Debug("ignoring mismatched id in update body",
			slog.Int64("path_id", id),
			slog.Int64("body_id", *req.ID))
	}

	author, err := h.authorService.Update(r.Context(), id, req.FirstName, req.LastName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authorToResponse(author))
}

// DeleteAuthor handles DELETE /authors/{author_id} requests and returns
// the deleted author.
func (h *AuthorHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, AuthorIDParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	author, err := h.authorService.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authorToResponse(author))
}
