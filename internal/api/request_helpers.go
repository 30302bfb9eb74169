package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/authors-api/internal/domain"
	"github.com/phrazzld/authors-api/internal/store"
)

// AuthorIDParam is the chi URL parameter holding the author ID.
const AuthorIDParam = "author_id"

// getPathID extracts a base-10 integer ID from the URL path parameters.
// Values that are not all digits yield an error matching
// domain.ErrInvalidID. Digit strings no author can have (zero, or beyond
// int64) yield store.ErrAuthorNotFound.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, fmt.Errorf("%w: %s %q is not an integer", domain.ErrInvalidID, paramName, raw)
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s %q", store.ErrAuthorNotFound, paramName, raw)
	}

	return id, nil
}
