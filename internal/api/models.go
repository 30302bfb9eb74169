package api

import "github.com/phrazzld/authors-api/internal/domain"

// CreateAuthorRequest defines the payload for POST /authors.
type CreateAuthorRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name"  validate:"required,max=255"`
}

// UpdateAuthorRequest defines the payload for PUT /authors/{author_id}.
// ID is accepted for compatibility with clients that echo the full record
// back; the ID in the path always wins.
type UpdateAuthorRequest struct {
	ID        *int64 `json:"id,omitempty"`
	FirstName string `json:"first_name"   validate:"required,max=255"`
	LastName  string `json:"last_name"    validate:"required,max=255"`
}

// AuthorResponse is the JSON representation of an author.
type AuthorResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func authorToResponse(a *domain.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

func authorsToResponse(authors []*domain.Author) []AuthorResponse {
	resp := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		resp = append(resp, authorToResponse(a))
	}
	return resp
}
