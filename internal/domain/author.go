package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest first or last name accepted, in characters.
const MaxNameLength = 255

// Author is a person who wrote something. ID is assigned by the store on
// creation and never changes afterwards.
type Author struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NewAuthor creates an Author that has not been stored yet (ID is zero).
// Names are trimmed before validation.
func NewAuthor(firstName, lastName string) (*Author, error) {
	author := &Author{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}

	if err := author.Validate(); err != nil {
		return nil, err
	}

	return author, nil
}

// Validate checks the name fields. It does not check ID, since a new
// author has none until it is stored.
func (a *Author) Validate() error {
	if err := validateName("first_name", a.FirstName, ErrEmptyFirstName); err != nil {
		return err
	}
	return validateName("last_name", a.LastName, ErrEmptyLastName)
}

// Rename replaces both names. It is a full replace: neither name is kept
// from the previous value. On error the author is left unchanged.
func (a *Author) Rename(firstName, lastName string) error {
	candidate := Author{
		ID:        a.ID,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	*a = candidate
	return nil
}

func validateName(field, value string, emptyErr error) error {
	if strings.TrimSpace(value) == "" {
		return newValidationError(field, emptyErr)
	}
	if !utf8.ValidString(value) || strings.ContainsRune(value, 0) {
		return newValidationError(field, ErrInvalidCharacters)
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		return newValidationError(field, ErrNameTooLong)
	}
	return nil
}
