package shared

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type personRequest struct {
	Name string `json:"name" validate:"required,max=5"`
	Age  int    `json:"age"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "test", "age": 30}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "test", "age": 30,}`,
			wantErr:     true,
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
			errContains: "EOF",
		},
		{
			name:        "unknown field",
			requestBody: `{"name": "test", "nickname": "t"}`,
			wantErr:     true,
			errContains: "unknown field",
		},
		{
			name:        "trailing data",
			requestBody: `{"name": "test"} {"name": "again"}`,
			wantErr:     true,
			errContains: "unexpected data",
		},
		{
			name:        "wrong type",
			requestBody: `{"name": 12}`,
			wantErr:     true,
			errContains: "cannot unmarshal",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))
			w := httptest.NewRecorder()

			var target personRequest
			err := DecodeJSON(w, req, &target)

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedBody)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, personRequest{Name: "test", Age: 30}, target)
		})
	}
}

func TestDecodeJSON_BodyTooLarge(t *testing.T) {
	body := `{"name": "` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	w := httptest.NewRecorder()

	var target personRequest
	err := DecodeJSON(w, req, &target)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedBody)

	var maxErr *http.MaxBytesError
	assert.False(t, errors.As(err, &maxErr), "decoder error is flattened into the message")
	assert.Contains(t, err.Error(), "too large")
}

// errorReader fails every read.
type errorReader struct{}

func (errorReader) Read(p []byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONWithReadError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", errorReader{})
	w := httptest.NewRecorder()

	var target personRequest
	err := DecodeJSON(w, req, &target)

	assert.ErrorIs(t, err, ErrMalformedBody)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

// selfValidating implements its own Validate method.
type selfValidating struct {
	Name string
}

func (v *selfValidating) Validate() error {
	if v.Name == "invalid" {
		return errors.New("name is invalid")
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	t.Run("self validating", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&selfValidating{Name: "ok"}))
		assert.Error(t, ValidateRequest(&selfValidating{Name: "invalid"}))
	})

	t.Run("struct tags", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&personRequest{Name: "ann"}))

		err := ValidateRequest(&personRequest{Name: "toolong"})
		var validationErrs validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
		require.Len(t, validationErrs, 1)
		assert.Equal(t, "name", validationErrs[0].Field(), "field uses its json name")
		assert.Equal(t, "max", validationErrs[0].Tag())
	})
}
