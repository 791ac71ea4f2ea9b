package http

import (
	"fmt"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
)

// DecodeJSON reads the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return apperrors.InvalidInput("Request body is empty")
		}
		return apperrors.InvalidInput(fmt.Sprintf("Invalid JSON: %v", err))
	}
	return nil
}

// PathID parses a positive integer path parameter.
func PathID(ps httprouter.Params, name string) (int64, error) {
	raw := ps.ByName(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.Validation("Invalid path parameter", map[string]any{
			name: fmt.Sprintf("must be a positive integer, got %q", raw),
		})
	}
	return id, nil
}

// QueryDate parses a YYYY-MM-DD query parameter. Missing values yield the
// zero time and are left to request validation.
func QueryDate(r *http.Request, name string, problems map[string]any) time.Time {
	return ParseDate(name, r.URL.Query().Get(name), problems)
}

// ParseDate parses raw as YYYY-MM-DD, recording a problem under field when
// it is malformed. Empty input yields the zero time.
func ParseDate(field, raw string, problems map[string]any) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := model.ParseDate(raw)
	if err != nil {
		problems[field] = "must be a date in YYYY-MM-DD format"
		return time.Time{}
	}
	return t
}

// QueryInt parses an integer query parameter. Missing values yield 0.
func QueryInt(r *http.Request, name string, problems map[string]any) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		problems[name] = "must be an integer"
		return 0
	}
	return n
}
