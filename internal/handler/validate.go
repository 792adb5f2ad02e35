package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erevald/fantasy-names/internal/model"
)

// Bounds on the requested name count. Requests above the cap are
// rejected before any query executes.
const (
	defaultCount = 1
	maxCount     = 50
)

// ValidationError describes a rejected request parameter. Handlers map
// it to an HTTP 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// parseRandomQuery normalizes the raw gender/count/origin parameters of
// a random-name request into a NameQuerySpec. Defaults: gender "any",
// count 1. Non-positive counts are rejected, not clamped. Origin is
// trimmed and passed through as an opaque value; the repository binds
// it as a parameter so no allow-list is needed here.
func parseRandomQuery(gender, count, origin string) (model.NameQuerySpec, error) {
	spec := model.NameQuerySpec{
		Gender: model.GenderAny,
		Count:  defaultCount,
		Origin: strings.TrimSpace(origin),
	}

	if g := strings.ToLower(strings.TrimSpace(gender)); g != "" {
		if g != model.GenderAny && !model.ValidGender(g) {
			return spec, &ValidationError{Field: "gender", Reason: "must be male, female, neutral or any"}
		}
		spec.Gender = g
	}

	if c := strings.TrimSpace(count); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil {
			return spec, &ValidationError{Field: "count", Reason: "must be an integer"}
		}
		if n < 1 {
			return spec, &ValidationError{Field: "count", Reason: "must be at least 1"}
		}
		if n > maxCount {
			return spec, &ValidationError{Field: "count", Reason: fmt.Sprintf("must not exceed %d", maxCount)}
		}
		spec.Count = n
	}

	return spec, nil
}
