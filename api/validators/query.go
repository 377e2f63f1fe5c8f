package validators

import (
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/dmoreira/workshop-backend/pkg/errors"
)

const queryDateLayout = "2006-01-02"

// ParseQueryDate reads a required YYYY-MM-DD query parameter.
func ParseQueryDate(r *http.Request, key string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "Invalid date format. Use YYYY-MM-DD").
			WithDetails(map[string]any{"field": key})
	}
	value, err := time.Parse(queryDateLayout, raw)
	if err != nil {
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid date format. Use YYYY-MM-DD").
			WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
