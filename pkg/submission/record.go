package submission

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Value is one accepted field value keyed by its derived input name.
type Value struct {
	Name  string
	Value any
}

// Record associates a set of accepted field values with a form and a
// submitter. Persistence is the caller's concern; this package only shapes
// the record.
type Record struct {
	ID          string
	FormID      string
	SubmitterID string
	Values      []Value
	SubmittedAt time.Time
}

// NewRecord validates the identifiers and stamps the record with a fresh id
// and the current time.
func NewRecord(formID, submitterID string, values []Value) (Record, error) {
	if strings.TrimSpace(formID) == "" {
		return Record{}, errors.New("submission: form id is required")
	}
	if strings.TrimSpace(submitterID) == "" {
		return Record{}, errors.New("submission: submitter id is required")
	}
	return Record{
		ID:          uuid.NewString(),
		FormID:      formID,
		SubmitterID: submitterID,
		Values:      append([]Value(nil), values...),
		SubmittedAt: time.Now().UTC(),
	}, nil
}

// FormatValue flattens a submitted value for display in a rendered document:
// slices join with commas, scalars print plainly, nil renders empty.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
