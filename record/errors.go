package record

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrMalformedFrontMatter = errors.New("record: malformed front matter")
	ErrMissingRequiredField = errors.New("record: missing required field")
	ErrInvalidTimestamp     = errors.New("record: invalid timestamp")
	ErrSlugRequired         = errors.New("record: slug is required")
	ErrSlugInvalid          = errors.New("record: slug contains invalid characters")
	ErrSlugExists           = errors.New("record: slug already exists")
	ErrPostNotFound         = errors.New("record: post not found")
	ErrPostIDRequired       = errors.New("record: post id required")
	ErrCustomFieldsInvalid  = errors.New("record: custom fields failed schema validation")
)

// Text codes attached when record failures cross a command boundary.
const (
	CodeMalformedFrontMatter = "MALFORMED_FRONT_MATTER"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeInvalidTimestamp     = "INVALID_TIMESTAMP"
)

// MissingFieldError reports an absent required front matter field.
type MissingFieldError struct {
	Field string
	Path  string
}

func (e *MissingFieldError) Error() string {
	if e == nil {
		return ErrMissingRequiredField.Error()
	}
	field := strings.TrimSpace(e.Field)
	if field == "" {
		return ErrMissingRequiredField.Error()
	}
	if path := strings.TrimSpace(e.Path); path != "" {
		return fmt.Sprintf("%s: field=%s path=%s", ErrMissingRequiredField.Error(), field, path)
	}
	return fmt.Sprintf("%s: field=%s", ErrMissingRequiredField.Error(), field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingRequiredField
}

// TimestampError reports an unparseable timestamp or an ordering violation
// between date and lastmod.
type TimestampError struct {
	Field  string
	Value  string
	Reason string
	Path   string
}

func (e *TimestampError) Error() string {
	if e == nil {
		return ErrInvalidTimestamp.Error()
	}
	parts := []string{ErrInvalidTimestamp.Error()}
	if field := strings.TrimSpace(e.Field); field != "" {
		parts = append(parts, "field="+field)
	}
	if reason := strings.TrimSpace(e.Reason); reason != "" {
		parts = append(parts, reason)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + ": " + strings.Join(parts[1:], " ")
}

func (e *TimestampError) Unwrap() error {
	return ErrInvalidTimestamp
}

// MalformedFrontMatterError wraps decoder failures for a source document.
type MalformedFrontMatterError struct {
	Path  string
	Cause error
}

func (e *MalformedFrontMatterError) Error() string {
	if e == nil {
		return ErrMalformedFrontMatter.Error()
	}
	msg := ErrMalformedFrontMatter.Error()
	if path := strings.TrimSpace(e.Path); path != "" {
		msg = fmt.Sprintf("%s: path=%s", msg, path)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *MalformedFrontMatterError) Unwrap() error {
	return ErrMalformedFrontMatter
}

// NotFoundError surfaces catalogue lookups that matched nothing.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrPostNotFound.Error()
	}
	if key := strings.TrimSpace(e.Key); key != "" {
		return fmt.Sprintf("%s: %s=%s", ErrPostNotFound.Error(), e.Resource, key)
	}
	return ErrPostNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrPostNotFound
}

// Categorize wraps a record validation failure with the go-errors category and
// text code expected at command boundaries. Unknown errors pass through.
func Categorize(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, ErrMalformedFrontMatter):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "front matter is not well-formed").
			WithTextCode(CodeMalformedFrontMatter)
	case errors.Is(err, ErrMissingRequiredField):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "required front matter field is missing").
			WithTextCode(CodeMissingRequiredField)
	case errors.Is(err, ErrInvalidTimestamp):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "front matter timestamp is invalid").
			WithTextCode(CodeInvalidTimestamp)
	default:
		return err
	}
}
