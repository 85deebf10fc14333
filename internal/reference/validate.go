package reference

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidCitation is the kind shared by every validation failure.
var ErrInvalidCitation = errors.New("invalid citation")

// ValidationError lists the required fields a citation is missing.
type ValidationError struct {
	ID     string   // ID of the offending citation, possibly empty
	Fields []string // JSON names of the missing fields, sorted
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing required field(s): %s", ErrInvalidCitation, strings.Join(e.Fields, ", "))
}

// Is makes errors.Is(err, ErrInvalidCitation) hold for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCitation
}

// Kind returns the stable error kind string.
func (e *ValidationError) Kind() string {
	return "invalid-citation"
}

// Validate checks that c carries an id, a title, a year and at least one
// author. It never modifies c.
func Validate(c Citation) error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Year, validation.Required),
		validation.Field(&c.Authors, validation.Required),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating citation: %w", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for name := range fieldErrs {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	return &ValidationError{ID: c.ID, Fields: fields}
}
