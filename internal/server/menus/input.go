package menus

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tastehub/menuapi/internal/common"
	"github.com/tastehub/menuapi/internal/server/models"
)

// MenuInput carries the client-writable fields of a menu. Pointer fields
// distinguish "absent" from "zero" so the same type serves create, full
// update, and partial update. Owner, id, and creation timestamp are not
// representable here: whatever a payload carries for them is dropped before
// it reaches this type.
type MenuInput struct {
	Title       *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Description *string
}

// ValidationError reports per-field validation failures. It unwraps to
// common.ErrorValidation so callers can match it with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

// Validate checks the input. With partial set, absent fields are permitted
// and only the present ones are checked; otherwise title, time_minutes and
// price are all required.
func (in *MenuInput) Validate(partial bool) error {
	fields := map[string]string{}

	if in.Title == nil {
		if !partial {
			fields["title"] = "this field is required"
		}
	} else if strings.TrimSpace(*in.Title) == "" {
		fields["title"] = "must not be blank"
	}

	if in.TimeMinutes == nil {
		if !partial {
			fields["time_minutes"] = "this field is required"
		}
	} else if *in.TimeMinutes < 0 {
		fields["time_minutes"] = "must not be negative"
	}

	if in.Price == nil {
		if !partial {
			fields["price"] = "this field is required"
		}
	} else if in.Price.IsNegative() {
		fields["price"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// apply copies present fields onto the record. With partial set, absent
// fields keep their stored values; otherwise description falls back to its
// empty default the way the required fields were validated as present.
func (in *MenuInput) apply(m *models.Menu, partial bool) {
	if in.Title != nil {
		m.Title = strings.TrimSpace(*in.Title)
	}
	if in.TimeMinutes != nil {
		m.TimeMinutes = *in.TimeMinutes
	}
	if in.Price != nil {
		m.Price = *in.Price
	}
	if in.Description != nil {
		m.Description = *in.Description
	} else if !partial {
		m.Description = ""
	}
}
