package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// StagedContainer is a raw row of the containers_stage import table.
// Every column is free text as it came out of the source spreadsheet.
type StagedContainer struct {
	ItemCode        *string
	PackingCode     *string
	PrefixCode      *string
	ContainerNumber *string
	OutsideLength   *string
	OutsideWidth    *string
	OutsideHeight   *string
	CollapsedHeight *string
	Weight          *string
	PackQuantity    *string
	AlternateID     *string
}

// ToInput parses the numeric columns and returns the row as a
// ContainerInput. Blank numeric cells become nil. Unparseable cells are
// reported together in a ValidationError.
func (s StagedContainer) ToInput() (ContainerInput, error) {
	var errs []FieldError

	in := ContainerInput{
		ItemCode:        deref(s.ItemCode),
		PackingCode:     deref(s.PackingCode),
		PrefixCode:      deref(s.PrefixCode),
		ContainerNumber: deref(s.ContainerNumber),
		AlternateID:     deref(s.AlternateID),
	}
	in.OutsideLength, errs = parseStagedDecimal(errs, "outsideLength", s.OutsideLength)
	in.OutsideWidth, errs = parseStagedDecimal(errs, "outsideWidth", s.OutsideWidth)
	in.OutsideHeight, errs = parseStagedDecimal(errs, "outsideHeight", s.OutsideHeight)
	in.CollapsedHeight, errs = parseStagedDecimal(errs, "collapsedHeight", s.CollapsedHeight)
	in.Weight, errs = parseStagedDecimal(errs, "weight", s.Weight)

	if v := strings.TrimSpace(deref(s.PackQuantity)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, FieldError{Field: "packQuantity", Message: "must be a whole number"})
		} else {
			in.PackQuantity = &n
		}
	}

	if len(errs) > 0 {
		return ContainerInput{}, NewValidationErrors(errs)
	}
	return in, nil
}

func parseStagedDecimal(errs []FieldError, field string, v *string) (*decimal.Decimal, []FieldError) {
	s := strings.TrimSpace(deref(v))
	if s == "" {
		return nil, errs
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, append(errs, FieldError{Field: field, Message: "must be a number"})
	}
	if !measurable(d) {
		return nil, append(errs, FieldError{Field: field, Message: "is out of range"})
	}
	return &d, errs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
