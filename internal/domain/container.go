package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Field limits for catalog entries.
const (
	MaxCodeLength   = 15
	MaxPackQuantity = 99999
	decimalPlaces   = 2

	// Bounds on a decimal's exponent and coefficient size. Values outside
	// them are rejected before any rounding or comparison, both of which
	// rescale by 10^|exponent|.
	minMeasureExponent = -18
	maxMeasureExponent = 10
	maxMeasureBits     = 128
)

var (
	minMeasure   = decimal.RequireFromString("0.01")
	maxDimension = decimal.RequireFromString("9999.99")
	maxWeight    = decimal.RequireFromString("99999.99")
)

// Container is a returnable shipping container definition keyed by ItemCode.
// Item codes are unique case-insensitively.
type Container struct {
	ItemCode        string
	PackingCode     string
	PrefixCode      string
	ContainerNumber *string
	AlternateID     *string
	OutsideLength   *decimal.Decimal
	OutsideWidth    *decimal.Decimal
	OutsideHeight   *decimal.Decimal
	CollapsedHeight *decimal.Decimal
	Weight          *decimal.Decimal
	PackQuantity    *int
	Version         int
	UpdatedAt       time.Time
}

// Snapshot returns the audited view of the container.
func (c *Container) Snapshot() *ContainerSnapshot {
	if c == nil {
		return nil
	}
	return &ContainerSnapshot{
		ItemCode:        c.ItemCode,
		PackingCode:     c.PackingCode,
		PrefixCode:      c.PrefixCode,
		ContainerNumber: c.ContainerNumber,
		OutsideLength:   c.OutsideLength,
		OutsideWidth:    c.OutsideWidth,
		OutsideHeight:   c.OutsideHeight,
		CollapsedHeight: c.CollapsedHeight,
		Weight:          c.Weight,
		PackQuantity:    c.PackQuantity,
		AlternateID:     c.AlternateID,
	}
}

// ContainerSnapshot is the structured copy of a Container stored in the
// old/new values of an audit entry.
type ContainerSnapshot struct {
	ItemCode        string           `json:"itemCode"`
	PackingCode     string           `json:"packingCode"`
	PrefixCode      string           `json:"prefixCode"`
	ContainerNumber *string          `json:"containerNumber"`
	OutsideLength   *decimal.Decimal `json:"outsideLength"`
	OutsideWidth    *decimal.Decimal `json:"outsideWidth"`
	OutsideHeight   *decimal.Decimal `json:"outsideHeight"`
	CollapsedHeight *decimal.Decimal `json:"collapsedHeight"`
	Weight          *decimal.Decimal `json:"weight"`
	PackQuantity    *int             `json:"packQuantity"`
	AlternateID     *string          `json:"alternateId"`
}

// ContainerInput is the raw, caller-supplied form of a Container.
// Version is the version the caller loaded; it is ignored on create.
type ContainerInput struct {
	ItemCode        string
	PackingCode     string
	PrefixCode      string
	ContainerNumber string
	AlternateID     string
	OutsideLength   *decimal.Decimal
	OutsideWidth    *decimal.Decimal
	OutsideHeight   *decimal.Decimal
	CollapsedHeight *decimal.Decimal
	Weight          *decimal.Decimal
	PackQuantity    *int
	Version         int
}

// Normalize returns a copy of the input with every canonicalization rule
// applied. It is idempotent.
func (in ContainerInput) Normalize() ContainerInput {
	out := in
	out.ItemCode = NormalizeItemCode(in.ItemCode)
	out.PackingCode = NormalizeField(in.PackingCode)
	out.PrefixCode = NormalizeField(in.PrefixCode)
	out.ContainerNumber = strings.TrimSpace(in.ContainerNumber)
	out.AlternateID = strings.TrimSpace(in.AlternateID)
	out.OutsideLength = roundMeasure(in.OutsideLength)
	out.OutsideWidth = roundMeasure(in.OutsideWidth)
	out.OutsideHeight = roundMeasure(in.OutsideHeight)
	out.CollapsedHeight = roundMeasure(in.CollapsedHeight)
	out.Weight = roundMeasure(in.Weight)
	return out
}

// Validate checks a normalized input and collects every field error.
func (in ContainerInput) Validate() error {
	var errs []FieldError

	switch {
	case in.ItemCode == "":
		errs = append(errs, FieldError{Field: "itemCode", Message: "required"})
	case utf8.RuneCountInString(in.ItemCode) > MaxCodeLength:
		errs = append(errs, FieldError{Field: "itemCode", Message: fmt.Sprintf("cannot exceed %d characters", MaxCodeLength)})
	case !ValidItemCode(in.ItemCode):
		errs = append(errs, FieldError{Field: "itemCode", Message: "must start with 3 uppercase letters and a hyphen, e.g. YPT-2415-07 or YPP-48x45"})
	}

	errs = checkCode(errs, "packingCode", in.PackingCode, true)
	errs = checkCode(errs, "prefixCode", in.PrefixCode, true)
	errs = checkCode(errs, "containerNumber", in.ContainerNumber, false)
	errs = checkCode(errs, "alternateId", in.AlternateID, false)
	if in.AlternateID != "" && !ValidAlternateID(in.AlternateID) {
		errs = append(errs, FieldError{Field: "alternateId", Message: "can only contain letters and numbers"})
	}

	errs = checkRange(errs, "outsideLength", in.OutsideLength, maxDimension)
	errs = checkRange(errs, "outsideWidth", in.OutsideWidth, maxDimension)
	errs = checkRange(errs, "outsideHeight", in.OutsideHeight, maxDimension)
	errs = checkRange(errs, "collapsedHeight", in.CollapsedHeight, maxDimension)
	errs = checkRange(errs, "weight", in.Weight, maxWeight)

	if in.PackQuantity != nil && (*in.PackQuantity < 1 || *in.PackQuantity > MaxPackQuantity) {
		errs = append(errs, FieldError{Field: "packQuantity", Message: fmt.Sprintf("must be between 1 and %d", MaxPackQuantity)})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ToContainer converts a normalized input into a Container. Empty optional
// strings become nil.
func (in ContainerInput) ToContainer() Container {
	return Container{
		ItemCode:        in.ItemCode,
		PackingCode:     in.PackingCode,
		PrefixCode:      in.PrefixCode,
		ContainerNumber: optionalString(in.ContainerNumber),
		AlternateID:     optionalString(in.AlternateID),
		OutsideLength:   in.OutsideLength,
		OutsideWidth:    in.OutsideWidth,
		OutsideHeight:   in.OutsideHeight,
		CollapsedHeight: in.CollapsedHeight,
		Weight:          in.Weight,
		PackQuantity:    in.PackQuantity,
		Version:         in.Version,
	}
}

func checkCode(errs []FieldError, field, v string, required bool) []FieldError {
	if v == "" {
		if required {
			return append(errs, FieldError{Field: field, Message: "required"})
		}
		return errs
	}
	if utf8.RuneCountInString(v) > MaxCodeLength {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("cannot exceed %d characters", MaxCodeLength)})
	}
	return errs
}

func checkRange(errs []FieldError, field string, v *decimal.Decimal, max decimal.Decimal) []FieldError {
	if v == nil {
		return errs
	}
	if !measurable(*v) || v.LessThan(minMeasure) || v.GreaterThan(max) {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("must be between %s and %s", minMeasure.StringFixed(decimalPlaces), max.StringFixed(decimalPlaces))})
	}
	return errs
}

// measurable reports whether d is small enough in scale and precision to
// be rounded and compared cheaply.
func measurable(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < minMeasureExponent || exp > maxMeasureExponent {
		return false
	}
	return d.Coefficient().BitLen() <= maxMeasureBits
}

// roundMeasure rounds d to the stored scale. Values that are not
// measurable are returned unchanged for Validate to reject.
func roundMeasure(d *decimal.Decimal) *decimal.Decimal {
	if d == nil || !measurable(*d) {
		return d
	}
	r := d.Round(decimalPlaces)
	return &r
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
