package audittrail

import (
	"github.com/shopspring/decimal"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// ChangedFields lists the mutable attributes that differ between before and
// after, in a fixed order. The item code is not included; a rename is
// reported through the entry's notes.
func ChangedFields(before, after *domain.Container) []string {
	changed := []string{}
	if before == nil || after == nil {
		return changed
	}

	add := func(name string, differs bool) {
		if differs {
			changed = append(changed, name)
		}
	}

	add("packingCode", before.PackingCode != after.PackingCode)
	add("prefixCode", before.PrefixCode != after.PrefixCode)
	add("containerNumber", !equalString(before.ContainerNumber, after.ContainerNumber))
	add("outsideLength", !equalDecimal(before.OutsideLength, after.OutsideLength))
	add("outsideWidth", !equalDecimal(before.OutsideWidth, after.OutsideWidth))
	add("outsideHeight", !equalDecimal(before.OutsideHeight, after.OutsideHeight))
	add("collapsedHeight", !equalDecimal(before.CollapsedHeight, after.CollapsedHeight))
	add("weight", !equalDecimal(before.Weight, after.Weight))
	add("packQuantity", !equalInt(before.PackQuantity, after.PackQuantity))
	add("alternateId", !equalString(before.AlternateID, after.AlternateID))

	return changed
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// equalDecimal compares numerically, so 48 and 48.00 are equal.
func equalDecimal(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
