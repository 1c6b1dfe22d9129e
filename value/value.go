/*
Package value provides simple adjustments applied to numeric market values.

PURPOSE:

	Schedules often carry a value that steps over time - a notional that
	amortizes, a coupon that resets. A ValueAdjustment captures one such step
	as an immutable rule: replace the value, shift it, or scale it.

PRECISION:

	Uses decimal.Decimal throughout to avoid floating-point drift across
	repeated adjustments.
*/
package value

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// VALUE ADJUSTMENT - One step applied to a base value
// =============================================================================

// AdjustmentType selects how the modifying value is applied to the base.
type AdjustmentType string

const (
	// Absolute replaces the base with the modifying value.
	Absolute AdjustmentType = "absolute"

	// DeltaAmount adds the modifying value to the base.
	DeltaAmount AdjustmentType = "delta_amount"

	// DeltaMultiplier adds base*modifying to the base (a relative shift,
	// 0.1 means +10%).
	DeltaMultiplier AdjustmentType = "delta_multiplier"

	// Multiplier scales the base by the modifying value (1.1 means +10%).
	Multiplier AdjustmentType = "multiplier"
)

// ValueAdjustment is an immutable (type, modifying value) pair.
type ValueAdjustment struct {
	Type           AdjustmentType
	ModifyingValue decimal.Decimal
}

// Constructors
func OfAbsolute(v decimal.Decimal) ValueAdjustment {
	return ValueAdjustment{Type: Absolute, ModifyingValue: v}
}

func OfDeltaAmount(v decimal.Decimal) ValueAdjustment {
	return ValueAdjustment{Type: DeltaAmount, ModifyingValue: v}
}

func OfDeltaMultiplier(v decimal.Decimal) ValueAdjustment {
	return ValueAdjustment{Type: DeltaMultiplier, ModifyingValue: v}
}

func OfMultiplier(v decimal.Decimal) ValueAdjustment {
	return ValueAdjustment{Type: Multiplier, ModifyingValue: v}
}

// Adjust applies the adjustment to a base value.
func (va ValueAdjustment) Adjust(base decimal.Decimal) decimal.Decimal {
	switch va.Type {
	case Absolute:
		return va.ModifyingValue
	case DeltaAmount:
		return base.Add(va.ModifyingValue)
	case DeltaMultiplier:
		return base.Add(base.Mul(va.ModifyingValue))
	case Multiplier:
		return base.Mul(va.ModifyingValue)
	default:
		return base
	}
}

func (va ValueAdjustment) String() string {
	return fmt.Sprintf("ValueAdjustment[%s %s]", va.Type, va.ModifyingValue)
}
