package kernel

import (
	"errors"
	"math"

	"ratefinder/internal/pkg/errs"
	"ratefinder/internal/pkg/guard"
)

// TierStep is the increment, in kilograms, at which carriers publish prices.
const TierStep = 0.5

// tierEpsilon absorbs float noise from values such as 0.1+0.4.
const tierEpsilon = 1e-9

var ErrWeightIsNotConstructed = errors.New("Weight must be created via NewWeight")

// Weight is a package weight in kilograms. It is always positive and finite.
//
// Example:
//
//	w, err := kernel.NewWeight(2.2)
//	if err != nil {
//		return err // errs.ValueIsOutOfRangeError
//	}
//	w.Kilograms() // 2.2
type Weight struct {
	kg float64

	guard guard.ConstructorGuard
}

// NewWeight validates kg and returns a Weight.
func NewWeight(kg float64) (Weight, error) {
	w := Weight{}
	if err := errors.Join(w.setKilograms(kg)); err != nil {
		return Weight{}, err
	}
	w.guard = guard.NewConstructorGuard()

	return w, nil
}

// MustNewWeight panics on invalid input. Use it for constants and tests.
func MustNewWeight(kg float64) Weight {
	w, err := NewWeight(kg)
	if err != nil {
		panic(err)
	}
	return w
}

func (w *Weight) setKilograms(kg float64) error {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg <= 0 {
		return errs.NewValueIsOutOfRangeError("weight", kg, 0, "+Inf")
	}
	w.kg = kg
	return nil
}

func (w Weight) Kilograms() float64 {
	return w.kg
}

// Covers reports whether a price tier of tierKg kilograms covers this weight.
func (w Weight) Covers(tierKg float64) bool {
	return tierKg+tierEpsilon >= w.kg
}

// CeilTier rounds the weight up to the next TierStep boundary.
func (w Weight) CeilTier() float64 {
	steps := math.Ceil(w.kg/TierStep - tierEpsilon)
	return steps * TierStep
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// IsTier reports whether kg is a positive multiple of TierStep.
func IsTier(kg float64) bool {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg <= 0 {
		return false
	}
	steps := kg / TierStep
	return math.Abs(steps-math.Round(steps)) < tierEpsilon
}
