package rate

import (
	"errors"
	"fmt"
	"strings"

	"ratefinder/internal/core/domain/model/country"
	"ratefinder/internal/core/domain/model/kernel"
	"ratefinder/internal/pkg/errs"
	"ratefinder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used by price sheets that do not state one.
const DefaultCurrency = "INR"

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry")

// Entry is one published price. Entries are immutable.
//
// Invariants:
//   - carrier, key and service type are not blank
//   - the weight tier is a positive multiple of 0.5kg
//   - the currency is a three letter code
//
// A rate of zero or below is accepted; such entries are placeholders in the
// source sheets and end up in Quote.Unpriced.
type Entry struct {
	carrier     string
	key         string
	serviceType string
	tier        float64
	rate        decimal.Decimal
	currency    string
	perKg       bool

	guard guard.ConstructorGuard
}

// NewEntry validates and creates an Entry. The key is folded.
//
// Parameters:
//   - carrier: display name of the carrier, e.g. "FedEx"
//   - key: country, sub-region or zone key of the listing
//   - serviceType: e.g. "Express" or "Non-Document"
//   - tierKg: weight breakpoint in kilograms
//   - rate: price for the tier, or per kilogram when perKg is set
//   - currency: ISO code, DefaultCurrency when blank
//
// Example:
//
//	e, err := rate.NewEntry("DHL", "ZONE 7", "Express", 2.5, decimal.NewFromInt(950), "INR", false)
func NewEntry(carrier, key, serviceType string, tierKg float64, rate decimal.Decimal, currency string, perKg bool) (Entry, error) {
	e := Entry{
		rate:  rate,
		perKg: perKg,
	}
	if err := errors.Join(
		e.setCarrier(carrier),
		e.setKey(key),
		e.setServiceType(serviceType),
		e.setTier(tierKg),
		e.setCurrency(currency),
	); err != nil {
		return Entry{}, err
	}
	e.guard = guard.NewConstructorGuard()

	return e, nil
}

func (e *Entry) setCarrier(carrier string) error {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	e.carrier = carrier
	return nil
}

func (e *Entry) setKey(key string) error {
	folded := country.Fold(key)
	if folded == "" {
		return errs.NewValueIsRequiredError("listing key")
	}
	e.key = folded
	return nil
}

func (e *Entry) setServiceType(serviceType string) error {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return errs.NewValueIsRequiredError("service type")
	}
	e.serviceType = serviceType
	return nil
}

func (e *Entry) setTier(tierKg float64) error {
	if !kernel.IsTier(tierKg) {
		return errs.NewValueIsInvalidErrorWithCause("weight tier",
			fmt.Errorf("%v is not a positive multiple of %vkg", tierKg, kernel.TierStep))
	}
	e.tier = tierKg
	return nil
}

func (e *Entry) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if len(currency) != 3 {
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not a three letter code", currency))
	}
	e.currency = currency
	return nil
}

func (e Entry) Carrier() string       { return e.carrier }
func (e Entry) Key() string           { return e.key }
func (e Entry) ServiceType() string   { return e.serviceType }
func (e Entry) Tier() float64         { return e.tier }
func (e Entry) Rate() decimal.Decimal { return e.rate }
func (e Entry) Currency() string      { return e.currency }
func (e Entry) PerKg() bool           { return e.perKg }

// IsPriced reports whether the entry carries a positive price.
func (e Entry) IsPriced() bool {
	return e.rate.IsPositive()
}

// FinalRate is the amount charged for weight w under this entry: the rate
// itself, or rate times weight rounded to two decimals for per-kg entries.
func (e Entry) FinalRate(w kernel.Weight) decimal.Decimal {
	if !e.perKg {
		return e.rate
	}
	return e.rate.Mul(decimal.NewFromFloat(w.Kilograms())).Round(2)
}

// Calculation describes how FinalRate was derived, e.g. "₹950 for 2.5kg tier"
// or "₹21/kg × 7.5kg = ₹157.50".
func (e Entry) Calculation(w kernel.Weight) string {
	symbol := currencySymbol(e.currency)
	if e.perKg {
		return fmt.Sprintf("%s%s/kg × %skg = %s%s", symbol, e.rate.String(), formatKg(w.Kilograms()),
			symbol, e.FinalRate(w).StringFixed(2))
	}
	return fmt.Sprintf("%s%s for %skg tier", symbol, e.rate.String(), formatKg(e.tier))
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func currencySymbol(code string) string {
	switch code {
	case "INR":
		return "₹"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}

func formatKg(kg float64) string {
	return decimal.NewFromFloat(kg).String()
}
