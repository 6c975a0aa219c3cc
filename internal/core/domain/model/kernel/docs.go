// Package kernel provides the shared value objects of the rate finder domain.
//
//   - UUID identifies bookings and other persisted aggregates.
//   - Weight is a validated package weight in kilograms together with the
//     0.5kg tier arithmetic used by carrier price sheets.
//
// Values are immutable and safe for concurrent use. Zero values are invalid
// and fail Validate; use the constructors.
package kernel
