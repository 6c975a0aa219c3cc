// Package booking provides the Booking aggregate: a customer's reservation of
// one quoted rate.
//
// The package includes:
//   - Booking: the aggregate root holding identity, customer, shipment and the quoted rate
//   - Customer: a validated name and email address
//   - QuotedRate: the snapshot of the rate offered when the booking was made
//   - Status: the state machine of the booking lifecycle
//
// Key business rules:
//   - A booking always snapshots a priced MatchResult; later data reloads do not change it
//   - Status follows Created -> Confirmed, Created -> Cancelled and Confirmed -> Cancelled
//   - Cancelled is final
//   - Bookings left in Created longer than the configured TTL expire into Cancelled
package booking
