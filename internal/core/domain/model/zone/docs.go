// Package zone models carrier zone schemes and the per-carrier tables that
// assign destination countries to zones.
//
// Each carrier prices some destinations by zone instead of by country, and
// each writes its zones differently. A Scheme turns the many spellings found
// in price sheets ("ZONE I", "ZONEI", "ZI", "Zone-3", "3", "III") into one
// canonical token, and Key turns a token into the rate table key "ZONE <token>".
//
// Supported schemes:
//   - Letter: FedEx style zones A to Q
//   - Numeric: DHL style zones 1 to 14, roman numerals accepted
//   - Alphanumeric: UPS and any other carrier, tokens such as "6" or "1A"
package zone
