// Package rate holds the carrier price data and the values produced when a
// request is priced against it.
//
//   - Entry: one published price for a carrier, listing key, service and weight tier
//   - Dataset: the entries, zone tables and aliases loaded at startup
//   - Table: the index from (carrier, listing key) to entries sorted by tier,
//     with a read-through cache of the listings that serve a country
//   - MatchResult and Quote: the priced outcome of one request
//
// A listing key is either a canonical country name ("GERMANY"), a sub-region
// of one ("AUSTRALIA METRO") or a zone key ("ZONE F").
package rate
