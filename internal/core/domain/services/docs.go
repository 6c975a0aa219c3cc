// Package services provides the domain services of the rate finder. Each
// request passes through them in order:
//
//   - CountryNormalizer: free-text destination to canonical country name
//   - ZoneResolver: canonical country to the zone of every zoned carrier
//   - TierMatcher: requested weight to the covering price tier of a listing
//   - RateFinder: runs the pipeline across every carrier, removes duplicate
//     results and ranks them by price
//
// All services are read-only after construction and safe for concurrent use.
package services
