// Package domain models the legal status of retail alcohol sales in US
// counties.
//
// # Classification
//
// Every county carries one of three classifications, matching the three-tier
// scheme used by state Alcoholic Beverage Control (ABC) boards:
//
//	Dry    No legal retail alcohol sales anywhere in the county.
//	Moist  Partial restriction: wet municipalities inside a dry county,
//	       beer-only sales, distilled-spirits bans, and similar mixtures.
//	Wet    Unrestricted sales, subject only to ordinary state rules.
//
// Counties absent from the registry are Wet by default; only restricted
// counties need to be listed, which keeps the dataset reviewable. A fourth
// value, Unknown, exists only on the rendering side: it flags geometry
// features that cannot be resolved to a known county so that data-quality
// problems surface on the map instead of silently defaulting to Wet.
//
// # County identification
//
// Counties are keyed by their 5-digit FIPS code (the Census GEOID): a
// 2-digit state FIPS prefix followed by a 3-digit county code, e.g. "05059"
// is Hot Spring County, Arkansas. The checked-in dataset is authored by
// state and county name because that is how ABC boards publish their lists;
// explicit FIPS entries override name entries, which matters for counties
// that have been renamed (Oglala Lakota County, SD appears as "Shannon" in
// older Census boundary files).
//
// # Data sources
//
// The embedded dataset was compiled in February 2026 from state ABC boards
// and public records: Arkansas GIS Office / ABC Division, TABC wet/dry map,
// Kentucky ABC, Mississippi Dept of Revenue, Alabama ABC Board, Kansas Dept
// of Revenue, Tennessee ABC, and the Florida, Georgia, Virginia, and South
// Dakota state boards. Notable recent changes carried as overrides: Hot
// Spring County, AR voted wet in November 2022 and Throckmorton County, TX
// in November 2024; Kansas and Virginia have no dry counties left.
//
// The optional remote updater merges counties parsed from the Wikipedia
// "List of dry communities by U.S. state" page, last write wins per county.
// It is best-effort: any fetch or parse failure leaves the registry exactly
// as loaded.
package domain
