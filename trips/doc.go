// Package trips ingests delimited trip-record datasets and answers the two
// aggregate queries the reports are built from: busiest pickup zones by trip
// count, and busiest (zone, hour-of-day) slots.
//
// This package is organized into:
// - fields.go: comma-delimited field boundary resolution over raw lines
// - hour.go: hour-of-day extraction from loosely formatted date-time fields
// - layout.go: the supported record layout variants
// - analyzer.go: the ingestion session owning the aggregate tables
// - topk.go: deterministic top-k selection over the tables
//
// Parsing works on byte ranges into the scanned line rather than substrings,
// so the hot loop does not allocate per record.
package trips
