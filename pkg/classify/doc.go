// Package classify decides which files are transferred and where they go.
//
// Each filename is resolved to a release.ReleaseInfo and checked against a
// FilterRule. Admitted files are grouped into a Plan keyed by destination
// path, which is the remote base joined with the special category when there
// is one, otherwise with the region.
//
// # Filters
//
// The special filter looks at ReleaseInfo.ExtraInfo:
//
//   - any tag containing an exclude entry rejects the file
//   - a non-empty include list admits only files with a tag containing an entry
//
// The region filter looks at ReleaseInfo.RegionFull:
//
//   - containing an exclude entry rejects the file
//   - a non-empty include list admits only regions containing an entry of the
//     list or of AlwaysAllowedRegions
//
// All comparisons are case-sensitive substring checks. A file is transferred
// only when both filters admit it.
//
// # Ordering
//
// Destinations keep the order in which they were first seen and files keep
// input order within a destination, so classifying the same input twice
// yields identical plans.
package classify
