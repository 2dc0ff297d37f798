// Package listing holds the search domain: the filter criteria a caller can
// express, and the open-ended listing and history records the upstream
// service returns.
//
// Records are wide and loosely typed upstream. They are modeled as a set of
// known common fields plus an Extra map so that fields this package does not
// name are neither rejected nor lost. The Envelope keeps the raw upstream body
// as well, so pass-through callers never re-encode it.
package listing
