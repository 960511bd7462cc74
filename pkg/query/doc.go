// Package query caches read results by key and drops them on mutation.
//
// Keys are slash separated paths such as "rights-holders/artwork/<id>".
// Invalidating a prefix drops the key itself and every key below it, so a
// mutation of a rights holder can clear "rights-holders" without touching
// "rights-holders-archive".
//
// Values are stored JSON encoded, which lets the same Client run on top of
// an in-process map or a shared Redis instance. A load that overlaps an
// Invalidate is returned to its caller but not cached.
package query
