// Package memory provides in-memory implementations of the store interfaces.
//
// Collections are guarded by a read-write mutex, so concurrent handlers see
// a consistent view, and keep records in insertion order.
package memory
