// Package store provides storage abstractions for the artrights server.
//
// This package defines the generic Repository interface used for every
// entity collection, allowing services to be decoupled from the concrete
// backend. Two implementations exist:
//
//   - store/memory: insertion-ordered in-memory collections, used for demos
//     and tests
//   - store/gorm: PostgreSQL tables accessed through GORM
//
// # Usage
//
//	stores := memory.NewStores(0)
//	artwork, err := stores.Artworks.Get(ctx, "a1")
//	if artwork == nil {
//	    // not found
//	}
package store
