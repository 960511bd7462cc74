// Package service holds the operations the HTTP API and the CLI call.
//
// Every collection gets the same five operations: List, Get, Create,
// Update and Delete. Get and Update return a nil record for an unknown id
// and Delete returns false; none of them treat a missing record as an error.
// Create always assigns a fresh id and creation time.
//
// Inputs are validated before any repository call. Each mutation is
// audited and drops the affected query cache keys.
//
// Rights holders have their own service, which adds media association
// management, cost aggregation and form reconciliation.
package service
