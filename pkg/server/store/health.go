package store

// HealthStore provides health check operations
type HealthStore interface {
	// CheckConnectivity verifies the backing store is reachable
	CheckConnectivity() error
}
