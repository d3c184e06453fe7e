package constants

// Redis key formats
const (
	// Geo set of breakdown locations for requests still in Pending status.
	// Members are request IDs; a request leaves the set on any transition
	// out of Pending.
	KeyPendingRequestsGeo = "requests:pending:geo"
)
