package constants

// NSQ topics
const (
	// Published when a customer opens a new service request
	TopicRequestCreated = "rescue.request.created"

	// Published on every request lifecycle transition after creation
	TopicRequestStatus = "rescue.request.status"
)
