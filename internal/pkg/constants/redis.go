package constants

// Redis key formats
const (
	// Chat presence
	KeyGroupPresence = "chat:presence:%s" // Format: chat:presence:{group_id}, set of online user IDs
	KeyUserSession   = "user:session:%s"  // Format: user:session:{user_id}
)
