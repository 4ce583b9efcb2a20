package constants

// NATS Subjects
const (
	// Ledger events
	SubjectTransactionCreated   = "transaction.created"
	SubjectTransactionCompleted = "transaction.completed"
	SubjectTransactionRejected  = "transaction.rejected"

	// Chat events
	SubjectChatMessage = "chat.message"
	SubjectChatTyping  = "chat.typing"
	SubjectChatRead    = "chat.read"
)
