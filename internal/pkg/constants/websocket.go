package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Chat room events
	EventJoinGroup       = "join-group"
	EventLeaveGroup      = "leave-group"
	EventUserJoined      = "user-joined"
	EventUserLeft        = "user-left"
	EventMessagesHistory = "messages-history"

	// Message events
	EventSendMessage       = "send-message"
	EventNewMessage        = "new-message"
	EventEditMessage       = "edit-message"
	EventMessageEdited     = "message-edited"
	EventTyping            = "typing"
	EventUserTyping        = "user-typing"
	EventMessageRead       = "message-read"
	EventMessageReadUpdate = "message-read-update"
	EventMarkAllRead       = "mark-all-read"
	EventUnreadCount       = "unread-count"

	// Ledger notifications pushed to group members
	EventTransactionCreated   = "transaction-created"
	EventTransactionCompleted = "transaction-completed"
	EventTransactionRejected  = "transaction-rejected"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorUnauthorized     = "unauthorized"
	ErrorNotMember        = "not_a_member"
	ErrorInternalError    = "internal_error"
)
