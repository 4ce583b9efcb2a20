package nats

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/sahakarita/sahakarita/internal/pkg/constants"
	"github.com/sahakarita/sahakarita/internal/pkg/logger"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	natspkg "github.com/sahakarita/sahakarita/internal/pkg/nats"
	ws "github.com/sahakarita/sahakarita/internal/pkg/websocket"
)

// PushHandler fans NATS events out to connected websocket clients
type PushHandler struct {
	natsClient *natspkg.Client
	manager    *ws.Manager
	subs       []*nats.Subscription
}

// NewPushHandler creates a new NATS push handler
func NewPushHandler(natsClient *natspkg.Client, manager *ws.Manager) *PushHandler {
	return &PushHandler{
		natsClient: natsClient,
		manager:    manager,
	}
}

// Start subscribes to chat and ledger subjects
func (h *PushHandler) Start() error {
	subjects := map[string]nats.MsgHandler{
		constants.SubjectChatMessage:          h.handleChatEvent,
		constants.SubjectChatTyping:           h.handleChatEvent,
		constants.SubjectChatRead:             h.handleChatEvent,
		constants.SubjectTransactionCreated:   h.transactionHandler(constants.EventTransactionCreated),
		constants.SubjectTransactionCompleted: h.transactionHandler(constants.EventTransactionCompleted),
		constants.SubjectTransactionRejected:  h.transactionHandler(constants.EventTransactionRejected),
	}

	for subject, handler := range subjects {
		sub, err := h.natsClient.Subscribe(subject, handler)
		if err != nil {
			return err
		}
		h.subs = append(h.subs, sub)
	}

	return nil
}

// Stop drains the subscriptions
func (h *PushHandler) Stop() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
	h.subs = nil
}

func (h *PushHandler) handleChatEvent(msg *nats.Msg) {
	var event models.ChatEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Dropping malformed chat event",
			logger.String("subject", msg.Subject),
			logger.Err(err))
		return
	}

	// The author already saw the message over their own socket.
	h.manager.BroadcastToRoom(event.GroupID.String(), event.Event, event, event.UserID.String())
}

func (h *PushHandler) transactionHandler(wsEvent string) nats.MsgHandler {
	return func(msg *nats.Msg) {
		var event models.TransactionEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Dropping malformed transaction event",
				logger.String("subject", msg.Subject),
				logger.Err(err))
			return
		}

		h.manager.BroadcastToRoom(event.GroupID.String(), wsEvent, event)
	}
}
