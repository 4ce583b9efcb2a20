package nats

import (
	"encoding/json"
	"fmt"

	"github.com/sahakarita/sahakarita/internal/pkg/constants"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	natspkg "github.com/sahakarita/sahakarita/internal/pkg/nats"
)

// ChatGW publishes chat events over NATS
type ChatGW struct {
	natsClient *natspkg.Client
}

// NewChatGW creates a new chat gateway
func NewChatGW(natsClient *natspkg.Client) *ChatGW {
	return &ChatGW{
		natsClient: natsClient,
	}
}

func (g *ChatGW) publish(subject string, event *models.ChatEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal chat event: %w", err)
	}
	return g.natsClient.Publish(subject, data)
}

// PublishChatMessage announces a new or edited message
func (g *ChatGW) PublishChatMessage(event *models.ChatEvent) error {
	return g.publish(constants.SubjectChatMessage, event)
}

// PublishTyping announces typing activity
func (g *ChatGW) PublishTyping(event *models.ChatEvent) error {
	return g.publish(constants.SubjectChatTyping, event)
}

// PublishRead announces a read marker update
func (g *ChatGW) PublishRead(event *models.ChatEvent) error {
	return g.publish(constants.SubjectChatRead, event)
}
