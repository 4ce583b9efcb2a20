package chat

import (
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/sahakarita/sahakarita/services/chat ChatGW

// ChatGW publishes chat events to the message broker
type ChatGW interface {
	PublishChatMessage(event *models.ChatEvent) error
	PublishTyping(event *models.ChatEvent) error
	PublishRead(event *models.ChatEvent) error
}
