package nats

import (
	"encoding/json"
	"fmt"

	"github.com/sahakarita/sahakarita/internal/pkg/constants"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	natspkg "github.com/sahakarita/sahakarita/internal/pkg/nats"
)

// TransactionGW publishes ledger lifecycle events over NATS
type TransactionGW struct {
	natsClient *natspkg.Client
}

// NewTransactionGW creates a new transaction gateway
func NewTransactionGW(natsClient *natspkg.Client) *TransactionGW {
	return &TransactionGW{
		natsClient: natsClient,
	}
}

func (g *TransactionGW) publish(subject string, event *models.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction event: %w", err)
	}
	return g.natsClient.Publish(subject, data)
}

// PublishTransactionCreated announces a newly recorded transaction
func (g *TransactionGW) PublishTransactionCreated(event *models.TransactionEvent) error {
	return g.publish(constants.SubjectTransactionCreated, event)
}

// PublishTransactionCompleted announces a settled transaction
func (g *TransactionGW) PublishTransactionCompleted(event *models.TransactionEvent) error {
	return g.publish(constants.SubjectTransactionCompleted, event)
}

// PublishTransactionRejected announces a rejected transaction
func (g *TransactionGW) PublishTransactionRejected(event *models.TransactionEvent) error {
	return g.publish(constants.SubjectTransactionRejected, event)
}
