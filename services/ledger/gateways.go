package ledger

import (
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/sahakarita/sahakarita/services/ledger TransactionGW

// TransactionGW publishes ledger lifecycle events to the message broker
type TransactionGW interface {
	PublishTransactionCreated(event *models.TransactionEvent) error
	PublishTransactionCompleted(event *models.TransactionEvent) error
	PublishTransactionRejected(event *models.TransactionEvent) error
}
