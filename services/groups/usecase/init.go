package usecase

import (
	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/services/groups"
)

// GroupUC implements the group usecase
type GroupUC struct {
	cfg       *models.Config
	groupRepo groups.GroupRepo
}

// NewGroupUC creates a new group usecase
func NewGroupUC(cfg *models.Config, groupRepo groups.GroupRepo) *GroupUC {
	return &GroupUC{
		cfg:       cfg,
		groupRepo: groupRepo,
	}
}
