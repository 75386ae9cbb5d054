package repository

import (
	"boycottwatch/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultRelationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *DefaultRelationRepository {
	return &DefaultRelationRepository{db: db}
}

// FindBySourceID returns the outgoing edges of a beneficiary with the target
// beneficiaries (and their controversies) preloaded, one round-trip per
// visited node during chain resolution.
func (r *DefaultRelationRepository) FindBySourceID(beneficiaryID int) ([]*entity.BeneficiaryRelation, error) {
	var relations []*entity.BeneficiaryRelation
	err := r.db.
		Preload("Target").
		Preload("Target.Controversies").
		Preload("Target.Controversies.Category").
		Where("source_beneficiary_id = ?", beneficiaryID).
		Find(&relations).Error
	if err != nil {
		return nil, err
	}
	return relations, nil
}

func (r *DefaultRelationRepository) Save(relation *entity.BeneficiaryRelation) error {
	return r.db.Save(relation).Error
}
