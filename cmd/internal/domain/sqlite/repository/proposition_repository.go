package repository

import (
	"boycottwatch/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultPropositionRepository struct {
	db *gorm.DB
}

func NewPropositionRepository(db *gorm.DB) *DefaultPropositionRepository {
	return &DefaultPropositionRepository{db: db}
}

func (p *DefaultPropositionRepository) FindAll() ([]*entity.Proposition, error) {
	var propositions []*entity.Proposition
	err := p.db.
		Order("created_at DESC").
		Find(&propositions).Error
	if err != nil {
		return nil, err
	}
	return propositions, nil
}

func (p *DefaultPropositionRepository) FindByStatus(status entity.PropositionStatus) ([]*entity.Proposition, error) {
	var propositions []*entity.Proposition
	err := p.db.
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&propositions).Error
	if err != nil {
		return nil, err
	}
	return propositions, nil
}

// FindPublicDecisions returns decided propositions flagged for the public
// decisions page, most recently updated first.
func (p *DefaultPropositionRepository) FindPublicDecisions() ([]*entity.Proposition, error) {
	var propositions []*entity.Proposition
	err := p.db.
		Where("status <> ? AND is_public_decision = ?", entity.StatusPending, true).
		Order("updated_at DESC").
		Find(&propositions).Error
	if err != nil {
		return nil, err
	}
	return propositions, nil
}

func (p *DefaultPropositionRepository) FindByID(id int64) (*entity.Proposition, error) {
	var proposition entity.Proposition
	err := p.db.First(&proposition, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &proposition, nil
}

func (p *DefaultPropositionRepository) Save(proposition *entity.Proposition) error {
	return p.db.Save(proposition).Error
}
