package repository

import (
	"boycottwatch/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultControversyRepository struct {
	db *gorm.DB
}

func NewControversyRepository(db *gorm.DB) *DefaultControversyRepository {
	return &DefaultControversyRepository{db: db}
}

func (c *DefaultControversyRepository) FindByBrandID(brandID int) ([]*entity.Controversy, error) {
	var controversies []*entity.Controversy
	err := c.db.
		Preload("Category").
		Where("brand_id = ?", brandID).
		Find(&controversies).Error
	if err != nil {
		return nil, err
	}
	return controversies, nil
}

func (c *DefaultControversyRepository) ExistsByPropositionID(propositionID int64) (bool, error) {
	var exists int
	err := c.db.
		Raw("SELECT EXISTS(SELECT 1 FROM controversies WHERE proposition_id = ?)", propositionID).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (c *DefaultControversyRepository) Save(controversy *entity.Controversy) error {
	return c.db.Save(controversy).Error
}
