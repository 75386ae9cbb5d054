package repository

import (
	"boycottwatch/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultBrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *DefaultBrandRepository {
	return &DefaultBrandRepository{db: db}
}

func (b *DefaultBrandRepository) FindAll() ([]*entity.Brand, error) {
	var brands []*entity.Brand
	err := b.db.
		Preload("Controversies").
		Preload("Controversies.Category").
		Preload("BeneficiaryLinks").
		Preload("BeneficiaryLinks.Beneficiary").
		Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (b *DefaultBrandRepository) FindByID(id int) (*entity.Brand, error) {
	var brand entity.Brand
	err := b.db.
		Preload("Controversies").
		Preload("Controversies.Category").
		Preload("BeneficiaryLinks").
		Preload("BeneficiaryLinks.Beneficiary").
		Preload("BeneficiaryLinks.Beneficiary.Controversies").
		Preload("BeneficiaryLinks.Beneficiary.Controversies.Category").
		First(&brand, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// FindByNameCI matches a brand by exact name, case-insensitively.
func (b *DefaultBrandRepository) FindByNameCI(name string) (*entity.Brand, error) {
	var brand entity.Brand
	err := b.db.
		Where("name = ? COLLATE NOCASE", name).
		First(&brand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (b *DefaultBrandRepository) Save(brand *entity.Brand) error {
	return b.db.Save(brand).Error
}
