package repository

import (
	"boycottwatch/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultBeneficiaryRepository struct {
	db *gorm.DB
}

func NewBeneficiaryRepository(db *gorm.DB) *DefaultBeneficiaryRepository {
	return &DefaultBeneficiaryRepository{db: db}
}

func (b *DefaultBeneficiaryRepository) FindAll() ([]*entity.Beneficiary, error) {
	var beneficiaries []*entity.Beneficiary
	err := b.db.
		Preload("Controversies").
		Preload("Controversies.Category").
		Find(&beneficiaries).Error
	if err != nil {
		return nil, err
	}
	return beneficiaries, nil
}

func (b *DefaultBeneficiaryRepository) FindByID(id int) (*entity.Beneficiary, error) {
	var beneficiary entity.Beneficiary
	err := b.db.
		Preload("Controversies").
		Preload("Controversies.Category").
		First(&beneficiary, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &beneficiary, nil
}

func (b *DefaultBeneficiaryRepository) Save(beneficiary *entity.Beneficiary) error {
	return b.db.Save(beneficiary).Error
}

// FindLinksByBrandID returns the brand's direct beneficiary links with the
// beneficiaries (and their controversies) preloaded. These are the level-0
// seeds of the ownership chain.
func (b *DefaultBeneficiaryRepository) FindLinksByBrandID(brandID int) ([]*entity.BrandBeneficiary, error) {
	var links []*entity.BrandBeneficiary
	err := b.db.
		Preload("Beneficiary").
		Preload("Beneficiary.Controversies").
		Preload("Beneficiary.Controversies.Category").
		Where("brand_id = ?", brandID).
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (b *DefaultBeneficiaryRepository) ExistsLinkByPair(brandID, beneficiaryID int) (bool, error) {
	var exists int
	err := b.db.
		Raw("SELECT EXISTS(SELECT 1 FROM brand_beneficiaries WHERE brand_id = ? AND beneficiary_id = ?)",
			brandID, beneficiaryID).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (b *DefaultBeneficiaryRepository) SaveLink(link *entity.BrandBeneficiary) error {
	return b.db.Save(link).Error
}
