package repository

import (
	"boycottwatch/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultLogoRepository struct {
	db *gorm.DB
}

func NewLogoRepository(db *gorm.DB) *DefaultLogoRepository {
	return &DefaultLogoRepository{db: db}
}

func (r *DefaultLogoRepository) FindByDomain(domain string) (*entity.CachedLogo, error) {
	var logo entity.CachedLogo
	err := r.db.
		Where("domain = ?", domain).
		First(&logo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &logo, nil
}

func (r *DefaultLogoRepository) Save(logo *entity.CachedLogo) error {
	return r.db.Save(logo).Error
}

func (r *DefaultLogoRepository) DeleteExpired(before int64) error {
	return r.db.
		Where("cached_at < ?", before).
		Delete(&entity.CachedLogo{}).Error
}
