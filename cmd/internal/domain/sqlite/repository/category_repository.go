package repository

import (
	"boycottwatch/cmd/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *DefaultCategoryRepository {
	return &DefaultCategoryRepository{db: db}
}

func (c *DefaultCategoryRepository) FindAll() ([]*entity.Category, error) {
	var categories []*entity.Category
	err := c.db.Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *DefaultCategoryRepository) FindByID(id int) (*entity.Category, error) {
	var category entity.Category
	err := c.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *DefaultCategoryRepository) Save(category *entity.Category) error {
	return c.db.Save(category).Error
}
