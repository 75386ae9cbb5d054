package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/utils"
	"boycottwatch/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CategoryRepository interface {
	FindAll() ([]*entity.Category, error)
	FindByID(id int) (*entity.Category, error)
	Save(category *entity.Category) error
}

type DefaultCategoryService struct {
	CategoryRepo CategoryRepository
	Validate     *validator.Validate
}

func NewCategoryService(categoryRepo CategoryRepository, validate *validator.Validate) *DefaultCategoryService {
	return &DefaultCategoryService{
		CategoryRepo: categoryRepo,
		Validate:     validate,
	}
}

func (c *DefaultCategoryService) GetAllCategories() ([]*contract.CategoryResponse, apierror.ErrorResponse) {
	categories, err := c.CategoryRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch categories: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CategoryResponse, len(categories))
	for i, category := range categories {
		resp[i] = toCategoryResponse(category)
	}
	return resp, nil
}

func (c *DefaultCategoryService) CreateCategory(req *contract.CategoryRequest) (*contract.CategoryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := c.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	category := &entity.Category{Name: req.Name}
	if err := c.CategoryRepo.Save(category); err != nil {
		log.Errorf("failed to save category: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCategoryResponse(category), nil
}

func toCategoryResponse(category *entity.Category) *contract.CategoryResponse {
	if category == nil {
		return nil
	}
	return &contract.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}
