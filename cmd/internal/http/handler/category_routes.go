package handler

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/utils/apierror"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CategoryService interface {
	GetAllCategories() ([]*contract.CategoryResponse, apierror.ErrorResponse)
	CreateCategory(req *contract.CategoryRequest) (*contract.CategoryResponse, apierror.ErrorResponse)
}

type DefaultCategoryRoute struct {
	CategoryService CategoryService
}

func NewCategoryDefault(categoryService CategoryService) *DefaultCategoryRoute {
	return &DefaultCategoryRoute{CategoryService: categoryService}
}

func (h *DefaultCategoryRoute) GetCategories(c echo.Context) error {
	categories, err := h.CategoryService.GetAllCategories()
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"categories": categories}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultCategoryRoute) CreateCategory(c echo.Context) error {
	var req contract.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	category, apierr := h.CategoryService.CreateCategory(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &category)
}
