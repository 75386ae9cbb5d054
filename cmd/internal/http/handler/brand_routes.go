package handler

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/utils/apierror"
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type BrandService interface {
	GetAllBrands() ([]*contract.BrandResponse, apierror.ErrorResponse)
	GetBrandByID(id int) (*contract.BrandResponse, apierror.ErrorResponse)
	CreateBrand(req *contract.BrandRequest) (*contract.BrandResponse, apierror.ErrorResponse)
	UpdateBrand(id int, req *contract.UpdateBrandRequest) (*contract.BrandResponse, apierror.ErrorResponse)
	LinkBeneficiary(brandID int, req *contract.LinkBeneficiaryRequest) (*contract.BrandBeneficiaryResponse, apierror.ErrorResponse)
	GetBrandControversies(brandID int) ([]*contract.ControversyResponse, apierror.ErrorResponse)
	CreateControversy(brandID int, req *contract.ControversyRequest) (*contract.ControversyResponse, apierror.ErrorResponse)
}

type StatsService interface {
	GetBrandStats() ([]*contract.BrandStatsResponse, apierror.ErrorResponse)
}

type LogoService interface {
	GetBrandLogo(ctx context.Context, brandID int) (*contract.LogoResponse, apierror.ErrorResponse)
	UploadBrandLogo(brandID int, fileName string, data []byte) (*contract.LogoResponse, apierror.ErrorResponse)
}

type DefaultBrandRoute struct {
	BrandService BrandService
	StatsService StatsService
	LogoService  LogoService
}

func NewBrandDefault(brandService BrandService, statsService StatsService, logoService LogoService) *DefaultBrandRoute {
	return &DefaultBrandRoute{
		BrandService: brandService,
		StatsService: statsService,
		LogoService:  logoService,
	}
}

func (b *DefaultBrandRoute) GetBrands(c echo.Context) error {
	brands, err := b.BrandService.GetAllBrands()
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"brands": brands}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBrandRoute) GetBrand(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	brand, apierr := b.BrandService.GetBrandByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &brand)
}

func (b *DefaultBrandRoute) CreateBrand(c echo.Context) error {
	var req contract.BrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	brand, apierr := b.BrandService.CreateBrand(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &brand)
}

func (b *DefaultBrandRoute) UpdateBrand(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateBrandRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	brand, apierr := b.BrandService.UpdateBrand(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &brand)
}

func (b *DefaultBrandRoute) LinkBeneficiary(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.LinkBeneficiaryRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	link, apierr := b.BrandService.LinkBeneficiary(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &link)
}

func (b *DefaultBrandRoute) GetControversies(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	controversies, apierr := b.BrandService.GetBrandControversies(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"controversies": controversies}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBrandRoute) CreateControversy(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.ControversyRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	controversy, apierr := b.BrandService.CreateControversy(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &controversy)
}

func (b *DefaultBrandRoute) GetStats(c echo.Context) error {
	stats, err := b.StatsService.GetBrandStats()
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"stats": stats}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBrandRoute) GetLogo(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	logo, apierr := b.LogoService.GetBrandLogo(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &logo)
}

func (b *DefaultBrandRoute) UploadLogo(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("logo"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(apierror.InternalServerError.Code(), apierror.InternalServerError)
	}

	logo, apierr := b.LogoService.UploadBrandLogo(id, fileHeader.Filename, data)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &logo)
}
