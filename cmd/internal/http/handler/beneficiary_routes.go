package handler

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/utils/apierror"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type BeneficiaryService interface {
	GetAllBeneficiaries() ([]*contract.BeneficiaryResponse, apierror.ErrorResponse)
	GetBeneficiaryByID(id int) (*contract.BeneficiaryResponse, apierror.ErrorResponse)
	CreateBeneficiary(req *contract.BeneficiaryRequest) (*contract.BeneficiaryResponse, apierror.ErrorResponse)
	UpdateBeneficiary(id int, req *contract.UpdateBeneficiaryRequest) (*contract.BeneficiaryResponse, apierror.ErrorResponse)
	CreateRelation(req *contract.RelationRequest) (*contract.RelationResponse, apierror.ErrorResponse)
}

type ChainService interface {
	ResolveChain(brandID, depth int) (*contract.ChainResponse, apierror.ErrorResponse)
}

type DefaultBeneficiaryRoute struct {
	BeneficiaryService BeneficiaryService
	ChainService       ChainService
}

func NewBeneficiaryDefault(beneficiaryService BeneficiaryService, chainService ChainService) *DefaultBeneficiaryRoute {
	return &DefaultBeneficiaryRoute{
		BeneficiaryService: beneficiaryService,
		ChainService:       chainService,
	}
}

func (b *DefaultBeneficiaryRoute) GetBeneficiaries(c echo.Context) error {
	beneficiaries, err := b.BeneficiaryService.GetAllBeneficiaries()
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"beneficiaries": beneficiaries}
	return c.JSON(http.StatusOK, &resp)
}

func (b *DefaultBeneficiaryRoute) GetBeneficiary(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	beneficiary, apierr := b.BeneficiaryService.GetBeneficiaryByID(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &beneficiary)
}

func (b *DefaultBeneficiaryRoute) CreateBeneficiary(c echo.Context) error {
	var req contract.BeneficiaryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	beneficiary, apierr := b.BeneficiaryService.CreateBeneficiary(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &beneficiary)
}

func (b *DefaultBeneficiaryRoute) UpdateBeneficiary(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateBeneficiaryRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	beneficiary, apierr := b.BeneficiaryService.UpdateBeneficiary(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &beneficiary)
}

func (b *DefaultBeneficiaryRoute) CreateRelation(c echo.Context) error {
	var req contract.RelationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	relation, apierr := b.BeneficiaryService.CreateRelation(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &relation)
}

func (b *DefaultBeneficiaryRoute) GetChain(c echo.Context) error {
	brandParam := c.QueryParam("brandId")
	if brandParam == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("brandId"))
	}

	brandID, err := strconv.Atoi(brandParam)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("brandId", "int"))
	}

	depth := 0
	if depthParam := c.QueryParam("depth"); depthParam != "" {
		depth, err = strconv.Atoi(depthParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("depth", "int"))
		}
	}

	chain, apierr := b.ChainService.ResolveChain(brandID, depth)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &chain)
}
