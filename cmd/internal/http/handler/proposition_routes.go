package handler

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/utils/apierror"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type PropositionService interface {
	CreateProposition(req *contract.PropositionRequest) (*contract.PropositionResponse, apierror.ErrorResponse)
	GetPropositions(status string) ([]*contract.PropositionResponse, apierror.ErrorResponse)
	GetPublicDecisions() ([]*contract.PropositionResponse, apierror.ErrorResponse)
	ReviewProposition(id int64, req *contract.ReviewPropositionRequest) (*contract.ReviewPropositionResponse, apierror.ErrorResponse)
}

type DefaultPropositionRoute struct {
	PropositionService PropositionService
}

func NewPropositionDefault(propositionService PropositionService) *DefaultPropositionRoute {
	return &DefaultPropositionRoute{PropositionService: propositionService}
}

func (p *DefaultPropositionRoute) CreateProposition(c echo.Context) error {
	var req contract.PropositionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	proposition, apierr := p.PropositionService.CreateProposition(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, &proposition)
}

func (p *DefaultPropositionRoute) GetPropositions(c echo.Context) error {
	propositions, err := p.PropositionService.GetPropositions(c.QueryParam("status"))
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"propositions": propositions}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultPropositionRoute) GetDecisions(c echo.Context) error {
	decisions, err := p.PropositionService.GetPublicDecisions()
	if err != nil {
		return c.JSON(err.Code(), err)
	}

	resp := echo.Map{"decisions": decisions}
	return c.JSON(http.StatusOK, &resp)
}

func (p *DefaultPropositionRoute) ReviewProposition(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int64"))
	}

	var req contract.ReviewPropositionRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	review, apierr := p.PropositionService.ReviewProposition(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &review)
}
