package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/utils"
	"boycottwatch/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type BrandRepository interface {
	FindAll() ([]*entity.Brand, error)
	FindByID(id int) (*entity.Brand, error)
	FindByNameCI(name string) (*entity.Brand, error)
	Save(brand *entity.Brand) error
}

type DefaultBrandService struct {
	BrandRepo       BrandRepository
	BeneficiaryRepo BeneficiaryRepository
	ControversyRepo ControversyRepository
	CategoryRepo    CategoryRepository
	Validate        *validator.Validate
}

func NewBrandService(
	brandRepo BrandRepository,
	beneficiaryRepo BeneficiaryRepository,
	controversyRepo ControversyRepository,
	categoryRepo CategoryRepository,
	validate *validator.Validate,
) *DefaultBrandService {
	return &DefaultBrandService{
		BrandRepo:       brandRepo,
		BeneficiaryRepo: beneficiaryRepo,
		ControversyRepo: controversyRepo,
		CategoryRepo:    categoryRepo,
		Validate:        validate,
	}
}

func (b *DefaultBrandService) GetAllBrands() ([]*contract.BrandResponse, apierror.ErrorResponse) {
	brands, err := b.BrandRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch brands: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.BrandResponse, len(brands))
	for i, brand := range brands {
		resp[i] = toBrandResponse(brand)
	}
	return resp, nil
}

func (b *DefaultBrandService) GetBrandByID(id int) (*contract.BrandResponse, apierror.ErrorResponse) {
	brand, err := b.BrandRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch brand %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if brand == nil {
		return nil, apierror.NotFoundError
	}
	return toBrandResponse(brand), nil
}

func (b *DefaultBrandService) CreateBrand(req *contract.BrandRequest) (*contract.BrandResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	existing, err := b.BrandRepo.FindByNameCI(req.Name)
	if err != nil {
		log.Errorf("failed to check brand name %q: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.DuplicateBrandNameError
	}

	now := utils.NowUTC()
	brand := &entity.Brand{
		Name:       req.Name,
		Sector:     req.Sector,
		BoycottTip: req.BoycottTip,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = b.BrandRepo.Save(brand); err != nil {
		log.Errorf("failed to save brand: %v", err)
		return nil, apierror.InternalServerError
	}
	return toBrandResponse(brand), nil
}

func (b *DefaultBrandService) UpdateBrand(id int, req *contract.UpdateBrandRequest) (*contract.BrandResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	brand, err := b.BrandRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch brand %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if brand == nil {
		return nil, apierror.NotFoundError
	}

	if req.Name != nil && *req.Name != brand.Name {
		existing, err := b.BrandRepo.FindByNameCI(*req.Name)
		if err != nil {
			log.Errorf("failed to check brand name %q: %v", *req.Name, err)
			return nil, apierror.InternalServerError
		}

		if existing != nil && existing.ID != brand.ID {
			return nil, apierror.DuplicateBrandNameError
		}
		brand.Name = *req.Name
	}

	if req.Sector != nil {
		brand.Sector = *req.Sector
	}

	if req.BoycottTip != nil {
		brand.BoycottTip = *req.BoycottTip
	}
	brand.UpdatedAt = utils.NowUTC()

	if err = b.BrandRepo.Save(brand); err != nil {
		log.Errorf("failed to update brand %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toBrandResponse(brand), nil
}

// LinkBeneficiary attaches a beneficiary to a brand. At most one link may
// exist per pair; a second attempt is a conflict, not an upsert.
func (b *DefaultBrandService) LinkBeneficiary(brandID int, req *contract.LinkBeneficiaryRequest) (*contract.BrandBeneficiaryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	brand, err := b.BrandRepo.FindByID(brandID)
	if err != nil {
		log.Errorf("failed to fetch brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}

	if brand == nil {
		return nil, apierror.NotFoundError
	}

	beneficiary, err := b.BeneficiaryRepo.FindByID(req.BeneficiaryID)
	if err != nil {
		log.Errorf("failed to fetch beneficiary %d: %v", req.BeneficiaryID, err)
		return nil, apierror.InternalServerError
	}

	if beneficiary == nil {
		return nil, apierror.NotFoundError
	}

	exists, err := b.BeneficiaryRepo.ExistsLinkByPair(brandID, req.BeneficiaryID)
	if err != nil {
		log.Errorf("failed to check link (%d, %d): %v", brandID, req.BeneficiaryID, err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.NewDuplicateLinkError(brandID, req.BeneficiaryID)
	}

	link := &entity.BrandBeneficiary{
		BrandID:        brandID,
		BeneficiaryID:  req.BeneficiaryID,
		FinancialLink:  req.FinancialLink,
		SpecificImpact: req.SpecificImpact,
		Beneficiary:    beneficiary,
	}

	if err = b.BeneficiaryRepo.SaveLink(link); err != nil {
		log.Errorf("failed to save link (%d, %d): %v", brandID, req.BeneficiaryID, err)
		return nil, apierror.InternalServerError
	}
	return toBrandBeneficiaryResponse(link), nil
}

func (b *DefaultBrandService) GetBrandControversies(brandID int) ([]*contract.ControversyResponse, apierror.ErrorResponse) {
	brand, err := b.BrandRepo.FindByID(brandID)
	if err != nil {
		log.Errorf("failed to fetch brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}

	if brand == nil {
		return nil, apierror.NotFoundError
	}

	controversies, err := b.ControversyRepo.FindByBrandID(brandID)
	if err != nil {
		log.Errorf("failed to fetch controversies of brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.ControversyResponse, len(controversies))
	for i, controversy := range controversies {
		resp[i] = toControversyResponse(controversy)
	}
	return resp, nil
}

func (b *DefaultBrandService) CreateControversy(brandID int, req *contract.ControversyRequest) (*contract.ControversyResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	brand, err := b.BrandRepo.FindByID(brandID)
	if err != nil {
		log.Errorf("failed to fetch brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}

	if brand == nil {
		return nil, apierror.NotFoundError
	}

	category, err := b.CategoryRepo.FindByID(req.CategoryID)
	if err != nil {
		log.Errorf("failed to fetch category %d: %v", req.CategoryID, err)
		return nil, apierror.InternalServerError
	}

	if category == nil {
		return nil, apierror.UnknownCategoryError
	}

	controversy := &entity.Controversy{
		BrandID:            brandID,
		Title:              req.Title,
		Description:        req.Description,
		Date:               req.Date,
		CategoryID:         req.CategoryID,
		SourceURL:          req.SourceURL,
		ResponseURL:        req.ResponseURL,
		JudicialConviction: req.JudicialConviction,
		CreatedAt:          utils.NowUTC(),
		Category:           category,
	}

	if err = b.ControversyRepo.Save(controversy); err != nil {
		log.Errorf("failed to save controversy for brand %d: %v", brandID, err)
		return nil, apierror.InternalServerError
	}
	return toControversyResponse(controversy), nil
}

func toBrandResponse(brand *entity.Brand) *contract.BrandResponse {
	if brand == nil {
		return nil
	}

	controversies := make([]*contract.ControversyResponse, len(brand.Controversies))
	for i, controversy := range brand.Controversies {
		controversies[i] = toControversyResponse(controversy)
	}

	beneficiaries := make([]*contract.BrandBeneficiaryResponse, len(brand.BeneficiaryLinks))
	for i, link := range brand.BeneficiaryLinks {
		beneficiaries[i] = toBrandBeneficiaryResponse(link)
	}

	return &contract.BrandResponse{
		ID:            brand.ID,
		Name:          brand.Name,
		Sector:        brand.Sector,
		BoycottTip:    brand.BoycottTip,
		Controversies: controversies,
		Beneficiaries: beneficiaries,
		CreatedAt:     utils.FormatEpoch(brand.CreatedAt),
		UpdatedAt:     utils.FormatEpoch(brand.UpdatedAt),
	}
}

func toBrandBeneficiaryResponse(link *entity.BrandBeneficiary) *contract.BrandBeneficiaryResponse {
	if link == nil {
		return nil
	}

	resp := &contract.BrandBeneficiaryResponse{
		ID:            link.ID,
		BeneficiaryID: link.BeneficiaryID,
		FinancialLink: link.FinancialLink,
		Impact:        link.SpecificImpact,
	}

	if link.Beneficiary != nil {
		resp.Name = link.Beneficiary.Name
		if resp.Impact == "" {
			resp.Impact = link.Beneficiary.GenericImpact
		}
	}
	return resp
}

func toControversyResponse(controversy *entity.Controversy) *contract.ControversyResponse {
	if controversy == nil {
		return nil
	}
	return &contract.ControversyResponse{
		ID:                 controversy.ID,
		BrandID:            controversy.BrandID,
		Title:              controversy.Title,
		Description:        controversy.Description,
		Date:               controversy.Date,
		Category:           toCategoryResponse(controversy.Category),
		SourceURL:          controversy.SourceURL,
		ResponseURL:        controversy.ResponseURL,
		JudicialConviction: controversy.JudicialConviction,
		PropositionID:      controversy.PropositionID,
	}
}
