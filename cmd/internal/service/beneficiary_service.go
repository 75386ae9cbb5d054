package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/utils"
	"boycottwatch/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type BeneficiaryRepository interface {
	FindAll() ([]*entity.Beneficiary, error)
	FindByID(id int) (*entity.Beneficiary, error)
	Save(beneficiary *entity.Beneficiary) error
	FindLinksByBrandID(brandID int) ([]*entity.BrandBeneficiary, error)
	ExistsLinkByPair(brandID, beneficiaryID int) (bool, error)
	SaveLink(link *entity.BrandBeneficiary) error
}

type DefaultBeneficiaryService struct {
	BeneficiaryRepo BeneficiaryRepository
	RelationRepo    RelationRepository
	CategoryRepo    CategoryRepository
	Validate        *validator.Validate
}

func NewBeneficiaryService(
	beneficiaryRepo BeneficiaryRepository,
	relationRepo RelationRepository,
	categoryRepo CategoryRepository,
	validate *validator.Validate,
) *DefaultBeneficiaryService {
	return &DefaultBeneficiaryService{
		BeneficiaryRepo: beneficiaryRepo,
		RelationRepo:    relationRepo,
		CategoryRepo:    categoryRepo,
		Validate:        validate,
	}
}

func (b *DefaultBeneficiaryService) GetAllBeneficiaries() ([]*contract.BeneficiaryResponse, apierror.ErrorResponse) {
	beneficiaries, err := b.BeneficiaryRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch beneficiaries: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.BeneficiaryResponse, len(beneficiaries))
	for i, beneficiary := range beneficiaries {
		resp[i] = toBeneficiaryResponse(beneficiary)
	}
	return resp, nil
}

func (b *DefaultBeneficiaryService) GetBeneficiaryByID(id int) (*contract.BeneficiaryResponse, apierror.ErrorResponse) {
	beneficiary, err := b.BeneficiaryRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch beneficiary %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if beneficiary == nil {
		return nil, apierror.NotFoundError
	}
	return toBeneficiaryResponse(beneficiary), nil
}

func (b *DefaultBeneficiaryService) CreateBeneficiary(req *contract.BeneficiaryRequest) (*contract.BeneficiaryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	for _, data := range req.Controversies {
		category, err := b.CategoryRepo.FindByID(data.CategoryID)
		if err != nil {
			log.Errorf("failed to fetch category %d: %v", data.CategoryID, err)
			return nil, apierror.InternalServerError
		}

		if category == nil {
			return nil, apierror.UnknownCategoryError
		}
	}

	now := utils.NowUTC()
	beneficiary := &entity.Beneficiary{
		Name:          req.Name,
		GenericImpact: req.GenericImpact,
		Kind:          entity.BeneficiaryKind(req.Kind),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, data := range req.Controversies {
		beneficiary.Controversies = append(beneficiary.Controversies, &entity.BeneficiaryControversy{
			Title:              data.Title,
			Date:               data.Date,
			CategoryID:         data.CategoryID,
			SourceURL:          data.SourceURL,
			ResponseURL:        data.ResponseURL,
			JudicialConviction: data.JudicialConviction,
		})
	}

	if err := b.BeneficiaryRepo.Save(beneficiary); err != nil {
		log.Errorf("failed to save beneficiary: %v", err)
		return nil, apierror.InternalServerError
	}
	return toBeneficiaryResponse(beneficiary), nil
}

func (b *DefaultBeneficiaryService) UpdateBeneficiary(id int, req *contract.UpdateBeneficiaryRequest) (*contract.BeneficiaryResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	beneficiary, err := b.BeneficiaryRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch beneficiary %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if beneficiary == nil {
		return nil, apierror.NotFoundError
	}

	if req.Name != nil {
		beneficiary.Name = *req.Name
	}

	if req.GenericImpact != nil {
		beneficiary.GenericImpact = *req.GenericImpact
	}

	if req.Kind != nil {
		beneficiary.Kind = entity.BeneficiaryKind(*req.Kind)
	}
	beneficiary.UpdatedAt = utils.NowUTC()

	if err = b.BeneficiaryRepo.Save(beneficiary); err != nil {
		log.Errorf("failed to update beneficiary %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toBeneficiaryResponse(beneficiary), nil
}

// CreateRelation adds a directed "profits further" edge between two
// beneficiaries. Cycles are allowed; the chain resolver copes with them.
func (b *DefaultBeneficiaryService) CreateRelation(req *contract.RelationRequest) (*contract.RelationResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := b.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	source, err := b.BeneficiaryRepo.FindByID(req.SourceBeneficiaryID)
	if err != nil {
		log.Errorf("failed to fetch beneficiary %d: %v", req.SourceBeneficiaryID, err)
		return nil, apierror.InternalServerError
	}

	if source == nil {
		return nil, apierror.NotFoundError
	}

	target, err := b.BeneficiaryRepo.FindByID(req.TargetBeneficiaryID)
	if err != nil {
		log.Errorf("failed to fetch beneficiary %d: %v", req.TargetBeneficiaryID, err)
		return nil, apierror.InternalServerError
	}

	if target == nil {
		return nil, apierror.NotFoundError
	}

	relation := &entity.BeneficiaryRelation{
		SourceBeneficiaryID: req.SourceBeneficiaryID,
		TargetBeneficiaryID: req.TargetBeneficiaryID,
		Description:         req.Description,
	}

	if err = b.RelationRepo.Save(relation); err != nil {
		log.Errorf("failed to save relation (%d -> %d): %v", req.SourceBeneficiaryID, req.TargetBeneficiaryID, err)
		return nil, apierror.InternalServerError
	}
	return toRelationResponse(relation), nil
}

func toBeneficiaryResponse(beneficiary *entity.Beneficiary) *contract.BeneficiaryResponse {
	if beneficiary == nil {
		return nil
	}

	controversies := make([]*contract.BeneficiaryControversyResponse, len(beneficiary.Controversies))
	for i, controversy := range beneficiary.Controversies {
		controversies[i] = &contract.BeneficiaryControversyResponse{
			ID:                 controversy.ID,
			Title:              controversy.Title,
			Date:               controversy.Date,
			Category:           toCategoryResponse(controversy.Category),
			SourceURL:          controversy.SourceURL,
			ResponseURL:        controversy.ResponseURL,
			JudicialConviction: controversy.JudicialConviction,
		}
	}

	return &contract.BeneficiaryResponse{
		ID:            beneficiary.ID,
		Name:          beneficiary.Name,
		GenericImpact: beneficiary.GenericImpact,
		Kind:          string(beneficiary.Kind),
		Controversies: controversies,
		CreatedAt:     utils.FormatEpoch(beneficiary.CreatedAt),
		UpdatedAt:     utils.FormatEpoch(beneficiary.UpdatedAt),
	}
}

func toRelationResponse(relation *entity.BeneficiaryRelation) *contract.RelationResponse {
	if relation == nil {
		return nil
	}
	return &contract.RelationResponse{
		ID:                  relation.ID,
		TargetBeneficiaryID: relation.TargetBeneficiaryID,
		Description:         relation.Description,
	}
}

func toRelationResponses(relations []*entity.BeneficiaryRelation) []*contract.RelationResponse {
	resp := make([]*contract.RelationResponse, len(relations))
	for i, relation := range relations {
		resp[i] = toRelationResponse(relation)
	}
	return resp
}
