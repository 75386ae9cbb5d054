package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/domain/events"
	"boycottwatch/cmd/internal/utils"
	"boycottwatch/cmd/internal/utils/apierror"
	"boycottwatch/cmd/internal/utils/uid"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PropositionRepository interface {
	FindAll() ([]*entity.Proposition, error)
	FindByStatus(status entity.PropositionStatus) ([]*entity.Proposition, error)
	FindPublicDecisions() ([]*entity.Proposition, error)
	FindByID(id int64) (*entity.Proposition, error)
	Save(proposition *entity.Proposition) error
}

type ControversyRepository interface {
	FindByBrandID(brandID int) ([]*entity.Controversy, error)
	ExistsByPropositionID(propositionID int64) (bool, error)
	Save(controversy *entity.Controversy) error
}

// FeedPublisher pushes moderation events to the connected admin dashboards.
type FeedPublisher interface {
	Broadcast(ctx context.Context, event events.SocketEvent)
}

type DefaultPropositionService struct {
	PropositionRepo PropositionRepository
	ControversyRepo ControversyRepository
	BrandRepo       BrandRepository
	CategoryRepo    CategoryRepository
	Feed            FeedPublisher
	Validate        *validator.Validate
}

func NewPropositionService(
	propositionRepo PropositionRepository,
	controversyRepo ControversyRepository,
	brandRepo BrandRepository,
	categoryRepo CategoryRepository,
	feed FeedPublisher,
	validate *validator.Validate,
) *DefaultPropositionService {
	return &DefaultPropositionService{
		PropositionRepo: propositionRepo,
		ControversyRepo: controversyRepo,
		BrandRepo:       brandRepo,
		CategoryRepo:    categoryRepo,
		Feed:            feed,
		Validate:        validate,
	}
}

// CreateProposition accepts an anonymous submission into the moderation
// queue. The payload is validated against the schema of its type and stored
// in normalized form; nothing is published until an admin approves.
func (p *DefaultPropositionService) CreateProposition(req *contract.PropositionRequest) (*contract.PropositionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	data, apierr := p.normalizePayload(entity.PropositionType(req.Type), req.Data)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	proposition := &entity.Proposition{
		ID:        uid.Generate(),
		Type:      entity.PropositionType(req.Type),
		Data:      data,
		Status:    entity.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := p.PropositionRepo.Save(proposition); err != nil {
		log.Errorf("failed to save proposition: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toPropositionResponse(proposition)
	p.Feed.Broadcast(context.Background(), &events.PropositionCreated{PropositionResponse: resp})
	return resp, nil
}

func (p *DefaultPropositionService) GetPropositions(status string) ([]*contract.PropositionResponse, apierror.ErrorResponse) {
	var propositions []*entity.Proposition
	var err error

	switch entity.PropositionStatus(status) {
	case "":
		propositions, err = p.PropositionRepo.FindAll()
	case entity.StatusPending, entity.StatusApproved, entity.StatusRejected:
		propositions, err = p.PropositionRepo.FindByStatus(entity.PropositionStatus(status))
	default:
		return nil, apierror.NewInvalidParamTypeError("status", "PENDING | APPROVED | REJECTED")
	}

	if err != nil {
		log.Errorf("failed to fetch propositions: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.PropositionResponse, len(propositions))
	for i, proposition := range propositions {
		resp[i] = toPropositionResponse(proposition)
	}
	return resp, nil
}

// GetPublicDecisions lists the decided propositions that moderation chose to
// publish, for the transparency page.
func (p *DefaultPropositionService) GetPublicDecisions() ([]*contract.PropositionResponse, apierror.ErrorResponse) {
	propositions, err := p.PropositionRepo.FindPublicDecisions()
	if err != nil {
		log.Errorf("failed to fetch public decisions: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.PropositionResponse, len(propositions))
	for i, proposition := range propositions {
		resp[i] = toPropositionResponse(proposition)
	}
	return resp, nil
}

// ReviewProposition applies an admin decision and/or annotation.
//
// Status only moves PENDING -> APPROVED or PENDING -> REJECTED; re-sending
// the status a proposition already has is a no-op, any other transition is a
// conflict. AdminComment and IsPublicDecision stay editable after the
// decision; the payload does not.
//
// Approving an EVENT proposition also converts it into a published
// controversy. The conversion is best effort: if it fails, the decision
// still sticks and the error is reported alongside it.
func (p *DefaultPropositionService) ReviewProposition(id int64, req *contract.ReviewPropositionRequest) (*contract.ReviewPropositionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := p.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	proposition, err := p.PropositionRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch proposition %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if proposition == nil {
		return nil, apierror.NotFoundError
	}

	wasPending := proposition.Status == entity.StatusPending
	statusChanged := false

	if req.Status != nil {
		newStatus := entity.PropositionStatus(*req.Status)
		if newStatus != proposition.Status {
			if !wasPending {
				return nil, apierror.PropositionDecidedError
			}
			proposition.Status = newStatus
			statusChanged = true
		}
	}

	if len(req.Data) > 0 {
		if !wasPending {
			return nil, apierror.PropositionDecidedError
		}

		data, apierr := p.normalizePayload(proposition.Type, req.Data)
		if apierr != nil {
			return nil, apierr
		}
		proposition.Data = data
	}

	if req.AdminComment != nil {
		proposition.AdminComment = *req.AdminComment
	}

	if req.IsPublicDecision != nil {
		proposition.IsPublicDecision = *req.IsPublicDecision
	}
	proposition.UpdatedAt = utils.NowUTC()

	if err = p.PropositionRepo.Save(proposition); err != nil {
		log.Errorf("failed to save proposition %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	resp := &contract.ReviewPropositionResponse{
		Proposition: toPropositionResponse(proposition),
	}

	// Conversion only runs on the transition itself. Later edits to the
	// comment or visibility of an approved proposition never re-publish.
	if statusChanged && proposition.Status == entity.StatusApproved && proposition.Type == entity.PropositionEvent {
		controversy, converr := p.convertEvent(proposition)
		if converr != nil {
			log.Errorf("conversion of proposition %d failed: %v", id, converr)
			resp.ConversionError = converr.Error()
		} else if controversy != nil {
			resp.Conversion = toControversyResponse(controversy)
		}
	}

	if statusChanged {
		p.Feed.Broadcast(context.Background(), &events.PropositionReviewed{
			PropositionID: proposition.ID,
			Status:        string(proposition.Status),
		})
	}
	return resp, nil
}

// convertEvent publishes an approved EVENT proposition as a controversy of
// its target brand, creating the brand if the submitter only named it. The
// ExistsByPropositionID guard keeps the conversion exactly-once even if an
// earlier attempt already landed.
func (p *DefaultPropositionService) convertEvent(proposition *entity.Proposition) (*entity.Controversy, error) {
	exists, err := p.ControversyRepo.ExistsByPropositionID(proposition.ID)
	if err != nil {
		return nil, fmt.Errorf("checking existing conversion: %w", err)
	}

	if exists {
		return nil, nil
	}

	var data contract.EventPropositionData
	if err = json.Unmarshal([]byte(proposition.Data), &data); err != nil {
		return nil, fmt.Errorf("decoding proposition payload: %w", err)
	}

	brand, err := p.resolveBrand(&data)
	if err != nil {
		return nil, err
	}

	category, err := p.CategoryRepo.FindByID(data.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("fetching category %d: %w", data.CategoryID, err)
	}

	if category == nil {
		return nil, fmt.Errorf("category %d does not exist", data.CategoryID)
	}

	controversy := &entity.Controversy{
		BrandID:            brand.ID,
		Title:              data.Title,
		Description:        data.Description,
		Date:               data.Date,
		CategoryID:         data.CategoryID,
		SourceURL:          data.SourceURL,
		ResponseURL:        data.ResponseURL,
		JudicialConviction: data.JudicialConviction,
		PropositionID:      &proposition.ID,
		CreatedAt:          utils.NowUTC(),
		Category:           category,
	}

	if err = p.ControversyRepo.Save(controversy); err != nil {
		return nil, fmt.Errorf("saving controversy: %w", err)
	}
	return controversy, nil
}

func (p *DefaultPropositionService) resolveBrand(data *contract.EventPropositionData) (*entity.Brand, error) {
	if data.BrandID != nil {
		brand, err := p.BrandRepo.FindByID(*data.BrandID)
		if err != nil {
			return nil, fmt.Errorf("fetching brand %d: %w", *data.BrandID, err)
		}

		if brand == nil {
			return nil, fmt.Errorf("brand %d does not exist", *data.BrandID)
		}
		return brand, nil
	}

	brand, err := p.BrandRepo.FindByNameCI(data.BrandName)
	if err != nil {
		return nil, fmt.Errorf("looking up brand %q: %w", data.BrandName, err)
	}

	if brand != nil {
		return brand, nil
	}

	now := utils.NowUTC()
	brand = &entity.Brand{
		Name:      data.BrandName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = p.BrandRepo.Save(brand); err != nil {
		return nil, fmt.Errorf("creating brand %q: %w", data.BrandName, err)
	}
	return brand, nil
}

// normalizePayload validates the type-specific payload and re-encodes it so
// the stored Data column always holds the canonical field set.
func (p *DefaultPropositionService) normalizePayload(propType entity.PropositionType, raw json.RawMessage) (string, apierror.ErrorResponse) {
	var payload any
	switch propType {
	case entity.PropositionBrand:
		payload = &contract.BrandPropositionData{}
	case entity.PropositionEvent:
		payload = &contract.EventPropositionData{}
	default:
		return "", apierror.NewInvalidParamTypeError("type", "BRAND | EVENT")
	}

	if err := json.Unmarshal(raw, payload); err != nil {
		return "", apierror.MalformedJSONError
	}

	utils.Sanitize(payload)
	if valerr := p.Validate.Struct(payload); valerr != nil {
		return "", apierror.FromValidationError(valerr)
	}

	normalized, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to re-encode proposition payload: %v", err)
		return "", apierror.InternalServerError
	}
	return string(normalized), nil
}

func toPropositionResponse(proposition *entity.Proposition) *contract.PropositionResponse {
	if proposition == nil {
		return nil
	}
	return &contract.PropositionResponse{
		ID:               proposition.ID,
		Type:             string(proposition.Type),
		Data:             json.RawMessage(proposition.Data),
		Status:           string(proposition.Status),
		IsPublicDecision: proposition.IsPublicDecision,
		AdminComment:     proposition.AdminComment,
		CreatedAt:        utils.FormatEpoch(proposition.CreatedAt),
		UpdatedAt:        utils.FormatEpoch(proposition.UpdatedAt),
	}
}
