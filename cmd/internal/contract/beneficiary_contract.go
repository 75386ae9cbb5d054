package contract

type BeneficiaryResponse struct {
	ID            int                               `json:"id"`
	Name          string                            `json:"name"`
	GenericImpact string                            `json:"generic_impact"`
	Kind          string                            `json:"kind"`
	Controversies []*BeneficiaryControversyResponse `json:"controversies"`
	CreatedAt     string                            `json:"created_at"`
	UpdatedAt     string                            `json:"updated_at"`
}

type BeneficiaryControversyResponse struct {
	ID                 int               `json:"id"`
	Title              string            `json:"title"`
	Date               string            `json:"date"`
	Category           *CategoryResponse `json:"category"`
	SourceURL          string            `json:"source_url"`
	ResponseURL        string            `json:"response_url,omitempty"`
	JudicialConviction bool              `json:"judicial_conviction"`
}

type BeneficiaryRequest struct {
	Name          string                        `json:"name" validate:"required,min=2,max=120"`
	GenericImpact string                        `json:"generic_impact" validate:"required,max=1000"`
	Kind          string                        `json:"kind" validate:"required,oneof=INDIVIDUAL GROUP"`
	Controversies []*BeneficiaryControversyData `json:"controversies" validate:"omitempty,dive"`
}

type UpdateBeneficiaryRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2,max=120"`
	GenericImpact *string `json:"generic_impact" validate:"omitempty,max=1000"`
	Kind          *string `json:"kind" validate:"omitempty,oneof=INDIVIDUAL GROUP"`
}

type BeneficiaryControversyData struct {
	Title              string `json:"title" validate:"required,min=2,max=300"`
	Date               string `json:"date" validate:"required,isodate"`
	CategoryID         int    `json:"category_id" validate:"required,gt=0"`
	SourceURL          string `json:"source_url" validate:"required,url"`
	ResponseURL        string `json:"response_url" validate:"omitempty,url"`
	JudicialConviction bool   `json:"judicial_conviction"`
}

type RelationRequest struct {
	SourceBeneficiaryID int    `json:"source_beneficiary_id" validate:"required,gt=0"`
	TargetBeneficiaryID int    `json:"target_beneficiary_id" validate:"required,gt=0"`
	Description         string `json:"description" validate:"required,min=2,max=300"`
}

type RelationResponse struct {
	ID                  int    `json:"id"`
	TargetBeneficiaryID int    `json:"target_beneficiary_id"`
	Description         string `json:"description"`
}

// ChainNode is one beneficiary of a brand's ownership chain. Level 0 nodes
// are linked to the brand directly; deeper levels were reached by following
// "profits further" relations.
type ChainNode struct {
	Beneficiary       *BeneficiaryResponse `json:"beneficiary"`
	Level             int                  `json:"level"`
	OutgoingRelations []*RelationResponse  `json:"outgoing_relations"`
}

type ChainResponse struct {
	BrandID         int          `json:"brand_id"`
	BrandName       string       `json:"brand_name"`
	Chain           []*ChainNode `json:"chain"`
	MaxDepthReached int          `json:"max_depth_reached"`
}
