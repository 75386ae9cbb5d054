package contract

import "encoding/json"

type PropositionResponse struct {
	ID               int64           `json:"id"`
	Type             string          `json:"type"`
	Data             json.RawMessage `json:"data"`
	Status           string          `json:"status"`
	IsPublicDecision bool            `json:"is_public_decision"`
	AdminComment     string          `json:"admin_comment,omitempty"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

type PropositionRequest struct {
	Type string          `json:"type" validate:"required,oneof=BRAND EVENT"`
	Data json.RawMessage `json:"data" validate:"required"`
}

// BrandPropositionData is the payload of a BRAND-type proposition: a
// suggestion that some brand belongs in the directory.
type BrandPropositionData struct {
	Name       string `json:"name" validate:"required,min=2,max=80"`
	Sector     string `json:"sector" validate:"omitempty,max=80"`
	BoycottTip string `json:"boycott_tip" validate:"omitempty,max=500"`
	Reason     string `json:"reason" validate:"omitempty,max=1000"`
}

// EventPropositionData is the payload of an EVENT-type proposition: a
// candidate controversy for an existing or new brand. Either BrandID or
// BrandName identifies the target brand.
type EventPropositionData struct {
	BrandID            *int   `json:"brand_id" validate:"omitempty,gt=0"`
	BrandName          string `json:"brand_name" validate:"required_without=BrandID,omitempty,min=2,max=80"`
	Title              string `json:"title" validate:"required,min=2,max=300"`
	Description        string `json:"description" validate:"required,max=2000"`
	Date               string `json:"date" validate:"required,isodate"`
	CategoryID         int    `json:"category_id" validate:"required,gt=0"`
	SourceURL          string `json:"source_url" validate:"required,url"`
	ResponseURL        string `json:"response_url" validate:"omitempty,url"`
	JudicialConviction bool   `json:"judicial_conviction"`
}

type ReviewPropositionRequest struct {
	Status           *string         `json:"status" validate:"omitempty,oneof=APPROVED REJECTED"`
	AdminComment     *string         `json:"admin_comment" validate:"omitempty,max=1000"`
	IsPublicDecision *bool           `json:"is_public_decision"`
	Data             json.RawMessage `json:"data" validate:"omitempty"`
}

// ReviewPropositionResponse reports the decision itself plus the outcome of
// the best-effort conversion into a published controversy. ConversionError
// being set alongside a 200 means the decision stuck but publication must be
// retried manually.
type ReviewPropositionResponse struct {
	Proposition     *PropositionResponse `json:"proposition"`
	Conversion      *ControversyResponse `json:"conversion,omitempty"`
	ConversionError string               `json:"conversion_error,omitempty"`
}
