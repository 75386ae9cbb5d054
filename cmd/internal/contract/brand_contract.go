package contract

type BrandResponse struct {
	ID            int                         `json:"id"`
	Name          string                      `json:"name"`
	Sector        string                      `json:"sector,omitempty"`
	BoycottTip    string                      `json:"boycott_tip,omitempty"`
	Controversies []*ControversyResponse      `json:"controversies"`
	Beneficiaries []*BrandBeneficiaryResponse `json:"beneficiaries"`
	CreatedAt     string                      `json:"created_at"`
	UpdatedAt     string                      `json:"updated_at"`
}

type BrandBeneficiaryResponse struct {
	ID            int    `json:"id"`
	BeneficiaryID int    `json:"beneficiary_id"`
	Name          string `json:"name"`
	FinancialLink string `json:"financial_link"`

	// Impact is the brand-specific note when one exists, otherwise the
	// beneficiary's generic impact text.
	Impact string `json:"impact,omitempty"`
}

type ControversyResponse struct {
	ID                 int               `json:"id"`
	BrandID            int               `json:"brand_id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Date               string            `json:"date"`
	Category           *CategoryResponse `json:"category"`
	SourceURL          string            `json:"source_url"`
	ResponseURL        string            `json:"response_url,omitempty"`
	JudicialConviction bool              `json:"judicial_conviction"`
	PropositionID      *int64            `json:"proposition_id,omitempty"`
}

type BrandRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=80"`
	Sector     string `json:"sector" validate:"omitempty,max=80"`
	BoycottTip string `json:"boycott_tip" validate:"omitempty,max=500"`
}

type UpdateBrandRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=80"`
	Sector     *string `json:"sector" validate:"omitempty,max=80"`
	BoycottTip *string `json:"boycott_tip" validate:"omitempty,max=500"`
}

type ControversyRequest struct {
	Title              string `json:"title" validate:"required,min=2,max=300"`
	Description        string `json:"description" validate:"required,max=2000"`
	Date               string `json:"date" validate:"required,isodate"`
	CategoryID         int    `json:"category_id" validate:"required,gt=0"`
	SourceURL          string `json:"source_url" validate:"required,url"`
	ResponseURL        string `json:"response_url" validate:"omitempty,url"`
	JudicialConviction bool   `json:"judicial_conviction"`
}

type LinkBeneficiaryRequest struct {
	BeneficiaryID  int    `json:"beneficiary_id" validate:"required,gt=0"`
	FinancialLink  string `json:"financial_link" validate:"required,min=2,max=300"`
	SpecificImpact string `json:"specific_impact" validate:"omitempty,max=500"`
}

type BrandStatsResponse struct {
	ID                            int                 `json:"id"`
	Name                          string              `json:"name"`
	ControversyCount              int                 `json:"controversy_count"`
	Categories                    []*CategoryResponse `json:"categories"`
	ConvictionCount               int                 `json:"conviction_count"`
	ControversialBeneficiaryCount int                 `json:"controversial_beneficiary_count"`
}

type LogoResponse struct {
	URL    string `json:"url"`
	Cached bool   `json:"cached"`
}
