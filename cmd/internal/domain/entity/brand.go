package entity

type Brand struct {
	ID         int    `gorm:"primaryKey"`
	Name       string `gorm:"not null;uniqueIndex"`
	Sector     string
	BoycottTip string
	LogoKey    string
	CreatedAt  int64 `gorm:"not null"`
	UpdatedAt  int64 `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Controversies    []*Controversy      `gorm:"foreignKey:BrandID;references:ID"`
	BeneficiaryLinks []*BrandBeneficiary `gorm:"foreignKey:BrandID;references:ID"`
}

// BrandBeneficiary ties a brand to a beneficiary with the financial link
// explaining how money flows from one to the other.
// At most one link may exist per (brand, beneficiary) pair.
type BrandBeneficiary struct {
	ID            int    `gorm:"primaryKey"`
	BrandID       int    `gorm:"not null;uniqueIndex:idx_brand_beneficiary_pair;index"`
	BeneficiaryID int    `gorm:"not null;uniqueIndex:idx_brand_beneficiary_pair"`
	FinancialLink string `gorm:"not null"`

	// SpecificImpact overrides the beneficiary's GenericImpact for this
	// brand only. Empty means "fall back to the generic text".
	SpecificImpact string

	// Relations
	Beneficiary *Beneficiary `gorm:"foreignKey:BeneficiaryID;references:ID"`
}
