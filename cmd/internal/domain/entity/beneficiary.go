package entity

type BeneficiaryKind string

const (
	KindIndividual BeneficiaryKind = "INDIVIDUAL"
	KindGroup      BeneficiaryKind = "GROUP"
)

// Beneficiary is a person or organization that financially profits from
// one or more brands. Beneficiaries carry their own controversy records,
// independent of the brands linking to them.
type Beneficiary struct {
	ID            int             `gorm:"primaryKey"`
	Name          string          `gorm:"not null"`
	GenericImpact string          `gorm:"not null"`
	Kind          BeneficiaryKind `gorm:"not null;default:INDIVIDUAL"`
	CreatedAt     int64           `gorm:"not null"`
	UpdatedAt     int64           `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Controversies []*BeneficiaryControversy `gorm:"foreignKey:BeneficiaryID;references:ID"`
}

type BeneficiaryControversy struct {
	ID                 int    `gorm:"primaryKey"`
	BeneficiaryID      int    `gorm:"not null;index"`
	Title              string `gorm:"not null"`
	Date               string `gorm:"not null"` // ISO date (YYYY-MM-DD)
	CategoryID         int    `gorm:"not null"`
	SourceURL          string `gorm:"not null"`
	ResponseURL        string
	JudicialConviction bool `gorm:"not null;default:false"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
}

// BeneficiaryRelation is a directed edge meaning "the source beneficiary's
// gains flow further to the target beneficiary". Cycles are NOT rejected at
// write time; the chain resolver tolerates them during traversal.
type BeneficiaryRelation struct {
	ID                  int    `gorm:"primaryKey"`
	SourceBeneficiaryID int    `gorm:"not null;index"`
	TargetBeneficiaryID int    `gorm:"not null;index"`
	Description         string `gorm:"not null"`

	// Relations
	Target *Beneficiary `gorm:"foreignKey:TargetBeneficiaryID;references:ID"`
}
