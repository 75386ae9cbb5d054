package entity

// Controversy is a published, dated incident record attached to a brand.
// Rows either come from admin CRUD or from the approval of an EVENT-type
// proposition, in which case PropositionID points back at the origin.
type Controversy struct {
	ID                 int    `gorm:"primaryKey"`
	BrandID            int    `gorm:"not null;index"`
	Title              string `gorm:"not null"`
	Description        string `gorm:"not null"`
	Date               string `gorm:"not null"` // ISO date (YYYY-MM-DD)
	CategoryID         int    `gorm:"not null"`
	SourceURL          string `gorm:"not null"`
	ResponseURL        string
	JudicialConviction bool   `gorm:"not null;default:false"`
	PropositionID      *int64 `gorm:"index"`
	CreatedAt          int64  `gorm:"not null"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
}
