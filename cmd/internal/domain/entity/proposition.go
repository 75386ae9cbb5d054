package entity

type PropositionType string

const (
	PropositionBrand PropositionType = "BRAND"
	PropositionEvent PropositionType = "EVENT"
)

type PropositionStatus string

const (
	StatusPending  PropositionStatus = "PENDING"
	StatusApproved PropositionStatus = "APPROVED"
	StatusRejected PropositionStatus = "REJECTED"
)

// Proposition is an anonymous, user-submitted candidate brand or controversy
// awaiting moderation. Propositions are never deleted; decided rows stay
// around as the audit trail of the moderation queue.
//
// Status only ever moves PENDING -> APPROVED or PENDING -> REJECTED. Once
// decided, only AdminComment and IsPublicDecision remain mutable.
type Proposition struct {
	ID               int64             `gorm:"primaryKey;autoIncrement:false"`
	Type             PropositionType   `gorm:"not null;index"`
	Data             string            `gorm:"not null"` // JSON payload, shape depends on Type
	Status           PropositionStatus `gorm:"not null;default:PENDING;index"`
	IsPublicDecision bool              `gorm:"not null;default:false"`
	AdminComment     string
	CreatedAt        int64 `gorm:"not null"`
	UpdatedAt        int64 `gorm:"not null;autoUpdateTime:false"`
}
