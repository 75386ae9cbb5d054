package entity

import "time"

const (
	HeartbeatPeriod    = 60 * time.Second
	HeartbeatTolerance = 10 * time.Second

	HeartbeatPeriodMillis    = int64(60 * 1000)
	HeartbeatToleranceMillis = int64(10 * 1000)
)

// Connection is a live websocket connection of an admin moderation dashboard.
// The feed carries no per-user identity; connections only exist to receive
// proposition lifecycle broadcasts.
type Connection struct {
	ConnectionID    string `gorm:"primaryKey;autoIncrement:false"`
	ExpiresAt       int64  `gorm:"not null"`
	LastHeartbeatAt int64  `gorm:"not null;index"`
	CreatedAt       int64  `gorm:"not null"`
}
