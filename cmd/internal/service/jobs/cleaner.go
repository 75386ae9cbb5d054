package jobs

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/service"
	"boycottwatch/cmd/internal/utils"
	"context"
	"time"

	"github.com/labstack/gommon/log"
)

type ConnectionCleaner struct {
	feed *service.FeedService
}

func NewConnectionCleaner(feed *service.FeedService) *ConnectionCleaner {
	return &ConnectionCleaner{feed: feed}
}

func (c *ConnectionCleaner) Start(ctx context.Context) {
	// Poll every 5 minutes
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	log.Info("Connection cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping connection cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *ConnectionCleaner) cleanup() {
	now := utils.NowUTC()
	hbLimit := now - (entity.HeartbeatPeriodMillis + entity.HeartbeatToleranceMillis)

	conns, err := c.feed.ConnRepo.FindStale(now, hbLimit)
	if err != nil {
		log.Errorf("Cleaner: failed to fetch stale connections: %v", err)
		return
	}

	if len(conns) == 0 {
		return
	}

	log.Infof("Cleaner: Found %d stale connections. Terminating...", len(conns))

	envelope := &contract.OutgoingSocketMessage{
		Type: contract.EventSessionExpired,
	}

	for _, conn := range conns {
		// Use a fresh context for network calls, detached from the ticker's timing
		bgCtx := context.Background()

		// Notify the dashboard (so it knows NOT to try reconnecting)
		_ = c.feed.Gateway.PostToConnection(bgCtx, conn.ConnectionID, envelope)

		// Tell AWS we are dropping the connection
		_ = c.feed.Gateway.DeleteConnection(bgCtx, conn.ConnectionID)

		// Remove from our DB
		_ = c.feed.ConnRepo.Delete(conn.ConnectionID)
	}
}
