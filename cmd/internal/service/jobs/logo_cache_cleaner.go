package jobs

import (
	"boycottwatch/cmd/internal/utils"
	"context"
	"time"

	"github.com/labstack/gommon/log"
)

const (
	// CacheTTLMillis keeps logo lookups, including the negative ones, for a
	// week before a domain is worth asking the API about again.
	CacheTTLMillis = int64(7 * 24 * 60 * 60 * 1000)
	CleanInterval  = 6 * time.Hour
)

type LogoCacheRepository interface {
	DeleteExpired(before int64) error
}

type LogoCacheCleaner struct {
	logoRepo LogoCacheRepository
}

func NewLogoCacheCleaner(repo LogoCacheRepository) *LogoCacheCleaner {
	return &LogoCacheCleaner{logoRepo: repo}
}

func (c *LogoCacheCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(CleanInterval)
	defer ticker.Stop()

	log.Info("Logo cache cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping logo cache cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *LogoCacheCleaner) cleanup() {
	now := utils.NowUTC()
	cutoff := now - CacheTTLMillis

	err := c.logoRepo.DeleteExpired(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired logo cache: %v", err)
		return
	}

	log.Debugf("Cleaner: successfully swept logo caches older than %d", cutoff)
}
