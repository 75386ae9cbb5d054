package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/domain/events"
	"boycottwatch/cmd/internal/infrastructure/aws/websocket"
	"boycottwatch/cmd/internal/utils"
	"boycottwatch/cmd/internal/utils/apierror"
	"context"

	"github.com/labstack/gommon/log"
)

// FeedSessionTTLMillis is how long a dashboard connection may live before the
// sweeper force-disconnects it, heartbeats or not.
const FeedSessionTTLMillis = int64(12 * 60 * 60 * 1000)

type ConnectionRepository interface {
	Save(conn *entity.Connection) error
	Delete(connID string) error
	FindAll() ([]string, error)
	FindStale(now int64, hbLimit int64) ([]*entity.Connection, error)
	UpdateHeartbeat(connID string, now int64) error
}

// FeedService maintains the registry of connected admin dashboards and pushes
// moderation events to all of them. There is no per-connection identity; every
// registered connection receives every broadcast.
type FeedService struct {
	ConnRepo ConnectionRepository
	Gateway  websocket.GatewayClient
}

func NewFeedService(repo ConnectionRepository, gateway websocket.GatewayClient) *FeedService {
	return &FeedService{
		ConnRepo: repo,
		Gateway:  gateway,
	}
}

func (s *FeedService) RegisterConnection(connectionID string) apierror.ErrorResponse {
	now := utils.NowUTC()
	conn := &entity.Connection{
		ConnectionID:    connectionID,
		ExpiresAt:       now + FeedSessionTTLMillis,
		LastHeartbeatAt: now, // Avoid dashboards getting swept immediately
		CreatedAt:       now,
	}

	if err := s.ConnRepo.Save(conn); err != nil {
		log.Errorf("failed to save connection: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *FeedService) RemoveConnection(connectionID string) {
	// We don't return error here because if it fails, it's not the client's fault
	_ = s.ConnRepo.Delete(connectionID)
}

func (s *FeedService) HandleMessage(msg *contract.IncomingSocketMessage, connID string) {
	switch msg.Type {
	case contract.EventPing:
		s.handlePing(connID)
	}
}

// Broadcast sends an event to every connected dashboard. This iterates
// through every active connection in the DB.
func (s *FeedService) Broadcast(ctx context.Context, evt events.SocketEvent) {
	conns, err := s.ConnRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch all connections for broadcast: %v", err)
		return
	}

	envelope := &contract.OutgoingSocketMessage{
		Type: evt.GetType(),
		Data: evt,
	}

	for _, connID := range conns {
		// We ignore errors here so one stale connection doesn't block others
		_ = s.Gateway.PostToConnection(ctx, connID, envelope)
	}
}

func (s *FeedService) DispatchToConnection(ctx context.Context, connID string, evt events.SocketEvent) {
	envelope := &contract.OutgoingSocketMessage{
		Type: evt.GetType(),
		Data: evt,
	}
	_ = s.Gateway.PostToConnection(ctx, connID, envelope)
}

func (s *FeedService) handlePing(connID string) {
	now := utils.NowUTC()
	err := s.ConnRepo.UpdateHeartbeat(connID, now)
	if err != nil {
		log.Errorf("failed to update heartbeat: %v", err)
		return
	}

	go func(conn string) {
		err := s.Gateway.PostToConnection(context.Background(), conn, &contract.OutgoingSocketMessage{
			Type: contract.EventAck,
		})
		if err != nil {
			log.Errorf("failed to post ack to conn %s: %v", conn, err)
		}
	}(connID)
}
