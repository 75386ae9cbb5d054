package service

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/domain/entity"
	"boycottwatch/cmd/internal/domain/events"
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConnRepo struct {
	mu    sync.Mutex
	conns map[string]*entity.Connection
}

func newFakeConnRepo(ids ...string) *fakeConnRepo {
	repo := &fakeConnRepo{conns: map[string]*entity.Connection{}}
	for _, id := range ids {
		repo.conns[id] = &entity.Connection{ConnectionID: id}
	}
	return repo
}

func (f *fakeConnRepo) Save(conn *entity.Connection) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conns[conn.ConnectionID] = conn
	return nil
}

func (f *fakeConnRepo) Delete(connID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.conns, connID)
	return nil
}

func (f *fakeConnRepo) FindAll() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []string
	for id := range f.conns {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeConnRepo) FindStale(now int64, hbLimit int64) ([]*entity.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var stale []*entity.Connection
	for _, conn := range f.conns {
		if conn.LastHeartbeatAt < hbLimit || conn.ExpiresAt < now {
			stale = append(stale, conn)
		}
	}
	return stale, nil
}

func (f *fakeConnRepo) UpdateHeartbeat(connID string, now int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	conn, ok := f.conns[connID]
	if !ok {
		return nil
	}
	conn.LastHeartbeatAt = now
	return nil
}

type fakeGateway struct {
	mu     sync.Mutex
	posted map[string][]any
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{posted: map[string][]any{}}
}

func (f *fakeGateway) PostToConnection(_ context.Context, connID string, data interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posted[connID] = append(f.posted[connID], data)
	return nil
}

func (f *fakeGateway) DeleteConnection(_ context.Context, connID string) error {
	return nil
}

func TestRegisterConnection(t *testing.T) {
	repo := newFakeConnRepo()
	svc := NewFeedService(repo, newFakeGateway())

	apierr := svc.RegisterConnection("conn-1")
	require.Nil(t, apierr)

	conn := repo.conns["conn-1"]
	require.NotNil(t, conn)
	assert.Greater(t, conn.ExpiresAt, conn.CreatedAt)
	assert.Equal(t, conn.CreatedAt, conn.LastHeartbeatAt)
}

func TestBroadcastReachesEveryConnection(t *testing.T) {
	repo := newFakeConnRepo("conn-1", "conn-2")
	gateway := newFakeGateway()
	svc := NewFeedService(repo, gateway)

	svc.Broadcast(context.Background(), &events.PropositionReviewed{PropositionID: 9, Status: "APPROVED"})

	require.Len(t, gateway.posted["conn-1"], 1)
	require.Len(t, gateway.posted["conn-2"], 1)

	envelope, ok := gateway.posted["conn-1"][0].(*contract.OutgoingSocketMessage)
	require.True(t, ok)
	assert.Equal(t, contract.EventPropositionReviewed, envelope.Type)
}

func TestHandlePingUpdatesHeartbeat(t *testing.T) {
	repo := newFakeConnRepo("conn-1")
	svc := NewFeedService(repo, newFakeGateway())

	svc.HandleMessage(&contract.IncomingSocketMessage{Type: contract.EventPing}, "conn-1")

	repo.mu.Lock()
	heartbeat := repo.conns["conn-1"].LastHeartbeatAt
	repo.mu.Unlock()
	assert.NotZero(t, heartbeat)
}

func TestRemoveConnection(t *testing.T) {
	repo := newFakeConnRepo("conn-1")
	svc := NewFeedService(repo, newFakeGateway())

	svc.RemoveConnection("conn-1")
	assert.Empty(t, repo.conns)
}
