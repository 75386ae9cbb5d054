package events

import "boycottwatch/cmd/internal/contract"

type SocketEvent interface {
	GetType() contract.EventType
}

type Ack struct{}

func (*Ack) GetType() contract.EventType {
	return contract.EventAck
}

type ConnectionKill struct {
	Code   int     `json:"code"`
	Reason *string `json:"reason,omitempty"`
}

func (e *ConnectionKill) GetType() contract.EventType {
	return contract.EventConnectionKill
}

// PropositionCreated carries the whole proposition body so dashboards can
// render the new queue entry without a refetch.
type PropositionCreated struct {
	*contract.PropositionResponse
}

func (e *PropositionCreated) GetType() contract.EventType {
	return contract.EventPropositionCreated
}

// PropositionReviewed announces a decision; dashboards drop the entry from
// their pending queue.
type PropositionReviewed struct {
	PropositionID int64  `json:"id"`
	Status        string `json:"status"`
}

func (e *PropositionReviewed) GetType() contract.EventType {
	return contract.EventPropositionReviewed
}
