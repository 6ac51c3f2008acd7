package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventType string

const (
	EventTypeViewed            EventType = "viewed"
	EventTypeAccepted          EventType = "accepted"
	EventTypeDeclined          EventType = "declined"
	EventTypeServiceClicked    EventType = "service_clicked"
	EventTypePricingViewed     EventType = "pricing_viewed"
	EventTypeAgreementAccepted EventType = "agreement_accepted"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeViewed, EventTypeAccepted, EventTypeDeclined,
		EventTypeServiceClicked, EventTypePricingViewed, EventTypeAgreementAccepted:
		return true
	}
	return false
}

// ProposalEvent is an immutable interaction fact. Rows are appended and never
// updated or deleted (short of the owning proposal's cascade).
type ProposalEvent struct {
	ID         uuid.UUID      `json:"id" gorm:"column:id"`
	ProposalID uuid.UUID      `json:"proposal_id" gorm:"column:proposal_id"`
	EventType  EventType      `json:"event_type" gorm:"column:event_type"`
	Metadata   datatypes.JSON `json:"metadata" gorm:"column:metadata"`
	IPAddress  *string        `json:"ip_address" gorm:"column:ip_address"`
	UserAgent  *string        `json:"user_agent" gorm:"column:user_agent"`
	CreatedAt  time.Time      `json:"created_at" gorm:"column:created_at"`
}
