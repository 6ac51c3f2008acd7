package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightwave-agency/proposals-service/internal/model"
)

// EventRepository is the append-only interaction log. There is no update or
// delete path; rows vanish only with the owning proposal's cascade.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Append(ctx context.Context, event model.ProposalEvent) (*model.ProposalEvent, error) {
	var saved model.ProposalEvent
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO proposal_events (proposal_id, event_type, metadata, ip_address, user_agent)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, proposal_id, event_type, metadata, ip_address, user_agent, created_at
	`,
		event.ProposalID,
		event.EventType,
		event.Metadata,
		event.IPAddress,
		event.UserAgent,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *EventRepository) List(ctx context.Context, proposalID uuid.UUID) ([]model.ProposalEvent, error) {
	var events []model.ProposalEvent
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, proposal_id, event_type, metadata, ip_address, user_agent, created_at
		FROM proposal_events
		WHERE proposal_id = ?
		ORDER BY created_at DESC
	`, proposalID).Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CountsByProposal returns per-proposal event totals for the admin list view.
func (r *EventRepository) CountsByProposal(ctx context.Context) ([]model.EventCount, error) {
	var counts []model.EventCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			proposal_id,
			COUNT(*) AS total_events,
			COUNT(*) FILTER (WHERE event_type = 'viewed') AS view_count
		FROM proposal_events
		GROUP BY proposal_id
	`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
