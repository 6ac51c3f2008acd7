package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/brightwave-agency/proposals-service/internal/analytics"
	"github.com/brightwave-agency/proposals-service/internal/model"
)

type EventStore interface {
	Append(ctx context.Context, event model.ProposalEvent) (*model.ProposalEvent, error)
	List(ctx context.Context, proposalID uuid.UUID) ([]model.ProposalEvent, error)
	CountsByProposal(ctx context.Context) ([]model.EventCount, error)
}

type ExcelGenerator interface {
	Generate(report model.EngagementReport) ([]byte, error)
}

// EventService owns the append-only interaction log and the projections
// derived from it.
type EventService struct {
	events    EventStore
	proposals ProposalStore
	excel     ExcelGenerator
}

func NewEventService(events EventStore, proposals ProposalStore, excel ExcelGenerator) *EventService {
	return &EventService{
		events:    events,
		proposals: proposals,
		excel:     excel,
	}
}

type AppendEventInput struct {
	ProposalID uuid.UUID
	EventType  model.EventType
	Metadata   json.RawMessage
	IPAddress  *string
	UserAgent  *string
}

// Append records an interaction fact. A viewed event additionally runs the
// first-view rule against the proposal record within the same call: viewed_at
// is set once to the event's timestamp, and a proposal still in status sent
// advances to viewed. Later viewed events are pure log entries.
func (s *EventService) Append(ctx context.Context, input AppendEventInput) (*model.ProposalEvent, error) {
	if input.ProposalID == uuid.Nil {
		return nil, fmt.Errorf("%w: proposal id is required", ErrInvalidInput)
	}
	if !input.EventType.Valid() {
		return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, input.EventType)
	}

	event := model.ProposalEvent{
		ProposalID: input.ProposalID,
		EventType:  input.EventType,
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
	}
	if len(input.Metadata) > 0 {
		event.Metadata = datatypes.JSON(input.Metadata)
	}

	saved, err := s.events.Append(ctx, event)
	if err != nil {
		// The only constraint on the log is the proposal FK.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if saved.EventType == model.EventTypeViewed {
		if err := s.applyFirstView(ctx, saved); err != nil {
			return nil, err
		}
	}
	return saved, nil
}

func (s *EventService) applyFirstView(ctx context.Context, event *model.ProposalEvent) error {
	proposal, err := s.proposals.GetByID(ctx, event.ProposalID)
	if err != nil {
		return translateReadError(err)
	}

	viewedAt := event.CreatedAt
	if viewedAt.IsZero() {
		viewedAt = time.Now().UTC()
	}
	updated, changed := proposal.FirstView(viewedAt)
	if !changed {
		return nil
	}
	return s.proposals.SetViewed(ctx, event.ProposalID, viewedAt, updated.Status)
}

func (s *EventService) List(ctx context.Context, proposalID uuid.UUID) ([]model.ProposalEvent, error) {
	if _, err := s.proposals.GetByID(ctx, proposalID); err != nil {
		return nil, translateReadError(err)
	}
	return s.events.List(ctx, proposalID)
}

func (s *EventService) Metrics(ctx context.Context, proposalID uuid.UUID) (*model.EngagementMetrics, error) {
	if _, err := s.proposals.GetByID(ctx, proposalID); err != nil {
		return nil, translateReadError(err)
	}
	events, err := s.events.List(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	metrics := analytics.Compute(events)
	return &metrics, nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// Export builds the engagement workbook for a proposal.
func (s *EventService) Export(ctx context.Context, proposalID uuid.UUID) (*ExportResult, error) {
	proposal, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return nil, translateReadError(err)
	}
	events, err := s.events.List(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(model.EngagementReport{
		Proposal: *proposal,
		Metrics:  analytics.Compute(events),
		Events:   events,
	})
	if err != nil {
		return nil, fmt.Errorf("generate workbook: %w", err)
	}
	return &ExportResult{
		FileName: fmt.Sprintf("engagement-%s.xlsx", proposal.Slug),
		Content:  content,
	}, nil
}
