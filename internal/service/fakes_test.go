package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightwave-agency/proposals-service/internal/model"
)

// fakeStore is an in-memory stand-in for the postgres repositories. It
// mimics the storage contracts the services rely on: slug uniqueness, the
// proposal FK on events, cascade on delete, and the viewed_at write guard.
type fakeStore struct {
	proposals map[uuid.UUID]model.Proposal
	services  map[uuid.UUID][]model.ProposalService
	events    []model.ProposalEvent
	now       time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		proposals: map[uuid.UUID]model.Proposal{},
		services:  map[uuid.UUID][]model.ProposalService{},
		now:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *fakeStore) slugTaken(slug string, except uuid.UUID) bool {
	for id, proposal := range f.proposals {
		if proposal.Slug == slug && id != except {
			return true
		}
	}
	return false
}

func (f *fakeStore) Create(_ context.Context, proposal model.Proposal, services []model.ProposalService) (*model.Proposal, error) {
	if f.slugTaken(proposal.Slug, uuid.Nil) {
		return nil, gorm.ErrDuplicatedKey
	}
	proposal.ID = uuid.New()
	proposal.CreatedAt = f.tick()
	proposal.UpdatedAt = proposal.CreatedAt
	f.proposals[proposal.ID] = proposal
	f.storeServices(proposal.ID, services)
	saved := proposal
	return &saved, nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*model.Proposal, error) {
	proposal, ok := f.proposals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := proposal
	return &found, nil
}

func (f *fakeStore) GetBySlug(_ context.Context, slug string) (*model.Proposal, error) {
	for _, proposal := range f.proposals {
		if proposal.Slug == slug {
			found := proposal
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) List(_ context.Context) ([]model.Proposal, error) {
	proposals := make([]model.Proposal, 0, len(f.proposals))
	for _, proposal := range f.proposals {
		proposals = append(proposals, proposal)
	}
	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})
	return proposals, nil
}

func (f *fakeStore) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Proposal, error) {
	proposal, ok := f.proposals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if slug, ok := updates["slug"]; ok && f.slugTaken(slug.(string), id) {
		return nil, gorm.ErrDuplicatedKey
	}
	for column, value := range updates {
		applyColumn(&proposal, column, value)
	}
	proposal.UpdatedAt = f.tick()
	f.proposals[id] = proposal
	saved := proposal
	return &saved, nil
}

func applyColumn(p *model.Proposal, column string, value interface{}) {
	switch column {
	case "client_name":
		p.ClientName = value.(string)
	case "client_logo_url":
		v := value.(string)
		p.ClientLogoURL = &v
	case "slug":
		p.Slug = value.(string)
	case "status":
		p.Status = value.(model.ProposalStatus)
	case "hero_title":
		p.HeroTitle = value.(string)
	case "hero_subtitle":
		v := value.(string)
		p.HeroSubtitle = &v
	case "pricing_option_1_name":
		p.PricingOption1Name = value.(string)
	case "pricing_option_1_price":
		p.PricingOption1Price = value.(float64)
	case "pricing_option_1_desc":
		p.PricingOption1Desc = value.(string)
	case "pricing_option_2_name":
		p.PricingOption2Name = value.(string)
	case "pricing_option_2_price":
		p.PricingOption2Price = value.(float64)
	case "pricing_option_2_desc":
		p.PricingOption2Desc = value.(string)
	case "custom_note":
		v := value.(string)
		p.CustomNote = &v
	case "accepted_at":
		t := value.(time.Time)
		p.AcceptedAt = &t
	}
}

func (f *fakeStore) SetViewed(_ context.Context, id uuid.UUID, viewedAt time.Time, status model.ProposalStatus) error {
	proposal, ok := f.proposals[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	// Same guard as the SQL: only the first write lands.
	if proposal.ViewedAt != nil {
		return nil
	}
	proposal.ViewedAt = &viewedAt
	proposal.Status = status
	f.proposals[id] = proposal
	return nil
}

func (f *fakeStore) ReplaceServices(_ context.Context, proposalID uuid.UUID, services []model.ProposalService) error {
	f.storeServices(proposalID, services)
	return nil
}

func (f *fakeStore) storeServices(proposalID uuid.UUID, services []model.ProposalService) {
	rows := make([]model.ProposalService, 0, len(services))
	for _, svc := range services {
		svc.ID = uuid.New()
		svc.ProposalID = proposalID
		rows = append(rows, svc)
	}
	f.services[proposalID] = rows
}

func (f *fakeStore) ListServices(_ context.Context, proposalID uuid.UUID) ([]model.ProposalService, error) {
	return f.services[proposalID], nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.proposals[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.proposals, id)
	delete(f.services, id)
	remaining := f.events[:0]
	for _, event := range f.events {
		if event.ProposalID != id {
			remaining = append(remaining, event)
		}
	}
	f.events = remaining
	return nil
}

func (f *fakeStore) Append(_ context.Context, event model.ProposalEvent) (*model.ProposalEvent, error) {
	if _, ok := f.proposals[event.ProposalID]; !ok {
		return nil, gorm.ErrForeignKeyViolated
	}
	event.ID = uuid.New()
	event.CreatedAt = f.tick()
	f.events = append(f.events, event)
	saved := event
	return &saved, nil
}

func (f *fakeStore) ListEvents(_ context.Context, proposalID uuid.UUID) ([]model.ProposalEvent, error) {
	events := []model.ProposalEvent{}
	for _, event := range f.events {
		if event.ProposalID == proposalID {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events, nil
}

func (f *fakeStore) CountsByProposal(_ context.Context) ([]model.EventCount, error) {
	byProposal := map[uuid.UUID]*model.EventCount{}
	for _, event := range f.events {
		count, ok := byProposal[event.ProposalID]
		if !ok {
			count = &model.EventCount{ProposalID: event.ProposalID}
			byProposal[event.ProposalID] = count
		}
		count.TotalEvents++
		if event.EventType == model.EventTypeViewed {
			count.ViewCount++
		}
	}
	counts := make([]model.EventCount, 0, len(byProposal))
	for _, count := range byProposal {
		counts = append(counts, *count)
	}
	return counts, nil
}

// fakeEventStore adapts fakeStore to the EventStore contract; the two store
// interfaces both declare List with different shapes.
type fakeEventStore struct {
	store *fakeStore
}

func (f *fakeEventStore) Append(ctx context.Context, event model.ProposalEvent) (*model.ProposalEvent, error) {
	return f.store.Append(ctx, event)
}

func (f *fakeEventStore) List(ctx context.Context, proposalID uuid.UUID) ([]model.ProposalEvent, error) {
	return f.store.ListEvents(ctx, proposalID)
}

func (f *fakeEventStore) CountsByProposal(ctx context.Context) ([]model.EventCount, error) {
	return f.store.CountsByProposal(ctx)
}

type fakeTemplateStore struct {
	templates []model.ServiceTemplate
}

func (f *fakeTemplateStore) List(_ context.Context) ([]model.ServiceTemplate, error) {
	return f.templates, nil
}
