package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brightwave-agency/proposals-service/internal/model"
)

type ProposalStore interface {
	Create(ctx context.Context, proposal model.Proposal, services []model.ProposalService) (*model.Proposal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error)
	GetBySlug(ctx context.Context, slug string) (*model.Proposal, error)
	List(ctx context.Context) ([]model.Proposal, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Proposal, error)
	SetViewed(ctx context.Context, id uuid.UUID, viewedAt time.Time, status model.ProposalStatus) error
	ReplaceServices(ctx context.Context, proposalID uuid.UUID, services []model.ProposalService) error
	ListServices(ctx context.Context, proposalID uuid.UUID) ([]model.ProposalService, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TemplateStore interface {
	List(ctx context.Context) ([]model.ServiceTemplate, error)
}

type PDFGenerator interface {
	Generate(doc model.AgreementDocument) ([]byte, error)
}

type ProposalService struct {
	proposals ProposalStore
	events    EventStore
	templates TemplateStore
	pdf       PDFGenerator
}

func NewProposalService(proposals ProposalStore, events EventStore, templates TemplateStore, pdf PDFGenerator) *ProposalService {
	return &ProposalService{
		proposals: proposals,
		events:    events,
		templates: templates,
		pdf:       pdf,
	}
}

type ServiceInput struct {
	ServiceID     string
	Enabled       *bool
	SortOrder     *int
	CustomSummary *string
}

type CreateProposalInput struct {
	ClientName    string
	ClientLogoURL *string
	Slug          string
	Status        *model.ProposalStatus
	HeroTitle     *string
	HeroSubtitle  *string

	PricingOption1Name  *string
	PricingOption1Price *float64
	PricingOption1Desc  *string
	PricingOption2Name  *string
	PricingOption2Price *float64
	PricingOption2Desc  *string

	CustomNote *string
	Services   []ServiceInput
}

// UpdateProposalInput carries the allow-listed mutable fields. Nil means the
// field was absent from the request and stays untouched; anything outside
// this set never reaches storage.
type UpdateProposalInput struct {
	ClientName    *string
	ClientLogoURL *string
	Slug          *string
	Status        *model.ProposalStatus
	HeroTitle     *string
	HeroSubtitle  *string

	PricingOption1Name  *string
	PricingOption1Price *float64
	PricingOption1Desc  *string
	PricingOption2Name  *string
	PricingOption2Price *float64
	PricingOption2Desc  *string

	CustomNote *string
	Services   []ServiceInput
}

func (s *ProposalService) Create(ctx context.Context, input CreateProposalInput) (*model.Proposal, error) {
	clientName := strings.TrimSpace(input.ClientName)
	slug := strings.TrimSpace(input.Slug)
	if clientName == "" {
		return nil, fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	status := model.ProposalStatusDraft
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *input.Status)
		}
		status = *input.Status
	}

	proposal := model.Proposal{
		ClientName:          clientName,
		ClientLogoURL:       input.ClientLogoURL,
		Slug:                slug,
		Status:              status,
		HeroTitle:           stringOr(input.HeroTitle, model.DefaultHeroTitle),
		HeroSubtitle:        input.HeroSubtitle,
		PricingOption1Name:  stringOr(input.PricingOption1Name, model.DefaultPricingOption1Name),
		PricingOption1Price: floatOr(input.PricingOption1Price, model.DefaultPricingOption1Price),
		PricingOption1Desc:  stringOr(input.PricingOption1Desc, model.DefaultPricingOption1Desc),
		PricingOption2Name:  stringOr(input.PricingOption2Name, model.DefaultPricingOption2Name),
		PricingOption2Price: floatOr(input.PricingOption2Price, model.DefaultPricingOption2Price),
		PricingOption2Desc:  stringOr(input.PricingOption2Desc, model.DefaultPricingOption2Desc),
		CustomNote:          input.CustomNote,
	}

	saved, err := s.proposals.Create(ctx, proposal, buildServiceRows(input.Services))
	if err != nil {
		return nil, translateWriteError(err)
	}
	return saved, nil
}

// Get returns the record with eager-loaded services, templates, and events.
func (s *ProposalService) Get(ctx context.Context, id uuid.UUID) (*model.ProposalWithDetails, error) {
	proposal, err := s.proposals.GetByID(ctx, id)
	if err != nil {
		return nil, translateReadError(err)
	}
	services, err := s.proposals.ListServices(ctx, id)
	if err != nil {
		return nil, err
	}
	events, err := s.events.List(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.ProposalWithDetails{
		Proposal: *proposal,
		Services: services,
		Events:   events,
	}, nil
}

// GetBySlug is the landing-page read: services and templates only, no log.
func (s *ProposalService) GetBySlug(ctx context.Context, slug string) (*model.ProposalWithDetails, error) {
	proposal, err := s.proposals.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, translateReadError(err)
	}
	services, err := s.proposals.ListServices(ctx, proposal.ID)
	if err != nil {
		return nil, err
	}
	return &model.ProposalWithDetails{
		Proposal: *proposal,
		Services: services,
	}, nil
}

func (s *ProposalService) List(ctx context.Context) ([]model.ProposalSummary, error) {
	proposals, err := s.proposals.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.events.CountsByProposal(ctx)
	if err != nil {
		return nil, err
	}

	byProposal := make(map[uuid.UUID]model.EventCount, len(counts))
	for _, count := range counts {
		byProposal[count.ProposalID] = count
	}

	summaries := make([]model.ProposalSummary, 0, len(proposals))
	for _, proposal := range proposals {
		counters := byProposal[proposal.ID]
		summaries = append(summaries, model.ProposalSummary{
			Proposal:    proposal,
			TotalEvents: counters.TotalEvents,
			ViewCount:   counters.ViewCount,
		})
	}
	return summaries, nil
}

func (s *ProposalService) Update(ctx context.Context, id uuid.UUID, input UpdateProposalInput) (*model.Proposal, error) {
	updates := map[string]interface{}{}

	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setFloat := func(column string, value *float64) {
		if value != nil {
			updates[column] = *value
		}
	}

	setString("client_name", input.ClientName)
	setString("client_logo_url", input.ClientLogoURL)
	setString("slug", input.Slug)
	setString("hero_title", input.HeroTitle)
	setString("hero_subtitle", input.HeroSubtitle)
	setString("pricing_option_1_name", input.PricingOption1Name)
	setFloat("pricing_option_1_price", input.PricingOption1Price)
	setString("pricing_option_1_desc", input.PricingOption1Desc)
	setString("pricing_option_2_name", input.PricingOption2Name)
	setFloat("pricing_option_2_price", input.PricingOption2Price)
	setString("pricing_option_2_desc", input.PricingOption2Desc)
	setString("custom_note", input.CustomNote)

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *input.Status)
		}
		updates["status"] = *input.Status
		// Every transition to accepted refreshes the timestamp; acceptance is
		// not monotonic against re-acceptance.
		if *input.Status == model.ProposalStatusAccepted {
			updates["accepted_at"] = time.Now().UTC()
		}
	}

	proposal, err := s.proposals.Update(ctx, id, updates)
	if err != nil {
		return nil, translateWriteError(err)
	}

	if input.Services != nil {
		if err := s.proposals.ReplaceServices(ctx, id, buildServiceRows(input.Services)); err != nil {
			return nil, translateWriteError(err)
		}
	}
	return proposal, nil
}

func (s *ProposalService) ReplaceServices(ctx context.Context, id uuid.UUID, services []ServiceInput) error {
	if _, err := s.proposals.GetByID(ctx, id); err != nil {
		return translateReadError(err)
	}
	if err := s.proposals.ReplaceServices(ctx, id, buildServiceRows(services)); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (s *ProposalService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateReadError(s.proposals.Delete(ctx, id))
}

func (s *ProposalService) ListTemplates(ctx context.Context) ([]model.ServiceTemplate, error) {
	return s.templates.List(ctx)
}

type AgreementPDFResult struct {
	FileName string
	Content  []byte
}

// AgreementPDF renders the signed agreement from the latest
// agreement_accepted event's metadata.
func (s *ProposalService) AgreementPDF(ctx context.Context, id uuid.UUID) (*AgreementPDFResult, error) {
	proposal, err := s.proposals.GetByID(ctx, id)
	if err != nil {
		return nil, translateReadError(err)
	}

	events, err := s.events.List(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := buildAgreementDocument(*proposal, events)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(*doc)
	if err != nil {
		return nil, fmt.Errorf("render agreement pdf: %w", err)
	}
	return &AgreementPDFResult{
		FileName: fmt.Sprintf("agreement-%s.pdf", proposal.Slug),
		Content:  content,
	}, nil
}

func buildAgreementDocument(proposal model.Proposal, events []model.ProposalEvent) (*model.AgreementDocument, error) {
	// Events arrive newest first, so the first match is the latest signature.
	for _, event := range events {
		if event.EventType != model.EventTypeAgreementAccepted {
			continue
		}
		var acceptance model.AgreementAcceptance
		if len(event.Metadata) > 0 {
			if err := json.Unmarshal(event.Metadata, &acceptance); err != nil {
				return nil, fmt.Errorf("%w: malformed acceptance metadata", ErrInvalidInput)
			}
		}
		if acceptance.ClientName == "" {
			acceptance.ClientName = proposal.ClientName
		}
		return &model.AgreementDocument{
			Proposal:   proposal,
			Acceptance: acceptance,
			AcceptedAt: event.CreatedAt,
		}, nil
	}
	return nil, fmt.Errorf("%w: no signed agreement on record", ErrNotFound)
}

func buildServiceRows(inputs []ServiceInput) []model.ProposalService {
	rows := make([]model.ProposalService, 0, len(inputs))
	for i, input := range inputs {
		enabled := true
		if input.Enabled != nil {
			enabled = *input.Enabled
		}
		sortOrder := i
		if input.SortOrder != nil {
			sortOrder = *input.SortOrder
		}
		rows = append(rows, model.ProposalService{
			ServiceID:     input.ServiceID,
			Enabled:       enabled,
			SortOrder:     sortOrder,
			CustomSummary: input.CustomSummary,
		})
	}
	return rows
}

func stringOr(value *string, fallback string) string {
	if value != nil && strings.TrimSpace(*value) != "" {
		return *value
	}
	return fallback
}

func floatOr(value *float64, fallback float64) float64 {
	if value != nil && *value != 0 {
		return *value
	}
	return fallback
}

func translateReadError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func translateWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrSlugTaken
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: unknown service id", ErrInvalidInput)
	}
	return err
}
