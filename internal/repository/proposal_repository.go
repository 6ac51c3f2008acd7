package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/brightwave-agency/proposals-service/internal/model"
)

const proposalColumns = `
	id,
	client_name,
	client_logo_url,
	slug,
	status,
	hero_title,
	hero_subtitle,
	pricing_option_1_name,
	pricing_option_1_price,
	pricing_option_1_desc,
	pricing_option_2_name,
	pricing_option_2_price,
	pricing_option_2_desc,
	custom_note,
	created_at,
	updated_at,
	viewed_at,
	accepted_at`

// Column order used when building a partial UPDATE. Iterating a fixed slice
// keeps the generated SQL deterministic.
var proposalUpdateColumns = []string{
	"client_name",
	"client_logo_url",
	"slug",
	"status",
	"hero_title",
	"hero_subtitle",
	"pricing_option_1_name",
	"pricing_option_1_price",
	"pricing_option_1_desc",
	"pricing_option_2_name",
	"pricing_option_2_price",
	"pricing_option_2_desc",
	"custom_note",
	"accepted_at",
}

type ProposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

func (r *ProposalRepository) Create(ctx context.Context, proposal model.Proposal, services []model.ProposalService) (*model.Proposal, error) {
	var saved model.Proposal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			INSERT INTO proposals (
				client_name,
				client_logo_url,
				slug,
				status,
				hero_title,
				hero_subtitle,
				pricing_option_1_name,
				pricing_option_1_price,
				pricing_option_1_desc,
				pricing_option_2_name,
				pricing_option_2_price,
				pricing_option_2_desc,
				custom_note
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING `+proposalColumns,
			proposal.ClientName,
			proposal.ClientLogoURL,
			proposal.Slug,
			proposal.Status,
			proposal.HeroTitle,
			proposal.HeroSubtitle,
			proposal.PricingOption1Name,
			proposal.PricingOption1Price,
			proposal.PricingOption1Desc,
			proposal.PricingOption2Name,
			proposal.PricingOption2Price,
			proposal.PricingOption2Desc,
			proposal.CustomNote,
		).Scan(&saved).Error
		if err != nil {
			return err
		}

		return insertServices(tx, saved.ID, services)
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ProposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	var proposal model.Proposal
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+proposalColumns+`
		FROM proposals
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&proposal).Error
	if err != nil {
		return nil, err
	}
	if proposal.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &proposal, nil
}

func (r *ProposalRepository) GetBySlug(ctx context.Context, slug string) (*model.Proposal, error) {
	var proposal model.Proposal
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+proposalColumns+`
		FROM proposals
		WHERE slug = ?
		LIMIT 1
	`, slug).Scan(&proposal).Error
	if err != nil {
		return nil, err
	}
	if proposal.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &proposal, nil
}

func (r *ProposalRepository) List(ctx context.Context) ([]model.Proposal, error) {
	var proposals []model.Proposal
	err := r.db.WithContext(ctx).Raw(`
		SELECT ` + proposalColumns + `
		FROM proposals
		ORDER BY created_at DESC
	`).Scan(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

// Update applies the given column values and refreshes updated_at. The caller
// is responsible for restricting the keys to mutable columns.
func (r *ProposalRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Proposal, error) {
	assignments := []string{"updated_at = NOW()"}
	args := make([]interface{}, 0, len(updates)+1)
	for _, column := range proposalUpdateColumns {
		value, ok := updates[column]
		if !ok {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = ?", column))
		args = append(args, value)
	}
	args = append(args, id)

	var proposal model.Proposal
	err := r.db.WithContext(ctx).Raw(`
		UPDATE proposals
		SET `+strings.Join(assignments, ", ")+`
		WHERE id = ?
		RETURNING `+proposalColumns,
		args...,
	).Scan(&proposal).Error
	if err != nil {
		return nil, err
	}
	if proposal.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &proposal, nil
}

// SetViewed writes the first-view timestamp and status. The viewed_at IS NULL
// guard makes concurrent first views collapse into a single write.
func (r *ProposalRepository) SetViewed(ctx context.Context, id uuid.UUID, viewedAt time.Time, status model.ProposalStatus) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE proposals
		SET viewed_at = ?, status = ?, updated_at = NOW()
		WHERE id = ? AND viewed_at IS NULL
	`, viewedAt, status, id).Error
}

// ReplaceServices is a full replace: every existing join row is deleted and
// the provided list inserted fresh. A partial list drops unlisted services.
func (r *ProposalRepository) ReplaceServices(ctx context.Context, proposalID uuid.UUID, services []model.ProposalService) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			DELETE FROM proposal_services WHERE proposal_id = ?
		`, proposalID).Error; err != nil {
			return err
		}
		return insertServices(tx, proposalID, services)
	})
}

func insertServices(tx *gorm.DB, proposalID uuid.UUID, services []model.ProposalService) error {
	for _, svc := range services {
		if err := tx.Exec(`
			INSERT INTO proposal_services (proposal_id, service_id, enabled, sort_order, custom_summary)
			VALUES (?, ?, ?, ?, ?)
		`, proposalID, svc.ServiceID, svc.Enabled, svc.SortOrder, svc.CustomSummary).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *ProposalRepository) ListServices(ctx context.Context, proposalID uuid.UUID) ([]model.ProposalService, error) {
	var rows []struct {
		ID               uuid.UUID
		ProposalID       uuid.UUID
		ServiceID        string
		Enabled          bool
		SortOrder        int
		CustomSummary    *string
		TemplateTitle    string
		TemplateSubtitle *string
		TemplateIcon     string
		TemplateColor    string
		TemplateSummary  string
		TemplateDetails  datatypes.JSON
		TemplateOrder    int
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			ps.id,
			ps.proposal_id,
			ps.service_id,
			ps.enabled,
			ps.sort_order,
			ps.custom_summary,
			st.title AS template_title,
			st.subtitle AS template_subtitle,
			st.icon AS template_icon,
			st.color AS template_color,
			st.summary AS template_summary,
			st.details AS template_details,
			st.sort_order AS template_order
		FROM proposal_services ps
		JOIN service_templates st ON st.id = ps.service_id
		WHERE ps.proposal_id = ?
		ORDER BY ps.sort_order ASC
	`, proposalID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	services := make([]model.ProposalService, 0, len(rows))
	for _, row := range rows {
		services = append(services, model.ProposalService{
			ID:            row.ID,
			ProposalID:    row.ProposalID,
			ServiceID:     row.ServiceID,
			Enabled:       row.Enabled,
			SortOrder:     row.SortOrder,
			CustomSummary: row.CustomSummary,
			Template: &model.ServiceTemplate{
				ID:        row.ServiceID,
				Title:     row.TemplateTitle,
				Subtitle:  row.TemplateSubtitle,
				Icon:      row.TemplateIcon,
				Color:     row.TemplateColor,
				Summary:   row.TemplateSummary,
				Details:   row.TemplateDetails,
				SortOrder: row.TemplateOrder,
			},
		})
	}
	return services, nil
}

func (r *ProposalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM proposals WHERE id = ?
	`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
