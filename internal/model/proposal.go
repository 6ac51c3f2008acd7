package model

import (
	"time"

	"github.com/google/uuid"
)

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusViewed   ProposalStatus = "viewed"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusDeclined ProposalStatus = "declined"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusViewed,
		ProposalStatusAccepted, ProposalStatusDeclined:
		return true
	}
	return false
}

// Defaults applied on create when the admin leaves the fields blank.
const (
	DefaultHeroTitle = "360° Marketing Service"

	DefaultPricingOption1Name  = "3-Month Agreement"
	DefaultPricingOption1Price = 1100
	DefaultPricingOption1Desc  = "Commit to growth with our recommended partnership plan."

	DefaultPricingOption2Name  = "Month-to-Month"
	DefaultPricingOption2Price = 1400
	DefaultPricingOption2Desc  = "Flexible month-to-month plan with no long-term commitment."
)

type Proposal struct {
	ID                  uuid.UUID      `json:"id" gorm:"column:id"`
	ClientName          string         `json:"client_name" gorm:"column:client_name"`
	ClientLogoURL       *string        `json:"client_logo_url" gorm:"column:client_logo_url"`
	Slug                string         `json:"slug" gorm:"column:slug"`
	Status              ProposalStatus `json:"status" gorm:"column:status"`
	HeroTitle           string         `json:"hero_title" gorm:"column:hero_title"`
	HeroSubtitle        *string        `json:"hero_subtitle" gorm:"column:hero_subtitle"`
	PricingOption1Name  string         `json:"pricing_option_1_name" gorm:"column:pricing_option_1_name"`
	PricingOption1Price float64        `json:"pricing_option_1_price" gorm:"column:pricing_option_1_price"`
	PricingOption1Desc  string         `json:"pricing_option_1_desc" gorm:"column:pricing_option_1_desc"`
	PricingOption2Name  string         `json:"pricing_option_2_name" gorm:"column:pricing_option_2_name"`
	PricingOption2Price float64        `json:"pricing_option_2_price" gorm:"column:pricing_option_2_price"`
	PricingOption2Desc  string         `json:"pricing_option_2_desc" gorm:"column:pricing_option_2_desc"`
	CustomNote          *string        `json:"custom_note" gorm:"column:custom_note"`
	CreatedAt           time.Time      `json:"created_at" gorm:"column:created_at"`
	UpdatedAt           time.Time      `json:"updated_at" gorm:"column:updated_at"`
	ViewedAt            *time.Time     `json:"viewed_at" gorm:"column:viewed_at"`
	AcceptedAt          *time.Time     `json:"accepted_at" gorm:"column:accepted_at"`
}

// FirstView applies the first-view rule: viewed_at is set once to the first
// viewed event's timestamp, and only a proposal still in status sent advances
// to viewed. Returns false when viewed_at is already set, in which case the
// event is a pure log entry.
func (p Proposal) FirstView(at time.Time) (Proposal, bool) {
	if p.ViewedAt != nil {
		return p, false
	}
	p.ViewedAt = &at
	if p.Status == ProposalStatusSent {
		p.Status = ProposalStatusViewed
	}
	return p, true
}

// ProposalService links a proposal to a catalog template. (proposal_id,
// service_id) is unique; sort_order drives display order.
type ProposalService struct {
	ID            uuid.UUID `json:"id" gorm:"column:id"`
	ProposalID    uuid.UUID `json:"proposal_id" gorm:"column:proposal_id"`
	ServiceID     string    `json:"service_id" gorm:"column:service_id"`
	Enabled       bool      `json:"enabled" gorm:"column:enabled"`
	SortOrder     int       `json:"sort_order" gorm:"column:sort_order"`
	CustomSummary *string   `json:"custom_summary" gorm:"column:custom_summary"`

	Template *ServiceTemplate `json:"service_template,omitempty"`
}

// ProposalWithDetails is the eager-loaded read shape: the record plus its
// service links (with templates) and/or its event log.
type ProposalWithDetails struct {
	Proposal
	Services []ProposalService `json:"proposal_services"`
	Events   []ProposalEvent   `json:"proposal_events,omitempty"`
}

// ProposalSummary is the admin list row: the record plus event counters.
type ProposalSummary struct {
	Proposal
	TotalEvents int64 `json:"total_events"`
	ViewCount   int64 `json:"view_count"`
}
