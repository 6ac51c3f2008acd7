package model

import "github.com/google/uuid"

// EngagementMetrics are read-side projections over a proposal's event log,
// recomputed from the full log on every read.
type EngagementMetrics struct {
	ViewCount        int      `json:"view_count"`
	ServicesExplored []string `json:"services_explored"`
	PricingViewCount int      `json:"pricing_view_count"`
	TotalEvents      int      `json:"total_events"`
}

// EventCount is a per-proposal log tally used by the admin list view.
type EventCount struct {
	ProposalID  uuid.UUID `gorm:"column:proposal_id"`
	TotalEvents int64     `gorm:"column:total_events"`
	ViewCount   int64     `gorm:"column:view_count"`
}
