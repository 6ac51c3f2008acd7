package model

import "time"

// AgreementAcceptance is the e-signature form payload carried in the metadata
// of an agreement_accepted event.
type AgreementAcceptance struct {
	ClientName string `json:"client_name"`
	Title      string `json:"title"`
	Email      string `json:"email"`
	Signature  string `json:"signature"`
	Date       string `json:"date"`
}

// AgreementDocument is everything the PDF renderer needs.
type AgreementDocument struct {
	Proposal   Proposal
	Acceptance AgreementAcceptance
	AcceptedAt time.Time
}

// EngagementReport feeds the xlsx export: the record, its derived metrics,
// and the raw log.
type EngagementReport struct {
	Proposal Proposal
	Metrics  EngagementMetrics
	Events   []ProposalEvent
}
