package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'proposal_status') THEN
			CREATE TYPE proposal_status AS ENUM ('draft', 'sent', 'viewed', 'accepted', 'declined');
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'proposal_event_type') THEN
			CREATE TYPE proposal_event_type AS ENUM ('viewed', 'accepted', 'declined', 'service_clicked', 'pricing_viewed', 'agreement_accepted');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS service_templates (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		subtitle TEXT,
		icon TEXT NOT NULL,
		color TEXT NOT NULL,
		summary TEXT NOT NULL,
		details JSONB NOT NULL DEFAULT '[]'::jsonb,
		sort_order INT NOT NULL DEFAULT 0
	);`,
	`CREATE TABLE IF NOT EXISTS proposals (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		client_name TEXT NOT NULL,
		client_logo_url TEXT,
		slug TEXT NOT NULL,
		status proposal_status NOT NULL DEFAULT 'draft',
		hero_title TEXT NOT NULL,
		hero_subtitle TEXT,
		pricing_option_1_name TEXT NOT NULL,
		pricing_option_1_price NUMERIC(12,2) NOT NULL,
		pricing_option_1_desc TEXT NOT NULL,
		pricing_option_2_name TEXT NOT NULL,
		pricing_option_2_price NUMERIC(12,2) NOT NULL,
		pricing_option_2_desc TEXT NOT NULL,
		custom_note TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		viewed_at TIMESTAMPTZ,
		accepted_at TIMESTAMPTZ
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_proposals_slug ON proposals (slug);`,
	`CREATE INDEX IF NOT EXISTS idx_proposals_status ON proposals (status);`,
	`CREATE TABLE IF NOT EXISTS proposal_services (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		proposal_id UUID NOT NULL REFERENCES proposals(id) ON DELETE CASCADE,
		service_id TEXT NOT NULL REFERENCES service_templates(id),
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		sort_order INT NOT NULL DEFAULT 0,
		custom_summary TEXT
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_proposal_services_proposal_service ON proposal_services (proposal_id, service_id);`,
	`CREATE TABLE IF NOT EXISTS proposal_events (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		proposal_id UUID NOT NULL REFERENCES proposals(id) ON DELETE CASCADE,
		event_type proposal_event_type NOT NULL,
		metadata JSONB,
		ip_address TEXT,
		user_agent TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_proposal_events_proposal_id ON proposal_events (proposal_id, created_at DESC);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
