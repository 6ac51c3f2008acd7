package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/brightwave-agency/proposals-service/internal/model"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) List(ctx context.Context) ([]model.ServiceTemplate, error) {
	var templates []model.ServiceTemplate
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, title, subtitle, icon, color, summary, details, sort_order
		FROM service_templates
		ORDER BY sort_order ASC
	`).Scan(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}
