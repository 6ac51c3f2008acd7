package analytics

import (
	"encoding/json"

	"github.com/brightwave-agency/proposals-service/internal/model"
)

// Compute derives engagement metrics from a proposal's full event log. The
// input order does not matter and the log is never mutated.
func Compute(events []model.ProposalEvent) model.EngagementMetrics {
	metrics := model.EngagementMetrics{
		TotalEvents:      len(events),
		ServicesExplored: []string{},
	}

	seen := map[string]struct{}{}
	for _, event := range events {
		switch event.EventType {
		case model.EventTypeViewed:
			metrics.ViewCount++
		case model.EventTypePricingViewed:
			metrics.PricingViewCount++
		case model.EventTypeServiceClicked:
			serviceID := metadataServiceID(event.Metadata)
			if serviceID == "" {
				continue
			}
			if _, ok := seen[serviceID]; ok {
				continue
			}
			seen[serviceID] = struct{}{}
			metrics.ServicesExplored = append(metrics.ServicesExplored, serviceID)
		}
	}
	return metrics
}

// metadataServiceID pulls metadata.service_id if present. Events without the
// key (or with non-JSON metadata) simply don't count.
func metadataServiceID(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var payload struct {
		ServiceID string `json:"service_id"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.ServiceID
}
