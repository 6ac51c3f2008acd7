package analytics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightwave-agency/proposals-service/internal/model"
)

func event(eventType model.EventType, metadata string) model.ProposalEvent {
	e := model.ProposalEvent{EventType: eventType}
	if metadata != "" {
		e.Metadata = []byte(metadata)
	}
	return e
}

func TestCompute_EmptyLog(t *testing.T) {
	metrics := Compute(nil)

	assert.Equal(t, 0, metrics.ViewCount)
	assert.Equal(t, 0, metrics.PricingViewCount)
	assert.Equal(t, 0, metrics.TotalEvents)
	assert.NotNil(t, metrics.ServicesExplored)
	assert.Empty(t, metrics.ServicesExplored)
}

func TestCompute_CountsByType(t *testing.T) {
	metrics := Compute([]model.ProposalEvent{
		event(model.EventTypeViewed, ""),
		event(model.EventTypeViewed, ""),
		event(model.EventTypePricingViewed, ""),
		event(model.EventTypeAccepted, ""),
		event(model.EventTypeAgreementAccepted, ""),
	})

	assert.Equal(t, 2, metrics.ViewCount)
	assert.Equal(t, 1, metrics.PricingViewCount)
	assert.Equal(t, 5, metrics.TotalEvents)
	assert.Empty(t, metrics.ServicesExplored)
}

func TestCompute_DistinctServiceClicks(t *testing.T) {
	metrics := Compute([]model.ProposalEvent{
		event(model.EventTypeServiceClicked, `{"service_id":"seo"}`),
		event(model.EventTypeServiceClicked, `{"service_id":"seo"}`),
		event(model.EventTypeServiceClicked, `{"service_id":"social"}`),
		event(model.EventTypeServiceClicked, `{"service_id":"seo"}`),
	})

	assert.Equal(t, []string{"seo", "social"}, metrics.ServicesExplored)
	assert.Equal(t, 4, metrics.TotalEvents)
}

func TestCompute_ToleratesBadMetadata(t *testing.T) {
	metrics := Compute([]model.ProposalEvent{
		event(model.EventTypeServiceClicked, ""),
		event(model.EventTypeServiceClicked, `not json`),
		event(model.EventTypeServiceClicked, `{"unrelated":true}`),
		event(model.EventTypeServiceClicked, `{"service_id":"design"}`),
	})

	assert.Equal(t, []string{"design"}, metrics.ServicesExplored)
	assert.Equal(t, 4, metrics.TotalEvents)
}

func TestCompute_OrderIndependentCounts(t *testing.T) {
	events := []model.ProposalEvent{
		event(model.EventTypeViewed, ""),
		event(model.EventTypePricingViewed, ""),
		event(model.EventTypeServiceClicked, `{"service_id":"seo"}`),
	}
	reversed := []model.ProposalEvent{events[2], events[1], events[0]}

	forward := Compute(events)
	backward := Compute(reversed)

	assert.Equal(t, forward.ViewCount, backward.ViewCount)
	assert.Equal(t, forward.PricingViewCount, backward.PricingViewCount)
	assert.Equal(t, forward.TotalEvents, backward.TotalEvents)
	assert.ElementsMatch(t, forward.ServicesExplored, backward.ServicesExplored)
}

func TestMetricsSerializeWithStableKeys(t *testing.T) {
	payload, err := json.Marshal(Compute(nil))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"view_count":0,"services_explored":[],"pricing_view_count":0,"total_events":0}`, string(payload))
}
