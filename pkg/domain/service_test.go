package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceForKnownSlugs(t *testing.T) {
	for _, slug := range ServiceSlugs {
		cfg := ServiceFor(slug)
		assert.Equal(t, slug, cfg.Slug)
		assert.NotEmpty(t, cfg.Title, "service %s has no title", slug)
		assert.Greater(t, cfg.MaxPrice, cfg.MinPrice, "service %s price bounds", slug)
		assert.GreaterOrEqual(t, cfg.MaxDays, cfg.MinDays, "service %s day bounds", slug)
		assert.Greater(t, cfg.UrgencyMultiplier, 1.0, "service %s multiplier", slug)
		assert.NotEmpty(t, cfg.Skills, "service %s has no predefined skills", slug)
	}
}

func TestServiceForUnknownFallsBackToWebDevelopment(t *testing.T) {
	cfg := ServiceFor("underwater-basket-weaving")
	require.Equal(t, "web-development", cfg.Slug)
	assert.Equal(t, "Web Development", cfg.Title)
	assert.Equal(t, 5000, cfg.MinPrice)
	assert.Equal(t, 50000, cfg.MaxPrice)

	// Empty key falls back the same way.
	assert.Equal(t, "web-development", ServiceFor("").Slug)
}

func TestValidService(t *testing.T) {
	assert.True(t, ValidService("resume-services"))
	assert.False(t, ValidService("resume"))
	assert.False(t, ValidService(""))
}

func TestEstimatedPrice(t *testing.T) {
	web := ServiceFor("web-development")

	tests := []struct {
		name    string
		price   float64
		urgency Urgency
		want    float64
	}{
		{"normal passes through", 10000, UrgencyNormal, 10000},
		{"urgent applies multiplier", 10000, UrgencyUrgent, 15000},
		{"urgent clamps to max price", 40000, UrgencyUrgent, 50000},
		{"urgent at max stays at max", 50000, UrgencyUrgent, 50000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimatedPrice(tt.price, tt.urgency, web), 0.001)
		})
	}
}
