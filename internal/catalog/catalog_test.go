package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

func TestCombine(t *testing.T) {
	infos := []*domain.ServiceInfo{
		{ID: "dryer_vent_cleaning", Service: "Dryer Vent Cleaning", Duration: "1 hour"},
		{ID: "chimney", Service: "Chimney Sweep"},
		{ID: "gutter", Service: "Gutter Cleaning"},
	}
	prices := []*domain.ServicePrice{
		{Service: "Air Ducts Cleaning", Price: "$399"},
		{Service: "Dryer vent cleaning (standard)", Price: "$149", Note: "up to 10 ft"},
		{Service: "Dryer vent cleaning (roof)", Price: "$199"},
	}

	got := Combine(infos, prices)
	require.Len(t, got, 3)

	assert.Equal(t, "Dryer Vent Cleaning", got[0].Service)
	assert.Equal(t, "1 hour", got[0].Duration)
	assert.Equal(t, "$149", got[0].Price)
	assert.Equal(t, "up to 10 ft", got[0].Note)
	assert.Equal(t, Recommendations[0].Text, got[0].Recommendation)

	assert.Equal(t, unknownPrice, got[1].Price)
	assert.Empty(t, got[1].Note)
	assert.Equal(t, Recommendations[2].Text, got[1].Recommendation)

	assert.Equal(t, unknownPrice, got[2].Price)
	assert.Equal(t, noRecommendation, got[2].Recommendation)
}

func TestCombine_Empty(t *testing.T) {
	assert.Empty(t, Combine(nil, nil))
}

func TestRenderAnswers(t *testing.T) {
	answers := []*domain.AutoAnswer{
		{ID: "a", ServiceType: "Dryer Vent", Message: "Hi, this is {operatorName} from The Bay Services. {operatorName} will call you back."},
		{ID: "b", ServiceType: "Chimney", Message: "No placeholder here."},
	}

	got := RenderAnswers(answers, "Emma")

	assert.Equal(t, "Hi, this is Emma from The Bay Services. Emma will call you back.", got[0].Message)
	assert.Equal(t, "No placeholder here.", got[1].Message)
	assert.Contains(t, answers[0].Message, operatorPlaceholder)
}

func TestOperatorNames(t *testing.T) {
	rows := []domain.ScheduleRow{
		{Day: "Monday", Shifts: []domain.ShiftEntry{{Name: "Thomas"}, {Name: "David"}}},
		{Day: "Tuesday", Shifts: []domain.ShiftEntry{{Name: "David"}, {Name: "Emma"}}},
	}

	assert.Equal(t, []string{"Thomas", "David", "Emma"}, OperatorNames(rows))
	assert.Empty(t, OperatorNames(nil))
}
