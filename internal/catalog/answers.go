package catalog

import (
	"strings"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

const operatorPlaceholder = "{operatorName}"

// RenderAnswers fills the operator's name into every template.
func RenderAnswers(answers []*domain.AutoAnswer, operatorName string) []domain.AutoAnswer {
	rendered := make([]domain.AutoAnswer, 0, len(answers))
	for _, a := range answers {
		rendered = append(rendered, domain.AutoAnswer{
			ID:          a.ID,
			ServiceType: a.ServiceType,
			Message:     strings.ReplaceAll(a.Message, operatorPlaceholder, operatorName),
		})
	}
	return rendered
}

// OperatorNames lists everyone who appears in the given schedule rows, in the
// order they first appear.
func OperatorNames(rows []domain.ScheduleRow) []string {
	names := make([]string, 0)
	seen := make(map[string]bool)
	for _, r := range rows {
		for _, e := range r.Shifts {
			if seen[e.Name] {
				continue
			}
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}
