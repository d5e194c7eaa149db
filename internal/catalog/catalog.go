// Package catalog assembles the operator-facing views over the service data:
// the combined service catalog and the auto-reply templates.
package catalog

import (
	"strings"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

const (
	unknownPrice     = "N/A"
	noRecommendation = "No recommendations"
)

type Recommendation struct {
	Service string `json:"service"`
	Text    string `json:"text"`
}

var Recommendations = []Recommendation{
	{
		Service: "Dryer Vent Cleaning",
		Text:    "Neglecting the cleaning of your dryer vent can lead to serious consequences. Lint buildup can overheat and ignite, increasing the risk of a fire hazard. A clogged vent also affects your daily life, leading to increased energy usage and longer drying times.",
	},
	{
		Service: "Air Ducts Cleaning",
		Text:    "Dirty air ducts can spread dust, allergens, and other contaminants throughout your home, leading to poor indoor air quality. This can worsen allergy and asthma symptoms and cause respiratory irritation.",
	},
	{
		Service: "Chimney Sweep",
		Text:    "The buildup of creosote can ignite and cause a chimney fire, which can spread to the rest of the house. Also, a dirty chimney can release carbon monoxide into your home, which is a poisonous gas.",
	},
}

// Combine joins every service info entry with the first price and the first
// recommendation whose service name contains the entry's leading word.
func Combine(infos []*domain.ServiceInfo, prices []*domain.ServicePrice) []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(infos))

	for _, info := range infos {
		entry := domain.CatalogEntry{
			ServiceInfo:    *info,
			Price:          unknownPrice,
			Recommendation: noRecommendation,
		}

		key := leadingWord(info.Service)

		for _, p := range prices {
			if strings.Contains(strings.ToLower(p.Service), key) {
				entry.Price = p.Price
				entry.Note = p.Note
				break
			}
		}

		for _, r := range Recommendations {
			if strings.Contains(strings.ToLower(r.Service), key) {
				entry.Recommendation = r.Text
				break
			}
		}

		entries = append(entries, entry)
	}

	return entries
}

func leadingWord(s string) string {
	word, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	return strings.ToLower(word)
}
