// Package entities contains domain entities used across the application.
package entities

// Category groups trivia questions. Categories are seeded reference data.
type Category struct {
	ID   int    `json:"id"`   // unique category ID
	Type string `json:"type"` // display name, e.g. "Science"
}

// CategoryMap converts categories to the id -> type map returned by the API.
func CategoryMap(categories []Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
