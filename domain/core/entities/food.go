package entities

// Food is a catalog entry from the remote food table. The service only
// reads these; the catalog is maintained outside this system.
type Food struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	CaloriesPer100g float64 `json:"caloriesPer100g,omitempty"`
}
