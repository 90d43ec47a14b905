package model

// Competitor is a tracked wallet brand. Competitors come from configuration
// and are never mutated at runtime.
type Competitor struct {
	Name     string   `json:"name" mapstructure:"name"`                   // Unique display label
	Handle   string   `json:"handle" mapstructure:"handle"`               // Twitter account handle (without @)
	Icon     string   `json:"icon" mapstructure:"icon"`                   // Emoji shown next to the name
	Color    string   `json:"color" mapstructure:"color"`                 // Brand color, hex
	Category string   `json:"category,omitempty" mapstructure:"category"` // Ecosystem focus, for the partnership landscape
	Partners []string `json:"partners,omitempty" mapstructure:"partners"` // Known partners, for the partnership landscape
}
