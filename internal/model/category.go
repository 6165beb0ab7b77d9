package model

// Category is one entry in the fixed spending-category catalog. Name is the
// stable identity key; Color is display-only.
type Category struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color,omitempty"`
}
