package models

// PriorityItem is a derived display record promoted into the summary panel.
type PriorityItem struct {
	Key    string `json:"key" yaml:"key"`
	Label  string `json:"label" yaml:"label"`
	Value  string `json:"value" yaml:"value"`
	IsLink bool   `json:"is_link,omitempty" yaml:"is_link,omitempty"`
}
