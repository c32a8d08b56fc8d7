package entity

// ConfigKeyInfo describes one configuration key for documentation output.
type ConfigKeyInfo struct {
	// Key is the dotted path, e.g. "theme.backend".
	Key         string   `json:"key"`
	Type        string   `json:"type"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"`
	Range       string   `json:"range,omitempty"`
	// Section groups related keys, e.g. "Theme".
	Section string `json:"section"`
}
