package types

// NavItem is one entry of the dashboard side navigation.
type NavItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`           // Icon asset name, e.g. "ic-analytics".
	Info  string `json:"info,omitempty"` // Optional badge text.
}
