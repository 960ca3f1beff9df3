package types

// Ad formats offered for an ad unit.
const (
	FormatBanner               = "Banner"
	FormatInterstitial         = "Interstitial"
	FormatRewarded             = "Rewarded"
	FormatRewardedInterstitial = "Rewarded Interstitial"
	FormatNative               = "Native"
	FormatAppOpen              = "App Open"
)

// validFormats is the set of recognized ad format values.
var validFormats = map[string]bool{
	FormatBanner:               true,
	FormatInterstitial:         true,
	FormatRewarded:             true,
	FormatRewardedInterstitial: true,
	FormatNative:               true,
	FormatAppOpen:              true,
}

// Ad configuration statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// validStatuses is the set of recognized status values.
var validStatuses = map[string]bool{
	StatusActive:   true,
	StatusInactive: true,
}

// Sortable field names of an AdConfig, as accepted in order_by strings.
const (
	FieldName   = "name"
	FieldFormat = "format"
	FieldUnitID = "unit_id"
	FieldStatus = "status"
)

// SortableFields lists the fields a table view may be ordered by, in column order.
var SortableFields = []string{FieldName, FieldFormat, FieldUnitID, FieldStatus}

// AdConfig is one row of the ad configuration table.
type AdConfig struct {
	ID     string `json:"id"`      // Unique within a collection.
	Name   string `json:"name"`    // Display name (required, non-empty).
	Format string `json:"format"`  // One of the Format constants.
	UnitID string `json:"unit_id"` // AdMob ad unit identifier.
	Status string `json:"status"`  // One of the Status constants.
}

// Validate checks that the record's name, format, and status are well-formed.
// The ID is not checked here; uniqueness is a property of a collection.
func (a AdConfig) Validate() error {
	if a.Name == "" {
		return ErrInvalidName
	}
	if !validFormats[a.Format] {
		return ErrInvalidFormat
	}
	if !validStatuses[a.Status] {
		return ErrInvalidStatus
	}
	return nil
}

// Active reports whether the ad unit is currently serving.
func (a AdConfig) Active() bool {
	return a.Status == StatusActive
}
