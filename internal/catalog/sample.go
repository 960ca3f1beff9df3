package catalog

import (
	"slices"

	"github.com/mesh-intelligence/adboard/pkg/types"
)

// sampleAdConfigs is the built-in data set shown when no records file is
// configured.
var sampleAdConfigs = []types.AdConfig{
	{ID: "1", Name: "Banner Ad 1", Format: types.FormatBanner, UnitID: "ca-app-pub-xxx/yyy1", Status: types.StatusActive},
	{ID: "2", Name: "Interstitial Ad 1", Format: types.FormatInterstitial, UnitID: "ca-app-pub-xxx/yyy2", Status: types.StatusInactive},
	{ID: "3", Name: "Rewarded Ad 1", Format: types.FormatRewarded, UnitID: "ca-app-pub-xxx/yyy3", Status: types.StatusActive},
}

// Static is a Source over a fixed in-memory slice.
type Static struct {
	name    string
	records []types.AdConfig
}

// NewStatic returns a Source yielding a copy of records.
func NewStatic(name string, records []types.AdConfig) *Static {
	return &Static{name: name, records: slices.Clone(records)}
}

// Sample returns the built-in sample Source.
func Sample() *Static {
	return NewStatic("sample", sampleAdConfigs)
}

// Name implements Source.
func (s *Static) Name() string { return s.name }

// Load implements Source.
func (s *Static) Load() ([]types.AdConfig, error) {
	return slices.Clone(s.records), nil
}
