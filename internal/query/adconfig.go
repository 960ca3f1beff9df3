package query

import "github.com/mesh-intelligence/adboard/pkg/types"

// NewAdConfigEngine returns the engine for the ad configuration table,
// ordered by name by default.
func NewAdConfigEngine() *Engine[types.AdConfig] {
	return New(
		func(a types.AdConfig) string { return a.Name },
		By(types.FieldName, func(a types.AdConfig) string { return a.Name }),
		By(types.FieldFormat, func(a types.AdConfig) string { return a.Format }),
		By(types.FieldUnitID, func(a types.AdConfig) string { return a.UnitID }),
		By(types.FieldStatus, func(a types.AdConfig) string { return a.Status }),
	)
}
