// Package types defines the ad configuration record, the table view state
// (sort directive, filter, page window), configuration, dashboard navigation
// entries, and the standard errors shared by the adboard packages.
package types
