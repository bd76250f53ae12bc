// Package analytics is the relationship-analytics engine.
//
// It turns the decoded tables of one export into enriched contact profiles
// and an aggregate NetworkAnalytics snapshot. Every function here is pure:
// no I/O, no package state, and "now" is always passed in by the caller so
// that a run is reproducible from its inputs.
//
// Pipeline:
//
//	BuildMessageIndex / BuildEndorsementIndex -> Enrich -> Aggregate
//
// Run wires the pipeline together for a whole export.
package analytics
