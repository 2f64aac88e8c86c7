// Package kubera tracks a financial portfolio over time.
//
// It captures one immutable snapshot of all account balances per calendar
// date, computes changes between snapshots at several cadences (day, week,
// month, quarter, year), and classifies holdings into allocation buckets.
//
// The snapshot store keeps one JSON file per date; the milestone functions
// decide which report cadences a date triggers and which historical date each
// cadence compares against; the retention policy prunes dense stale history
// while keeping milestone dates forever; the aggregator collapses raw
// brokerage records into reportable accounts; the delta engine and the
// allocation classifier turn two snapshots into report data.
//
// Fetching data from the Kubera API, rendering, AI summaries and email
// delivery live in the kuberaapi, renderer, insight and emailer packages.
package kubera
