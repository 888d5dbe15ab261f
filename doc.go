// Package gestor implements a personal-finance record keeper over flat
// JSON files: transactions, recurring templates, investment holdings,
// savings goals and configuration, plus the read-side derivations
// (dashboard totals, portfolio valuation, goal progress) built on them.
//
// The Store is the single owner of the data directory. Reads are served
// from a short-lived cache and degrade to empty collections when a file
// is missing or corrupt; writes are serialized by a per-file lock and
// replace the whole collection file atomically.
package gestor
