// Package editor implements the batch parameter editor: an ordered,
// duplicate-free collection of (parameter, value) entries plus the staging
// fields that feed it.
//
// The editor is driven one action at a time. Every accepted action yields a
// new immutable [Snapshot] that the presentation layer re-reads; rendering a
// snapshot never mutates the editor. Row actions computed from one snapshot
// and dispatched together are applied in descending index order so an earlier
// removal never shifts the index of a later one.
//
// A BatchEditor is owned by exactly one session and is not safe for
// concurrent use.
package editor
