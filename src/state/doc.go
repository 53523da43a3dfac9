// Package state persists the monitor's baseline: the last accepted view of
// the pNode network, together with the zero-node alert flag.
//
// The baseline lives in a single human-readable JSON document in the data
// directory. Before every rewrite, the previous version is copied to a
// backup file, and the new version is written to a temporary file and
// renamed into place, so a crash mid-write never destroys the last good
// state. Loading falls back to the backup when the main file is missing or
// corrupt.
package state
