// Package store provides file-based persistence for payseal's key material.
//
// Keys live as PEM files in a single directory. Private keys are written with
// mode 0600 via a temp file and rename, so a crash never leaves a truncated
// key behind. All methods are concurrency-safe via internal locking.
package store
