// Package domain defines core data models and interfaces shared across payseal.
// It contains plain types (wire/state), the immutable key set, the error kinds
// and contracts (interfaces) only.
package domain
