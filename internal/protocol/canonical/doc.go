// Package canonical renders field sets into the deterministic string that
// gets signed.
//
// # Format
//
// Field names are sorted by byte order, the "signature" field is skipped, and
// every remaining field is rendered as name=value. Fields that render empty
// (empty strings, nil, JSON null) are dropped; 0 and false are kept. The
// surviving pairs are joined with '&'.
//
// Nested objects are rendered with JSON, the single compact JSON form used
// throughout payseal: no insignificant whitespace, no HTML escaping, struct
// fields in declaration order.
//
// The output depends only on the input values, never on map iteration order,
// platform or locale.
package canonical
