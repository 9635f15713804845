// Package variation loads VariationTable: a static lookup from a
// group-signature integer (see package motif) to a canonical motif class
// id, or "unassigned" when the signature is not a tracked motif.
//
// The table is a plain two-column whitespace-separated text file, one row
// per signature, content-addressed by (level, directed) per spec §4.2/§6.
package variation
