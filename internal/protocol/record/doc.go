// Package record owns the length-then-write protocol shared by every record
// kind.
//
// A record is a schema plus one value per schema field. Encoding runs two
// passes over the same fields in the same order: the first sums each field's
// encoded size into the body length, the second writes the 4-byte header
// carrying that length and then each field. Array fields take their element
// count from a sibling count field named in the schema, in both passes, so no
// record kind needs its own length or emit rule.
//
// Records are encoded fully in memory before anything is written to the
// caller's stream.
package record
