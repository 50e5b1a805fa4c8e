// Package variant encodes self-describing generic data values: a one-byte
// type tag followed by the payload for that tag.
package variant
