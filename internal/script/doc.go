// Package script reads record scripts: TOML files holding an ordered
// [[record]] array, one table per record.
//
//	[[record]]
//	kind = "FAR"
//	CPU_TYPE = 2
//	STDF_VER = 4
//
//	[[record]]
//	kind = "GDR"
//	GEN_DATA = [{ tag = 1, value = 7 }, { tag = 0 }, { tag = 10, value = "abc" }]
//
// Keys are data dictionary field names. Single-character fields take a
// one-character string, Bn and Dn fields take a string or an array of byte
// values, and generic data takes tagged tables.
package script
