// Package stdf defines the STDF V4 record kinds on top of the record protocol.
//
// Each kind is a plain struct whose fields follow the kind's schema in order.
// Struct fields carry an `stdf` tag with the field name used by the data
// dictionary, which is how record scripts address them. Constructors take the
// fields a kind requires and fill every other field with its documented
// missing-data value, so a constructed record always encodes.
//
// Writer owns one output stream: it encodes each record in memory, writes it in
// a single call, and counts records and bytes.
package stdf
