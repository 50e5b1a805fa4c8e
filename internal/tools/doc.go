// Package tools holds the stdfgen run helpers: generating a record stream
// from a script and listing the records of an existing stream.
package tools
