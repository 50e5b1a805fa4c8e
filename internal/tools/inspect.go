package tools

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/danmuck/stdfkit/internal/protocol/frame"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
	"github.com/danmuck/stdfkit/internal/stdf"
)

var ErrNoFileHeader = errors.New("tools: stream does not start with a FAR record")

// Entry is one record found by Inspect.
type Entry struct {
	Offset int64
	Kind   string
	Typ    uint8
	Sub    uint8
	Len    uint16
}

// DetectOrder reads the byte order off a leading FAR record. The CPU type
// decides when it is known, otherwise the FAR length bytes do.
func DetectOrder(prefix []byte) (binary.ByteOrder, error) {
	if len(prefix) < frame.HeaderLen+2 || prefix[2] != 0 || prefix[3] != 10 {
		return nil, ErrNoFileHeader
	}
	switch prefix[frame.HeaderLen] {
	case wire.CPUSun, wire.CPUIntel:
		return wire.OrderFor(prefix[frame.HeaderLen]), nil
	}
	switch {
	case prefix[0] == 2 && prefix[1] == 0:
		return binary.LittleEndian, nil
	case prefix[0] == 0 && prefix[1] == 2:
		return binary.BigEndian, nil
	}
	return nil, ErrNoFileHeader
}

// Inspect splits r into records. Entries read before a framing error are
// returned with the error.
func Inspect(r io.Reader) ([]Entry, binary.ByteOrder, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	order, err := DetectOrder(data)
	if err != nil {
		return nil, nil, err
	}

	frames, err := frame.ReadAll(bytes.NewReader(data), order)
	entries := make([]Entry, 0, len(frames))
	var offset int64
	for _, f := range frames {
		kind := "?"
		if k, ok := stdf.Default().ByCode(f.Header.Typ, f.Header.Sub); ok {
			kind = k.Schema.Name
		}
		entries = append(entries, Entry{
			Offset: offset,
			Kind:   kind,
			Typ:    f.Header.Typ,
			Sub:    f.Header.Sub,
			Len:    f.Header.Len,
		})
		offset += int64(frame.HeaderLen) + int64(f.Header.Len)
	}
	if err != nil {
		return entries, order, fmt.Errorf("record %d at offset %d: %w", len(entries), offset, err)
	}
	return entries, order, nil
}

// PrintEntries writes one aligned line per entry.
func PrintEntries(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tKIND\tTYP\tSUB\tLEN")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n", e.Offset, e.Kind, e.Typ, e.Sub, e.Len)
	}
	return tw.Flush()
}
