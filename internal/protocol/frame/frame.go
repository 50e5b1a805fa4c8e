package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

// HeaderLen is the size of every record header: body length, type, sub-type.
const HeaderLen = 4

// MaxBodyLen is the largest body a 2-byte length can describe.
const MaxBodyLen = 0xffff

var (
	ErrShortHeader = errors.New("frame: short record header")
	ErrShortBody   = errors.New("frame: record body shorter than header length")
)

// Header is the fixed record header.
type Header struct {
	Len uint16 // bytes following the header
	Typ uint8
	Sub uint8
}

// Frame is one complete record as found on the stream.
type Frame struct {
	Header Header
	Body   []byte
}

// PutHeader appends h to e using e's byte order.
func PutHeader(e *wire.Encoder, h Header) {
	e.PutU2(h.Len)
	e.PutU1(h.Typ)
	e.PutU1(h.Sub)
}

func EncodeHeader(h Header, order wire.ByteOrder) []byte {
	e := wire.NewEncoder(HeaderLen, wire.Options{Order: order})
	PutHeader(e, h)
	return e.Bytes()
}

func DecodeHeader(b []byte, order binary.ByteOrder) (Header, error) {
	if len(b) != HeaderLen {
		return Header{}, fmt.Errorf("frame: invalid header length: %d", len(b))
	}
	d := wire.NewDecoder(b, order)
	return Header{Len: d.U2(), Typ: d.U1(), Sub: d.U1()}, nil
}

// ReadRecord reads one header and its body. A clean end of stream before any
// header byte returns io.EOF.
func ReadRecord(r io.Reader, order binary.ByteOrder) (Frame, error) {
	var fixed [HeaderLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, ErrShortHeader
		}
		return Frame{}, err
	}

	h, err := DecodeHeader(fixed[:], order)
	if err != nil {
		return Frame{}, err
	}

	body := make([]byte, h.Len)
	if h.Len > 0 {
		if _, err := io.ReadFull(r, body); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return Frame{}, ErrShortBody
			}
			return Frame{}, err
		}
	}
	return Frame{Header: h, Body: body}, nil
}

// ReadAll splits a stream into records until a clean end of stream.
func ReadAll(r io.Reader, order binary.ByteOrder) ([]Frame, error) {
	var frames []Frame
	for {
		f, err := ReadRecord(r, order)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}
