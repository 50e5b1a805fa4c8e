package stdf

import (
	"math"

	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

// Missing-data values shared by several kinds.
const (
	NoCount    uint32 = math.MaxUint32
	NoBin      uint16 = math.MaxUint16
	NoBurnTime uint16 = math.MaxUint16
	NoCoord    int16  = math.MinInt16
	AllSites   uint8  = math.MaxUint8
	NoPattern  uint8  = math.MaxUint8
	Space      byte   = ' '
)

var (
	negInf = float32(math.Inf(-1))
	posInf = float32(math.Inf(1))
)

func field(name string, t wire.Type) record.Field {
	return record.Field{Name: name, Type: t}
}

func array(name string, t wire.Type, count string) record.Field {
	return record.Field{Name: name, Type: t, Count: count}
}
