package stdf

import (
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/variant"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

var bpsSchema = record.MustSchema("BPS", 20, 10,
	field("SEQ_NAME", wire.Cn),
)

// BPS opens a program section.
type BPS struct {
	SeqName string `stdf:"SEQ_NAME"`
}

func NewBPS(seqName string) *BPS {
	return &BPS{SeqName: seqName}
}

func (r *BPS) Schema() *record.Schema { return bpsSchema }

func (r *BPS) Values() []any { return []any{r.SeqName} }

var epsSchema = record.MustSchema("EPS", 20, 20)

// EPS closes the current program section. It has no fields.
type EPS struct{}

func NewEPS() *EPS { return &EPS{} }

func (r *EPS) Schema() *record.Schema { return epsSchema }

func (r *EPS) Values() []any { return []any{} }

var gdrSchema = record.MustSchema("GDR", 50, 10,
	field("FLD_CNT", wire.U2),
	array("GEN_DATA", wire.Vn, "FLD_CNT"),
)

// GDR carries free-form tagged values. FLD_CNT must equal len(GEN_DATA), pad
// values included.
type GDR struct {
	FldCnt  uint16       `stdf:"FLD_CNT"`
	GenData variant.List `stdf:"GEN_DATA"`
}

func NewGDR(values ...variant.Value) *GDR {
	return &GDR{FldCnt: uint16(len(values)), GenData: values}
}

func (r *GDR) Schema() *record.Schema { return gdrSchema }

func (r *GDR) Values() []any { return []any{r.FldCnt, r.GenData} }

var dtrSchema = record.MustSchema("DTR", 50, 30,
	field("TEXT_DAT", wire.Cn),
)

// DTR is a free-text datalog line.
type DTR struct {
	TextDat string `stdf:"TEXT_DAT"`
}

func NewDTR(textDat string) *DTR {
	return &DTR{TextDat: textDat}
}

func (r *DTR) Schema() *record.Schema { return dtrSchema }

func (r *DTR) Values() []any { return []any{r.TextDat} }
