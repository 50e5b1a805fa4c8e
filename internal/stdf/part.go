package stdf

import (
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

var pirSchema = record.MustSchema("PIR", 5, 10,
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
)

// PIR marks the start of testing for one part.
type PIR struct {
	HeadNum uint8 `stdf:"HEAD_NUM"`
	SiteNum uint8 `stdf:"SITE_NUM"`
}

func NewPIR(headNum, siteNum uint8) *PIR {
	return &PIR{HeadNum: headNum, SiteNum: siteNum}
}

func (r *PIR) Schema() *record.Schema { return pirSchema }

func (r *PIR) Values() []any { return []any{r.HeadNum, r.SiteNum} }

var prrSchema = record.MustSchema("PRR", 5, 20,
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
	field("PART_FLG", wire.B1),
	field("NUM_TEST", wire.U2),
	field("HARD_BIN", wire.U2),
	field("SOFT_BIN", wire.U2),
	field("X_COORD", wire.I2),
	field("Y_COORD", wire.I2),
	field("TEST_T", wire.U4),
	field("PART_ID", wire.Cn),
	field("PART_TXT", wire.Cn),
	field("PART_FIX", wire.Bn),
)

// PRR closes the data of one part.
type PRR struct {
	HeadNum uint8  `stdf:"HEAD_NUM"`
	SiteNum uint8  `stdf:"SITE_NUM"`
	PartFlg uint8  `stdf:"PART_FLG"`
	NumTest uint16 `stdf:"NUM_TEST"`
	HardBin uint16 `stdf:"HARD_BIN"`
	SoftBin uint16 `stdf:"SOFT_BIN"`
	XCoord  int16  `stdf:"X_COORD"`
	YCoord  int16  `stdf:"Y_COORD"`
	TestT   uint32 `stdf:"TEST_T"`
	PartID  string `stdf:"PART_ID"`
	PartTxt string `stdf:"PART_TXT"`
	PartFix []byte `stdf:"PART_FIX"`
}

func NewPRR(headNum, siteNum, partFlg uint8, numTest, hardBin uint16) *PRR {
	return &PRR{
		HeadNum: headNum,
		SiteNum: siteNum,
		PartFlg: partFlg,
		NumTest: numTest,
		HardBin: hardBin,
		SoftBin: NoBin,
		XCoord:  NoCoord,
		YCoord:  NoCoord,
	}
}

func (r *PRR) Schema() *record.Schema { return prrSchema }

func (r *PRR) Values() []any {
	return []any{
		r.HeadNum, r.SiteNum, r.PartFlg, r.NumTest, r.HardBin, r.SoftBin,
		r.XCoord, r.YCoord, r.TestT, r.PartID, r.PartTxt, r.PartFix,
	}
}
