package stdf

import (
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

var wirSchema = record.MustSchema("WIR", 2, 10,
	field("HEAD_NUM", wire.U1),
	field("SITE_GRP", wire.U1),
	field("START_T", wire.U4),
	field("WAFER_ID", wire.Cn),
)

// WIR opens the data of one wafer.
type WIR struct {
	HeadNum uint8  `stdf:"HEAD_NUM"`
	SiteGrp uint8  `stdf:"SITE_GRP"`
	StartT  uint32 `stdf:"START_T"`
	WaferID string `stdf:"WAFER_ID"`
}

func NewWIR(headNum uint8, startT uint32) *WIR {
	return &WIR{HeadNum: headNum, SiteGrp: AllSites, StartT: startT}
}

func (r *WIR) Schema() *record.Schema { return wirSchema }

func (r *WIR) Values() []any { return []any{r.HeadNum, r.SiteGrp, r.StartT, r.WaferID} }

var wrrSchema = record.MustSchema("WRR", 2, 20,
	field("HEAD_NUM", wire.U1),
	field("SITE_GRP", wire.U1),
	field("FINISH_T", wire.U4),
	field("PART_CNT", wire.U4),
	field("RTST_CNT", wire.U4),
	field("ABRT_CNT", wire.U4),
	field("GOOD_CNT", wire.U4),
	field("FUNC_CNT", wire.U4),
	field("WAFER_ID", wire.Cn),
	field("FABWF_ID", wire.Cn),
	field("FRAME_ID", wire.Cn),
	field("MASK_ID", wire.Cn),
	field("USR_DESC", wire.Cn),
	field("EXC_DESC", wire.Cn),
)

// WRR closes the data of one wafer. It pairs with the WIR carrying the same
// HEAD_NUM and SITE_GRP.
type WRR struct {
	HeadNum uint8  `stdf:"HEAD_NUM"`
	SiteGrp uint8  `stdf:"SITE_GRP"`
	FinishT uint32 `stdf:"FINISH_T"`
	PartCnt uint32 `stdf:"PART_CNT"`
	RtstCnt uint32 `stdf:"RTST_CNT"`
	AbrtCnt uint32 `stdf:"ABRT_CNT"`
	GoodCnt uint32 `stdf:"GOOD_CNT"`
	FuncCnt uint32 `stdf:"FUNC_CNT"`
	WaferID string `stdf:"WAFER_ID"`
	FabwfID string `stdf:"FABWF_ID"`
	FrameID string `stdf:"FRAME_ID"`
	MaskID  string `stdf:"MASK_ID"`
	UsrDesc string `stdf:"USR_DESC"`
	ExcDesc string `stdf:"EXC_DESC"`
}

func NewWRR(headNum uint8, finishT, partCnt uint32) *WRR {
	return &WRR{
		HeadNum: headNum,
		SiteGrp: AllSites,
		FinishT: finishT,
		PartCnt: partCnt,
		RtstCnt: NoCount,
		AbrtCnt: NoCount,
		GoodCnt: NoCount,
		FuncCnt: NoCount,
	}
}

func (r *WRR) Schema() *record.Schema { return wrrSchema }

func (r *WRR) Values() []any {
	return []any{
		r.HeadNum, r.SiteGrp, r.FinishT, r.PartCnt, r.RtstCnt, r.AbrtCnt, r.GoodCnt, r.FuncCnt,
		r.WaferID, r.FabwfID, r.FrameID, r.MaskID, r.UsrDesc, r.ExcDesc,
	}
}

var wcrSchema = record.MustSchema("WCR", 2, 30,
	field("WAFR_SIZ", wire.R4),
	field("DIE_HT", wire.R4),
	field("DIE_WID", wire.R4),
	field("WF_UNITS", wire.U1),
	field("WF_FLAT", wire.C1),
	field("CENTER_X", wire.I2),
	field("CENTER_Y", wire.I2),
	field("POS_X", wire.C1),
	field("POS_Y", wire.C1),
)

// WCR holds wafer and die geometry for the whole lot.
type WCR struct {
	WafrSiz float32 `stdf:"WAFR_SIZ"`
	DieHt   float32 `stdf:"DIE_HT"`
	DieWid  float32 `stdf:"DIE_WID"`
	WfUnits uint8   `stdf:"WF_UNITS"`
	WfFlat  byte    `stdf:"WF_FLAT"`
	CenterX int16   `stdf:"CENTER_X"`
	CenterY int16   `stdf:"CENTER_Y"`
	PosX    byte    `stdf:"POS_X"`
	PosY    byte    `stdf:"POS_Y"`
}

// NewWCR returns a configuration record with every field missing.
func NewWCR() *WCR {
	return &WCR{WfFlat: Space, CenterX: NoCoord, CenterY: NoCoord, PosX: Space, PosY: Space}
}

func (r *WCR) Schema() *record.Schema { return wcrSchema }

func (r *WCR) Values() []any {
	return []any{r.WafrSiz, r.DieHt, r.DieWid, r.WfUnits, r.WfFlat, r.CenterX, r.CenterY, r.PosX, r.PosY}
}
