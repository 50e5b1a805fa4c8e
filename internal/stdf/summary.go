package stdf

import (
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

var pcrSchema = record.MustSchema("PCR", 1, 30,
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
	field("PART_CNT", wire.U4),
	field("RTST_CNT", wire.U4),
	field("ABRT_CNT", wire.U4),
	field("GOOD_CNT", wire.U4),
	field("FUNC_CNT", wire.U4),
)

// PCR holds part counts for one site, or for all sites when HEAD_NUM is 255.
type PCR struct {
	HeadNum uint8  `stdf:"HEAD_NUM"`
	SiteNum uint8  `stdf:"SITE_NUM"`
	PartCnt uint32 `stdf:"PART_CNT"`
	RtstCnt uint32 `stdf:"RTST_CNT"`
	AbrtCnt uint32 `stdf:"ABRT_CNT"`
	GoodCnt uint32 `stdf:"GOOD_CNT"`
	FuncCnt uint32 `stdf:"FUNC_CNT"`
}

func NewPCR(headNum, siteNum uint8, partCnt uint32) *PCR {
	return &PCR{
		HeadNum: headNum,
		SiteNum: siteNum,
		PartCnt: partCnt,
		RtstCnt: NoCount,
		AbrtCnt: NoCount,
		GoodCnt: NoCount,
		FuncCnt: NoCount,
	}
}

func (r *PCR) Schema() *record.Schema { return pcrSchema }

func (r *PCR) Values() []any {
	return []any{r.HeadNum, r.SiteNum, r.PartCnt, r.RtstCnt, r.AbrtCnt, r.GoodCnt, r.FuncCnt}
}

var hbrSchema = record.MustSchema("HBR", 1, 40,
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
	field("HBIN_NUM", wire.U2),
	field("HBIN_CNT", wire.U4),
	field("HBIN_PF", wire.C1),
	field("HBIN_NAM", wire.Cn),
)

// HBR counts parts physically placed in one hardware bin.
type HBR struct {
	HeadNum uint8  `stdf:"HEAD_NUM"`
	SiteNum uint8  `stdf:"SITE_NUM"`
	HbinNum uint16 `stdf:"HBIN_NUM"`
	HbinCnt uint32 `stdf:"HBIN_CNT"`
	HbinPF  byte   `stdf:"HBIN_PF"`
	HbinNam string `stdf:"HBIN_NAM"`
}

func NewHBR(headNum, siteNum uint8, hbinNum uint16, hbinCnt uint32) *HBR {
	return &HBR{HeadNum: headNum, SiteNum: siteNum, HbinNum: hbinNum, HbinCnt: hbinCnt, HbinPF: Space}
}

func (r *HBR) Schema() *record.Schema { return hbrSchema }

func (r *HBR) Values() []any {
	return []any{r.HeadNum, r.SiteNum, r.HbinNum, r.HbinCnt, r.HbinPF, r.HbinNam}
}

var sbrSchema = record.MustSchema("SBR", 1, 50,
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
	field("SBIN_NUM", wire.U2),
	field("SBIN_CNT", wire.U4),
	field("SBIN_PF", wire.C1),
	field("SBIN_NAM", wire.Cn),
)

// SBR counts parts logically associated with one software bin.
type SBR struct {
	HeadNum uint8  `stdf:"HEAD_NUM"`
	SiteNum uint8  `stdf:"SITE_NUM"`
	SbinNum uint16 `stdf:"SBIN_NUM"`
	SbinCnt uint32 `stdf:"SBIN_CNT"`
	SbinPF  byte   `stdf:"SBIN_PF"`
	SbinNam string `stdf:"SBIN_NAM"`
}

func NewSBR(headNum, siteNum uint8, sbinNum uint16, sbinCnt uint32) *SBR {
	return &SBR{HeadNum: headNum, SiteNum: siteNum, SbinNum: sbinNum, SbinCnt: sbinCnt, SbinPF: Space}
}

func (r *SBR) Schema() *record.Schema { return sbrSchema }

func (r *SBR) Values() []any {
	return []any{r.HeadNum, r.SiteNum, r.SbinNum, r.SbinCnt, r.SbinPF, r.SbinNam}
}

var pmrSchema = record.MustSchema("PMR", 1, 60,
	field("PMR_INDX", wire.U2),
	field("CHAN_TYP", wire.U2),
	field("CHAN_NAM", wire.Cn),
	field("PHY_NAM", wire.Cn),
	field("LOG_NAM", wire.Cn),
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
)

// PMR maps one tester channel to its physical and logical pin names.
type PMR struct {
	PmrIndx uint16 `stdf:"PMR_INDX"`
	ChanTyp uint16 `stdf:"CHAN_TYP"`
	ChanNam string `stdf:"CHAN_NAM"`
	PhyNam  string `stdf:"PHY_NAM"`
	LogNam  string `stdf:"LOG_NAM"`
	HeadNum uint8  `stdf:"HEAD_NUM"`
	SiteNum uint8  `stdf:"SITE_NUM"`
}

func NewPMR(pmrIndx uint16) *PMR {
	return &PMR{PmrIndx: pmrIndx, HeadNum: 1, SiteNum: 1}
}

func (r *PMR) Schema() *record.Schema { return pmrSchema }

func (r *PMR) Values() []any {
	return []any{r.PmrIndx, r.ChanTyp, r.ChanNam, r.PhyNam, r.LogNam, r.HeadNum, r.SiteNum}
}

var pgrSchema = record.MustSchema("PGR", 1, 62,
	field("GRP_INDX", wire.U2),
	field("GRP_NAM", wire.Cn),
	field("INDX_CNT", wire.U2),
	array("PMR_INDX", wire.U2, "INDX_CNT"),
)

// PGR names a group of pins. INDX_CNT governs PMR_INDX.
type PGR struct {
	GrpIndx uint16   `stdf:"GRP_INDX"`
	GrpNam  string   `stdf:"GRP_NAM"`
	IndxCnt uint16   `stdf:"INDX_CNT"`
	PmrIndx []uint16 `stdf:"PMR_INDX"`
}

func NewPGR(grpIndx uint16, pmrIndx ...uint16) *PGR {
	return &PGR{GrpIndx: grpIndx, IndxCnt: uint16(len(pmrIndx)), PmrIndx: pmrIndx}
}

func (r *PGR) Schema() *record.Schema { return pgrSchema }

func (r *PGR) Values() []any { return []any{r.GrpIndx, r.GrpNam, r.IndxCnt, r.PmrIndx} }

var plrSchema = record.MustSchema("PLR", 1, 63,
	field("GRP_CNT", wire.U2),
	array("GRP_INDX", wire.U2, "GRP_CNT"),
	array("GRP_MODE", wire.U2, "GRP_CNT"),
	array("GRP_RADX", wire.U1, "GRP_CNT"),
	array("PGM_CHAR", wire.Cn, "GRP_CNT"),
	array("RTN_CHAR", wire.Cn, "GRP_CNT"),
	array("PGM_CHAL", wire.Cn, "GRP_CNT"),
	array("RTN_CHAL", wire.Cn, "GRP_CNT"),
)

// PLR sets display modes and radixes for pins or pin groups. GRP_CNT governs
// every array.
type PLR struct {
	GrpCnt  uint16   `stdf:"GRP_CNT"`
	GrpIndx []uint16 `stdf:"GRP_INDX"`
	GrpMode []uint16 `stdf:"GRP_MODE"`
	GrpRadx []uint8  `stdf:"GRP_RADX"`
	PgmChar []string `stdf:"PGM_CHAR"`
	RtnChar []string `stdf:"RTN_CHAR"`
	PgmChal []string `stdf:"PGM_CHAL"`
	RtnChal []string `stdf:"RTN_CHAL"`
}

func NewPLR(grpIndx ...uint16) *PLR {
	return &PLR{GrpCnt: uint16(len(grpIndx)), GrpIndx: grpIndx}
}

func (r *PLR) Schema() *record.Schema { return plrSchema }

func (r *PLR) Values() []any {
	return []any{r.GrpCnt, r.GrpIndx, r.GrpMode, r.GrpRadx, r.PgmChar, r.RtnChar, r.PgmChal, r.RtnChal}
}

var rdrSchema = record.MustSchema("RDR", 1, 70,
	field("NUM_BINS", wire.U2),
	array("RTST_BIN", wire.U2, "NUM_BINS"),
)

// RDR lists the bins being retested. NUM_BINS governs RTST_BIN.
type RDR struct {
	NumBins uint16   `stdf:"NUM_BINS"`
	RtstBin []uint16 `stdf:"RTST_BIN"`
}

func NewRDR(rtstBin ...uint16) *RDR {
	return &RDR{NumBins: uint16(len(rtstBin)), RtstBin: rtstBin}
}

func (r *RDR) Schema() *record.Schema { return rdrSchema }

func (r *RDR) Values() []any { return []any{r.NumBins, r.RtstBin} }

var sdrSchema = record.MustSchema("SDR", 1, 80,
	field("HEAD_NUM", wire.U1),
	field("SITE_GRP", wire.U1),
	field("SITE_CNT", wire.U1),
	array("SITE_NUM", wire.U1, "SITE_CNT"),
	field("HAND_TYP", wire.Cn),
	field("HAND_ID", wire.Cn),
	field("CARD_TYP", wire.Cn),
	field("CARD_ID", wire.Cn),
	field("LOAD_TYP", wire.Cn),
	field("LOAD_ID", wire.Cn),
	field("DIB_TYP", wire.Cn),
	field("DIB_ID", wire.Cn),
	field("CABL_TYP", wire.Cn),
	field("CABL_ID", wire.Cn),
	field("CONT_TYP", wire.Cn),
	field("CONT_ID", wire.Cn),
	field("LASR_TYP", wire.Cn),
	field("LASR_ID", wire.Cn),
	field("EXTR_TYP", wire.Cn),
	field("EXTR_ID", wire.Cn),
)

// SDR describes the hardware of one site group. SITE_CNT governs SITE_NUM.
type SDR struct {
	HeadNum uint8   `stdf:"HEAD_NUM"`
	SiteGrp uint8   `stdf:"SITE_GRP"`
	SiteCnt uint8   `stdf:"SITE_CNT"`
	SiteNum []uint8 `stdf:"SITE_NUM"`
	HandTyp string  `stdf:"HAND_TYP"`
	HandID  string  `stdf:"HAND_ID"`
	CardTyp string  `stdf:"CARD_TYP"`
	CardID  string  `stdf:"CARD_ID"`
	LoadTyp string  `stdf:"LOAD_TYP"`
	LoadID  string  `stdf:"LOAD_ID"`
	DibTyp  string  `stdf:"DIB_TYP"`
	DibID   string  `stdf:"DIB_ID"`
	CablTyp string  `stdf:"CABL_TYP"`
	CablID  string  `stdf:"CABL_ID"`
	ContTyp string  `stdf:"CONT_TYP"`
	ContID  string  `stdf:"CONT_ID"`
	LasrTyp string  `stdf:"LASR_TYP"`
	LasrID  string  `stdf:"LASR_ID"`
	ExtrTyp string  `stdf:"EXTR_TYP"`
	ExtrID  string  `stdf:"EXTR_ID"`
}

func NewSDR(headNum, siteGrp uint8, siteNum ...uint8) *SDR {
	return &SDR{HeadNum: headNum, SiteGrp: siteGrp, SiteCnt: uint8(len(siteNum)), SiteNum: siteNum}
}

func (r *SDR) Schema() *record.Schema { return sdrSchema }

func (r *SDR) Values() []any {
	return []any{
		r.HeadNum, r.SiteGrp, r.SiteCnt, r.SiteNum,
		r.HandTyp, r.HandID, r.CardTyp, r.CardID, r.LoadTyp, r.LoadID, r.DibTyp, r.DibID,
		r.CablTyp, r.CablID, r.ContTyp, r.ContID, r.LasrTyp, r.LasrID, r.ExtrTyp, r.ExtrID,
	}
}
