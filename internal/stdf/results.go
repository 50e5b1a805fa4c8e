package stdf

import (
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

var tsrSchema = record.MustSchema("TSR", 10, 30,
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
	field("TEST_TYP", wire.C1),
	field("TEST_NUM", wire.U4),
	field("EXEC_CNT", wire.U4),
	field("FAIL_CNT", wire.U4),
	field("ALRM_CNT", wire.U4),
	field("TEST_NAM", wire.Cn),
	field("SEQ_NAME", wire.Cn),
	field("TEST_LBL", wire.Cn),
	field("OPT_FLAG", wire.B1),
	field("TEST_TIM", wire.R4),
	field("TEST_MIN", wire.R4),
	field("TEST_MAX", wire.R4),
	field("TST_SUMS", wire.R4),
	field("TST_SQRS", wire.R4),
)

// TSR summarizes executions and failures of one test.
type TSR struct {
	HeadNum uint8   `stdf:"HEAD_NUM"`
	SiteNum uint8   `stdf:"SITE_NUM"`
	TestTyp byte    `stdf:"TEST_TYP"`
	TestNum uint32  `stdf:"TEST_NUM"`
	ExecCnt uint32  `stdf:"EXEC_CNT"`
	FailCnt uint32  `stdf:"FAIL_CNT"`
	AlrmCnt uint32  `stdf:"ALRM_CNT"`
	TestNam string  `stdf:"TEST_NAM"`
	SeqName string  `stdf:"SEQ_NAME"`
	TestLbl string  `stdf:"TEST_LBL"`
	OptFlag uint8   `stdf:"OPT_FLAG"`
	TestTim float32 `stdf:"TEST_TIM"`
	TestMin float32 `stdf:"TEST_MIN"`
	TestMax float32 `stdf:"TEST_MAX"`
	TstSums float32 `stdf:"TST_SUMS"`
	TstSqrs float32 `stdf:"TST_SQRS"`
}

func NewTSR(headNum, siteNum uint8, testNum uint32) *TSR {
	return &TSR{
		HeadNum: headNum,
		SiteNum: siteNum,
		TestTyp: Space,
		TestNum: testNum,
		ExecCnt: NoCount,
		FailCnt: NoCount,
		AlrmCnt: NoCount,
		TestTim: -1,
		TestMin: -1,
		TestMax: -1,
		TstSums: -1,
		TstSqrs: -1,
	}
}

func (r *TSR) Schema() *record.Schema { return tsrSchema }

func (r *TSR) Values() []any {
	return []any{
		r.HeadNum, r.SiteNum, r.TestTyp, r.TestNum, r.ExecCnt, r.FailCnt, r.AlrmCnt,
		r.TestNam, r.SeqName, r.TestLbl, r.OptFlag,
		r.TestTim, r.TestMin, r.TestMax, r.TstSums, r.TstSqrs,
	}
}

var ptrSchema = record.MustSchema("PTR", 15, 10,
	field("TEST_NUM", wire.U4),
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
	field("TEST_FLG", wire.B1),
	field("PARM_FLG", wire.B1),
	field("RESULT", wire.R4),
	field("TEST_TXT", wire.Cn),
	field("ALARM_ID", wire.Cn),
	field("OPT_FLAG", wire.B1),
	field("RES_SCAL", wire.I1),
	field("LLM_SCAL", wire.I1),
	field("HLM_SCAL", wire.I1),
	field("LO_LIMIT", wire.R4),
	field("HI_LIMIT", wire.R4),
	field("UNITS", wire.Cn),
	field("C_RESFMT", wire.Cn),
	field("C_LLMFMT", wire.Cn),
	field("C_HLMFMT", wire.Cn),
	field("LO_SPEC", wire.R4),
	field("HI_SPEC", wire.R4),
)

// PTR is one parametric test result.
type PTR struct {
	TestNum uint32  `stdf:"TEST_NUM"`
	HeadNum uint8   `stdf:"HEAD_NUM"`
	SiteNum uint8   `stdf:"SITE_NUM"`
	TestFlg uint8   `stdf:"TEST_FLG"`
	ParmFlg uint8   `stdf:"PARM_FLG"`
	Result  float32 `stdf:"RESULT"`
	TestTxt string  `stdf:"TEST_TXT"`
	AlarmID string  `stdf:"ALARM_ID"`
	OptFlag uint8   `stdf:"OPT_FLAG"`
	ResScal int8    `stdf:"RES_SCAL"`
	LlmScal int8    `stdf:"LLM_SCAL"`
	HlmScal int8    `stdf:"HLM_SCAL"`
	LoLimit float32 `stdf:"LO_LIMIT"`
	HiLimit float32 `stdf:"HI_LIMIT"`
	Units   string  `stdf:"UNITS"`
	CResfmt string  `stdf:"C_RESFMT"`
	CLlmfmt string  `stdf:"C_LLMFMT"`
	CHlmfmt string  `stdf:"C_HLMFMT"`
	LoSpec  float32 `stdf:"LO_SPEC"`
	HiSpec  float32 `stdf:"HI_SPEC"`
}

func NewPTR(testNum uint32, headNum, siteNum, testFlg, parmFlg uint8, result float32) *PTR {
	return &PTR{
		TestNum: testNum,
		HeadNum: headNum,
		SiteNum: siteNum,
		TestFlg: testFlg,
		ParmFlg: parmFlg,
		Result:  result,
		LoLimit: negInf,
		HiLimit: posInf,
	}
}

func (r *PTR) Schema() *record.Schema { return ptrSchema }

func (r *PTR) Values() []any {
	return []any{
		r.TestNum, r.HeadNum, r.SiteNum, r.TestFlg, r.ParmFlg, r.Result, r.TestTxt, r.AlarmID,
		r.OptFlag, r.ResScal, r.LlmScal, r.HlmScal, r.LoLimit, r.HiLimit,
		r.Units, r.CResfmt, r.CLlmfmt, r.CHlmfmt, r.LoSpec, r.HiSpec,
	}
}

var mprSchema = record.MustSchema("MPR", 15, 15,
	field("TEST_NUM", wire.U4),
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
	field("TEST_FLG", wire.B1),
	field("PARM_FLG", wire.B1),
	field("RTN_ICNT", wire.U2),
	field("RSLT_CNT", wire.U2),
	array("RTN_STAT", wire.N1, "RTN_ICNT"),
	array("RTN_RSLT", wire.R4, "RSLT_CNT"),
	field("TEST_TXT", wire.Cn),
	field("ALARM_ID", wire.Cn),
	field("OPT_FLAG", wire.B1),
	field("RES_SCAL", wire.I1),
	field("LLM_SCAL", wire.I1),
	field("HLM_SCAL", wire.I1),
	field("LO_LIMIT", wire.R4),
	field("HI_LIMIT", wire.R4),
	field("START_IN", wire.R4),
	field("INCR_IN", wire.R4),
	array("RTN_INDX", wire.U2, "RTN_ICNT"),
	field("UNITS", wire.Cn),
	field("UNITS_IN", wire.Cn),
	field("C_RESFMT", wire.Cn),
	field("C_LLMFMT", wire.Cn),
	field("C_HLMFMT", wire.Cn),
	field("LO_SPEC", wire.R4),
	field("HI_SPEC", wire.R4),
)

// MPR is one execution of a test that returns several values. RTN_ICNT
// governs RTN_STAT and RTN_INDX; RSLT_CNT governs RTN_RSLT.
type MPR struct {
	TestNum uint32    `stdf:"TEST_NUM"`
	HeadNum uint8     `stdf:"HEAD_NUM"`
	SiteNum uint8     `stdf:"SITE_NUM"`
	TestFlg uint8     `stdf:"TEST_FLG"`
	ParmFlg uint8     `stdf:"PARM_FLG"`
	RtnIcnt uint16    `stdf:"RTN_ICNT"`
	RsltCnt uint16    `stdf:"RSLT_CNT"`
	RtnStat []uint8   `stdf:"RTN_STAT"`
	RtnRslt []float32 `stdf:"RTN_RSLT"`
	TestTxt string    `stdf:"TEST_TXT"`
	AlarmID string    `stdf:"ALARM_ID"`
	OptFlag uint8     `stdf:"OPT_FLAG"`
	ResScal int8      `stdf:"RES_SCAL"`
	LlmScal int8      `stdf:"LLM_SCAL"`
	HlmScal int8      `stdf:"HLM_SCAL"`
	LoLimit float32   `stdf:"LO_LIMIT"`
	HiLimit float32   `stdf:"HI_LIMIT"`
	StartIn float32   `stdf:"START_IN"`
	IncrIn  float32   `stdf:"INCR_IN"`
	RtnIndx []uint16  `stdf:"RTN_INDX"`
	Units   string    `stdf:"UNITS"`
	UnitsIn string    `stdf:"UNITS_IN"`
	CResfmt string    `stdf:"C_RESFMT"`
	CLlmfmt string    `stdf:"C_LLMFMT"`
	CHlmfmt string    `stdf:"C_HLMFMT"`
	LoSpec  float32   `stdf:"LO_SPEC"`
	HiSpec  float32   `stdf:"HI_SPEC"`
}

// NewMPR sets RTN_ICNT from rtnStat and RSLT_CNT from rtnRslt.
func NewMPR(testNum uint32, headNum, siteNum, testFlg, parmFlg uint8, rtnStat []uint8, rtnRslt []float32) *MPR {
	return &MPR{
		TestNum: testNum,
		HeadNum: headNum,
		SiteNum: siteNum,
		TestFlg: testFlg,
		ParmFlg: parmFlg,
		RtnIcnt: uint16(len(rtnStat)),
		RsltCnt: uint16(len(rtnRslt)),
		RtnStat: rtnStat,
		RtnRslt: rtnRslt,
		LoLimit: negInf,
		HiLimit: posInf,
		LoSpec:  negInf,
		HiSpec:  posInf,
	}
}

func (r *MPR) Schema() *record.Schema { return mprSchema }

func (r *MPR) Values() []any {
	return []any{
		r.TestNum, r.HeadNum, r.SiteNum, r.TestFlg, r.ParmFlg, r.RtnIcnt, r.RsltCnt,
		r.RtnStat, r.RtnRslt, r.TestTxt, r.AlarmID, r.OptFlag, r.ResScal, r.LlmScal, r.HlmScal,
		r.LoLimit, r.HiLimit, r.StartIn, r.IncrIn, r.RtnIndx,
		r.Units, r.UnitsIn, r.CResfmt, r.CLlmfmt, r.CHlmfmt, r.LoSpec, r.HiSpec,
	}
}

var ftrSchema = record.MustSchema("FTR", 15, 20,
	field("TEST_NUM", wire.U4),
	field("HEAD_NUM", wire.U1),
	field("SITE_NUM", wire.U1),
	field("TEST_FLG", wire.B1),
	field("OPT_FLAG", wire.B1),
	field("CYCL_CNT", wire.U4),
	field("REL_VADR", wire.U4),
	field("REPT_CNT", wire.U4),
	field("NUM_FAIL", wire.U4),
	field("XFAIL_AD", wire.I4),
	field("YFAIL_AD", wire.I4),
	field("VECT_OFF", wire.I2),
	field("RTN_ICNT", wire.U2),
	field("PGM_ICNT", wire.U2),
	array("RTN_INDX", wire.U2, "RTN_ICNT"),
	array("RTN_STAT", wire.N1, "RTN_ICNT"),
	array("PGM_INDX", wire.U2, "PGM_ICNT"),
	array("PGM_STAT", wire.N1, "PGM_ICNT"),
	field("FAIL_PIN", wire.Dn),
	field("VECT_NAM", wire.Cn),
	field("TIME_SET", wire.Cn),
	field("OP_CODE", wire.Cn),
	field("TEST_TXT", wire.Cn),
	field("ALARM_ID", wire.Cn),
	field("PROG_TXT", wire.Cn),
	field("RSLT_TXT", wire.Cn),
	field("PATG_NUM", wire.U1),
	field("SPIN_MAP", wire.Dn),
)

// FTR is one functional test result. RTN_ICNT governs RTN_INDX and RTN_STAT;
// PGM_ICNT governs PGM_INDX and PGM_STAT.
type FTR struct {
	TestNum uint32   `stdf:"TEST_NUM"`
	HeadNum uint8    `stdf:"HEAD_NUM"`
	SiteNum uint8    `stdf:"SITE_NUM"`
	TestFlg uint8    `stdf:"TEST_FLG"`
	OptFlag uint8    `stdf:"OPT_FLAG"`
	CyclCnt uint32   `stdf:"CYCL_CNT"`
	RelVadr uint32   `stdf:"REL_VADR"`
	ReptCnt uint32   `stdf:"REPT_CNT"`
	NumFail uint32   `stdf:"NUM_FAIL"`
	XfailAd int32    `stdf:"XFAIL_AD"`
	YfailAd int32    `stdf:"YFAIL_AD"`
	VectOff int16    `stdf:"VECT_OFF"`
	RtnIcnt uint16   `stdf:"RTN_ICNT"`
	PgmIcnt uint16   `stdf:"PGM_ICNT"`
	RtnIndx []uint16 `stdf:"RTN_INDX"`
	RtnStat []uint8  `stdf:"RTN_STAT"`
	PgmIndx []uint16 `stdf:"PGM_INDX"`
	PgmStat []uint8  `stdf:"PGM_STAT"`
	FailPin []byte   `stdf:"FAIL_PIN"`
	VectNam string   `stdf:"VECT_NAM"`
	TimeSet string   `stdf:"TIME_SET"`
	OpCode  string   `stdf:"OP_CODE"`
	TestTxt string   `stdf:"TEST_TXT"`
	AlarmID string   `stdf:"ALARM_ID"`
	ProgTxt string   `stdf:"PROG_TXT"`
	RsltTxt string   `stdf:"RSLT_TXT"`
	PatgNum uint8    `stdf:"PATG_NUM"`
	SpinMap []byte   `stdf:"SPIN_MAP"`
}

func NewFTR(testNum uint32, headNum, siteNum, testFlg uint8) *FTR {
	return &FTR{
		TestNum: testNum,
		HeadNum: headNum,
		SiteNum: siteNum,
		TestFlg: testFlg,
		PatgNum: NoPattern,
	}
}

func (r *FTR) Schema() *record.Schema { return ftrSchema }

func (r *FTR) Values() []any {
	return []any{
		r.TestNum, r.HeadNum, r.SiteNum, r.TestFlg, r.OptFlag,
		r.CyclCnt, r.RelVadr, r.ReptCnt, r.NumFail, r.XfailAd, r.YfailAd, r.VectOff,
		r.RtnIcnt, r.PgmIcnt, r.RtnIndx, r.RtnStat, r.PgmIndx, r.PgmStat,
		r.FailPin, r.VectNam, r.TimeSet, r.OpCode, r.TestTxt, r.AlarmID, r.ProgTxt, r.RsltTxt,
		r.PatgNum, r.SpinMap,
	}
}
