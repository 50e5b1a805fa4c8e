package stdf

import (
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

// Version is the only STDF_VER this package writes.
const Version uint8 = 4

var farSchema = record.MustSchema("FAR", 0, 10,
	field("CPU_TYPE", wire.U1),
	field("STDF_VER", wire.U1),
)

// FAR is the file attributes record. It must be the first record of a stream
// and its CPU_TYPE fixes the byte order of everything after it.
type FAR struct {
	CPUType uint8 `stdf:"CPU_TYPE"`
	STDFVer uint8 `stdf:"STDF_VER"`
}

func NewFAR(cpuType, stdfVer uint8) *FAR {
	return &FAR{CPUType: cpuType, STDFVer: stdfVer}
}

// DefaultFAR describes a little-endian version 4 stream.
func DefaultFAR() *FAR {
	return NewFAR(wire.CPUIntel, Version)
}

func (r *FAR) Schema() *record.Schema { return farSchema }

func (r *FAR) Values() []any { return []any{r.CPUType, r.STDFVer} }

var atrSchema = record.MustSchema("ATR", 0, 20,
	field("MOD_TIM", wire.U4),
	field("CMD_LINE", wire.Cn),
)

// ATR is the audit trail record.
type ATR struct {
	ModTim  uint32 `stdf:"MOD_TIM"`
	CmdLine string `stdf:"CMD_LINE"`
}

func NewATR(modTim uint32, cmdLine string) *ATR {
	return &ATR{ModTim: modTim, CmdLine: cmdLine}
}

func (r *ATR) Schema() *record.Schema { return atrSchema }

func (r *ATR) Values() []any { return []any{r.ModTim, r.CmdLine} }

var mirSchema = record.MustSchema("MIR", 1, 10,
	field("SETUP_T", wire.U4),
	field("START_T", wire.U4),
	field("STAT_NUM", wire.U1),
	field("MODE_COD", wire.C1),
	field("RTST_COD", wire.C1),
	field("PROT_COD", wire.C1),
	field("BURN_TIM", wire.U2),
	field("CMOD_COD", wire.C1),
	field("LOT_ID", wire.Cn),
	field("PART_TYP", wire.Cn),
	field("NODE_NAM", wire.Cn),
	field("TSTR_TYP", wire.Cn),
	field("JOB_NAM", wire.Cn),
	field("JOB_REV", wire.Cn),
	field("SBLOT_ID", wire.Cn),
	field("OPER_NAM", wire.Cn),
	field("EXEC_TYP", wire.Cn),
	field("EXEC_VER", wire.Cn),
	field("TEST_COD", wire.Cn),
	field("TST_TEMP", wire.Cn),
	field("USER_TXT", wire.Cn),
	field("AUX_FILE", wire.Cn),
	field("PKG_TYP", wire.Cn),
	field("FAMLY_ID", wire.Cn),
	field("DATE_COD", wire.Cn),
	field("FACIL_ID", wire.Cn),
	field("FLOOR_ID", wire.Cn),
	field("PROC_ID", wire.Cn),
	field("OPER_FRQ", wire.Cn),
	field("SPEC_NAM", wire.Cn),
	field("SPEC_VER", wire.Cn),
	field("FLOW_ID", wire.Cn),
	field("SETUP_ID", wire.Cn),
	field("DSGN_REV", wire.Cn),
	field("ENG_ID", wire.Cn),
	field("ROM_COD", wire.Cn),
	field("SERL_NUM", wire.Cn),
	field("SUPR_NAM", wire.Cn),
)

// MIR is the master information record: one per stream, right after the FAR
// and any ATRs.
type MIR struct {
	SetupT  uint32 `stdf:"SETUP_T"`
	StartT  uint32 `stdf:"START_T"`
	StatNum uint8  `stdf:"STAT_NUM"`
	ModeCod byte   `stdf:"MODE_COD"`
	RtstCod byte   `stdf:"RTST_COD"`
	ProtCod byte   `stdf:"PROT_COD"`
	BurnTim uint16 `stdf:"BURN_TIM"`
	CmodCod byte   `stdf:"CMOD_COD"`
	LotID   string `stdf:"LOT_ID"`
	PartTyp string `stdf:"PART_TYP"`
	NodeNam string `stdf:"NODE_NAM"`
	TstrTyp string `stdf:"TSTR_TYP"`
	JobNam  string `stdf:"JOB_NAM"`
	JobRev  string `stdf:"JOB_REV"`
	SblotID string `stdf:"SBLOT_ID"`
	OperNam string `stdf:"OPER_NAM"`
	ExecTyp string `stdf:"EXEC_TYP"`
	ExecVer string `stdf:"EXEC_VER"`
	TestCod string `stdf:"TEST_COD"`
	TstTemp string `stdf:"TST_TEMP"`
	UserTxt string `stdf:"USER_TXT"`
	AuxFile string `stdf:"AUX_FILE"`
	PkgTyp  string `stdf:"PKG_TYP"`
	FamlyID string `stdf:"FAMLY_ID"`
	DateCod string `stdf:"DATE_COD"`
	FacilID string `stdf:"FACIL_ID"`
	FloorID string `stdf:"FLOOR_ID"`
	ProcID  string `stdf:"PROC_ID"`
	OperFrq string `stdf:"OPER_FRQ"`
	SpecNam string `stdf:"SPEC_NAM"`
	SpecVer string `stdf:"SPEC_VER"`
	FlowID  string `stdf:"FLOW_ID"`
	SetupID string `stdf:"SETUP_ID"`
	DsgnRev string `stdf:"DSGN_REV"`
	EngID   string `stdf:"ENG_ID"`
	RomCod  string `stdf:"ROM_COD"`
	SerlNum string `stdf:"SERL_NUM"`
	SuprNam string `stdf:"SUPR_NAM"`
}

func NewMIR(setupT, startT uint32, statNum uint8, lotID, partTyp, nodeNam, tstrTyp, jobNam string) *MIR {
	return &MIR{
		SetupT:  setupT,
		StartT:  startT,
		StatNum: statNum,
		ModeCod: Space,
		RtstCod: Space,
		ProtCod: Space,
		BurnTim: NoBurnTime,
		CmodCod: Space,
		LotID:   lotID,
		PartTyp: partTyp,
		NodeNam: nodeNam,
		TstrTyp: tstrTyp,
		JobNam:  jobNam,
	}
}

func (r *MIR) Schema() *record.Schema { return mirSchema }

func (r *MIR) Values() []any {
	return []any{
		r.SetupT, r.StartT, r.StatNum, r.ModeCod, r.RtstCod, r.ProtCod, r.BurnTim, r.CmodCod,
		r.LotID, r.PartTyp, r.NodeNam, r.TstrTyp, r.JobNam, r.JobRev, r.SblotID, r.OperNam,
		r.ExecTyp, r.ExecVer, r.TestCod, r.TstTemp, r.UserTxt, r.AuxFile, r.PkgTyp, r.FamlyID,
		r.DateCod, r.FacilID, r.FloorID, r.ProcID, r.OperFrq, r.SpecNam, r.SpecVer, r.FlowID,
		r.SetupID, r.DsgnRev, r.EngID, r.RomCod, r.SerlNum, r.SuprNam,
	}
}

var mrrSchema = record.MustSchema("MRR", 1, 20,
	field("FINISH_T", wire.U4),
	field("DISP_COD", wire.C1),
	field("USR_DESC", wire.Cn),
	field("EXC_DESC", wire.Cn),
)

// MRR is the master results record, the last record of a stream.
type MRR struct {
	FinishT uint32 `stdf:"FINISH_T"`
	DispCod byte   `stdf:"DISP_COD"`
	UsrDesc string `stdf:"USR_DESC"`
	ExcDesc string `stdf:"EXC_DESC"`
}

func NewMRR(finishT uint32) *MRR {
	return &MRR{FinishT: finishT, DispCod: Space}
}

func (r *MRR) Schema() *record.Schema { return mrrSchema }

func (r *MRR) Values() []any { return []any{r.FinishT, r.DispCod, r.UsrDesc, r.ExcDesc} }
