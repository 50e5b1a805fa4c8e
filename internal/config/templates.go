package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "config", "writer":
		return writerTemplate, nil
	case "script":
		return scriptTemplate, nil
	default:
		return "", fmt.Errorf("unknown template kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("template already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const writerTemplate = `# 1 = big endian (Sun), 2 = little endian (x86)
cpu_type = 2
stdf_ver = 4
strict_ascii = true
log_level = "info"
metrics_file = ""
`

const scriptTemplate = `[[record]]
kind = "FAR"
CPU_TYPE = 2
STDF_VER = 4

[[record]]
kind = "MIR"
SETUP_T = 1546102685
START_T = 1546102693
STAT_NUM = 1
LOT_ID = "LOT0001"
PART_TYP = "PART"
NODE_NAM = "NODE"
TSTR_TYP = "TESTER"
JOB_NAM = "JOB"

[[record]]
kind = "PIR"
HEAD_NUM = 1
SITE_NUM = 0

[[record]]
kind = "PTR"
TEST_NUM = 1
HEAD_NUM = 1
SITE_NUM = 0
RESULT = 0.5
TEST_TXT = "leakage"
UNITS = "A"

[[record]]
kind = "GDR"
GEN_DATA = [{ tag = 1, value = 7 }, { tag = 10, value = "note" }]

[[record]]
kind = "PRR"
HEAD_NUM = 1
SITE_NUM = 0
NUM_TEST = 1
HARD_BIN = 1

[[record]]
kind = "MRR"
FINISH_T = 1546105693
`
