package vm

import "fmt"

// labelKind discriminates the tags the labelled transition system can
// be in. It mirrors the state set from the abstract machine: the main
// cycle, the six warning-character actions, the six machine macros,
// the numbered monitor, and the two terminal conditions.
type labelKind uint8

const (
	kindStart labelKind = iota
	kindCopy
	kindScan
	kindQ2
	kindFn
	kindNextItem
	kindApply
	kindLoadArg
	kindEndFn
	kindExit
	kindDEF
	kindVAL
	kindUPDATE
	kindBIN
	kindDEC
	kindBAR
	kindMonitor
	kindFinish
	kindNoInput
)

var kindNames = map[labelKind]string{
	kindStart:    "Start",
	kindCopy:     "Copy",
	kindScan:     "Scan",
	kindQ2:       "Q2",
	kindFn:       "Fn",
	kindNextItem: "NextItem",
	kindApply:    "Apply",
	kindLoadArg:  "LoadArg",
	kindEndFn:    "EndFn",
	kindExit:     "Exit",
	kindDEF:      "DEF",
	kindVAL:      "VAL",
	kindUPDATE:   "UPDATE",
	kindBIN:      "BIN",
	kindDEC:      "DEC",
	kindBAR:      "BAR",
	kindMonitor:  "Monitor",
	kindFinish:   "Finish",
	kindNoInput:  "NoInput",
}

// label is one tag of the labelled transition system -- a discriminated
// variant rather than a bare int, since Monitor carries a diagnostic
// number (1-11) alongside its kind.
type label struct {
	kind     labelKind
	monitorN uint8
}

func (l label) String() string {
	if l.kind == kindMonitor {
		return fmt.Sprintf("Monitor(%d)", l.monitorN)
	}
	return kindNames[l.kind]
}

func lblMonitor(n uint8) label { return label{kind: kindMonitor, monitorN: n} }

var (
	lblStart    = label{kind: kindStart}
	lblCopy     = label{kind: kindCopy}
	lblScan     = label{kind: kindScan}
	lblQ2       = label{kind: kindQ2}
	lblFn       = label{kind: kindFn}
	lblNextItem = label{kind: kindNextItem}
	lblApply    = label{kind: kindApply}
	lblLoadArg  = label{kind: kindLoadArg}
	lblEndFn    = label{kind: kindEndFn}
	lblExit     = label{kind: kindExit}
	lblDEF      = label{kind: kindDEF}
	lblVAL      = label{kind: kindVAL}
	lblUPDATE   = label{kind: kindUPDATE}
	lblBIN      = label{kind: kindBIN}
	lblDEC      = label{kind: kindDEC}
	lblBAR      = label{kind: kindBAR}
	lblFinish   = label{kind: kindFinish}
	lblNoInput  = label{kind: kindNoInput}
)
