// Package pdp8 implements a cycle-counting interpreter for the PDP-8
// instruction set, extended with a floating-point coprocessor reached
// through IOT device code 055.
//
// Bit numbering follows the original hardware convention: bit 0 is the
// most significant bit of a word, bit 11 the least significant. Named
// accessors (bit, field) translate that convention into ordinary Go shifts
// so the rest of the package never has to think about it twice.
package pdp8

import (
	"log"
)

// Word is a PDP-8 machine word. Only the low 12 bits are ever significant;
// every assignment that can overflow is masked back down immediately.
type Word uint16

// EntryPoint is where the program counter starts on reset (octal 0200).
const EntryPoint Word = 0o200

// AutoIncFirst and AutoIncLast bound the eight auto-increment locations
// (octal 10..17) that the address decoder mutates on indirect reference.
const (
	AutoIncFirst Word = 0o10
	AutoIncLast  Word = 0o17
)

// HaltReason records why Run went false, distinguishing a guest HLT from
// the implementation-defined safety cap.
type HaltReason int

const (
	HaltNone HaltReason = iota
	HaltOpcode
	HaltInstructionCap
)

func (h HaltReason) String() string {
	switch h {
	case HaltNone:
		return "running"
	case HaltOpcode:
		return "HLT"
	case HaltInstructionCap:
		return "instruction cap"
	default:
		return "unknown"
	}
}

// Machine is the PDP-8 register file, main memory, and floating-point
// coprocessor. It is owned exclusively by the interpreter loop; nothing
// else in the process may mutate it while Run is true.
type Machine struct {
	PC Word
	IR Word
	AC Word
	L  bool
	SR Word
	MA Word

	CPage Word

	Memory Memory

	Run        bool
	HaltReason HaltReason

	InterruptsOn  bool
	InterruptReq  bool

	FP    FloatReg
	FPop  FloatReg

	// MaxInstructions caps execution as an implementation-defined safety
	// valve (spec allows this; 0 means unbounded).
	MaxInstructions int

	CPI [8]int
	IC  [8]int

	TotalInstructions int
	TotalCycles       int

	// clocks accumulates the current instruction's cycle count; cleared
	// at the top of every interpreter iteration.
	clocks int

	// Logger receives diagnostics for unsupported opcodes/microinstructions.
	// Defaults to log.Default() if nil when first used.
	Logger *log.Logger
}

// NewMachine returns a Machine with its registers at their post-reset
// values but an empty memory; callers load an image before Run.
func NewMachine() *Machine {
	m := &Machine{}
	m.Reset()
	return m
}

// Reset zeroes every register, sets PC to the entry point, and sets Run.
// It does not clear Memory — the loader is expected to run before or after
// Reset as the caller prefers, but spec.md's startup sequence loads memory
// first.
func (m *Machine) Reset() {
	m.PC = EntryPoint
	m.IR = 0
	m.AC = 0
	m.L = false
	m.SR = 0
	m.MA = 0
	m.CPage = 0
	m.Run = true
	m.HaltReason = HaltNone
	m.InterruptsOn = false
	m.InterruptReq = false
	m.FP = FloatReg{}
	m.FPop = FloatReg{}
	m.CPI = [8]int{}
	m.IC = [8]int{}
	m.TotalInstructions = 0
	m.TotalCycles = 0
	m.clocks = 0
}

func (m *Machine) logf(format string, args ...any) {
	if m.Logger != nil {
		m.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
