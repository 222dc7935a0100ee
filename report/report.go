// Package report turns a finished Machine's counters into the halt-time
// summary spec.md §4.5 and §6 describe, independent of how it is rendered.
package report

import (
	"fmt"

	"github.com/jawr/pdp8sim/pdp8"
)

// OpcodeStat is one line of the per-opcode summary.
type OpcodeStat struct {
	Mnemonic string
	Count    int
	Cycles   int
}

// Summary is the data a renderer needs to produce the halt-time report.
type Summary struct {
	Opcodes           [8]OpcodeStat
	TotalInstructions int
	TotalCycles       int
	HaltReason        pdp8.HaltReason
}

// AverageCPI is the mean cycles spent per instruction, or 0 if none ran.
func (s Summary) AverageCPI() float64 {
	if s.TotalInstructions == 0 {
		return 0
	}
	return float64(s.TotalCycles) / float64(s.TotalInstructions)
}

// Collect snapshots a machine's counters into a Summary. It does not check
// Run, so it serves both for the final report and for mid-run snapshots
// (cmd/pdp8sim watch takes one after each batch).
func Collect(m *pdp8.Machine) Summary {
	var s Summary
	for op := range s.Opcodes {
		s.Opcodes[op] = OpcodeStat{
			Mnemonic: pdp8.Mnemonics[op],
			Count:    m.IC[op],
			Cycles:   m.CPI[op],
		}
	}
	s.TotalInstructions = m.TotalInstructions
	s.TotalCycles = m.TotalCycles
	s.HaltReason = m.HaltReason
	return s
}

// MemoryDump returns one "<address-octal>  <value-octal>" line per nonzero
// cell, in address order, matching the pre-run dump spec.md §6 describes.
func MemoryDump(mem *pdp8.Memory) []string {
	var lines []string
	for addr := 0; addr < pdp8.WordCount; addr++ {
		v := mem[addr]
		if v == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%04o  %04o", addr, v))
	}
	return lines
}
