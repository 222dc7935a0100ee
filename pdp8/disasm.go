package pdp8

import (
	"fmt"
	"strings"
)

// Disassembly is one decoded instruction, used by the interactive trace
// viewer (cmd/pdp8sim step) to show what is about to execute.
type Disassembly struct {
	Address Word
	Text    string
}

var floatOpNames = [5]string{"FPCLAC", "FPLOAD", "FPSTOR", "FPADD", "FPMULT"}

// Disassemble decodes the word at address without mutating machine state.
func (m *Machine) Disassemble(address Word) Disassembly {
	ir := m.Memory.Read(address)
	op := opcode(ir)

	var text string
	switch op {
	case opAND, opTAD, opISZ, opDCA, opJMS, opJMP:
		text = disassembleMemRef(op, ir)
	case opIOT:
		text = disassembleIOT(ir)
	case opOPR:
		text = disassembleOperate(ir)
	}

	return Disassembly{Address: address, Text: text}
}

func disassembleMemRef(op, ir Word) string {
	indirect := bit(ir, 3)
	page0 := bit(ir, 4)
	offset := field(ir, 5, 11)

	mark := ""
	if indirect {
		mark = "I "
	}
	page := "Z"
	if page0 {
		page = "C"
	}
	return fmt.Sprintf("%s %s%s%03o", Mnemonics[op], mark, page, offset)
}

func disassembleIOT(ir Word) string {
	device := field(ir, 3, 8)
	if device != FloatDeviceCode {
		return fmt.Sprintf("IOT %02o", device)
	}
	sub := field(ir, 9, 11)
	if int(sub) < len(floatOpNames) {
		return floatOpNames[sub]
	}
	return fmt.Sprintf("IOT 55 %o", sub)
}

func disassembleOperate(ir Word) string {
	if !bit(ir, 3) {
		return disassembleGroup1(ir)
	}
	if !bit(ir, 11) {
		return disassembleGroup2(ir)
	}
	return "GROUP3"
}

func disassembleGroup1(ir Word) string {
	var parts []string
	if bit(ir, 4) {
		parts = append(parts, "CLA")
	}
	if bit(ir, 5) {
		parts = append(parts, "CLL")
	}
	if bit(ir, 6) {
		parts = append(parts, "CMA")
	}
	if bit(ir, 7) {
		parts = append(parts, "CML")
	}
	if bit(ir, 11) {
		parts = append(parts, "IAC")
	}
	switch field(ir, 8, 10) {
	case 1:
		parts = append(parts, "BSW")
	case 2:
		parts = append(parts, "RAL")
	case 3:
		parts = append(parts, "RTL")
	case 4:
		parts = append(parts, "RAR")
	case 5:
		parts = append(parts, "RTR")
	}
	if len(parts) == 0 {
		return "NOP"
	}
	return strings.Join(parts, " ")
}

func disassembleGroup2(ir Word) string {
	var parts []string
	and := bit(ir, 8)
	if and {
		if bit(ir, 5) {
			parts = append(parts, "SPA")
		}
		if bit(ir, 6) {
			parts = append(parts, "SNA")
		}
		if bit(ir, 7) {
			parts = append(parts, "SZL")
		}
	} else {
		if bit(ir, 5) {
			parts = append(parts, "SMA")
		}
		if bit(ir, 6) {
			parts = append(parts, "SZA")
		}
		if bit(ir, 7) {
			parts = append(parts, "SNL")
		}
	}
	if bit(ir, 4) {
		parts = append(parts, "CLA")
	}
	if bit(ir, 9) {
		parts = append(parts, "OSR")
	}
	if bit(ir, 10) {
		parts = append(parts, "HLT")
	}
	if len(parts) == 0 {
		return "NOP"
	}
	return strings.Join(parts, " ")
}
