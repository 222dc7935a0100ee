package pdp8

import "testing"

// setup builds a Machine with program loaded at octal 200 (the normal
// entry point) and any extra bootstrap words poked in afterward, mirroring
// the teacher's setup()-plus-bootstrap-map test idiom.
func setup(program []Word, bootstrap map[Word]Word) *Machine {
	m := NewMachine()

	for i, w := range program {
		m.Memory.Write(EntryPoint+Word(i), w)
	}
	for addr, v := range bootstrap {
		m.Memory.Write(addr, v)
	}

	return m
}

func expectWord(t *testing.T, name string, got, want Word) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %04o, want %04o", name, got, want)
	}
}

func expectBool(t *testing.T, name string, got, want bool) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %t, want %t", name, got, want)
	}
}

func expectInt(t *testing.T, name string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %d, want %d", name, got, want)
	}
}

// buildGroup1 assembles an OPR group 1 instruction word.
func buildGroup1(cla, cll, cma, cml, iac bool, rotate Word) Word {
	ir := opOPR << 9
	if cla {
		ir |= 0o200
	}
	if cll {
		ir |= 0o100
	}
	if cma {
		ir |= 0o040
	}
	if cml {
		ir |= 0o020
	}
	if iac {
		ir |= 0o001
	}
	ir |= (rotate & 0o7) << 1
	return ir
}

// buildGroup2 assembles an OPR group 2 instruction word. skip5/6/7 are the
// bit5/6/7 skip-test flags; in the OR group (andGroup=false) they are
// SMA/SZA/SNL, and in the AND group (andGroup=true, sets IS/bit8) they are
// reinterpreted as SPA/SNA/SZL.
func buildGroup2(andGroup, cla, osr, hlt, skip5, skip6, skip7 bool) Word {
	ir := opOPR<<9 | 0o400
	if andGroup {
		ir |= 0o010 // IS, bit 8
	}
	if cla {
		ir |= 0o200 // bit 4
	}
	if osr {
		ir |= 0o004 // bit 9
	}
	if hlt {
		ir |= 0o002 // bit 10
	}
	if skip5 {
		ir |= 0o100 // bit 5
	}
	if skip6 {
		ir |= 0o040 // bit 6
	}
	if skip7 {
		ir |= 0o020 // bit 7
	}
	return ir
}
