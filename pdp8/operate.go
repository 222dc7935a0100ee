package pdp8

// operate decodes and executes an OPR (opcode 7) instruction: the
// microinstruction groups overlaid onto the rest of the word. fetchAddr is
// the address IR was fetched from, used only to label diagnostics for
// unsupported encodings.
func (m *Machine) operate(ir Word, fetchAddr Word) {
	if !bit(ir, 3) {
		m.operateGroup1(ir)
		return
	}
	if !bit(ir, 11) {
		m.operateGroup2(ir)
		return
	}
	m.logf("pdp8: unsupported group 3 (EAE) microinstruction at %04o", fetchAddr)
}

// operateGroup1 executes CLA/CLL/CMA/CML/IAC and the rotate/swap field, in
// the fixed order the spec requires — several bits may be set at once and
// they are not mutually exclusive cases.
func (m *Machine) operateGroup1(ir Word) {
	if bit(ir, 4) { // CLA
		m.AC = 0
	}
	if bit(ir, 5) { // CLL
		m.L = false
	}
	if bit(ir, 6) { // CMA
		m.AC = (^m.AC) & WordMask
	}
	if bit(ir, 7) { // CML
		m.L = !m.L
	}
	if bit(ir, 11) { // IAC
		m.incrementACL()
	}

	switch field(ir, 8, 10) {
	case 0: // no-op
	case 1:
		m.bsw()
	case 2:
		m.ral()
	case 3:
		m.ral()
		m.ral()
	case 4:
		m.rar()
	case 5:
		m.rar()
		m.rar()
	default:
		m.logf("pdp8: unsupported group 1 rotate code %d", field(ir, 8, 10))
	}
}

// operateGroup2 executes the skip tests, then CLA/OSR/HLT, in that order.
func (m *Machine) operateGroup2(ir Word) {
	invertSense := bit(ir, 8)

	var skip bool
	if !invertSense {
		// OR group: skip starts false, set by any enabled condition.
		if bit(ir, 7) && m.L {
			skip = true
		}
		if bit(ir, 6) && m.AC == 0 {
			skip = true
		}
		if bit(ir, 5) && bit(m.AC, 0) {
			skip = true
		}
	} else {
		// AND group: skip starts true, cleared by any enabled condition.
		skip = true
		if bit(ir, 7) && m.L {
			skip = false
		}
		if bit(ir, 6) && m.AC == 0 {
			skip = false
		}
		if bit(ir, 5) && bit(m.AC, 0) {
			skip = false
		}
	}

	if skip {
		m.PC = (m.PC + 1) & WordMask
	}

	if bit(ir, 4) { // CLA
		m.AC = 0
	}
	if bit(ir, 9) { // OSR
		m.AC = (m.AC | m.SR) & WordMask
	}
	if bit(ir, 10) { // HLT
		m.Run = false
		m.HaltReason = HaltOpcode
	}
}

// incrementACL adds 1 to the 13-bit (L, AC) pair, so a carry out of AC
// complements L. Unlike TAD, the incoming L is never added into AC.
func (m *Machine) incrementACL() {
	var lIn uint32
	if m.L {
		lIn = 1
	}
	sum := (lIn<<12 | uint32(m.AC)) + 1
	m.L = sum&0x1000 != 0
	m.AC = Word(sum) & WordMask
}

// bsw swaps the two 6-bit halves of AC.
func (m *Machine) bsw() {
	hi := (m.AC >> 6) & 0o77
	lo := m.AC & 0o77
	m.AC = (lo << 6) | hi
}

// ral performs a 13-bit left rotate of (AC, L) by one position.
func (m *Machine) ral() {
	var lIn Word
	if m.L {
		lIn = 1
	}
	newL := bit(m.AC, 0)
	m.AC = ((m.AC << 1) | lIn) & WordMask
	m.L = newL
}

// rar performs a 13-bit right rotate of (L, AC) by one position.
func (m *Machine) rar() {
	var lIn Word
	if m.L {
		lIn = 1
	}
	newL := m.AC&1 != 0
	m.AC = (m.AC >> 1) | (lIn << 11)
	m.L = newL
}
