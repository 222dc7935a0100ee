package pdp8

// Memory-reference instructions (primary opcodes 0..5). Each takes the
// effective address already resolved by effectiveAddress; none of them
// re-derive it.

func (m *Machine) and(ea Word) {
	// AND Memory with Accumulator
	m.AC = (m.AC & m.Memory.Read(ea)) & WordMask
}

func (m *Machine) tad(ea Word) {
	// Two's Complement Add with Link: (L, AC) := (L, AC) + (0, Memory[EA])
	var carryIn Word
	if m.L {
		carryIn = 1
	}
	sum := uint32(m.AC) + uint32(m.Memory.Read(ea)) + uint32(carryIn)
	m.L = sum&0x1000 != 0
	m.AC = Word(sum) & WordMask
}

func (m *Machine) isz(ea Word) {
	// Increment and Skip if Zero
	result := (m.Memory.Read(ea) + 1) & WordMask
	m.Memory.Write(ea, result)
	if result == 0 {
		m.PC = (m.PC + 1) & WordMask
	}
}

func (m *Machine) dca(ea Word) {
	// Deposit and Clear Accumulator
	m.Memory.Write(ea, m.AC)
	m.AC = 0
}

func (m *Machine) jms(ea Word) {
	// Jump to Subroutine: save return address, jump past it
	m.Memory.Write(ea, m.PC)
	m.PC = (ea + 1) & WordMask
}

func (m *Machine) jmp(ea Word) {
	// Jump
	m.PC = ea
}
