package pdp8

// Mnemonics names the eight primary opcodes, indexed by opcode value.
var Mnemonics = [8]string{"AND", "TAD", "ISZ", "DCA", "JMS", "JMP", "IOT", "OPR"}

const (
	opAND Word = iota
	opTAD
	opISZ
	opDCA
	opJMS
	opJMP
	opIOT
	opOPR
)

// baseClocks gives each primary opcode's clock charge before any
// addressing cost is added (addressing cost applies to memory-reference
// opcodes only; OPR is charged its entry here, and IOT charges nothing).
var baseClocks = [8]int{2, 2, 2, 2, 2, 1, 0, 1}

// Step executes exactly one instruction: clear the per-instruction clock
// accumulator, fetch, execute, fold the clocks into the per-opcode
// counters. It is a no-op once Run is false.
func (m *Machine) Step() {
	if !m.Run {
		return
	}

	if m.MaxInstructions > 0 && m.TotalInstructions >= m.MaxInstructions {
		m.Run = false
		m.HaltReason = HaltInstructionCap
		return
	}

	m.clocks = 0

	fetchAddr := m.PC
	ir := m.Memory.Read(m.PC)
	cpage := field(m.PC, 0, 4)
	m.IR = ir
	m.CPage = cpage
	m.PC = (m.PC + 1) & WordMask

	op := opcode(ir)
	m.execute(op, ir, fetchAddr)

	m.CPI[op] += m.clocks
	m.IC[op]++
	m.TotalInstructions++
	m.TotalCycles += m.clocks
}

// execute dispatches on the primary opcode and charges the clocks the
// instruction and its addressing stage cost.
func (m *Machine) execute(op, ir, fetchAddr Word) {
	switch op {
	case opAND:
		ea, addrClocks := m.effectiveAddress(ir, m.CPage)
		m.and(ea)
		m.clocks += baseClocks[op] + addrClocks

	case opTAD:
		ea, addrClocks := m.effectiveAddress(ir, m.CPage)
		m.tad(ea)
		m.clocks += baseClocks[op] + addrClocks

	case opISZ:
		ea, addrClocks := m.effectiveAddress(ir, m.CPage)
		m.isz(ea)
		m.clocks += baseClocks[op] + addrClocks

	case opDCA:
		ea, addrClocks := m.effectiveAddress(ir, m.CPage)
		m.dca(ea)
		m.clocks += baseClocks[op] + addrClocks

	case opJMS:
		ea, addrClocks := m.effectiveAddress(ir, m.CPage)
		m.jms(ea)
		m.clocks += baseClocks[op] + addrClocks

	case opJMP:
		ea, addrClocks := m.effectiveAddress(ir, m.CPage)
		m.jmp(ea)
		m.clocks += baseClocks[op] + addrClocks

	case opIOT:
		m.iot(ir, fetchAddr)

	case opOPR:
		m.operate(ir, fetchAddr)
		m.clocks += baseClocks[op]
	}
}

// RunToHalt steps the machine until the Run flag goes false.
func (m *Machine) RunToHalt() {
	for m.Run {
		m.Step()
	}
}
