package pdp8

import "testing"

// S1 — add two constants. TAD loads a value into AC via two back-to-back
// instructions: CLA-equivalent zeroing isn't needed since AC starts at 0.
func TestScenarioS1AddTwoConstants(t *testing.T) {
	m := setup([]Word{
		buildMRI(opTAD, false, false, 0o40),
		buildMRI(opTAD, false, false, 0o41),
	}, map[Word]Word{
		0o40: 0o0017,
		0o41: 0o0025,
	})

	m.Step()
	m.Step()

	expectWord(t, "AC", m.AC, 0o0017+0o0025)
	expectBool(t, "L", m.L, false)
	expectInt(t, "IC[TAD]", m.IC[opTAD], 2)
	expectInt(t, "CPI[TAD]", m.CPI[opTAD], 4)
}

// S2 — link carry. TAD-ing two values whose sum overflows 12 bits sets L
// and wraps AC.
func TestScenarioS2LinkCarry(t *testing.T) {
	m := setup([]Word{buildMRI(opTAD, false, false, 0o40)}, map[Word]Word{
		0o40: 1,
	})
	m.AC = WordMask
	m.L = false

	m.Step()

	expectWord(t, "AC", m.AC, 0)
	expectBool(t, "L", m.L, true)
}

func TestTADCarryInFromLink(t *testing.T) {
	m := setup([]Word{buildMRI(opTAD, false, false, 0o40)}, map[Word]Word{
		0o40: 0,
	})
	m.AC = 5
	m.L = true

	m.Step()

	expectWord(t, "AC", m.AC, 6)
	expectBool(t, "L", m.L, false)
}

func TestAND(t *testing.T) {
	m := setup([]Word{buildMRI(opAND, false, false, 0o40)}, map[Word]Word{
		0o40: 0o5252,
	})
	m.AC = 0o7070

	m.Step()

	expectWord(t, "AC", m.AC, 0o5252&0o7070)
}

// S4 — ISZ skip. Incrementing a word from its maximum value wraps to zero
// and the following instruction is skipped.
func TestScenarioS4ISZSkipsOnWrap(t *testing.T) {
	m := setup([]Word{
		buildMRI(opISZ, false, false, 0o40),
		buildMRI(opJMP, false, false, 0o100), // must be skipped
	}, map[Word]Word{
		0o40: WordMask,
	})

	m.Step()

	expectWord(t, "counter after increment", m.Memory.Read(0o40), 0)
	expectWord(t, "PC after skip", m.PC, 0o202)
}

func TestISZDoesNotSkipWithoutWrap(t *testing.T) {
	m := setup([]Word{buildMRI(opISZ, false, false, 0o40)}, map[Word]Word{
		0o40: 5,
	})

	m.Step()

	expectWord(t, "counter", m.Memory.Read(0o40), 6)
	expectWord(t, "PC", m.PC, 0o201)
}

// DCA stores AC and clears it; a following TAD from the same cell recovers
// the value that was deposited, proving the round trip.
func TestDCAThenTADRoundTrip(t *testing.T) {
	m := setup([]Word{
		buildMRI(opDCA, false, false, 0o40),
		buildMRI(opTAD, false, false, 0o40),
	}, nil)
	m.AC = 0o3141

	m.Step()
	expectWord(t, "AC after DCA", m.AC, 0)
	expectWord(t, "stored value", m.Memory.Read(0o40), 0o3141)

	m.Step()
	expectWord(t, "AC after TAD", m.AC, 0o3141)
}

func TestJMSSavesReturnAddressAndJumps(t *testing.T) {
	m := setup([]Word{buildMRI(opJMS, false, false, 0o40)}, nil)

	m.Step()

	expectWord(t, "saved return address", m.Memory.Read(0o40), 0o201)
	expectWord(t, "PC", m.PC, 0o41)
}

func TestJMPTransfersControl(t *testing.T) {
	m := setup([]Word{buildMRI(opJMP, false, false, 0o100)}, nil)

	m.Step()

	expectWord(t, "PC", m.PC, 0o100)
}
