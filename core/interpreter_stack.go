package core

// Stack-manipulation and misc opcode group (§4.6).

func opPOP(m *Machine) stepOutcome {
	if _, err := m.pop(); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

// opPUSH reads the n immediate bytes following the opcode byte, big-endian,
// zero-padding past the end of code, and pushes the result. Advances pc by
// n+1.
func opPUSH(n int) handlerFunc {
	return func(m *Machine) stepOutcome {
		start := m.pc + 1
		buf := readPadded(m.code, start, uint64(n))
		if err := m.push(wordFromBytes(buf)); err != nil {
			return errOutcome(err)
		}
		return continueOutcome(uint64(n + 1))
	}
}

func opPUSH0(m *Machine) stepOutcome {
	if err := m.push(zeroWord()); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

// opDUP duplicates the n-th element from the top (1-indexed) onto the top.
func opDUP(n int) handlerFunc {
	return func(m *Machine) stepOutcome {
		v, err := m.at(n - 1)
		if err != nil {
			return errOutcome(err)
		}
		if err := m.push(&v); err != nil {
			return errOutcome(err)
		}
		return continueOutcome(1)
	}
}

// opSWAP exchanges the top of the stack with the n-th element below it
// (1-indexed, so SWAP1 swaps top and second).
func opSWAP(n int) handlerFunc {
	return func(m *Machine) stepOutcome {
		if err := m.stack.swap(n); err != nil {
			return errOutcome(err)
		}
		return continueOutcome(1)
	}
}

func opPC(m *Machine) stepOutcome {
	return pushWord(m, new(Word).SetUint64(m.pc))
}

func opMSIZE(m *Machine) stepOutcome {
	return pushWord(m, new(Word).SetUint64(m.memory.Size()))
}

func opGAS(m *Machine) stepOutcome {
	return pushWord(m, new(Word).SetUint64(maxGas))
}

func opJUMPDEST(m *Machine) stepOutcome {
	return continueOutcome(1)
}
