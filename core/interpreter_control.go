package core

// Control-flow opcode group (§4.6).

func opSTOP(m *Machine) stepOutcome {
	return stopOutcome()
}

func opJUMP(m *Machine) stepOutcome {
	dest, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	if !dest.IsUint64() || !m.jumpMap.isValid(dest.Uint64()) {
		return errOutcome(&ErrInvalidJump{Dest: dest.Uint64()})
	}
	return jumpOutcome(dest.Uint64())
}

func opJUMPI(m *Machine) stepOutcome {
	dest, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	cond, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	if cond.IsZero() {
		return continueOutcome(1)
	}
	if !dest.IsUint64() || !m.jumpMap.isValid(dest.Uint64()) {
		return errOutcome(&ErrInvalidJump{Dest: dest.Uint64()})
	}
	return jumpOutcome(dest.Uint64())
}

func opRETURN(m *Machine) stepOutcome {
	offset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	size, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	return returnOutcome(m.memory.GetCopy(offset.Uint64(), size.Uint64()))
}

func opREVERT(m *Machine) stepOutcome {
	offset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	size, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	return errOutcome(&ErrRevert{Data: m.memory.GetCopy(offset.Uint64(), size.Uint64())})
}

func opINVALID(m *Machine) stepOutcome {
	return errOutcome(&ErrInvalidInstruction{Opcode: INVALID})
}
