package core

// Memory and storage I/O opcode group (§4.6).

func opMLOAD(m *Machine) stepOutcome {
	offset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	data := m.memory.GetCopy(offset.Uint64(), 32)
	if err := m.push(wordFromBytes(data)); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opMSTORE(m *Machine) stepOutcome {
	offset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	value, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	m.memory.Set(offset.Uint64(), &value, 32)
	return continueOutcome(1)
}

func opMSTORE8(m *Machine) stepOutcome {
	offset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	value, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	m.memory.Set(offset.Uint64(), &value, 1)
	return continueOutcome(1)
}

func opSLOAD(m *Machine) stepOutcome {
	key, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	return pushWord(m, m.storage.Get(&key))
}

func opSSTORE(m *Machine) stepOutcome {
	key, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	value, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	m.storage.Put(&key, &value)
	return continueOutcome(1)
}
