package core

import "github.com/ethereum/go-ethereum/crypto"

// Account-inspection opcode group (§4.6).

func opBALANCE(m *Machine) stepOutcome {
	addr, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	acc := m.ctx.State.Get(wordToAddress(&addr))
	bal := acc.Balance
	return pushWord(m, &bal)
}

func opEXTCODESIZE(m *Machine) stepOutcome {
	addr, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	acc := m.ctx.State.Get(wordToAddress(&addr))
	return pushWord(m, new(Word).SetUint64(uint64(len(acc.Code))))
}

func opEXTCODEHASH(m *Machine) stepOutcome {
	addr, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	acc := m.ctx.State.Get(wordToAddress(&addr))
	if len(acc.Code) == 0 {
		return pushWord(m, zeroWord())
	}
	return pushWord(m, wordFromBytes(crypto.Keccak256(acc.Code)))
}

func opSELFBALANCE(m *Machine) stepOutcome {
	acc := m.ctx.State.Get(m.ctx.Address)
	bal := acc.Balance
	return pushWord(m, &bal)
}

func opEXTCODECOPY(m *Machine) stepOutcome {
	addr, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	destOffset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	offset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	size, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	acc := m.ctx.State.Get(wordToAddress(&addr))
	data := readPadded(acc.Code, offset.Uint64(), size.Uint64())
	m.memory.SetBytes(destOffset.Uint64(), data)
	return continueOutcome(1)
}
