package core

// Context/block-inspection opcode groups (§4.6).

func opADDRESS(m *Machine) stepOutcome { return pushWord(m, addressToWord(m.ctx.Address)) }
func opCALLER(m *Machine) stepOutcome  { return pushWord(m, addressToWord(m.ctx.Caller)) }
func opORIGIN(m *Machine) stepOutcome  { return pushWord(m, addressToWord(m.ctx.Origin)) }
func opCALLVALUE(m *Machine) stepOutcome {
	v := m.ctx.Value
	return pushWord(m, &v)
}
func opGASPRICE(m *Machine) stepOutcome {
	v := m.ctx.GasPrice
	return pushWord(m, &v)
}
func opCODESIZE(m *Machine) stepOutcome {
	return pushWord(m, new(Word).SetUint64(uint64(len(m.code))))
}

func opCALLDATALOAD(m *Machine) stepOutcome {
	offset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	if !offset.IsUint64() {
		if pErr := m.push(zeroWord()); pErr != nil {
			return errOutcome(pErr)
		}
		return continueOutcome(1)
	}
	buf := readPadded(m.ctx.Calldata, offset.Uint64(), 32)
	if err := m.push(wordFromBytes(buf)); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opCALLDATASIZE(m *Machine) stepOutcome {
	return pushWord(m, new(Word).SetUint64(uint64(len(m.ctx.Calldata))))
}

func opCALLDATACOPY(m *Machine) stepOutcome {
	return copyToMemory(m, m.ctx.Calldata)
}

func opCODECOPY(m *Machine) stepOutcome {
	return copyToMemory(m, m.code)
}

func opRETURNDATASIZE(m *Machine) stepOutcome {
	return pushWord(m, new(Word).SetUint64(uint64(len(m.returnData))))
}

func opRETURNDATACOPY(m *Machine) stepOutcome {
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
	off, sz := offset.Uint64(), size.Uint64()
	if off+sz > uint64(len(m.returnData)) {
		return errOutcome(&ErrReturnDataOutOfBounds{Offset: off, Size: sz, BufLen: uint64(len(m.returnData))})
	}
	m.memory.SetBytes(destOffset.Uint64(), m.returnData[off:off+sz])
	return continueOutcome(1)
}

// Block-inspection opcodes.

func opBLOCKHASH(m *Machine) stepOutcome {
	// No block-hash oracle is modeled (§9 open question 6): always 0.
	offset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	_ = offset
	return pushWord(m, zeroWord())
}

func opCOINBASE(m *Machine) stepOutcome   { return pushWord(m, m.block.coinbaseWord()) }
func opTIMESTAMP(m *Machine) stepOutcome  { return pushWord(m, m.block.timestampWord()) }
func opNUMBER(m *Machine) stepOutcome     { return pushWord(m, m.block.numberWord()) }
func opDIFFICULTY(m *Machine) stepOutcome { return pushWord(m, m.block.difficultyWord()) }
func opGASLIMIT(m *Machine) stepOutcome   { return pushWord(m, m.block.gasLimitWord()) }
func opCHAINID(m *Machine) stepOutcome    { return pushWord(m, m.block.chainIDWord()) }
func opBASEFEE(m *Machine) stepOutcome    { return pushWord(m, m.block.baseFeeWord()) }

// pushWord is a small helper for opcodes that push a single derived value.
func pushWord(m *Machine, w *Word) stepOutcome {
	if err := m.push(w); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

// readPadded returns size bytes from src starting at offset, zero-padding
// past the end of src (and treating an offset beyond src's length as all
// padding).
func readPadded(src []byte, offset uint64, size uint64) []byte {
	out := make([]byte, size)
	if offset >= uint64(len(src)) {
		return out
	}
	n := uint64(len(src)) - offset
	if n > size {
		n = size
	}
	copy(out, src[offset:offset+n])
	return out
}

// copyToMemory implements the CALLDATACOPY/CODECOPY shape:
// pop(destOffset, offset, size), copy src[offset:offset+size] into memory
// at destOffset, zero-padding past the end of src.
func copyToMemory(m *Machine, src []byte) stepOutcome {
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
	data := readPadded(src, offset.Uint64(), size.Uint64())
	m.memory.SetBytes(destOffset.Uint64(), data)
	return continueOutcome(1)
}
