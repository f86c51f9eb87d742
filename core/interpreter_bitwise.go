package core

// Comparison, bitwise and shift opcode group (§4.6).

func opLT(m *Machine) stepOutcome  { return pushBool(m, func(a, b *Word) bool { return a.Lt(b) }) }
func opGT(m *Machine) stepOutcome  { return pushBool(m, func(a, b *Word) bool { return a.Gt(b) }) }
func opEQ(m *Machine) stepOutcome  { return pushBool(m, func(a, b *Word) bool { return a.Eq(b) }) }

func opISZERO(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if a.IsZero() {
		res.SetOne()
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opSLT(m *Machine) stepOutcome { return pushBool(m, signedLess) }
func opSGT(m *Machine) stepOutcome { return pushBool(m, func(a, b *Word) bool { return signedLess(b, a) }) }

// signedLess reports whether a < b under two's-complement signed
// interpretation: differing signs decide it outright, equal signs fall
// through to magnitude comparison (inverted when both are negative).
func signedLess(a, b *Word) bool {
	aNeg, bNeg := isNegative(a), isNegative(b)
	if aNeg != bNeg {
		return aNeg
	}
	if aNeg {
		return negate(b).Lt(negate(a))
	}
	return a.Lt(b)
}

func opAND(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := new(Word).And(&a, &b)
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opOR(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := new(Word).Or(&a, &b)
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opXOR(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := new(Word).Xor(&a, &b)
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opNOT(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := new(Word).Not(&a)
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opBYTE(m *Machine) stepOutcome {
	i, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	x, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if i.LtUint64(32) {
		idx := i.Uint64()
		b32 := x.Bytes32()
		res.SetUint64(uint64(b32[idx]))
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opSHL(m *Machine) stepOutcome {
	shift, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	value, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if shift.LtUint64(256) {
		res.Lsh(&value, uint(shift.Uint64()))
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opSHR(m *Machine) stepOutcome {
	shift, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	value, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if shift.LtUint64(256) {
		res.Rsh(&value, uint(shift.Uint64()))
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

// opSAR implements arithmetic (sign-preserving) right shift: if value is
// negative, shift its magnitude then re-negate, per §4.6.
func opSAR(m *Machine) stepOutcome {
	shift, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	value, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	var res *Word
	if isNegative(&value) {
		mag := negate(&value)
		if shift.LtUint64(256) {
			mag.Rsh(mag, uint(shift.Uint64()))
		} else {
			mag = zeroWord()
		}
		if mag.IsZero() {
			// a negative value shifted all the way out saturates to -1
			// (all-ones), not 0: SAR never loses the sign bit.
			res = new(Word).Not(zeroWord())
		} else {
			res = negate(mag)
		}
	} else {
		res = zeroWord()
		if shift.LtUint64(256) {
			res.Rsh(&value, uint(shift.Uint64()))
		}
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

// pushBool pops two operands (a then b, EVM order), applies cmp(a,b) and
// pushes 1 or 0.
func pushBool(m *Machine, cmp func(a, b *Word) bool) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if cmp(&a, &b) {
		res.SetOne()
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}
