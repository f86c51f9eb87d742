package core

// This file implements the arithmetic opcode group (§4.6). All results wrap
// modulo 2**256 unless a handler explicitly layers signed semantics on top
// via negate/isNegative (helpers.go).

func opADD(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := new(Word).Add(&a, &b)
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opMUL(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := new(Word).Mul(&a, &b)
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opSUB(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := new(Word).Sub(&a, &b)
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opDIV(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if !b.IsZero() {
		res.Div(&a, &b)
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opSDIV(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if !b.IsZero() {
		aNeg, bNeg := isNegative(&a), isNegative(&b)
		aMag, bMag := &a, &b
		if aNeg {
			aMag = negate(&a)
		}
		if bNeg {
			bMag = negate(&b)
		}
		res.Div(aMag, bMag)
		if aNeg != bNeg {
			res = negate(res)
		}
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opMOD(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if !b.IsZero() {
		res.Mod(&a, &b)
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opSMOD(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if !b.IsZero() {
		aNeg := isNegative(&a)
		aMag, bMag := &a, &b
		if aNeg {
			aMag = negate(&a)
		}
		if isNegative(&b) {
			bMag = negate(&b)
		}
		res.Mod(aMag, bMag)
		// the result's sign follows the dividend
		if aNeg && !res.IsZero() {
			res = negate(res)
		}
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opADDMOD(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	n, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if !n.IsZero() {
		res.AddMod(&a, &b, &n)
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opMULMOD(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	n, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := zeroWord()
	if !n.IsZero() {
		res.MulMod(&a, &b, &n)
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opEXP(m *Machine) stepOutcome {
	a, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := new(Word).Exp(&a, &b)
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}

func opSIGNEXTEND(m *Machine) stepOutcome {
	b, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	x, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	res := new(Word).Set(&x)
	if b.LtUint64(32) {
		res.ExtendSign(&x, &b)
	}
	if err := m.push(res); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}
