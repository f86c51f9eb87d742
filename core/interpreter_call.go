package core

import "github.com/ethereum/go-ethereum/common"

// subCallParams carries the per-opcode differences between CALL,
// CALLCODE, DELEGATECALL and STATICCALL described in §4.7's table.
type subCallParams struct {
	execAddr   common.Address // Address() as observed inside the callee
	callerAddr common.Address // Caller() as observed inside the callee
	codeAddr   common.Address // whose code actually runs

	value Word

	argsOffset, argsSize uint64
	retOffset, retSize   uint64

	isStatic      bool
	transferValue bool    // CALL/CALLCODE move value from the current contract
	sharedStorage Storage // non-nil only for DELEGATECALL (shares caller's storage)
}

func opCALL(m *Machine) stepOutcome {
	gas, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	_ = gas
	addr, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	value, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	argsOffset, argsSize, retOffset, retSize, err := m.popCallOffsets()
	if err != nil {
		return errOutcome(err)
	}
	target := wordToAddress(&addr)
	return m.subCall(subCallParams{
		execAddr:      target,
		callerAddr:    m.ctx.Address,
		codeAddr:      target,
		value:         value,
		argsOffset:    argsOffset,
		argsSize:      argsSize,
		retOffset:     retOffset,
		retSize:       retSize,
		transferValue: true,
	})
}

func opCALLCODE(m *Machine) stepOutcome {
	gas, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	_ = gas
	addr, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	value, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	argsOffset, argsSize, retOffset, retSize, err := m.popCallOffsets()
	if err != nil {
		return errOutcome(err)
	}
	return m.subCall(subCallParams{
		execAddr:      m.ctx.Address,
		callerAddr:    m.ctx.Address,
		codeAddr:      wordToAddress(&addr),
		value:         value,
		argsOffset:    argsOffset,
		argsSize:      argsSize,
		retOffset:     retOffset,
		retSize:       retSize,
		transferValue: true,
	})
}

func opDELEGATECALL(m *Machine) stepOutcome {
	gas, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	_ = gas
	addr, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	argsOffset, argsSize, retOffset, retSize, err := m.popCallOffsets()
	if err != nil {
		return errOutcome(err)
	}
	return m.subCall(subCallParams{
		execAddr:      m.ctx.Address,
		callerAddr:    m.ctx.Caller,
		codeAddr:      wordToAddress(&addr),
		value:         m.ctx.Value,
		argsOffset:    argsOffset,
		argsSize:      argsSize,
		retOffset:     retOffset,
		retSize:       retSize,
		sharedStorage: m.storage,
	})
}

func opSTATICCALL(m *Machine) stepOutcome {
	gas, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	_ = gas
	addr, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	argsOffset, argsSize, retOffset, retSize, err := m.popCallOffsets()
	if err != nil {
		return errOutcome(err)
	}
	target := wordToAddress(&addr)
	return m.subCall(subCallParams{
		execAddr:   target,
		callerAddr: m.ctx.Address,
		codeAddr:   target,
		value:      *zeroWord(),
		argsOffset: argsOffset,
		argsSize:   argsSize,
		retOffset:  retOffset,
		retSize:    retSize,
		isStatic:   true,
	})
}

// popCallOffsets pops the common (argsOffset, argsSize, retOffset, retSize)
// quartet shared by all four call opcodes.
func (m *Machine) popCallOffsets() (argsOffset, argsSize, retOffset, retSize uint64, err error) {
	a, err := m.pop()
	if err != nil {
		return
	}
	b, err := m.pop()
	if err != nil {
		return
	}
	c, err := m.pop()
	if err != nil {
		return
	}
	d, err := m.pop()
	if err != nil {
		return
	}
	return a.Uint64(), b.Uint64(), c.Uint64(), d.Uint64(), nil
}

// subCall runs a nested Machine over the callee's code, clones the caller's
// state into it, and reconciles the outcome per §4.7: on success the
// caller adopts the clone and appends the callee's logs and return data; on
// failure the caller's state/logs are untouched and only a Revert payload
// (if any) is surfaced via the return-data buffer.
func (m *Machine) subCall(p subCallParams) stepOutcome {
	if m.depth+1 > maxCallDepth {
		return pushWord(m, zeroWord())
	}

	calldata := m.memory.GetCopy(p.argsOffset, p.argsSize)

	if id, ok := precompileID(p.codeAddr); ok {
		out := runPrecompile(id, calldata)
		m.returnData = out
		m.copyReturnToMemory(out, p.retOffset, p.retSize)
		return pushWord(m, new(Word).SetOne())
	}

	calleeState := m.ctx.State.Clone()
	if p.transferValue && !p.value.IsZero() {
		calleeState.SubBalance(m.ctx.Address, &p.value)
		calleeState.AddBalance(p.execAddr, &p.value)
	}
	codeAcc := calleeState.Get(p.codeAddr)

	storage := p.sharedStorage
	if storage == nil {
		storage = NewStorage()
	}

	calleeCtx := &Context{
		Address:  p.execAddr,
		Caller:   p.callerAddr,
		Origin:   m.ctx.Origin,
		GasPrice: m.ctx.GasPrice,
		Value:    p.value,
		Calldata: calldata,
		State:    calleeState,
		IsStatic: m.ctx.IsStatic || p.isStatic,
	}

	callee := NewMachine(codeAcc.Code, calleeCtx, m.block, storage, m.depth+1, m.gasLimit)
	result := callee.Run()

	if !result.Success {
		if rv, ok := result.Err.(*ErrRevert); ok {
			m.returnData = rv.Data
		} else {
			m.returnData = nil
		}
		return pushWord(m, zeroWord())
	}

	m.ctx.State.ReplaceWith(calleeState)
	m.logs = append(m.logs, result.Logs...)
	m.returnData = result.ReturnVal
	m.copyReturnToMemory(result.ReturnVal, p.retOffset, p.retSize)
	return pushWord(m, new(Word).SetOne())
}

// copyReturnToMemory copies up to retSize bytes of data into memory at
// retOffset, resizing memory for the full retSize request even when data
// is shorter (matching real CALL/CREATE out-copy behavior: it does not
// zero-fill beyond what was actually returned).
func (m *Machine) copyReturnToMemory(data []byte, retOffset, retSize uint64) {
	if retSize == 0 {
		return
	}
	m.memory.resize(retOffset, retSize)
	n := uint64(len(data))
	if n > retSize {
		n = retSize
	}
	if n == 0 {
		return
	}
	m.memory.SetBytes(retOffset, data[:n])
}

func opCREATE(m *Machine) stepOutcome  { return m.doCreate(false) }
func opCREATE2(m *Machine) stepOutcome { return m.doCreate(true) }

// doCreate implements CREATE/CREATE2 (§4.7's table plus §9 decision 8):
// derive the new address, run the init code as a fresh frame, and on
// success install its return payload as the new account's code.
func (m *Machine) doCreate(isCreate2 bool) stepOutcome {
	value, err := m.pop()
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

	var saltBytes [32]byte
	if isCreate2 {
		salt, err := m.pop()
		if err != nil {
			return errOutcome(err)
		}
		saltBytes = salt.Bytes32()
	}

	initCode := m.memory.GetCopy(offset.Uint64(), size.Uint64())

	if m.depth+1 > maxCallDepth {
		return pushWord(m, zeroWord())
	}

	var newAddr common.Address
	if isCreate2 {
		newAddr = createAddress2(m.ctx.Address, saltBytes, initCode)
	} else {
		newAddr = createAddress(m.ctx.Address, 0)
	}

	calleeState := m.ctx.State.Clone()
	if !value.IsZero() {
		calleeState.SubBalance(m.ctx.Address, &value)
	}

	calleeCtx := &Context{
		Address:  newAddr,
		Caller:   m.ctx.Address,
		Origin:   m.ctx.Origin,
		GasPrice: m.ctx.GasPrice,
		Value:    value,
		Calldata: nil,
		State:    calleeState,
		IsStatic: m.ctx.IsStatic,
	}

	callee := NewMachine(initCode, calleeCtx, m.block, NewStorage(), m.depth+1, m.gasLimit)
	result := callee.Run()
	if !result.Success {
		return pushWord(m, zeroWord())
	}

	// if the init code returned nothing, the account is created with empty code
	calleeState.SetCode(newAddr, result.ReturnVal)
	calleeState.AddBalance(newAddr, &value)
	m.ctx.State.ReplaceWith(calleeState)
	m.logs = append(m.logs, result.Logs...)

	return pushWord(m, addressToWord(newAddr))
}

// opSELFDESTRUCT transfers the current contract's entire balance to the
// popped beneficiary and removes the contract's account, then exits
// successfully with no return value (like STOP).
func opSELFDESTRUCT(m *Machine) stepOutcome {
	beneficiary, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	addr := wordToAddress(&beneficiary)
	bal := m.ctx.State.Get(m.ctx.Address).Balance
	m.ctx.State.AddBalance(addr, &bal)
	m.ctx.State.Delete(m.ctx.Address)
	return stopOutcome()
}
