package core

import "math"

// maxCallDepth bounds recursive sub-execution (CALL/CREATE family); it is
// the Ethereum consensus cap. Exceeding it is a handled failure, not a Go
// stack overflow.
const maxCallDepth = 1024

// outcomeKind classifies what a handler asked the fetch loop to do next.
type outcomeKind int

const (
	outContinue outcomeKind = iota
	outJump
	outExit
)

// stepOutcome is the result of evaluating one opcode. It mirrors the
// Continue(n)/Jump(pos)/Exit(Success|Error) control-flow sum described in
// SPEC_FULL.md §4 and grounded in original_source's machine.rs.
type stepOutcome struct {
	kind    outcomeKind
	n       uint64 // outContinue: pc += n
	jumpPC  uint64 // outJump: pc = jumpPC
	success bool   // outExit: success flag
	ret     []byte // outExit+success: return payload (nil for plain STOP)
	err     error  // outExit+!success: the error kind (ErrRevert carries its payload)
}

func continueOutcome(n uint64) stepOutcome  { return stepOutcome{kind: outContinue, n: n} }
func jumpOutcome(pos uint64) stepOutcome    { return stepOutcome{kind: outJump, jumpPC: pos} }
func stopOutcome() stepOutcome              { return stepOutcome{kind: outExit, success: true} }
func returnOutcome(data []byte) stepOutcome { return stepOutcome{kind: outExit, success: true, ret: data} }
func errOutcome(err error) stepOutcome      { return stepOutcome{kind: outExit, success: false, err: err} }

// handlerFunc evaluates one opcode against the machine's live state.
type handlerFunc func(m *Machine) stepOutcome

// Machine is one activation of the interpreter against a (code, context)
// pair: the fetch/dispatch loop plus the resources it owns for the
// duration of one frame's execution.
type Machine struct {
	pc uint64

	code    []byte
	stack   *Stack
	memory  *Memory
	storage Storage
	jumpMap *JumpMap

	ctx   *Context
	block *Block

	returnData []byte
	logs       []Log

	depth    int
	gasLimit uint64
}

// NewMachine constructs a Machine ready to execute code in the given
// context/block, sharing storage if provided (nil means "fresh, private
// storage", used by every frame except a DELEGATECALL callee).
func NewMachine(code []byte, ctx *Context, block *Block, storage Storage, depth int, gasLimit uint64) *Machine {
	if storage == nil {
		storage = NewStorage()
	}
	return &Machine{
		code:     code,
		stack:    newStack(),
		memory:   NewMemory(),
		storage:  storage,
		jumpMap:  newJumpMap(code),
		ctx:      ctx,
		block:    block,
		depth:    depth,
		gasLimit: gasLimit,
	}
}

// GasLeft returns the informational gas register. The engine never charges
// gas; this always returns the value the frame was constructed with.
func (m *Machine) GasLeft() uint64 {
	return m.gasLimit
}

// Run executes the fetch/dispatch loop to completion and assembles a
// Result. The loop terminates when pc runs past the end of code (an
// implicit STOP) or a handler returns an outExit outcome.
func (m *Machine) Run() *Result {
	for m.pc < uint64(len(m.code)) {
		op := m.code[m.pc]

		if m.ctx.IsStatic && !isStatic(op) {
			return m.exitError(&ErrOpcodeNotStatic{Opcode: op})
		}
		if op == CALL && m.ctx.IsStatic {
			if v, err := m.stack.peek(2); err == nil && !v.IsZero() {
				return m.exitError(&ErrOpcodeNotStatic{Opcode: op})
			}
		}

		handler, ok := dispatchTable[op]
		if !ok {
			return m.exitError(&ErrInvalidInstruction{Opcode: op})
		}

		outcome := handler(m)
		switch outcome.kind {
		case outContinue:
			m.pc += outcome.n
		case outJump:
			m.pc = outcome.jumpPC
		case outExit:
			if outcome.success {
				return &Result{
					Stack:     m.stack.data(),
					Success:   true,
					Logs:      m.logs,
					ReturnVal: outcome.ret,
				}
			}
			return m.exitError(outcome.err)
		}
	}

	return &Result{
		Stack:   m.stack.data(),
		Success: true,
		Logs:    m.logs,
	}
}

// exitError assembles a failure Result, preserving the stack snapshot taken
// at the failure point and, for Revert, the return payload.
func (m *Machine) exitError(err error) *Result {
	res := &Result{
		Stack:   m.stack.data(),
		Success: false,
		Err:     err,
		Logs:    m.logs,
	}
	if rv, ok := err.(*ErrRevert); ok {
		res.ReturnVal = rv.Data
	}
	return res
}

// maxGas is the sentinel the GAS opcode pushes, since this engine never
// meters gas consumption.
const maxGas = uint64(math.MaxUint64)

// pop, push, at and setAt are thin wrappers around the Stack that return
// plain values so opcode handlers read naturally; errors still propagate.
func (m *Machine) pop() (Word, error) {
	w, err := m.stack.pop()
	if err != nil {
		return Word{}, err
	}
	return *w, nil
}

func (m *Machine) push(w *Word) error {
	return m.stack.push(w)
}

func (m *Machine) at(i int) (Word, error) {
	w, err := m.stack.peek(i)
	if err != nil {
		return Word{}, err
	}
	return *w, nil
}

func (m *Machine) setAt(w *Word, i int) error {
	return m.stack.set(w, i)
}
