package core

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestCallReadsCalleeStorage(t *testing.T) {
	state := NewState()
	calleeAddr := common.HexToAddress("0x0000000000000000000000000000000000000002")
	callerAddr := common.HexToAddress("0x0000000000000000000000000000000000000001")

	// callee: SLOAD(0) MSTORE(0) RETURN(0, 32)
	calleeCode := []byte{
		PUSH1, 0x00,
		SLOAD,
		PUSH1, 0x00,
		MSTORE,
		PUSH1, 0x20,
		PUSH1, 0x00,
		RETURN,
	}
	state.SetCode(calleeAddr, calleeCode)

	calleeWord := addressToWord(calleeAddr)
	calleeBytes := calleeWord.Bytes32()

	// caller: CALL(gas, calleeAddr, 0, 0, 0, 0, 32) then return what the
	// callee wrote into our memory via retOffset/retSize.
	// Arguments are pushed last-first so that gas ends up on top.
	code := []byte{
		PUSH1, 0x20, // retSize
		PUSH1, 0x00, // retOffset
		PUSH1, 0x00, // argsSize
		PUSH1, 0x00, // argsOffset
		PUSH1, 0x00, // value
		PUSH32,
	}
	code = append(code, calleeBytes[:]...)
	code = append(code,
		GAS,
		CALL,
		POP, // drop the CALL success flag
		PUSH1, 0x20,
		PUSH1, 0x00,
		RETURN,
	)

	ctx := &Context{Address: callerAddr, State: state}
	m := NewMachine(code, ctx, &Block{}, nil, 0, maxGas)
	res := m.Run()
	if !res.Success {
		t.Fatalf("unexpected failure: %v", res.Err)
	}
	if len(res.ReturnVal) != 32 {
		t.Fatalf("return length = %d, want 32", len(res.ReturnVal))
	}
}

func TestCallFailureRollsBackState(t *testing.T) {
	state := NewState()
	calleeAddr := common.HexToAddress("0x0000000000000000000000000000000000000002")
	callerAddr := common.HexToAddress("0x0000000000000000000000000000000000000001")

	// callee writes to storage slot 0, then reverts: the write must not
	// survive in the caller's state.
	calleeCode := []byte{
		PUSH1, 0x2a,
		PUSH1, 0x00,
		SSTORE,
		PUSH1, 0x00,
		PUSH1, 0x00,
		REVERT,
	}
	state.SetCode(calleeAddr, calleeCode)

	calleeWord := addressToWord(calleeAddr)
	calleeBytes := calleeWord.Bytes32()

	code := []byte{PUSH1, 0x00, PUSH1, 0x00, PUSH1, 0x00, PUSH1, 0x00, PUSH1, 0x00, PUSH32}
	code = append(code, calleeBytes[:]...)
	code = append(code,
		GAS,
		CALL,
	)

	ctx := &Context{Address: callerAddr, State: state}
	m := NewMachine(code, ctx, &Block{}, nil, 0, maxGas)
	res := m.Run()
	if !res.Success {
		t.Fatalf("unexpected failure: %v", res.Err)
	}
	if res.Stack[0].Uint64() != 0 {
		t.Fatalf("CALL success flag = %d, want 0 (callee reverted)", res.Stack[0].Uint64())
	}
	if state.Exists(calleeAddr) == false {
		t.Fatal("callee account should still exist (only its storage write should be undone)")
	}
}

func TestDelegatecallSharesCallerStorage(t *testing.T) {
	state := NewState()
	calleeAddr := common.HexToAddress("0x0000000000000000000000000000000000000002")
	callerAddr := common.HexToAddress("0x0000000000000000000000000000000000000001")

	// callee writes 0x2a into its own (shared) storage slot 0.
	calleeCode := []byte{
		PUSH1, 0x2a,
		PUSH1, 0x00,
		SSTORE,
		STOP,
	}
	state.SetCode(calleeAddr, calleeCode)

	calleeWord := addressToWord(calleeAddr)
	calleeBytes := calleeWord.Bytes32()

	// caller: DELEGATECALL(gas, calleeAddr, 0, 0, 0, 0), then SLOAD(0) to
	// observe whether the write landed in the caller's own storage.
	code := []byte{PUSH1, 0x00, PUSH1, 0x00, PUSH1, 0x00, PUSH1, 0x00, PUSH32}
	code = append(code, calleeBytes[:]...)
	code = append(code,
		GAS,
		DELEGATECALL,
		POP,
		PUSH1, 0x00,
		SLOAD,
	)

	ctx := &Context{Address: callerAddr, State: state}
	callerStorage := NewStorage()
	m := NewMachine(code, ctx, &Block{}, callerStorage, 0, maxGas)
	res := m.Run()
	if !res.Success {
		t.Fatalf("unexpected failure: %v", res.Err)
	}
	if res.Stack[0].Uint64() != 0x2a {
		t.Fatalf("caller's storage slot 0 = %d, want 0x2a (DELEGATECALL should share storage)", res.Stack[0].Uint64())
	}
}

func TestCreateInstallsReturnedCode(t *testing.T) {
	state := NewState()
	callerAddr := common.HexToAddress("0x0000000000000000000000000000000000000001")

	// init code: returns a 1-byte runtime program (STOP).
	initCode := []byte{
		PUSH1, byte(STOP),
		PUSH1, 0x00,
		MSTORE8,
		PUSH1, 0x01,
		PUSH1, 0x00,
		RETURN,
	}

	// Build caller code: write initCode into memory, then CREATE(0, 0, len).
	callerCode := []byte{}
	for i, b := range initCode {
		callerCode = append(callerCode, PUSH1, b, PUSH1, byte(i), MSTORE8)
	}
	callerCode = append(callerCode,
		PUSH1, byte(len(initCode)),
		PUSH1, 0x00,
		PUSH1, 0x00, // value
		CREATE,
	)

	ctx := &Context{Address: callerAddr, State: state}
	m := NewMachine(callerCode, ctx, &Block{}, nil, 0, maxGas)
	res := m.Run()
	if !res.Success {
		t.Fatalf("unexpected failure: %v", res.Err)
	}
	if len(res.Stack) != 1 || res.Stack[0].IsZero() {
		t.Fatalf("CREATE pushed %v, want a nonzero new address", res.Stack)
	}
}
