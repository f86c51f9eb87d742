package core

import "fmt"

// ExampleEvm mirrors the teacher's one-off usage demo: push calldata into
// storage, read it back, and return it, run through the single public
// entry point instead of a live RPC-backed simulation.
func ExampleEvm() {
	code := []byte{
		PUSH0, CALLDATALOAD,
		PUSH0, SSTORE,
		PUSH0, SLOAD,
		PUSH0, MSTORE,
		PUSH1, 0x20, PUSH0, RETURN,
	}

	ctx := &Context{
		State:    NewState(),
		Calldata: append(make([]byte, 31), 0x2a),
	}
	result := Evm(code, ctx, &Block{}, nil)

	fmt.Println(result.Success)
	fmt.Printf("%x\n", result.ReturnVal)
	// Output:
	// true
	// 000000000000000000000000000000000000000000000000000000000000002a
}
