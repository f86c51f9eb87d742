package core

// Evm is the package's single public entry point (§6): construct a fresh
// top-level Machine over code and run it to completion. storage may be nil,
// in which case a private empty map is allocated; callers that want a
// DELEGATECALL-style shared storage pass their own map in and keep a
// reference to observe post-execution mutations.
func Evm(code []byte, ctx *Context, block *Block, storage Storage) *Result {
	m := NewMachine(code, ctx, block, storage, 0, maxGas)
	return m.Run()
}
