package core

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func TestKeccak256OfEmptyInput(t *testing.T) {
	// PUSH1 0 (size) PUSH1 0 (offset) KECCAK256
	res := run(t, []byte{PUSH1, 0x00, PUSH1, 0x00, KECCAK256})
	if !res.Success {
		t.Fatalf("unexpected failure: %v", res.Err)
	}
	want := crypto.Keccak256(nil)
	got := res.Stack[0].Bytes32()
	if string(got[:]) != string(want) {
		t.Fatalf("keccak256(\"\") = %x, want %x", got, want)
	}
}
