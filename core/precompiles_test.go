package core

import (
	"crypto/sha256"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/ripemd160"
)

func TestPrecompileIDRecognizesBuiltins(t *testing.T) {
	for i := byte(1); i <= 4; i++ {
		addr := common.BytesToAddress([]byte{i})
		id, ok := precompileID(addr)
		if !ok || id != i {
			t.Fatalf("precompileID(%v) = (%d, %v), want (%d, true)", addr, id, ok, i)
		}
	}
}

func TestPrecompileIDRejectsOtherAddresses(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000005")
	if _, ok := precompileID(addr); ok {
		t.Fatal("address 0x...05 is not one of the four supported builtins")
	}
}

func TestPrecompileSha256(t *testing.T) {
	input := []byte("hello")
	want := sha256.Sum256(input)
	got := runPrecompile(2, input)
	if string(got) != string(want[:]) {
		t.Fatalf("sha256 precompile = %x, want %x", got, want)
	}
}

func TestPrecompileIdentity(t *testing.T) {
	input := []byte{1, 2, 3, 4}
	got := runPrecompile(4, input)
	if string(got) != string(input) {
		t.Fatalf("identity precompile = %x, want %x", got, input)
	}
}

func TestPrecompileRipemd160IsLeftPaddedTo32(t *testing.T) {
	input := []byte("hello")
	h := ripemd160.New()
	h.Write(input)
	want := leftPad32(h.Sum(nil))

	got := runPrecompile(3, input)
	if len(got) != 32 {
		t.Fatalf("ripemd160 precompile output len = %d, want 32", len(got))
	}
	if string(got) != string(want) {
		t.Fatalf("ripemd160 precompile = %x, want %x", got, want)
	}
}

func TestPrecompileEcrecoverMalformedInputReturnsNil(t *testing.T) {
	got := runPrecompile(1, make([]byte, 128))
	if got != nil {
		t.Fatalf("expected nil output for an all-zero (invalid v) ecrecover input, got %x", got)
	}
}
