package core

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestStateCloneIsIndependent(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000001")
	s := NewState()
	s.AddBalance(addr, new(Word).SetUint64(100))

	clone := s.Clone()
	clone.AddBalance(addr, new(Word).SetUint64(50))

	if s.Get(addr).Balance.Uint64() != 100 {
		t.Fatalf("original balance mutated by clone: got %d, want 100", s.Get(addr).Balance.Uint64())
	}
	if clone.Get(addr).Balance.Uint64() != 150 {
		t.Fatalf("clone balance = %d, want 150", clone.Get(addr).Balance.Uint64())
	}
}

func TestSubBalanceClampsAtZero(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000001")
	s := NewState()
	s.AddBalance(addr, new(Word).SetUint64(10))
	s.SubBalance(addr, new(Word).SetUint64(100))

	if !s.Get(addr).Balance.IsZero() {
		t.Fatalf("balance = %s, want 0 (clamped)", s.Get(addr).Balance.Hex())
	}
}

func TestReplaceWithAdoptsClone(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000001")
	s := NewState()
	clone := s.Clone()
	clone.SetCode(addr, []byte{0x01})

	s.ReplaceWith(clone)
	if string(s.Get(addr).Code) != "\x01" {
		t.Fatal("ReplaceWith did not adopt the clone's contents")
	}
}

func TestDeleteRemovesAccount(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000001")
	s := NewState()
	s.SetCode(addr, []byte{0x01})
	s.Delete(addr)
	if s.Exists(addr) {
		t.Fatal("account should no longer exist after Delete")
	}
}
