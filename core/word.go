package core

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Word is the machine's universal 256-bit datum. All arithmetic on it wraps
// modulo 2**256 unless a handler explicitly layers signed semantics on top.
type Word = uint256.Int

// zeroWord returns a fresh zero-valued Word.
func zeroWord() *Word {
	return new(Word)
}

// wordFromBytes interprets b as a big-endian unsigned integer and returns it
// as a Word.
func wordFromBytes(b []byte) *Word {
	return new(Word).SetBytes(b)
}

// addressToWord right-aligns a 160-bit address into a 256-bit word
// (big-endian, 12 leading zero bytes).
func addressToWord(addr common.Address) *Word {
	return new(Word).SetBytes(addr.Bytes())
}

// wordToAddress extracts the low 160 bits of a word as an address.
func wordToAddress(w *Word) common.Address {
	return common.Address(w.Bytes20())
}
