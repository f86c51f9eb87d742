package core

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160"
)

// precompileID reports whether addr names one of the four builtin
// contracts this engine supports (see SPEC_FULL.md §3), and which one.
// Full precompile dispatch is out of scope (spec.md Non-goals); this is a
// deliberately small supplemental set.
func precompileID(addr common.Address) (byte, bool) {
	for i := 0; i < 19; i++ {
		if addr[i] != 0 {
			return 0, false
		}
	}
	id := addr[19]
	if id >= 1 && id <= 4 {
		return id, true
	}
	return 0, false
}

// runPrecompile executes a builtin contract against input, returning its
// output. Every builtin here always succeeds except ECRECOVER, which
// returns an empty output on recovery failure (mirroring real Ethereum).
func runPrecompile(id byte, input []byte) []byte {
	switch id {
	case 1:
		return precompileEcrecover(input)
	case 2:
		sum := sha256.Sum256(input)
		return sum[:]
	case 3:
		h := ripemd160.New()
		h.Write(input)
		return leftPad32(h.Sum(nil))
	case 4:
		out := make([]byte, len(input))
		copy(out, input)
		return out
	}
	return nil
}

// precompileEcrecover recovers the signer address from (hash, v, r, s),
// each a 32-byte big-endian field packed into a 128-byte input, zero-padded
// past the end. Returns nil on any malformed or unrecoverable signature.
func precompileEcrecover(input []byte) []byte {
	data := make([]byte, 128)
	copy(data, input)

	hash := data[:32]
	vWord := new(Word).SetBytes(data[32:64])
	r, s := data[64:96], data[96:128]

	if !vWord.IsUint64() {
		return nil
	}
	v := vWord.Uint64()
	if v != 27 && v != 28 {
		return nil
	}

	sig := make([]byte, 65)
	copy(sig[0:32], r)
	copy(sig[32:64], s)
	sig[64] = byte(v - 27)

	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return nil
	}
	return leftPad32(crypto.PubkeyToAddress(*pub).Bytes())
}
