package core

import "github.com/ethereum/go-ethereum/crypto"

// opKECCAK256 hashes memory[offset:offset+size] with Keccak-256.
func opKECCAK256(m *Machine) stepOutcome {
	offset, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	size, err := m.pop()
	if err != nil {
		return errOutcome(err)
	}
	data := m.memory.GetCopy(offset.Uint64(), size.Uint64())
	hash := crypto.Keccak256(data)
	if err := m.push(wordFromBytes(hash)); err != nil {
		return errOutcome(err)
	}
	return continueOutcome(1)
}
