package core

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// createAddress derives a CREATE target: keccak256(rlp([sender, nonce]))[12:].
// The sender nonce is hard-coded to 0 (§9 decision 3 / open question 3):
// this engine doesn't track per-account nonces.
func createAddress(sender common.Address, nonce uint64) common.Address {
	data, _ := rlp.EncodeToBytes([]interface{}{sender, nonce})
	return common.BytesToAddress(crypto.Keccak256(data)[12:])
}

// createAddress2 derives a CREATE2 target:
// keccak256(0xff ++ sender ++ salt ++ keccak256(initCode))[12:].
// Implemented as a supplemental feature (§9 decision 8).
func createAddress2(sender common.Address, salt [32]byte, initCode []byte) common.Address {
	initCodeHash := crypto.Keccak256(initCode)
	payload := make([]byte, 0, 1+20+32+32)
	payload = append(payload, 0xff)
	payload = append(payload, sender.Bytes()...)
	payload = append(payload, salt[:]...)
	payload = append(payload, initCodeHash...)
	return common.BytesToAddress(crypto.Keccak256(payload)[12:])
}
