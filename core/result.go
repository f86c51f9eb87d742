package core

import "github.com/ethereum/go-ethereum/common"

// Log is one emitted log record: the emitting contract, a data payload
// sliced from memory, and 0-4 ordered topics.
type Log struct {
	Address common.Address
	Data    []byte
	Topics  []Word
}

// Result is the outcome of one evm() invocation: the final stack, whether
// execution succeeded, the error kind on failure, the logs emitted, and an
// optional return payload.
type Result struct {
	Stack     []Word
	Success   bool
	Err       error
	Logs      []Log
	ReturnVal []byte
}
