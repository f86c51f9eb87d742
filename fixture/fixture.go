// Package fixture loads and decodes the JSON test-fixture format consumed
// by an external harness (§6): a flat array of named cases, each carrying
// the bytecode to run plus the transaction/block/state context it runs
// against and the expected Result shape.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// Case is one entry in the fixture array.
type Case struct {
	Name   string       `json:"name"`
	Hint   string       `json:"hint"`
	Code   CodeSpec     `json:"code"`
	Tx     *TxSpec      `json:"tx,omitempty"`
	Block  *BlockSpec   `json:"block,omitempty"`
	State  StateSpec    `json:"state,omitempty"`
	Expect ExpectSpec   `json:"expect"`
}

// CodeSpec carries both the human-readable mnemonic listing (Asm, purely
// documentary — this harness never assembles it) and the hex bytecode that
// actually runs.
type CodeSpec struct {
	Asm string `json:"asm,omitempty"`
	Bin string `json:"bin"`
}

// TxSpec mirrors the optional transaction-shaped fields a case may set;
// zero-value (all omitted) means the zero address / zero word for each.
type TxSpec struct {
	To       string `json:"to,omitempty"`
	From     string `json:"from,omitempty"`
	Origin   string `json:"origin,omitempty"`
	GasPrice string `json:"gasprice,omitempty"`
	Value    string `json:"value,omitempty"`
	Data     string `json:"data,omitempty"`
}

// BlockSpec mirrors the optional block/chain constants a case may set.
type BlockSpec struct {
	BaseFee    string `json:"basefee,omitempty"`
	Coinbase   string `json:"coinbase,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
	Number     string `json:"number,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	GasLimit   string `json:"gaslimit,omitempty"`
	ChainID    string `json:"chainid,omitempty"`
}

// StateSpec is the optional address -> pre-existing account map a case may
// seed the world state with before running.
type StateSpec map[string]AccountSpec

// AccountSpec is one pre-seeded account; both fields are optional.
type AccountSpec struct {
	Balance string       `json:"balance,omitempty"`
	Code    *CodeRefSpec `json:"code,omitempty"`
}

// CodeRefSpec is the nested {bin} shape under state.<address>.code.
type CodeRefSpec struct {
	Bin string `json:"bin,omitempty"`
}

// ExpectSpec is what a case's invocation should produce.
type ExpectSpec struct {
	Success bool      `json:"success"`
	Stack   []string  `json:"stack,omitempty"`
	Logs    []LogSpec `json:"logs,omitempty"`
	Return  string    `json:"return,omitempty"`
}

// LogSpec is one expected Log entry.
type LogSpec struct {
	Address string   `json:"address,omitempty"`
	Data    string   `json:"data,omitempty"`
	Topics  []string `json:"topics,omitempty"`
}

// Load reads and decodes a fixture file from path.
func Load(path string) ([]Case, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	var cases []Case
	if err := json.Unmarshal(b, &cases); err != nil {
		return nil, fmt.Errorf("fixture: decode %s: %w", path, err)
	}
	return cases, nil
}
