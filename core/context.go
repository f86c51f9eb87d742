package core

import "github.com/ethereum/go-ethereum/common"

// Context is the immutable per-frame call context: the executing contract,
// its caller, the transaction origin, the value/calldata carried into this
// frame, the world state visible to it, and whether it's a static
// (read-only) frame.
type Context struct {
	Address  common.Address
	Caller   common.Address
	Origin   common.Address
	GasPrice Word
	Value    Word
	Calldata []byte
	State    *State
	IsStatic bool
}

// Block carries the read-only block/chain constants visible to opcodes
// like NUMBER, TIMESTAMP, CHAINID. Each field is a fixed byte string,
// interpreted big-endian as a Word on access.
type Block struct {
	Coinbase   common.Address
	Timestamp  []byte
	Number     []byte
	Difficulty []byte
	GasLimit   []byte
	ChainID    []byte
	BaseFee    []byte
}

func (b *Block) timestampWord() *Word   { return wordFromBytes(b.Timestamp) }
func (b *Block) numberWord() *Word      { return wordFromBytes(b.Number) }
func (b *Block) difficultyWord() *Word  { return wordFromBytes(b.Difficulty) }
func (b *Block) gasLimitWord() *Word    { return wordFromBytes(b.GasLimit) }
func (b *Block) chainIDWord() *Word     { return wordFromBytes(b.ChainID) }
func (b *Block) baseFeeWord() *Word     { return wordFromBytes(b.BaseFee) }
func (b *Block) coinbaseWord() *Word    { return addressToWord(b.Coinbase) }
