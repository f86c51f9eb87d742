package core

import "github.com/ethereum/go-ethereum/common"

// Account is one entry in the World state: a balance and a contract's code.
// A missing account reads as Account{Balance: 0, Code: nil}.
type Account struct {
	Balance Word
	Code    []byte
}

// State is the address -> Account world state visible to one frame. It is
// cloned by value into each sub-call frame so sub-call failures can be
// rolled back by discarding the clone.
type State struct {
	accounts map[common.Address]Account
}

// NewState returns an empty world state.
func NewState() *State {
	return &State{accounts: make(map[common.Address]Account)}
}

// Get returns the account at addr, or the zero-value Account if absent.
func (s *State) Get(addr common.Address) Account {
	if acc, ok := s.accounts[addr]; ok {
		return acc
	}
	return Account{}
}

// Exists reports whether addr has an entry in state at all.
func (s *State) Exists(addr common.Address) bool {
	_, ok := s.accounts[addr]
	return ok
}

// SetCode installs code for addr, creating the account if needed.
func (s *State) SetCode(addr common.Address, code []byte) {
	acc := s.Get(addr)
	acc.Code = code
	s.accounts[addr] = acc
}

// AddBalance adds delta (which may represent a decrease via the caller
// subtracting first) to addr's balance, creating the account if needed.
func (s *State) AddBalance(addr common.Address, delta *Word) {
	acc := s.Get(addr)
	acc.Balance.Add(&acc.Balance, delta)
	s.accounts[addr] = acc
}

// SubBalance subtracts delta from addr's balance. Callers are expected to
// have already checked sufficiency; balances are not allowed to go
// negative in a 256-bit unsigned word, so this clamps at zero rather than
// wrapping, which would otherwise produce an enormous balance.
func (s *State) SubBalance(addr common.Address, delta *Word) {
	acc := s.Get(addr)
	if acc.Balance.Cmp(delta) < 0 {
		acc.Balance = *zeroWord()
	} else {
		acc.Balance.Sub(&acc.Balance, delta)
	}
	s.accounts[addr] = acc
}

// Delete removes addr's account entirely (SELFDESTRUCT).
func (s *State) Delete(addr common.Address) {
	delete(s.accounts, addr)
}

// Clone returns a deep, independent copy of the state for a sub-call frame.
func (s *State) Clone() *State {
	clone := &State{accounts: make(map[common.Address]Account, len(s.accounts))}
	for addr, acc := range s.accounts {
		code := make([]byte, len(acc.Code))
		copy(code, acc.Code)
		clone.accounts[addr] = Account{Balance: acc.Balance, Code: code}
	}
	return clone
}

// ReplaceWith overwrites s's contents with other's, used when a sub-frame
// succeeds and its state clone becomes authoritative for the caller.
func (s *State) ReplaceWith(other *State) {
	s.accounts = other.accounts
}
