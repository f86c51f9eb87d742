package fixture

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/evmlite/evmlite/core"
)

// decodeHex normalizes an optional "0x" prefix and an odd-length digit
// string (left-padded with a single "0") to what hexutil.Decode requires,
// per §6's lenient hex-string rule, then hands the actual decode to it.
func decodeHex(s string) ([]byte, error) {
	digits := strings.TrimPrefix(s, "0x")
	if digits == "" {
		return nil, nil
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	return hexutil.Decode("0x" + digits)
}

func decodeWord(s string) (*core.Word, error) {
	if s == "" {
		return new(core.Word), nil
	}
	b, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return new(core.Word).SetBytes(b), nil
}

func decodeAddress(s string) common.Address {
	if s == "" {
		return common.Address{}
	}
	return common.HexToAddress(s)
}

// BuildContext converts a Case's tx/state fields into a core.Context and
// core.State ready to run against.
func BuildContext(c Case) (*core.Context, error) {
	state := core.NewState()
	for addrHex, acc := range c.State {
		addr := decodeAddress(addrHex)
		if acc.Balance != "" {
			bal, err := decodeWord(acc.Balance)
			if err != nil {
				return nil, fmt.Errorf("state[%s].balance: %w", addrHex, err)
			}
			state.AddBalance(addr, bal)
		}
		if acc.Code != nil {
			code, err := decodeHex(acc.Code.Bin)
			if err != nil {
				return nil, fmt.Errorf("state[%s].code.bin: %w", addrHex, err)
			}
			state.SetCode(addr, code)
		}
	}

	ctx := &core.Context{State: state}
	if c.Tx != nil {
		ctx.Address = decodeAddress(c.Tx.To)
		ctx.Caller = decodeAddress(c.Tx.From)
		ctx.Origin = decodeAddress(c.Tx.Origin)

		gasPrice, err := decodeWord(c.Tx.GasPrice)
		if err != nil {
			return nil, fmt.Errorf("tx.gasprice: %w", err)
		}
		ctx.GasPrice = *gasPrice

		value, err := decodeWord(c.Tx.Value)
		if err != nil {
			return nil, fmt.Errorf("tx.value: %w", err)
		}
		ctx.Value = *value

		calldata, err := decodeHex(c.Tx.Data)
		if err != nil {
			return nil, fmt.Errorf("tx.data: %w", err)
		}
		ctx.Calldata = calldata
	}
	return ctx, nil
}

// BuildBlock converts a Case's optional block fields into a core.Block.
// Every field defaults to a single zero byte when omitted.
func BuildBlock(c Case) (*core.Block, error) {
	zero := []byte{0}
	b := &core.Block{Timestamp: zero, Number: zero, Difficulty: zero, GasLimit: zero, ChainID: zero, BaseFee: zero}
	if c.Block == nil {
		return b, nil
	}

	fields := []struct {
		src string
		dst *[]byte
		name string
	}{
		{c.Block.Timestamp, &b.Timestamp, "timestamp"},
		{c.Block.Number, &b.Number, "number"},
		{c.Block.Difficulty, &b.Difficulty, "difficulty"},
		{c.Block.GasLimit, &b.GasLimit, "gaslimit"},
		{c.Block.ChainID, &b.ChainID, "chainid"},
		{c.Block.BaseFee, &b.BaseFee, "basefee"},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		decoded, err := decodeHex(f.src)
		if err != nil {
			return nil, fmt.Errorf("block.%s: %w", f.name, err)
		}
		*f.dst = decoded
	}
	b.Coinbase = decodeAddress(c.Block.Coinbase)
	return b, nil
}

// decodedCode returns the case's decoded bytecode.
func (c Case) decodedCode() ([]byte, error) {
	return decodeHex(c.Code.Bin)
}

// Run decodes and executes one Case against a fresh core.Evm invocation.
func Run(c Case) (*core.Result, error) {
	code, err := c.decodedCode()
	if err != nil {
		return nil, fmt.Errorf("code.bin: %w", err)
	}
	ctx, err := BuildContext(c)
	if err != nil {
		return nil, err
	}
	block, err := BuildBlock(c)
	if err != nil {
		return nil, err
	}
	return core.Evm(code, ctx, block, nil), nil
}

// CaseOutcome pairs one Case with its run result (or the error that
// prevented it from running) and the diff against its Expect block.
type CaseOutcome struct {
	Case   Case
	Result *core.Result
	Err    error
	Diffs  []string
}

// RunAll runs every case independently and reports each outcome; a
// decode/build failure in one case doesn't stop the rest, matching the
// harness's documented behavior of iterating the whole fixture array.
func RunAll(cases []Case) []CaseOutcome {
	outcomes := make([]CaseOutcome, len(cases))
	for i, c := range cases {
		result, err := Run(c)
		outcomes[i] = CaseOutcome{Case: c, Result: result, Err: err}
		if err == nil {
			outcomes[i].Diffs = Diff(c, result)
		}
	}
	return outcomes
}

// Diff reports a human-readable list of mismatches between result and the
// case's Expect, or nil if they match.
func Diff(c Case, result *core.Result) []string {
	var diffs []string

	if result.Success != c.Expect.Success {
		diffs = append(diffs, fmt.Sprintf("success: got %v, want %v", result.Success, c.Expect.Success))
	}

	if c.Expect.Stack != nil {
		if len(result.Stack) != len(c.Expect.Stack) {
			diffs = append(diffs, fmt.Sprintf("stack length: got %d, want %d", len(result.Stack), len(c.Expect.Stack)))
		} else {
			for i, wantHex := range c.Expect.Stack {
				want, err := decodeWord(wantHex)
				if err != nil {
					diffs = append(diffs, fmt.Sprintf("stack[%d]: bad expect hex %q: %v", i, wantHex, err))
					continue
				}
				got := result.Stack[i]
				if got.Cmp(want) != 0 {
					diffs = append(diffs, fmt.Sprintf("stack[%d]: got %s, want %s", i, got.Hex(), want.Hex()))
				}
			}
		}
	}

	if c.Expect.Return != "" {
		want, err := decodeHex(c.Expect.Return)
		if err != nil {
			diffs = append(diffs, fmt.Sprintf("return: bad expect hex %q: %v", c.Expect.Return, err))
		} else if string(result.ReturnVal) != string(want) {
			diffs = append(diffs, fmt.Sprintf("return: got %x, want %x", result.ReturnVal, want))
		}
	}

	if c.Expect.Logs != nil {
		if len(result.Logs) != len(c.Expect.Logs) {
			diffs = append(diffs, fmt.Sprintf("logs length: got %d, want %d", len(result.Logs), len(c.Expect.Logs)))
		} else {
			for i, wantLog := range c.Expect.Logs {
				got := result.Logs[i]
				if wantLog.Address != "" && got.Address != decodeAddress(wantLog.Address) {
					diffs = append(diffs, fmt.Sprintf("logs[%d].address: got %s, want %s", i, got.Address.Hex(), wantLog.Address))
				}
				if wantLog.Data != "" {
					want, err := decodeHex(wantLog.Data)
					if err != nil {
						diffs = append(diffs, fmt.Sprintf("logs[%d].data: bad expect hex %q: %v", i, wantLog.Data, err))
					} else if string(got.Data) != string(want) {
						diffs = append(diffs, fmt.Sprintf("logs[%d].data: got %x, want %x", i, got.Data, want))
					}
				}
				if len(wantLog.Topics) != len(got.Topics) {
					diffs = append(diffs, fmt.Sprintf("logs[%d].topics length: got %d, want %d", i, len(got.Topics), len(wantLog.Topics)))
					continue
				}
				for j, wantTopicHex := range wantLog.Topics {
					want, err := decodeWord(wantTopicHex)
					if err != nil {
						diffs = append(diffs, fmt.Sprintf("logs[%d].topics[%d]: bad expect hex %q: %v", i, j, wantTopicHex, err))
						continue
					}
					topic := got.Topics[j]
					if topic.Cmp(want) != 0 {
						diffs = append(diffs, fmt.Sprintf("logs[%d].topics[%d]: got %s, want %s", i, j, topic.Hex(), want.Hex()))
					}
				}
			}
		}
	}

	return diffs
}
