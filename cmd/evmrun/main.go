// Command evmrun runs the fixture harness described in spec §6: it loads
// ../evm.json, executes each case through the engine, and reports PASS or a
// detailed diff per case.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"

	"github.com/evmlite/evmlite/fixture"
)

func main() {
	cases, err := fixture.Load("../evm.json")
	if err != nil {
		log.Error("failed to load fixture file", "path", "../evm.json", "error", err)
		os.Exit(1)
	}

	outcomes := fixture.RunAll(cases)

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			log.Error("case failed to run", "case", o.Case.Name, "error", o.Err)
			failed++
			continue
		}
		if len(o.Diffs) > 0 {
			fmt.Printf("FAIL %s\n", o.Case.Name)
			for _, d := range o.Diffs {
				fmt.Printf("  %s\n", d)
			}
			failed++
			continue
		}
		fmt.Printf("PASS %s\n", o.Case.Name)
	}

	if failed > 0 {
		fmt.Printf("%d case(s) failed\n", failed)
		os.Exit(1)
	}
}
