// TreasuryMan - Batch Line Processing Tool
//
// TreasuryMan reads a line-delimited input file, runs each line through the
// treasury processor, and writes the collected results as a JSON report.
package main

import (
	"os"

	"github.com/treasurytools/treasuryman/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
