// Command moora ranks the alternatives of a decision problem with the MOORA
// family of methods.
package main

import "github.com/katalvlaran/moora/internal/outwriter"

func main() {
	if err := Execute(); err != nil {
		outwriter.FatalError("moora", err)
	}
}
