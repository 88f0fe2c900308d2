// Command suffixtree builds a compressed suffix tree for a word given
// on the command line and answers substring-membership queries against
// it.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
