// Command seqplay loads a sequence file and plays it headlessly against
// stand-in nodes, printing each node's animated state per frame.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
