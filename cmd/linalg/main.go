// SPDX-License-Identifier: MIT

// Command linalg runs vector and matrix operations from the command line.
//
//	linalg vector add --a "1 2 3" --b "4 5 6"
//	linalg matrix det --a "1 2; 3 4" --method cofactor
//	linalg matrix inverse --a-file a.yaml --out inv.lvmx --compression zstd
//	linalg convert --in a.yaml --out a.lvmx --compression lz4
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
