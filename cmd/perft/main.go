// Command perft runs the legal-move-generator's correctness/benchmark
// oracle from the standard starting position and reports the leaf-node
// count and wall time.
package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/arkveil/chessgen"
)

const defaultDepth = 6

func main() {
	chessgen.InitAttackTables()

	depth := defaultDepth
	if len(os.Args) > 1 {
		d, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatalf("invalid depth %q: %v", os.Args[1], err)
		}
		depth = d
	}

	pos := chessgen.ParseFEN(chessgen.StartingPosition)

	start := time.Now()
	nodes := chessgen.Perft(pos, depth)
	elapsed := time.Since(start)

	log.Printf("depth %d: %d nodes in %s", depth, nodes, elapsed)
}
