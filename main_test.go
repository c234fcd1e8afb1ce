package chessgen

import (
	"os"
	"testing"
)

// TestMain initializes the attack tables once before any test runs, to avoid
// repeating InitAttackTables() in every test function.
func TestMain(m *testing.M) {
	InitAttackTables()
	os.Exit(m.Run())
}
