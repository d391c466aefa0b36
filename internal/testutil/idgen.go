package testutil

import "fmt"

// SequenceIDGenerator produces deterministic tokens: seq-0001, seq-0002, …
type SequenceIDGenerator struct {
	n int
}

func (g *SequenceIDGenerator) New() string {
	g.n++
	return fmt.Sprintf("seq-%04d", g.n)
}
