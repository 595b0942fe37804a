package simple

import (
	"context"
	"fmt"
)

// Generator issues sequential ids with a fixed prefix. Deterministic, for
// tests and seeding.
type Generator struct {
	prefix  string
	counter int
}

func New(prefix string) *Generator {
	//nolint:exhaustruct
	return &Generator{prefix: prefix}
}

func (g *Generator) GetID(_ context.Context) (string, error) {
	g.counter++

	return fmt.Sprintf("%s-%d", g.prefix, g.counter), nil
}
