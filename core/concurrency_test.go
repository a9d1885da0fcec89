package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Concurrent reads of a fully-built FactorGraph must not race; the
// construction pipeline itself is single-threaded, but nothing stops two
// goroutines from inspecting the same finished graph (e.g. a test and a
// logger).
func TestFactorGraph_ConcurrentReads(t *testing.T) {
	g := buildSquare(t)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !g.HasRandVar("A") {
				errs <- assert.AnError
			}
			_ = g.Neighbors("A")
			_ = g.UnknownFactors()
			_ = g.IsConnected()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
