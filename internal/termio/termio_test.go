package termio

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWidthFallsBackToDefaultForNonTerminal exercises the common test/CI
// path: os.Stdout under `go test` is not a terminal, so Width must fall
// back to defaultWidth rather than erroring.
func TestWidthFallsBackToDefaultForNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	assert.NoError(t, err)

	defer r.Close()
	defer w.Close()

	assert.Equal(t, uint(defaultWidth), Width(w))
}
