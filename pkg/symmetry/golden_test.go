package symmetry

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-murphi/murphicore/pkg/ids"
)

// TestEmitModelMatchesGoldenFile regression-checks the full, byte-exact
// output of EmitModel against a checked-in fixture, the same two-node-ring
// model buildTwoNodeRing uses elsewhere in this package. Where the other
// tests in this package assert individual substrings of the generated C,
// this one pins the whole file so a change to indentation, ordering or
// spacing anywhere in the emitter is caught even if no single substring
// assertion would have noticed it.
func TestEmitModelMatchesGoldenFile(t *testing.T) {
	idx := ids.NewIndexer()
	model := buildTwoNodeRing(idx)

	e := NewEmitter(model)

	var buf bytes.Buffer
	assert.NoError(t, e.EmitModel(&buf))

	want, err := os.ReadFile("testdata/ring.golden.c")
	assert.NoError(t, err)
	assert.Equal(t, string(want), buf.String())
}
