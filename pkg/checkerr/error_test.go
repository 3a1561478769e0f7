package checkerr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-murphi/murphicore/pkg/source"
)

func TestErrorRendersOneLineForm(t *testing.T) {
	err := New(NotConstant, "expected a constant expression", source.Location{File: "ring.m", Line: 4, Col: 10})
	assert.Equal(t, "NotConstant: expected a constant expression at ring.m:4:10", err.Error())
}

func TestKindStringCoversEveryDeclaredKind(t *testing.T) {
	cases := map[Kind]string{
		NotConstant:            "NotConstant",
		UnknownSymbol:          "UnknownSymbol",
		BitOpWithoutBitvectors: "BitOpWithoutBitvectors",
		UnsupportedConstruct:   "UnsupportedConstruct",
		MalformedLvalue:        "MalformedLvalue",
		TypeResolution:         "TypeResolution",
		InternalInvariant:      "InternalInvariant",
	}

	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}

	assert.Equal(t, "Unknown", Kind(999).String())
}

func TestKindAndLocationAccessors(t *testing.T) {
	loc := source.Location{File: "x.m", Line: 1, Col: 1}
	err := New(UnknownSymbol, "nowhere", loc)

	assert.Equal(t, UnknownSymbol, err.Kind())
	assert.Equal(t, loc, err.Location())
}
