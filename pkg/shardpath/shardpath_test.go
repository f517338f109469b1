package shardpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashFixedVectors(t *testing.T) {
	cases := map[string]string{
		"hello":    "5d4140",
		"world":    "7d7930",
		"splendid": "291e4e",
		"notch":    "9ce862",
		"really":   "d2d92e",
		"truly":    "f499b3",
		"example":  "1a79a4",
		"some":     "03d59e",
		"tokens":   "25d718",
		"top":      "b28354",
	}

	for input, want := range cases {
		require.Equal(t, want, Hash(input), "Hash(%q)", input)
	}
}

func TestSegmentPath(t *testing.T) {
	require.Equal(t, "/data/index/5d4140.index", SegmentPath("/data/index", "hello"))
}

func TestDocumentPath(t *testing.T) {
	require.Equal(t, "/data/documents/5d4140/hello.json", DocumentPath("/data/documents", "hello"))
}
