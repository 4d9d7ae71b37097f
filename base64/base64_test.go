package base64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		want  string
	}{
		{"empty", []byte{}, ""},
		{"one byte", []byte{0x4D}, "TQ=="},
		{"two bytes", []byte{0x4D, 0x61}, "TWE="},
		{"three bytes", []byte{0x4D, 0x61, 0x6E}, "TWFu"},
		{"man example", []byte("Man"), "TWFu"},
		{"longer", []byte("hello world"), "aGVsbG8gd29ybGQ="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.bytes)
			assert.Equal(t, tt.want, got)

			decoded, err := Decode(got)
			require.NoError(t, err)
			assert.Equal(t, tt.bytes, decoded)
		})
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	_, err := Decode("TW!u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidBase64")
}

func TestDecodeInvalidPaddingLength(t *testing.T) {
	_, err := Decode("TWF")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidBase64Padding")
}

func TestDecodeTooManyPadCharacters(t *testing.T) {
	_, err := Decode("TW===")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidBase64Padding")
}

func TestDecodeStrayPaddingInBody(t *testing.T) {
	_, err := Decode("T=Fu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidBase64Padding")
}

func TestDecodeValidPaddingCounts(t *testing.T) {
	// two real characters in the final group require exactly two '=' pads;
	// three real characters require exactly one. Both trailing characters
	// here carry zero unused low bits, so padding count is the only thing
	// under test.
	_, err := Decode("TA==")
	require.NoError(t, err)

	_, err = Decode("TWE=")
	require.NoError(t, err)
}

func TestDecodeRejectsNonZeroLowBitsInUnderPaddedTail(t *testing.T) {
	// "TR==" has the same two leading bits as the canonical "TQ==" encoding
	// of 0x4D, but R's low 4 bits are 0001, not 0 — spec.md §4.6 requires
	// this be rejected rather than silently truncated.
	_, err := Decode("TR==")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidBase64Padding")

	// "TWF=" has T, W valid but F's low 2 bits are 01, not 0.
	_, err = Decode("TWF=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidBase64Padding")
}

func TestEncodeDecodeProperty(t *testing.T) {
	for n := 0; n < 16; n++ {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte(i * 7 % 251)
		}
		encoded := Encode(b)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, b, decoded)
		assert.Equal(t, encoded, Encode(decoded))
	}
}
