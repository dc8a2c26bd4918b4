package textenc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"utf-8", NameUTF8},
		{"UTF8", NameUTF8},
		{" utf-32 ", NameUTF32},
		{"utf32", NameUTF32},
		{"ASCII", NameASCII},
		{"us-ascii", NameASCII},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := Lookup(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Name())
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("koi8-r")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknown))
}

func TestEncodeUTF8(t *testing.T) {
	out, err := UTF8.Encode("Привет")
	require.NoError(t, err)
	assert.Equal(t, []byte("Привет"), out)
}

func TestEncodeUTF32WritesBOM(t *testing.T) {
	out, err := UTF32.Encode("hi")
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0xFF, 0xFE, 0x00, 0x00,
		'h', 0x00, 0x00, 0x00,
		'i', 0x00, 0x00, 0x00,
	}, out)
}

func TestEncodeASCIIReplacesNonASCII(t *testing.T) {
	out, err := ASCII.Encode("café ok")
	require.NoError(t, err)
	assert.Equal(t, "caf? ok", string(out))
}

func TestEncodeZeroEncoding(t *testing.T) {
	_, err := Encoding{}.Encode("x")
	assert.True(t, errors.Is(err, ErrUnknown))
}

func TestDecodeAuto(t *testing.T) {
	t.Run("plain utf-8", func(t *testing.T) {
		s, err := DecodeAuto([]byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", s)
	})

	t.Run("utf-8 bom is stripped", func(t *testing.T) {
		s, err := DecodeAuto([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
		require.NoError(t, err)
		assert.Equal(t, "hi", s)
	})

	t.Run("utf-16le bom", func(t *testing.T) {
		s, err := DecodeAuto([]byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00})
		require.NoError(t, err)
		assert.Equal(t, "hi", s)
	})
}

func TestAllIsACopy(t *testing.T) {
	list := All()
	require.Len(t, list, 3)
	list[0] = ASCII

	assert.Equal(t, NameUTF8, All()[0].Name())
}
