package compress

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-paste-decrypt/models"
)

func TestInflate_NoneIsIdentity(t *testing.T) {
	data := []byte{0xff, 0x00, 0x7b, 0x22}

	out, err := Inflate(data, models.CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDeflateInflate_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "json", data: []byte(`{"attachment":"data:text/plain;base64,aGk=","attachment_name":"hi.txt"}`)},
		{name: "repetitive", data: bytes.Repeat([]byte("torrent"), 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := Deflate(tt.data, models.CompressionZlib)
			require.NoError(t, err)

			out, err := Inflate(packed, models.CompressionZlib)
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), len(out))
			assert.True(t, bytes.Equal(tt.data, out))
		})
	}
}

func TestDeflate_None(t *testing.T) {
	data := []byte("plain")
	out, err := Deflate(data, models.CompressionNone)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDeflate_IsRawStream(t *testing.T) {
	packed, err := Deflate([]byte("hello"), models.CompressionZlib)
	require.NoError(t, err)

	// a zlib reader expects a 2-byte header that raw DEFLATE does not have
	_, err = zlib.NewReader(bytes.NewReader(packed))
	assert.Error(t, err)
}

func TestInflate_RejectsZlibWrapped(t *testing.T) {
	// zlib.compress(b"x" * 64): header 78 9c, then the DEFLATE body, then Adler-32
	wrapped, err := hex.DecodeString("789caba8a00c0000cf6d1e01")
	require.NoError(t, err)

	_, err = Inflate(wrapped, models.CompressionZlib)
	require.ErrorIs(t, err, ErrDecompressionFailed)

	out, err := Inflate(wrapped[2:len(wrapped)-4], models.CompressionZlib)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 64), string(out))
}

func TestInflate_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "reserved block type", data: []byte{0xff, 0xff, 0xff}},
		{name: "empty", data: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Inflate(tt.data, models.CompressionZlib)
			require.ErrorIs(t, err, ErrDecompressionFailed)
		})
	}
}

func TestInflate_Truncated(t *testing.T) {
	packed, err := Deflate(bytes.Repeat([]byte("abcdefgh"), 512), models.CompressionZlib)
	require.NoError(t, err)

	_, err = Inflate(packed[:len(packed)/2], models.CompressionZlib)
	require.ErrorIs(t, err, ErrDecompressionFailed)
}

func TestInflate_UnknownType(t *testing.T) {
	_, err := Inflate([]byte("x"), models.CompressionType("gzip"))
	require.ErrorIs(t, err, ErrDecompressionFailed)
}

func TestInflateLimit(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 1000)
	packed, err := Deflate(data, models.CompressionZlib)
	require.NoError(t, err)

	tests := []struct {
		name    string
		kind    models.CompressionType
		input   []byte
		limit   int64
		wantErr bool
	}{
		{name: "zlib under limit", kind: models.CompressionZlib, input: packed, limit: 2000},
		{name: "zlib at limit", kind: models.CompressionZlib, input: packed, limit: 1000},
		{name: "zlib over limit", kind: models.CompressionZlib, input: packed, limit: 999, wantErr: true},
		{name: "zlib no limit", kind: models.CompressionZlib, input: packed, limit: 0},
		{name: "none over limit", kind: models.CompressionNone, input: data, limit: 10, wantErr: true},
		{name: "none at limit", kind: models.CompressionNone, input: data, limit: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := InflateLimit(tt.input, tt.kind, tt.limit)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInflatedTooLarge)
				assert.True(t, errors.Is(err, ErrDecompressionFailed))
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, data, out)
		})
	}
}
