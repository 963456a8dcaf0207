package container

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipOf(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err, "Create(%q)", name)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestOpenNonePassesThroughUnchanged(t *testing.T) {
	raw := []byte("EVTC20250101GAME")
	r, err := Open(bytes.NewReader(raw), int64(len(raw)), None)
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestOpenZipSingleEntryUnwraps(t *testing.T) {
	payload := "EVTC20250101GAME"
	data := zipOf(t, map[string]string{"log.evtc": payload})
	r, err := Open(bytes.NewReader(data), int64(len(data)), Zip)
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, payload, string(got))
}

func TestOpenZipMultiEntryIsInvalid(t *testing.T) {
	data := zipOf(t, map[string]string{"a.evtc": "one", "b.evtc": "two"})
	_, err := Open(bytes.NewReader(data), int64(len(data)), Zip)
	assert.ErrorIs(t, err, ErrInvalidContainer)
}

func TestOpenZipMalformedArchiveIsInvalid(t *testing.T) {
	garbage := []byte("this is not a zip archive at all")
	_, err := Open(bytes.NewReader(garbage), int64(len(garbage)), Zip)
	assert.ErrorIs(t, err, ErrInvalidContainer)
}

func TestOpenUnknownCompressionIsInvalid(t *testing.T) {
	raw := []byte("x")
	_, err := Open(bytes.NewReader(raw), int64(len(raw)), Compression(99))
	assert.ErrorIs(t, err, ErrInvalidContainer)
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "Zip", Zip.String())
	assert.Contains(t, Compression(99).String(), "Unknown")
}
