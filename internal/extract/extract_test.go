package extract

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Document(t *testing.T) {
	payload := []byte("hello world")
	encoded := base64.StdEncoding.EncodeToString(payload)

	t.Run("standard padding", func(t *testing.T) {
		got, err := DecodeBase64Document(encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("missing padding is tolerated", func(t *testing.T) {
		trimmed := encoded
		for len(trimmed) > 0 && trimmed[len(trimmed)-1] == '=' {
			trimmed = trimmed[:len(trimmed)-1]
		}
		got, err := DecodeBase64Document(trimmed)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		got, err := DecodeBase64Document("  " + encoded + "\n")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := DecodeBase64Document("   ")
		assert.Error(t, err)
	})

	t.Run("invalid characters", func(t *testing.T) {
		_, err := DecodeBase64Document("!!!not-base64!!!")
		assert.Error(t, err)
	})
}

func TestTextFromBytesRejectsGarbage(t *testing.T) {
	_, err := TextFromBytes(nil)
	assert.Error(t, err)

	_, err = TextFromBytes([]byte("not a pdf at all"))
	assert.Error(t, err)
}

func TestTextFromBytesDocx(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?><w:document xmlns:w="ns"><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Python developer</w:t></w:r></w:p></w:body></w:document>`)

	text, err := TextFromBytes(data)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Python developer")
	assert.Contains(t, text, "\n", "paragraph boundaries become newlines")
}

func TestTextFromBytesDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = TextFromBytes(buf.Bytes())
	assert.Error(t, err)
}

func TestTextFromBytesDocxEmptyText(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?><w:document xmlns:w="ns"><w:body><w:p></w:p></w:body></w:document>`)

	_, err := TextFromBytes(data)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
