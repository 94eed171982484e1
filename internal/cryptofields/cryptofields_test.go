package cryptofields

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCipher(t *testing.T, password string, fields []string) *Cipher {
	t.Helper()
	c, err := New(password, filepath.Join(t.TempDir(), "salt"), fields)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("empty password is rejected", func(t *testing.T) {
		_, err := New("", filepath.Join(t.TempDir(), "salt"), nil)
		assert.Error(t, err)
	})

	t.Run("salt is persisted and reused", func(t *testing.T) {
		saltPath := filepath.Join(t.TempDir(), "salt")
		c1, err := New("secret", saltPath, nil)
		require.NoError(t, err)
		sealed, err := c1.EncryptString("donnée sensible")
		require.NoError(t, err)

		// Same password + same salt file decrypts.
		c2, err := New("secret", saltPath, nil)
		require.NoError(t, err)
		plain, err := c2.DecryptString(sealed)
		require.NoError(t, err)
		assert.Equal(t, "donnée sensible", plain)
	})
}

func TestEncryptString(t *testing.T) {
	c := newTestCipher(t, "secret", nil)

	t.Run("round trip", func(t *testing.T) {
		sealed, err := c.EncryptString("aperçu du texte extrait")
		require.NoError(t, err)
		assert.NotEqual(t, "aperçu du texte extrait", sealed)

		plain, err := c.DecryptString(sealed)
		require.NoError(t, err)
		assert.Equal(t, "aperçu du texte extrait", plain)
	})

	t.Run("wrong password fails to decrypt", func(t *testing.T) {
		sealed, err := c.EncryptString("secret text")
		require.NoError(t, err)

		other := newTestCipher(t, "autre", nil)
		_, err = other.DecryptString(sealed)
		assert.Error(t, err)
	})

	t.Run("garbage ciphertext fails", func(t *testing.T) {
		_, err := c.DecryptString("pas du base64 !")
		assert.Error(t, err)
	})
}

func TestEncryptDocument(t *testing.T) {
	doc := []byte(`{
		"metadata": {"filename": "cours.pdf"},
		"raw_data": {
			"extracted_text_preview": "début du cours",
			"pdf_statistics": {
				"content_preview": "début du cours",
				"emails": ["prof@univ.fr"],
				"urls": ["https://univ.fr"]
			}
		}
	}`)

	t.Run("round trip restores the document", func(t *testing.T) {
		c := newTestCipher(t, "secret", nil)

		sealed, err := c.EncryptDocument(doc)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(sealed, &m))
		assert.Equal(t, true, m["_encrypted"])
		assert.NotEmpty(t, m["_encrypted_fields"])

		raw := m["raw_data"].(map[string]any)
		assert.NotEqual(t, "début du cours", raw["extracted_text_preview"])

		opened, err := c.DecryptDocument(sealed)
		require.NoError(t, err)

		var om map[string]any
		require.NoError(t, json.Unmarshal(opened, &om))
		_, marked := om["_encrypted"]
		assert.False(t, marked)
		oraw := om["raw_data"].(map[string]any)
		assert.Equal(t, "début du cours", oraw["extracted_text_preview"])
		stats := oraw["pdf_statistics"].(map[string]any)
		assert.Equal(t, []any{"prof@univ.fr"}, stats["emails"])
	})

	t.Run("fields absent from the document are skipped", func(t *testing.T) {
		c := newTestCipher(t, "secret", nil)
		out, err := c.EncryptDocument([]byte(`{"metadata": {"filename": "x.pdf"}}`))
		require.NoError(t, err)
		// Nothing to seal: marker is absent and the document is unchanged.
		assert.JSONEq(t, `{"metadata": {"filename": "x.pdf"}}`, string(out))
	})

	t.Run("unparseable document passes through", func(t *testing.T) {
		c := newTestCipher(t, "secret", nil)
		out, err := c.EncryptDocument([]byte("pas du json"))
		require.NoError(t, err)
		assert.Equal(t, "pas du json", string(out))

		out, err = c.DecryptDocument([]byte("pas du json"))
		require.NoError(t, err)
		assert.Equal(t, "pas du json", string(out))
	})

	t.Run("unmarked document passes decrypt untouched", func(t *testing.T) {
		c := newTestCipher(t, "secret", nil)
		out, err := c.DecryptDocument(doc)
		require.NoError(t, err)
		assert.Equal(t, doc, out)
	})

	t.Run("custom field list", func(t *testing.T) {
		c := newTestCipher(t, "secret", []string{"metadata.filename"})
		sealed, err := c.EncryptDocument(doc)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(sealed, &m))
		meta := m["metadata"].(map[string]any)
		assert.NotEqual(t, "cours.pdf", meta["filename"])
		// Default fields are untouched.
		raw := m["raw_data"].(map[string]any)
		assert.Equal(t, "début du cours", raw["extracted_text_preview"])
	})
}
