// Package cryptofields provides optional at-rest encryption of sensitive
// fields inside already-built report JSON documents. The transform is
// reversible and self-describing: an encrypted document carries _encrypted
// and _encrypted_fields markers so decryption knows what to undo.
package cryptofields

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	keyLen     = 32
	iterations = 100_000

	markerEncrypted = "_encrypted"
	markerFields    = "_encrypted_fields"
)

// DefaultSensitiveFields are the dotted paths encrypted when none are
// configured. They cover the extracted-text traces kept under raw_data.
var DefaultSensitiveFields = []string{
	"raw_data.extracted_text_preview",
	"raw_data.pdf_statistics.content_preview",
	"raw_data.pdf_statistics.emails",
	"raw_data.pdf_statistics.urls",
}

// Cipher encrypts and decrypts individual JSON fields with AES-256-GCM
// under a password-derived key.
type Cipher struct {
	aead   cipher.AEAD
	fields []string
}

// New derives the key from password with PBKDF2-SHA256. The random salt is
// persisted at saltPath on first use and reloaded afterwards, so the same
// password keeps decrypting existing documents.
func New(password, saltPath string, fields []string) (*Cipher, error) {
	if password == "" {
		return nil, fmt.Errorf("encryption password is required")
	}
	salt, err := loadOrCreateSalt(saltPath)
	if err != nil {
		return nil, err
	}
	key := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	if len(fields) == 0 {
		fields = DefaultSensitiveFields
	}
	return &Cipher{aead: aead, fields: fields}, nil
}

func loadOrCreateSalt(path string) ([]byte, error) {
	if raw, err := os.ReadFile(path); err == nil && len(raw) >= saltLen {
		return raw[:saltLen], nil
	}
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	if err := os.WriteFile(path, salt, 0o600); err != nil {
		return nil, fmt.Errorf("persist salt: %w", err)
	}
	return salt, nil
}

// EncryptString seals one value. Output is urlsafe base64 of nonce||ciphertext.
func (c *Cipher) EncryptString(s string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(s), nil)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

// DecryptString reverses EncryptString.
func (c *Cipher) DecryptString(s string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	ns := c.aead.NonceSize()
	if len(raw) < ns {
		return "", fmt.Errorf("ciphertext too short")
	}
	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// EncryptDocument encrypts the configured fields of a JSON document and adds
// the encryption markers. Fields that are absent are skipped; a document that
// cannot be parsed is returned unchanged.
func (c *Cipher) EncryptDocument(doc []byte) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return doc, nil
	}

	var touched []string
	for _, path := range c.fields {
		if c.transformPath(m, path, c.EncryptString) {
			touched = append(touched, path)
		}
	}
	if len(touched) == 0 {
		return doc, nil
	}
	m[markerEncrypted] = true
	m[markerFields] = touched

	return json.MarshalIndent(m, "", "  ")
}

// DecryptDocument reverses EncryptDocument. Unmarked documents pass through
// untouched.
func (c *Cipher) DecryptDocument(doc []byte) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return doc, nil
	}
	enc, _ := m[markerEncrypted].(bool)
	if !enc {
		return doc, nil
	}

	fields, _ := m[markerFields].([]any)
	for _, f := range fields {
		if path, ok := f.(string); ok {
			c.transformPath(m, path, c.DecryptString)
		}
	}
	delete(m, markerEncrypted)
	delete(m, markerFields)

	return json.MarshalIndent(m, "", "  ")
}

// transformPath applies fn to the string or string-list value at a dotted
// path. Reports whether anything was transformed; per-value failures leave
// the value as-is.
func (c *Cipher) transformPath(m map[string]any, path string, fn func(string) (string, error)) bool {
	parts := strings.Split(path, ".")
	cur := m
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		if !ok {
			return false
		}
		cur = next
	}
	leaf := parts[len(parts)-1]

	switch v := cur[leaf].(type) {
	case string:
		out, err := fn(v)
		if err != nil {
			return false
		}
		cur[leaf] = out
		return true
	case []any:
		changed := false
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				continue
			}
			out, err := fn(s)
			if err != nil {
				continue
			}
			v[i] = out
			changed = true
		}
		return changed
	default:
		return false
	}
}
