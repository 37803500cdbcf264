// Package vault encrypts single PII text values with a process-wide Fernet key.
//
// The key is created once at start-up and never rotated. When no key is
// configured a fresh one is generated for the lifetime of the process, so
// anything encrypted during such a run cannot be decrypted after a restart.
package vault

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// noTTL disables the token age check.
const noTTL = -1

type Vault struct {
	key       *fernet.Key
	generated bool
}

// New parses encodedKey (URL-safe base64, 32 bytes). An empty key makes a
// random one for this process.
func New(encodedKey string) (*Vault, error) {
	if encodedKey == "" {
		var k fernet.Key
		if err := k.Generate(); err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		return &Vault{key: &k, generated: true}, nil
	}
	k, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	return &Vault{key: k}, nil
}

// Generated reports whether the key was made up at start-up instead of configured.
func (v *Vault) Generated() bool { return v.generated }

// EncodedKey returns the key in the same form New accepts.
func (v *Vault) EncodedKey() string { return v.key.Encode() }

// Encrypt returns a Fernet token for text. Empty input maps to empty output.
func (v *Vault) Encrypt(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	tok, err := fernet.EncryptAndSign([]byte(text), v.key)
	if err != nil {
		return "", fmt.Errorf("encrypt: %w", err)
	}
	return string(tok), nil
}

// Decrypt returns the plaintext of a token. Anything that does not decrypt
// under this key (legacy plaintext, another key, garbage) comes back unchanged.
func (v *Vault) Decrypt(text string) string {
	if text == "" {
		return ""
	}
	msg := fernet.VerifyAndDecrypt([]byte(text), noTTL, []*fernet.Key{v.key})
	if msg == nil {
		return text
	}
	return string(msg)
}
