package securecookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSecrets    = errors.New("http/securecookie: no signing secrets")
	ErrBadFormat    = errors.New("http/securecookie: malformed signed value")
	ErrBadSignature = errors.New("http/securecookie: signature mismatch")
)

// New returns a signer over the given secrets, newest first. Rotation is
// supported by signing with secrets[0] and verifying against every secret in
// order.
func New(secrets ...string) (*Signer, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecrets
	}

	keys := make([][]byte, len(secrets))
	for i, s := range secrets {
		if s == "" {
			return nil, fmt.Errorf("%w: empty secret at position %v",
				ErrNoSecrets, i)
		}
		keys[i] = []byte(s)
	}
	return &Signer{keys: keys}, nil
}

type Signer struct {
	keys [][]byte
}

// Sign returns the payload and its MAC, both base64 encoded and separated by
// a dot. The payload is signed, not encrypted.
func (self *Signer) Sign(payload []byte) string {
	return base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString(self.mac(self.keys[0], payload))
}

func (self *Signer) mac(key, payload []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(payload)
	return h.Sum(nil)
}

// Verify checks value against every known secret, newest first, and returns
// the payload on the first match.
func (self *Signer) Verify(value string) ([]byte, error) {
	encPayload, encMAC, found := strings.Cut(value, ".")
	if !found {
		return nil, ErrBadFormat
	}

	payload, err := base64.RawURLEncoding.DecodeString(encPayload)
	if err != nil {
		return nil, fmt.Errorf(
			"http/securecookie: base64 decode payload: %w", err)
	}

	gotMAC, err := base64.RawURLEncoding.DecodeString(encMAC)
	if err != nil {
		return nil, fmt.Errorf("http/securecookie: base64 decode mac: %w", err)
	}

	for _, key := range self.keys {
		if hmac.Equal(gotMAC, self.mac(key, payload)) {
			return payload, nil
		}
	}
	return nil, ErrBadSignature
}
