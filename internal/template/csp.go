package template

import (
	"crypto/rand"
	"strings"
)

// NewContentSecurityPolicy returns a CSP with a fresh nonce for the inline
// bootstrap script.
func NewContentSecurityPolicy() *ContentSecurityPolicy {
	return &ContentSecurityPolicy{nonce: rand.Text()}
}

type ContentSecurityPolicy struct {
	nonce string
}

func (self *ContentSecurityPolicy) Nonce() string { return self.nonce }

func (self *ContentSecurityPolicy) Content() string {
	policies := self.policies()

	var policy strings.Builder
	for key, value := range policies {
		if policy.Len() != 0 {
			policy.WriteByte(' ')
		}
		policy.WriteString(key + " " + value + ";")
	}
	return policy.String()
}

func (self *ContentSecurityPolicy) policies() map[string]string {
	return map[string]string{
		"default-src": "'none'",
		"connect-src": "'self'",
		"img-src":     "'self' data:",
		"script-src":  "'nonce-" + self.nonce + "'",
		"style-src":   "'self'",
	}
}
