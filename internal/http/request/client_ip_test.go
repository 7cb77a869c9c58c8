package request

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindClientIPWithoutHeaders(t *testing.T) {
	withoutProxy := TrustedProxies(nil)

	r := http.Request{RemoteAddr: "192.168.0.1:4242"}
	assert.Equal(t, "192.168.0.1", FindClientIP(&r, withoutProxy))

	r = http.Request{RemoteAddr: "192.168.0.1"}
	assert.Equal(t, "192.168.0.1", FindClientIP(&r, withoutProxy))

	r = http.Request{RemoteAddr: "fe80::14c2:f039:edc7:edc7%eth0"}
	assert.Equal(t, "fe80::14c2:f039:edc7:edc7", FindClientIP(&r, withoutProxy))

	r = http.Request{RemoteAddr: "[fe80::14c2:f039:edc7:edc7%eth0]:4242"}
	assert.Equal(t, "fe80::14c2:f039:edc7:edc7", FindClientIP(&r, withoutProxy))
}

func TestFindClientIPWithXFFHeader(t *testing.T) {
	headers := http.Header{}
	headers.Set("X-Forwarded-For", "203.0.113.195, 70.41.3.18, 150.172.238.178")
	r := http.Request{RemoteAddr: "192.168.0.1:4242", Header: headers}

	assert.Equal(t, "203.0.113.195",
		FindClientIP(&r, TrustedProxies([]string{
			"70.41.3.18", "150.172.238.178",
		})))
	assert.Equal(t, "70.41.3.18",
		FindClientIP(&r, TrustedProxies([]string{"150.172.238.178"})))
	assert.Equal(t, "150.172.238.178", FindClientIP(&r, TrustedProxies(nil)))

	// Every hop trusted: fall back to the socket address.
	assert.Equal(t, "192.168.0.1", FindClientIP(&r, TrustedProxies([]string{
		"203.0.113.195", "70.41.3.18", "150.172.238.178",
	})))

	headers = http.Header{}
	headers.Set("X-Forwarded-For", "fake IP")
	r = http.Request{RemoteAddr: "192.168.0.1:4242", Header: headers}
	assert.Equal(t, "192.168.0.1", FindClientIP(&r, TrustedProxies(nil)))
}

func TestFindClientIPWithCIDRProxies(t *testing.T) {
	headers := http.Header{}
	headers.Set("X-Forwarded-For", "203.0.113.195, 10.1.2.3")
	r := http.Request{RemoteAddr: "10.0.0.1:4242", Header: headers}

	assert.Equal(t, "203.0.113.195",
		FindClientIP(&r, TrustedProxies([]string{"10.0.0.0/8"})))
}

func TestClientIPWithXRealIPHeader(t *testing.T) {
	headers := http.Header{}
	headers.Set("X-Real-Ip", "192.168.122.1")
	r := http.Request{RemoteAddr: "192.168.0.1:4242", Header: headers}
	assert.Equal(t, "192.168.122.1", FindClientIP(&r, TrustedProxies(nil)))
}
