package http

import (
	"net"
	"net/http"
	"time"
)

// NewClient builds an HTTP client with separate connect and overall timeouts,
// for calls to external providers
func NewClient(connectTimeout, readTimeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   readTimeout,
	}
}

// NewClientMs is NewClient with millisecond config values
func NewClientMs(connectTimeoutMs, readTimeoutMs int) *http.Client {
	return NewClient(
		time.Duration(connectTimeoutMs)*time.Millisecond,
		time.Duration(readTimeoutMs)*time.Millisecond,
	)
}
