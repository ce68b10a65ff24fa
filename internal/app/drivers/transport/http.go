package transport

import (
	"crypto/tls"
	"mhr-fhir-client/internal/pkg/constvars"
	"net/http"
	"time"
)

type Config struct {
	Timeout time.Duration
	// ClientCertificate is presented during the TLS handshake when set.
	ClientCertificate  *tls.Certificate
	InsecureSkipVerify bool
	MaxIdleConns       int
	IdleConnTimeout    time.Duration
}

func newTransport(cfg Config) *http.Transport {
	maxIdleConns := cfg.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = constvars.DefaultMaxIdleConns
	}
	idleConnTimeout := cfg.IdleConnTimeout
	if idleConnTimeout <= 0 {
		idleConnTimeout = constvars.DefaultIdleConnTimeoutInSeconds * time.Second
	}

	tlsConfig := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}
	if cfg.ClientCertificate != nil {
		tlsConfig.Certificates = []tls.Certificate{*cfg.ClientCertificate}
	}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		TLSClientConfig:       tlsConfig,
		MaxIdleConns:          maxIdleConns,
		MaxIdleConnsPerHost:   constvars.DefaultMaxIdleConnsPerHost,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   constvars.DefaultTLSHandshakeTimeoutSeconds * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

func NewHTTPClient(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constvars.DefaultHTTPTimeoutInSeconds * time.Second
	}
	return &http.Client{
		Transport: newTransport(cfg),
		Timeout:   timeout,
	}
}
