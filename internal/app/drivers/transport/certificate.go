package transport

import (
	"crypto/tls"
	"encoding/pem"
	"mhr-fhir-client/internal/pkg/constvars"
	"mhr-fhir-client/internal/pkg/exceptions"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/pkcs12"
)

// LoadClientCertificate reads a PKCS#12 bundle (.p12 or .pfx) or a PEM file
// holding both the certificate and its private key.
func LoadClientCertificate(path, password string) (*tls.Certificate, error) {
	if strings.TrimSpace(path) == "" {
		return nil, exceptions.ErrEmptyOrNull("certificatePath")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrArgClientCertificateUnreadable)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".p12", ".pfx":
		return parsePKCS12(data, password)
	default:
		return parsePEM(data)
	}
}

func parsePKCS12(data []byte, password string) (*tls.Certificate, error) {
	blocks, err := pkcs12.ToPEM(data, password)
	if err != nil {
		return nil, exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrArgClientCertificateUnreadable)
	}

	var certPEM, keyPEM []byte
	for _, block := range blocks {
		encoded := pem.EncodeToMemory(block)
		if block.Type == "CERTIFICATE" {
			certPEM = append(certPEM, encoded...)
		} else {
			keyPEM = append(keyPEM, encoded...)
		}
	}
	return keyPair(certPEM, keyPEM)
}

func parsePEM(data []byte) (*tls.Certificate, error) {
	var certPEM, keyPEM []byte
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		encoded := pem.EncodeToMemory(block)
		if block.Type == "CERTIFICATE" {
			certPEM = append(certPEM, encoded...)
		} else if strings.HasSuffix(block.Type, "PRIVATE KEY") {
			keyPEM = append(keyPEM, encoded...)
		}
	}
	return keyPair(certPEM, keyPEM)
}

func keyPair(certPEM, keyPEM []byte) (*tls.Certificate, error) {
	if len(certPEM) == 0 || len(keyPEM) == 0 {
		return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrArgClientCertificateUnsupported)
	}
	certificate, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrArgClientCertificateUnreadable)
	}
	return &certificate, nil
}
