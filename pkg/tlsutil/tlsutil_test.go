package tlsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndLoadServerTLS(t *testing.T) {
	dir := t.TempDir()

	certFile, keyFile, err := GenerateSelfSignedCert([]string{"localhost", "127.0.0.1"}, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "server.pem"), certFile)
	assert.Equal(t, filepath.Join(dir, "server-key.pem"), keyFile)

	creds, err := ServerTLSConfig(certFile, keyFile)
	require.NoError(t, err)
	assert.Equal(t, "tls", creds.Info().SecurityProtocol)
}

func TestServerTLSConfig_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := ServerTLSConfig(filepath.Join(dir, "nope.pem"), filepath.Join(dir, "nope-key.pem"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load server key pair")
}
