package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBind_IPv4(t *testing.T) {
	binding, err := ParseBind("ip://localhost:9999")
	require.NoError(t, err)
	assert.Equal(t, FamilyIPv4, binding.Family)
	assert.Equal(t, "127.0.0.1", binding.Host)
	assert.Equal(t, 9999, binding.Port)
	assert.Equal(t, "udp4", binding.Network())
	assert.Equal(t, "127.0.0.1:9999", binding.Address())
}

func TestParseBind_DefaultScheme(t *testing.T) {
	binding, err := ParseBind("localhost:9999")
	require.NoError(t, err)
	assert.Equal(t, FamilyIPv4, binding.Family)
	assert.Equal(t, "127.0.0.1", binding.Host)
	assert.Equal(t, 9999, binding.Port)
}

func TestParseBind_ExplicitAddress(t *testing.T) {
	binding, err := ParseBind("ip://10.1.2.3:514")
	require.NoError(t, err)
	assert.Equal(t, FamilyIPv4, binding.Family)
	assert.Equal(t, "10.1.2.3", binding.Host)
	assert.Equal(t, 514, binding.Port)
}

func TestParseBind_IPv6(t *testing.T) {
	binding, err := ParseBind("ip://[::1]:9999")
	require.NoError(t, err)
	assert.Equal(t, FamilyIPv6, binding.Family)
	assert.Equal(t, "::1", binding.Host)
	assert.Equal(t, 9999, binding.Port)
	assert.Equal(t, "udp6", binding.Network())
}

func TestParseBind_Unix(t *testing.T) {
	binding, err := ParseBind("unix:///tmp/sock")
	require.NoError(t, err)
	assert.Equal(t, FamilyUnix, binding.Family)
	assert.Equal(t, "/tmp/sock", binding.Path)
	assert.Equal(t, "unixgram", binding.Network())
	assert.Equal(t, "/tmp/sock", binding.Address())
}

func TestParseBind_Errors(t *testing.T) {
	tests := map[string]string{
		"no port":            "ip://host-with-no-port",
		"no port numeric":    "ip://127.0.0.1",
		"unsupported scheme": "ftp://127.0.0.1:9999",
		"empty unix path":    "unix://",
		"non-ip host":        "ip://example.com:9999",
	}
	for name, inpt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBind(inpt)
			assert.Error(t, err)
		})
	}
}
