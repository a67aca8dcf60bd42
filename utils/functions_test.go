package utils

import (
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAvailablePortSkipsBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	busy := ln.Addr().(*net.TCPAddr).Port

	assert.False(t, IsPortAvailable("127.0.0.1", busy))

	_, err = FindAvailablePort("127.0.0.1", busy, 1)
	assert.EqualError(t, err, "no available ports found in range "+strconv.Itoa(busy)+"-"+strconv.Itoa(busy))
}

func TestFindAvailablePortFreePort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	free := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	port, err := FindAvailablePort("127.0.0.1", free, 1)
	require.NoError(t, err)
	assert.Equal(t, free, port)
}
