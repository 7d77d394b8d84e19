//go:build unit

package main

import (
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestListenAll(t *testing.T) {
	t.Run("binds every server", func(t *testing.T) {
		servers := []*http.Server{{Addr: "127.0.0.1:0"}, {Addr: "127.0.0.1:0"}}

		listeners, err := listenAll(servers)
		require.NoError(t, err)
		require.Len(t, listeners, 2)
		for _, ln := range listeners {
			assert.NoError(t, ln.Close())
		}
	})

	t.Run("failed bind releases the listeners already opened", func(t *testing.T) {
		taken, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer taken.Close()

		first := freeAddr(t)
		servers := []*http.Server{{Addr: first}, {Addr: taken.Addr().String()}}

		listeners, err := listenAll(servers)
		require.Error(t, err)
		assert.Nil(t, listeners)
		assert.Contains(t, err.Error(), taken.Addr().String())

		again, err := net.Listen("tcp", first)
		require.NoError(t, err, "first address must be free again")
		assert.NoError(t, again.Close())
	})
}
