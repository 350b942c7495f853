package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe(t *testing.T) {
	t.Run("in-flight requests finish before shutdown completes", func(t *testing.T) {
		inHandler := make(chan struct{})
		release := make(chan struct{})

		s := &http.Server{
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				close(inHandler)
				<-release
				_, _ = w.Write([]byte("registered"))
			}),
		}

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		serveDone := make(chan error, 1)
		go func() { serveDone <- serve(ctx, s, listener) }()

		respBody := make(chan string, 1)
		go func() {
			resp, err := http.Get("http://" + listener.Addr().String())
			if err != nil {
				respBody <- err.Error()
				return
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			respBody <- string(body)
		}()

		// Cancel while the request is still in the handler, then let it
		// finish. Shutdown must wait for it.
		<-inHandler
		cancel()
		close(release)

		assert.Equal(t, "registered", <-respBody)
		require.NoError(t, <-serveDone)
	})

	t.Run("propagates serve errors", func(t *testing.T) {
		s := &http.Server{Handler: http.NotFoundHandler()}

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		require.NoError(t, listener.Close())

		err = serve(context.Background(), s, listener)
		assert.Error(t, err)
	})
}
