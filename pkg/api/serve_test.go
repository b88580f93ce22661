package api_test

import (
	"context"
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/convox/logger"
	"github.com/convox/refsort/pkg/api"
	"github.com/convox/refsort/pkg/history"
	"github.com/convox/refsort/pkg/structs"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return l.Addr().String()
}

func TestServeShutdown(t *testing.T) {
	s := api.NewWithProvider(&structs.MockProvider{}, nil)
	s.Logger = logger.Discard

	addr := freeAddr(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- s.Serve(ctx, addr)
	}()

	hc := &http.Client{
		Timeout:   time.Second,
		Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
	}

	require.Eventually(t, func() bool {
		res, err := hc.Get(fmt.Sprintf("https://%s/check", addr))
		if err != nil {
			return false
		}
		res.Body.Close()
		return res.StatusCode == 200
	}, 5*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestClose(t *testing.T) {
	dir, err := ioutil.TempDir("", "api")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	h, err := history.Open(filepath.Join(dir, "history.db"))
	require.NoError(t, err)

	s := api.NewWithProvider(&structs.MockProvider{}, h)

	require.NoError(t, s.Close())

	_, err = h.List(1)
	require.Error(t, err)

	require.NoError(t, api.NewWithProvider(&structs.MockProvider{}, nil).Close())
}
