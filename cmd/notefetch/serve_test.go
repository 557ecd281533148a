package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/notefetch/cmd/notefetch"
	"github.com/fwojciec/notefetch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("listens until the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: ctx, Stdout: stdout, Stderr: &bytes.Buffer{}, Scraper: &mock.Scraper{}}

		err := (&main.ServeCmd{Addr: "127.0.0.1:0"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Listening on http://127.0.0.1:")
	})

	t.Run("reports bind errors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Scraper: &mock.Scraper{}}

		err := (&main.ServeCmd{Addr: "not-an-address"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
