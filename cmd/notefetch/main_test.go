package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/notefetch/cmd/notefetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := main.NewMain().Run(context.Background(), tt.args, stdout, stderr)

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "Usage: notefetch")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{}, stdout, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: notefetch")
}

func TestRun_ExtractWithoutCreatingDB(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Example</title></head>
<body><main><h1>Hello</h1><p>World</p></main></body></html>`))
	}))
	t.Cleanup(srv.Close)

	dbPath := filepath.Join(t.TempDir(), "should-not-exist.db")
	stdout := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--db", dbPath, "extract", srv.URL}, stdout, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), `"success": 1`)
	assert.Contains(t, stdout.String(), `"title": "Example"`)
	assert.Contains(t, stdout.String(), `"text": "World"`)

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created for extract")
}

func TestRun_ExtractFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	stdout := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"extract", "--timeout", "2s", target}, stdout, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, stdout.String(), `"success": 0`)
	assert.Contains(t, stdout.String(), `"content": []`)
}

func TestRun_NoteLifecycle(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Example</title></head>
<body><article><h2>Section</h2><p>Paragraph about gophers.</p></article></body></html>`))
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "data", "notes.db")

	run := func(t *testing.T, args ...string) string {
		t.Helper()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := main.NewMain().Run(context.Background(), append([]string{"--db", dbPath}, args...), stdout, stderr)
		require.NoError(t, err, stderr.String())
		return stdout.String()
	}

	out := run(t, "import", srv.URL)
	assert.Contains(t, out, `Imported "Example" (2 blocks)`)

	_, id, ok := strings.Cut(out, "ID: ")
	require.True(t, ok)
	id = strings.TrimSpace(id)

	out = run(t, "list", "--query", "GOPHERS")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Example")

	out = run(t, "list", "--query", "nothing-like-this")
	assert.Contains(t, out, "No notes found.")

	out = run(t, "show", id)
	assert.Contains(t, out, "# Example")
	assert.Contains(t, out, "Paragraph about gophers.")

	exportDir := filepath.Join(dir, "export")
	out = run(t, "export", exportDir)
	assert.Contains(t, out, "Exported 1 notes")

	content, err := os.ReadFile(filepath.Join(exportDir, id+".md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "title: Example")
	assert.Contains(t, string(content), strings.TrimPrefix(srv.URL, "http://"))

	out = run(t, "delete", "--force", id)
	assert.Contains(t, out, `Deleted note "Example"`)

	out = run(t, "list")
	assert.Contains(t, out, "No notes found.")
}
