package notefetch_test

import (
	"testing"

	"github.com/fwojciec/notefetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	t.Run("prepends https when scheme is missing", func(t *testing.T) {
		t.Parallel()

		got, err := notefetch.NormalizeURL("example.com")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got)
	})

	t.Run("keeps qualified URLs unchanged", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{
			"http://example.com/a",
			"https://example.com/a?b=c",
			"HTTPS://Example.com",
		} {
			got, err := notefetch.NormalizeURL(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"example.com", "a.com/path", "www.b.org?q=1"} {
			once, err := notefetch.NormalizeURL(raw)
			require.NoError(t, err)
			twice, err := notefetch.NormalizeURL(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
			assert.Equal(t, "https://"+raw, once)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		got, err := notefetch.NormalizeURL("  example.com \n")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "   "} {
			_, err := notefetch.NormalizeURL(raw)
			require.Error(t, err)
			assert.Equal(t, notefetch.EINVALID, notefetch.ErrorCode(err))
		}
	})
}
