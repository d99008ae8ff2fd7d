package banner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogo(t *testing.T) {
	t.Run("no override path", func(t *testing.T) {
		assert.Equal(t, defaultLogo, Logo(afero.NewMemMapFs(), ""))
	})

	t.Run("missing override falls back", func(t *testing.T) {
		assert.Equal(t, defaultLogo, Logo(afero.NewMemMapFs(), "/logo.txt"))
	})

	t.Run("override wins", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		err := afero.WriteFile(fsys, "/logo.txt", []byte("custom logo\n"), 0644)
		require.Nil(t, err)

		assert.Equal(t, "custom logo\n", Logo(fsys, "/logo.txt"))
	})
}

func TestFprint(t *testing.T) {
	g := goldie.New(t)

	t.Run("default banner", func(t *testing.T) {
		var buf bytes.Buffer
		Fprint(&buf, afero.NewMemMapFs(), "", "0.1.0")

		g.Assert(t, "banner", buf.Bytes())
	})

	t.Run("logo without trailing newline", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		err := afero.WriteFile(fsys, "/logo.txt", []byte("bare"), 0644)
		require.Nil(t, err)

		var buf bytes.Buffer
		Fprint(&buf, fsys, "/logo.txt", "0.1.0")

		assert.True(t, strings.HasPrefix(buf.String(), "bare\n"))
		assert.True(t, strings.HasSuffix(buf.String(), "Ibis userland 0.1.0\n"))
	})
}
