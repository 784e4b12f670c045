package docroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	root := Dir("www")

	t.Run("plain file", func(t *testing.T) {
		p, err := root.Resolve("/index.html")
		require.NoError(t, err)
		assert.Equal(t, "www/index.html", p)
	})

	t.Run("trailing slash selects index.html", func(t *testing.T) {
		p, err := root.Resolve("/")
		require.NoError(t, err)
		assert.Equal(t, "www/index.html", p)

		p, err = root.Resolve("/sub/")
		require.NoError(t, err)
		assert.Equal(t, "www/sub/index.html", p)
	})

	t.Run("dot segments normalize inside the root", func(t *testing.T) {
		p, err := root.Resolve("/sub/../style.css")
		require.NoError(t, err)
		assert.Equal(t, "www/style.css", p)

		p, err = root.Resolve("/./index.html")
		require.NoError(t, err)
		assert.Equal(t, "www/index.html", p)
	})

	t.Run("idempotent", func(t *testing.T) {
		a, err := root.Resolve("/sub/../style.css")
		require.NoError(t, err)
		b, err := root.Resolve("/sub/../style.css")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("traversal is rejected", func(t *testing.T) {
		for _, requested := range []string{
			"/../secret.txt",
			"/../../etc/passwd",
			"/sub/../../secret.txt",
			"/sub/../../../etc/passwd",
			"/..",
			"/../",
		} {
			_, err := root.Resolve(requested)
			assert.ErrorIs(t, err, ErrOutsideRoot, "requested: %s", requested)
		}
	})

	t.Run("deep but contained paths are allowed", func(t *testing.T) {
		p, err := root.Resolve("/a/b/../../index.html")
		require.NoError(t, err)
		assert.Equal(t, "www/index.html", p)
	})

	t.Run("multi-segment root", func(t *testing.T) {
		tmp := Dir("tmp/site/www")

		p, err := tmp.Resolve("/index.html")
		require.NoError(t, err)
		assert.Equal(t, "tmp/site/www/index.html", p)

		_, err = tmp.Resolve("/../secret.txt")
		assert.ErrorIs(t, err, ErrOutsideRoot)
	})
}

func TestInside(t *testing.T) {
	root := Dir("www")

	assert.True(t, root.Inside("www/index.html"))
	assert.True(t, root.Inside("www/sub/page.html"))
	assert.True(t, root.Inside("www"))
	assert.False(t, root.Inside("secret.txt"))
	assert.False(t, root.Inside("wwwindex.html"))
	assert.False(t, root.Inside("www/../secret.txt"))
	assert.False(t, root.Inside("/etc/passwd"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/html", ContentType("www/index.html"))
	assert.Equal(t, "text/css", ContentType("www/style.css"))
	assert.Equal(t, "", ContentType("www/archive.tar.gz"))
	assert.Equal(t, "", ContentType("www/binary"))
}

func TestReadFile(t *testing.T) {
	tmp := t.TempDir()
	root := Dir(filepath.Join(tmp, "www"))
	require.NoError(t, os.Mkdir(string(root), 0o755))

	t.Run("full contents", func(t *testing.T) {
		content := []byte("<html>hi</html>")
		p := filepath.Join(string(root), "index.html")
		require.NoError(t, os.WriteFile(p, content, 0o644))

		got, err := root.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("empty file", func(t *testing.T) {
		p := filepath.Join(string(root), "empty.css")
		require.NoError(t, os.WriteFile(p, nil, 0o644))

		got, err := root.ReadFile(p)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := root.ReadFile(filepath.Join(string(root), "missing.html"))
		assert.Error(t, err)
	})
}
