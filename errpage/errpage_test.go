package errpage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "error_template.html")

	t.Run("message fills both placeholders", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("<title>%s</title><h1>%s</h1>"), 0o644))

		tpl := Template{Path: path}
		page := tpl.Render("Error 404: File not found")
		assert.Equal(t, "<title>Error 404: File not found</title><h1>Error 404: File not found</h1>", string(page))
	})

	t.Run("template is loaded fresh per render", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("a: %s %s"), 0o644))
		tpl := Template{Path: path}
		first := tpl.Render("x")

		require.NoError(t, os.WriteFile(path, []byte("b: %s %s"), 0o644))
		second := tpl.Render("x")

		assert.Equal(t, "a: x x", string(first))
		assert.Equal(t, "b: x x", string(second))
	})

	t.Run("fallback when the asset is missing", func(t *testing.T) {
		tpl := Template{Path: filepath.Join(tmp, "nope.html")}
		page := tpl.Render("Error 400: Bad Request")

		assert.Contains(t, string(page), "<h1>Error 400: Bad Request</h1>")
		assert.Contains(t, string(page), "<title>Error 400: Bad Request</title>")
	})
}
