package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl := Templates()

	for _, name := range []string{"main.html", "noresults.html", "playlist.html", "404.html", "500.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "404.html", nil))
	assert.Contains(t, buf.String(), "404")
}
