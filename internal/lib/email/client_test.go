package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	body, err := Render(TemplateWelcome, map[string]string{"UserName": "Ada"})
	require.NoError(t, err)

	assert.Contains(t, body, "Welcome, Ada!")
}

func TestRenderEscapesData(t *testing.T) {
	body, err := Render(TemplateWelcome, map[string]string{"UserName": "<script>"})
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}
