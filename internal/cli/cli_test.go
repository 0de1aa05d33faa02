package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"zk-contact-backend/internal/domain"
	"zk-contact-backend/internal/preview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandWritesAllDocuments(t *testing.T) {
	out := t.TempDir()

	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"render", "-o", out})
	require.NoError(t, cmd.Execute())

	for _, kind := range []string{"contact", "quote", "work_together"} {
		for _, doc := range []string{"internal", "client"} {
			path := filepath.Join(out, kind+"_"+doc+".html")
			assert.FileExists(t, path)
			assert.Contains(t, stdout.String(), path)
		}
	}
}

func TestRenderCommandSingleKind(t *testing.T) {
	out := t.TempDir()

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "--kind", "devis", "-o", out})
	require.NoError(t, cmd.Execute())

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.FileExists(t, filepath.Join(out, "quote_internal.html"))
}

func TestRenderCommandUnknownKind(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "--kind", "newsletter", "-o", t.TempDir()})
	assert.Error(t, cmd.Execute())
}

func TestOverridesFile(t *testing.T) {
	t.Setenv("COMPANY_EMAIL", "env@zkconcept.be")
	t.Setenv("PREVIEW_LOGO", "https://cdn.zkconcept.be/logo.png")

	path := filepath.Join(t.TempDir(), "preview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
branding:
  logoUrl: ${PREVIEW_LOGO}
  companyPhone: "+32 2 000 00 00"
samples:
  quote:
    fullName: Marie <Peeters>
    city: Gent
`), 0o644))

	overrides, err := LoadOverrides(path)
	require.NoError(t, err)

	brand, err := overrides.ResolveBranding()
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.zkconcept.be/logo.png", brand.LogoURL)
	assert.Equal(t, "+32 2 000 00 00", brand.CompanyPhone)
	assert.Equal(t, "env@zkconcept.be", brand.CompanyEmail)

	sample, err := overrides.Sample(domain.FormQuote, preview.Sample(domain.FormQuote))
	require.NoError(t, err)
	assert.Equal(t, "Marie <Peeters>", sample.String("fullName"))
	assert.Equal(t, "Gent", sample.String("city"))
	assert.Equal(t, "ZK Logistics", sample.String("company"))

	out := t.TempDir()
	_, err = Render(overrides, []domain.FormKind{domain.FormQuote}, out)
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(out, "quote_client.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Bonjour Marie &lt;Peeters&gt;")
	assert.True(t, strings.Contains(string(html), `<img src="https://cdn.zkconcept.be/logo.png"`))
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
