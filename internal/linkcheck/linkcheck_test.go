package linkcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomkeim/sitekit/internal/redirect"
)

func writePage(t *testing.T, siteDir, rel, body string) {
	t.Helper()
	path := filepath.Join(siteDir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestRun_CleanTree(t *testing.T) {
	siteDir := t.TempDir()
	writePage(t, siteDir, "index.html",
		`<html><body><a href="/fabric-wheels-deployment/">post</a><img src="/images/hero.png"></body></html>`)
	writePage(t, siteDir, "fabric-wheels-deployment/index.html",
		`<html><body><a href="/">home</a><a href="https://example.com">ext</a><a href="#section">frag</a></body></html>`)
	writePage(t, siteDir, "images/hero.png", "png")

	res, err := New(siteDir, nil).Run()
	require.NoError(t, err)
	assert.Equal(t, 2, res.PagesChecked)
	assert.Empty(t, res.Broken)
}

func TestRun_ReportsBrokenLinks(t *testing.T) {
	siteDir := t.TempDir()
	writePage(t, siteDir, "index.html",
		`<html><body><a href="/missing/">gone</a><img src="/images/ghost.png"></body></html>`)

	res, err := New(siteDir, nil).Run()
	require.NoError(t, err)
	require.Len(t, res.Broken, 2)
	assert.Equal(t, "/images/ghost.png", res.Broken[0].URL)
	assert.Equal(t, "/missing/", res.Broken[1].URL)
}

func TestRun_RedirectedLegacyPathIsNotBroken(t *testing.T) {
	siteDir := t.TempDir()
	writePage(t, siteDir, "index.html",
		`<html><body><a href="/blog/fabric-wheels-deployment">old link</a></body></html>`)
	writePage(t, siteDir, "fabric-wheels-deployment/index.html", `<html></html>`)

	table, err := redirect.NewTable(map[string]string{
		"/blog/fabric-wheels-deployment": "/fabric-wheels-deployment/",
	})
	require.NoError(t, err)

	res, err := New(siteDir, table).Run()
	require.NoError(t, err)
	assert.Empty(t, res.Broken)

	// Without the table the same link is broken.
	res, err = New(siteDir, nil).Run()
	require.NoError(t, err)
	assert.Len(t, res.Broken, 1)
}

func TestRun_RelativeDestinations(t *testing.T) {
	siteDir := t.TempDir()
	writePage(t, siteDir, "posts/index.html",
		`<html><body><img src="cover.png"><img src="../shared.png"></body></html>`)
	writePage(t, siteDir, "posts/cover.png", "png")

	res, err := New(siteDir, nil).Run()
	require.NoError(t, err)
	require.Len(t, res.Broken, 1)
	assert.Equal(t, "../shared.png", res.Broken[0].URL)
}

func TestRun_MissingSiteDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "dist"), nil).Run()
	require.Error(t, err)
}

func TestSitemapPresent(t *testing.T) {
	siteDir := t.TempDir()
	v := New(siteDir, nil)
	assert.False(t, v.SitemapPresent())

	writePage(t, siteDir, "sitemap.xml", `<urlset></urlset>`)
	assert.True(t, v.SitemapPresent())
}
