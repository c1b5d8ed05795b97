package content

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, title, pubDate string) {
	t.Helper()
	doc := fmt.Sprintf(`---
title: %s
description: a description
pubDate: %s
heroImage: /images/%s.png
---
body
`, title, pubDate, title)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644))
}

func TestScan_DiscoversMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "first-post.md", "first", "June 15 2025")
	writeDoc(t, dir, "second-post.mdx", "second", "July 1 2025")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	res, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, res.Documents, 2)
	assert.Empty(t, res.Problems)
	assert.Equal(t, "first-post", res.Documents[0].Slug)
	assert.Equal(t, "second-post", res.Documents[1].Slug)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestScan_RecordsBrokenFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "good.md", "good", "June 15 2025")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.md"), []byte("no front-matter\n"), 0o644))

	res, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, res.Documents, 1)
	require.Len(t, res.Problems, 1)
	assert.Equal(t, "broken.md", res.Problems[0].Path)
	assert.Error(t, res.Problems[0].Err)
}

func TestList_PublishDateDescending(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a-oldest.md", "oldest", "January 1 2024")
	writeDoc(t, dir, "b-newest.md", "newest", "July 1 2025")
	writeDoc(t, dir, "c-middle.md", "middle", "June 15 2025")

	res, err := Scan(dir)
	require.NoError(t, err)

	ordered := List(res.Documents)
	require.Len(t, ordered, 3)
	assert.Equal(t, "b-newest", ordered[0].Slug)
	assert.Equal(t, "c-middle", ordered[1].Slug)
	assert.Equal(t, "a-oldest", ordered[2].Slug)
}

func TestList_StableTieBreakOnDiscoveryOrder(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.md", "a", "June 15 2025")
	writeDoc(t, dir, "b.md", "b", "June 15 2025")
	writeDoc(t, dir, "c.md", "c", "June 15 2025")

	res, err := Scan(dir)
	require.NoError(t, err)

	ordered := List(res.Documents)
	require.Len(t, ordered, 3)
	// Same date: the lexical discovery order must survive the sort.
	assert.Equal(t, "a", ordered[0].Slug)
	assert.Equal(t, "b", ordered[1].Slug)
	assert.Equal(t, "c", ordered[2].Slug)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Deploying Python wheels to Fabric": "deploying-python-wheels-to-fabric",
		"Café déployé":                      "cafe-deploye",
		"  Spaces   everywhere  ":           "spaces-everywhere",
		"C# & .NET!":                        "c-net",
		"2025 year in review":               "2025-year-in-review",
	}
	for title, want := range cases {
		assert.Equal(t, want, Slugify(title), title)
	}
}
