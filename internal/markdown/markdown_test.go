package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDestinations(t *testing.T) {
	body := []byte(`
An [inline link](/fabric-wheels-deployment/) and an image:

![hero](/images/fabric-wheels.png)

Plus <https://tomkeim.nl> as an autolink.

` + "```yaml\nnot: [a](link)\n```\n")

	dests := ExtractDestinations(body)

	var urls []string
	for _, d := range dests {
		urls = append(urls, d.URL)
	}
	assert.Equal(t, []string{
		"/fabric-wheels-deployment/",
		"/images/fabric-wheels.png",
		"https://tomkeim.nl",
	}, urls)
}

func TestExtractDestinations_EmptyBody(t *testing.T) {
	assert.Empty(t, ExtractDestinations(nil))
}
