package hyrox

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestBaseUrl(t *testing.T) {
	testCases := []struct {
		listing  string
		expected string
	}{
		{
			listing:  "https://site/event/index.php?content=list&page=1",
			expected: "https://site/event/index.php",
		},
		{
			listing:  "https://site/event/index.php",
			expected: "https://site/event/index.php",
		},
		{
			listing:  "https://site/event/?content=list",
			expected: "https://site/event/index.php",
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, BaseUrl(test.listing))
	}
}

const listingMarkup = `
<html><body>
	<div class="col-sm-12 row-xs">
		<ul>
			<li><a href="?pidp=A">1. First Athlete</a></li>
			<li><a href="?pidp=B">2. Second Athlete</a></li>
			<li><a>3. No Link</a></li>
			<li>4. No Anchor At All</li>
			<li><a href="?pidp=C&amp;num=2">5. Third Athlete</a></li>
		</ul>
	</div>
</body></html>`

func TestDiscoverLinks(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingMarkup))
	require.NoError(t, err)

	urls, err := discoverLinks(context.Background(), doc, "https://site/event/index.php")
	require.NoError(t, err)

	// anchors without an href are skipped, hrefs round-trip unchanged
	// and are appended to the base url with no separator
	require.Equal(t, []string{
		"https://site/event/index.php?pidp=A",
		"https://site/event/index.php?pidp=B",
		"https://site/event/index.php?pidp=C&num=2",
	}, urls)
}

func TestDiscoverLinksNoContainer(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><ul><li><a href="?pidp=A">x</a></li></ul></body></html>`,
	))
	require.NoError(t, err)

	_, err = discoverLinks(context.Background(), doc, "https://site/event/index.php")
	var structureErr StructureError
	require.True(t, errors.As(err, &structureErr))
}
