// Package goquery classifies documentation pages by inspecting their
// source HTML with goquery.
package goquery

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// Markers every generated documentation page is expected to carry.
// Pages missing the content marker are placeholders without real
// content; the obsolete and delegate markers outrank the declaration
// phrase table.
const (
	contentMarker  = `<div class="content">`
	obsoleteMarker = "is obsolete"
	delegateMarker = "is a delegate"
)

// moduleSuffix marks top-level module/namespace pages by name.
const moduleSuffix = "Module"

// typePhrases maps declaration phrases found in a page body to the page
// type they indicate. Scanned in order, first match wins.
var typePhrases = []struct {
	phrase string
	typ    quicksearch.PageType
}{
	{"class in", quicksearch.TypeClass},
	{"struct in", quicksearch.TypeStruct},
	{"interface in", quicksearch.TypeInterface},
	{"enumeration", quicksearch.TypeEnumeration},
}

// memberSections maps member-list headings to the type of the members
// linked under them. The table is configuration, not control flow: new
// heading variants are added here without touching the scan.
var memberSections = map[string]quicksearch.PageType{
	"Properties":        quicksearch.TypeProperty,
	"Static Properties": quicksearch.TypeProperty,
	"Public Methods":    quicksearch.TypeMethod,
	"Static Methods":    quicksearch.TypeMethod,
	"Protected Methods": quicksearch.TypeMethod,
	"Constructors":      quicksearch.TypeMethod,
	"Operators":         quicksearch.TypeMethod,
	"Events":            quicksearch.TypeEvent,
	"Delegates":         quicksearch.TypeDelegate,
	"Messages":          quicksearch.TypeMessage,
	"Values":            quicksearch.TypeEnumerator,
}

// DefaultOverrides lists known irregular pages whose type cannot be
// inferred from their content. Hand-maintained.
var DefaultOverrides = map[string]quicksearch.PageType{
	"UnityEngine": quicksearch.TypeModule,
	"UnityEditor": quicksearch.TypeModule,
}

// Ensure Classifier implements quicksearch.Classifier at compile time.
var _ quicksearch.Classifier = (*Classifier)(nil)

// Classifier infers page types from the documentation HTML tree rooted
// at Root. A page's source document lives at Root/<url>.html.
type Classifier struct {
	Root      string
	Overrides map[string]quicksearch.PageType
	Logger    *slog.Logger
}

// NewClassifier creates a Classifier over the documentation tree at
// root with the default override table.
func NewClassifier(root string, logger *slog.Logger) *Classifier {
	return &Classifier{Root: root, Overrides: DefaultOverrides, Logger: logger}
}

// Classify implements quicksearch.Classifier. Type pages classify from
// their own document; member pages classify through their parent, whose
// member-section scan populates the cache for every member it lists.
func (c *Classifier) Classify(ctx context.Context, url string, cache quicksearch.TypeCache) quicksearch.PageType {
	if t, ok := cache[url]; ok {
		return t
	}
	if ctx.Err() != nil {
		// Cancelled mid-build; answer without polluting the cache.
		return quicksearch.TypeUnknown
	}

	html, err := c.readPage(url)
	if err != nil {
		// A page in the index without a source document is a broken
		// index entry.
		c.log().Error("page source missing", "url", url, "err", err)
		cache[url] = quicksearch.TypeUnknown
		return quicksearch.TypeUnknown
	}
	lower := strings.ToLower(html)

	// Pages without the content marker were skipped by the generator;
	// leave them uncached so later content can reclassify.
	if !strings.Contains(lower, contentMarker) {
		return quicksearch.TypeUnknown
	}

	if t := c.classifyDocument(url, lower); t != quicksearch.TypeUnknown {
		cache[url] = t
		c.cacheMembers(url, html, cache)
		return t
	}

	// No direct cue: treat the page as a member and derive its type
	// from the parent.
	parent, ok := parentURL(url)
	if !ok {
		c.log().Error("cannot derive parent page", "url", url)
		cache[url] = quicksearch.TypeUnknown
		return quicksearch.TypeUnknown
	}

	parentType := c.Classify(ctx, parent, cache)
	if parentType == quicksearch.TypeObsolete {
		// Members of an obsolete parent inherit obsolescence even
		// without their own marker.
		cache[url] = quicksearch.TypeObsolete
		return quicksearch.TypeObsolete
	}

	// Classifying the parent caches every member it lists; a member
	// still missing here is not listed by its parent.
	if t, ok := cache[url]; ok {
		return t
	}
	c.log().Error("member not listed by parent", "url", url, "parent", parent)
	cache[url] = quicksearch.TypeUnknown
	return quicksearch.TypeUnknown
}

// classifyDocument applies the ordered direct-classification rules to a
// page's lowercased document text.
func (c *Classifier) classifyDocument(url, lower string) quicksearch.PageType {
	if strings.HasSuffix(url, moduleSuffix) {
		return quicksearch.TypeModule
	}
	if t, ok := c.Overrides[url]; ok {
		return t
	}
	// Obsolete and delegate markers take precedence over the
	// declaration phrases.
	if strings.Contains(lower, obsoleteMarker) {
		return quicksearch.TypeObsolete
	}
	if strings.Contains(lower, delegateMarker) {
		return quicksearch.TypeDelegate
	}
	for _, p := range typePhrases {
		if strings.Contains(lower, p.phrase) {
			return p.typ
		}
	}
	return quicksearch.TypeUnknown
}

// cacheMembers scans a type page's member-list sections and records the
// type of every member linked from them. Member pages carry no type
// cues of their own, so this scan is how they get classified at all.
func (c *Classifier) cacheMembers(url, html string, cache quicksearch.TypeCache) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		c.log().Warn("member scan failed", "url", url, "err", err)
		return
	}
	doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		memberType, ok := memberSections[strings.TrimSpace(heading.Text())]
		if !ok {
			return
		}
		heading.NextUntil("h2, h3").Find("a[href]").Each(func(_ int, link *goquery.Selection) {
			href, _ := link.Attr("href")
			member := urlFromHref(href)
			if member == "" || member == url {
				return
			}
			if _, seen := cache[member]; !seen {
				cache[member] = memberType
			}
		})
	})
}

func (c *Classifier) readPage(url string) (string, error) {
	b, err := os.ReadFile(filepath.Join(c.Root, url+".html"))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *Classifier) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// parentURL derives the parent page of a member url. Member pages are
// named parent-member (instance members) or parent.member (nested
// members); urls without either separator have no parent. A separator
// at index 0 counts as absent: truncating there would leave an empty
// parent url, which can never name a page.
func parentURL(url string) (string, bool) {
	if i := strings.LastIndex(url, "-"); i > 0 {
		return url[:i], true
	}
	if i := strings.LastIndex(url, "."); i > 0 {
		return url[:i], true
	}
	return "", false
}

// urlFromHref turns a member link href into a relative page url,
// dropping fragments, query strings and the .html suffix. External
// links yield an empty url.
func urlFromHref(href string) string {
	if href == "" || strings.Contains(href, "://") {
		return ""
	}
	if i := strings.IndexAny(href, "#?"); i >= 0 {
		href = href[:i]
	}
	href = strings.TrimPrefix(href, "./")
	return strings.TrimSuffix(href, ".html")
}
