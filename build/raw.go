// Package build turns the documentation toolchain's raw search data and
// the documentation HTML tree into an immutable index artifact.
package build

import (
	"encoding/json"
	"fmt"
	"io"

	quicksearch "github.com/sttz/unity-quicksearch-docs"
)

// RawData is the raw search data emitted by the documentation
// toolchain. All four fields are required; a missing field aborts the
// whole build.
type RawData struct {
	Pages       []RawPage        `json:"pages"`
	Info        []RawPageInfo    `json:"info"`
	Common      []string         `json:"common"`
	SearchIndex map[string][]int `json:"searchIndex"`
}

// RawPage is a [url, title] tuple in the raw page list.
type RawPage struct {
	URL   string
	Title string
}

// UnmarshalJSON decodes the tuple form the toolchain emits.
func (p *RawPage) UnmarshalJSON(b []byte) error {
	var tuple []string
	if err := json.Unmarshal(b, &tuple); err != nil {
		return err
	}
	if len(tuple) < 2 {
		return fmt.Errorf("page tuple needs url and title, got %d field(s)", len(tuple))
	}
	p.URL, p.Title = tuple[0], tuple[1]
	return nil
}

// RawPageInfo is a per-page info tuple whose first field is the page's
// short description; trailing fields are ignored.
type RawPageInfo struct {
	Description string
}

// UnmarshalJSON decodes the tuple form the toolchain emits.
func (i *RawPageInfo) UnmarshalJSON(b []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return err
	}
	if len(tuple) == 0 {
		return fmt.Errorf("empty page info tuple")
	}
	return json.Unmarshal(tuple[0], &i.Description)
}

// ParseRawData reads and validates the raw search data document.
func ParseRawData(r io.Reader) (*RawData, error) {
	var raw RawData
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, quicksearch.Errorf(quicksearch.EINVALID, "malformed raw search data: %v", err)
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	return &raw, nil
}

// Validate checks that the four required raw structures are present.
// Present-but-empty structures are valid; absent ones are not.
func (d *RawData) Validate() error {
	switch {
	case d.Pages == nil:
		return quicksearch.Errorf(quicksearch.EINVALID, "raw search data: page list missing")
	case d.Info == nil:
		return quicksearch.Errorf(quicksearch.EINVALID, "raw search data: page info list missing")
	case d.Common == nil:
		return quicksearch.Errorf(quicksearch.EINVALID, "raw search data: stop word set missing")
	case d.SearchIndex == nil:
		return quicksearch.Errorf(quicksearch.EINVALID, "raw search data: term map missing")
	}
	if len(d.Info) != len(d.Pages) {
		return quicksearch.Errorf(quicksearch.EINVALID, "raw search data: %d info entries for %d pages", len(d.Info), len(d.Pages))
	}
	return nil
}
