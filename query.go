package quicksearch

import (
	"sort"
	"strings"
)

// Result is a single scored query hit. Scores are transient and
// recomputed on every query; Page points into the queried index.
// Results are unordered: callers rank by descending score.
type Result struct {
	Page  *Page
	Score int
}

// Scoring weights. The exact values matter: result ordering is defined
// by their sums and reproduced in scenario tests.
const (
	scoreTitleMatch    = 50     // query token found in the title
	scoreTitleBoundary = 500    // token match starts or ends on a title boundary
	scoreExactTitle    = 10000  // raw query equals the whole title
	penaltyObsolete    = 100000 // demotes obsolete pages below everything else
)

// minPrefixLen is the shortest token treated as a prefix; shorter tokens
// only match index terms exactly.
const minPrefixLen = 3

// Search executes a tokenized, scored search against idx. Tokens must be
// lowercase and are matched in the order supplied; rawQuery is the
// untokenized query used for whole-query bonuses. A page must match at
// least as many tokens as were supplied, net of stop words.
func Search(idx *Index, tokens []string, rawQuery string) []Result {
	return search(idx, tokens, rawQuery, nil)
}

func search(idx *Index, tokens []string, rawQuery string, filter TokenFilter) []Result {
	if idx == nil || len(tokens) == 0 {
		return nil
	}

	// Stop words are skipped for matching but relax the threshold.
	minScore := len(tokens)
	scoring := make([]string, 0, len(tokens))
	hits := make(map[int]int)
	for _, token := range tokens {
		if idx.IsCommon(token) {
			minScore--
			continue
		}
		scoring = append(scoring, token)
		for _, page := range idx.matchPages(token, filter) {
			hits[page]++
		}
	}

	rawLower := strings.ToLower(rawQuery)

	var results []Result
	for pos, count := range hits {
		if count < minScore {
			continue
		}
		page := &idx.Pages[pos]
		results = append(results, Result{
			Page:  page,
			Score: scorePage(page, scoring, rawLower, count),
		})
	}
	return results
}

// matchPages returns the distinct pages matching one query token: the
// exact index term plus, for tokens long enough, every term the token
// prefixes.
func (idx *Index) matchPages(token string, filter TokenFilter) []int {
	seen := make(map[int]struct{})

	if len(token) < minPrefixLen {
		// Exact-only lookup; a negative filter answer is definitive.
		if filter != nil && !filter.Test(token) {
			return nil
		}
		i := sort.SearchStrings(idx.Keys, token)
		if i < len(idx.Keys) && idx.Keys[i] == token {
			for _, p := range idx.Entries[i].Pages {
				seen[p] = struct{}{}
			}
		}
	} else {
		// Land anywhere in the run of keys sharing the prefix, then
		// expand to both edges of the run.
		i := sort.SearchStrings(idx.Keys, token)
		start, end := i, i
		for start > 0 && strings.HasPrefix(idx.Keys[start-1], token) {
			start--
		}
		for end < len(idx.Keys) && strings.HasPrefix(idx.Keys[end], token) {
			end++
		}
		for j := start; j < end; j++ {
			for _, p := range idx.Entries[j].Pages {
				seen[p] = struct{}{}
			}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	return pages
}

// scorePage computes the relevance score for one surviving page. The
// hit count seeds the score; tokens are scanned in query order and the
// scan stops at the first token that matches the title.
func scorePage(page *Page, tokens []string, rawLower string, hitCount int) int {
	title := strings.ToLower(page.Title)
	desc := strings.ToLower(page.Description)

	score := hitCount
	for _, token := range tokens {
		if p := strings.Index(title, token); p >= 0 {
			score += scoreTitleMatch
			if p == 0 || title[p-1] == '.' {
				score += scoreTitleBoundary
			}
			if end := p + len(token); end == len(title) || title[end] == '.' {
				score += scoreTitleBoundary
			}
			break
		}
		if p := strings.Index(desc, token); p >= 0 {
			score += max(20-p, 10)
		}
	}

	// Whole-query bonus: title first, then description.
	if p := strings.Index(title, rawLower); p >= 0 && rawLower != "" {
		if p == 0 && len(rawLower) == len(title) {
			score += scoreExactTitle
		} else {
			score += max(200-p, 100)
		}
	} else if p := strings.Index(desc, rawLower); p >= 0 && rawLower != "" {
		score += max(50-p, 25)
	}

	if page.Type == TypeObsolete {
		score -= penaltyObsolete
	}
	return score
}
