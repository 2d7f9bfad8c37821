// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildQuery constructs the arXiv search_query expression for one keyword.
//
// A keyword containing whitespace is treated as an exact phrase and matched
// against title or abstract; a single token gets a wildcard suffix unless it
// already carries one. Categories, when present, are OR-combined and ANDed
// with the keyword clause:
//
//	(cat:a+OR+cat:b)+AND+(ti:laser*+OR+abs:laser*)
//
// BuildQuery is pure and deterministic.
func BuildQuery(keyword string, categories []string) (string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return "", fmt.Errorf("empty keyword")
	}

	var kwPart string
	if strings.ContainsAny(keyword, " \t") {
		phrase := url.QueryEscape(keyword)
		kwPart = fmt.Sprintf("(ti:%%22%s%%22+OR+abs:%%22%s%%22)", phrase, phrase)
	} else {
		token := keyword
		if !strings.Contains(token, "*") {
			token += "*"
		}
		kwPart = fmt.Sprintf("(ti:%s+OR+abs:%s)", token, token)
	}

	var cats []string
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c != "" {
			cats = append(cats, "cat:"+c)
		}
	}
	if len(cats) == 0 {
		return kwPart, nil
	}
	return fmt.Sprintf("(%s)+AND+%s", strings.Join(cats, "+OR+"), kwPart), nil
}
