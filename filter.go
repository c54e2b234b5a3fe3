package digitalsee

import "strings"

// Filter represents search criteria for Library.Find. Empty fields impose
// no constraint; supplied fields must all match (logical AND). Matching is
// case-insensitive substring matching, so partial name entry still matches.
type Filter struct {
	// Matched against the header author and any bibliography author.
	Author string `json:"author"`

	// Matched against any place name associated with the document.
	Place string `json:"place"`

	// Matched against the title, keyword entries, and the text content of
	// commentary and edition sections.
	Keyword string `json:"keyword"`
}

// IsZero reports whether the filter imposes no constraints.
func (f Filter) IsZero() bool {
	return f.Author == "" && f.Place == "" && f.Keyword == ""
}

// Match reports whether the document satisfies every supplied constraint.
// An absent document field never matches a non-empty constraint.
func (f Filter) Match(doc *Document) bool {
	if f.Author != "" && !f.matchAuthor(doc) {
		return false
	}
	if f.Place != "" && !matchAny(doc.Places, f.Place) {
		return false
	}
	if f.Keyword != "" && !f.matchKeyword(doc) {
		return false
	}
	return true
}

func (f Filter) matchAuthor(doc *Document) bool {
	if doc.Author != "" && foldContains(doc.Author, f.Author) {
		return true
	}
	return matchAny(doc.BiblAuthors, f.Author)
}

func (f Filter) matchKeyword(doc *Document) bool {
	if doc.Title != "" && foldContains(doc.Title, f.Keyword) {
		return true
	}
	if matchAny(doc.Keywords, f.Keyword) {
		return true
	}
	for _, c := range doc.Commentaries {
		if foldContains(c.Text, f.Keyword) {
			return true
		}
	}
	for _, e := range doc.Editions {
		if foldContains(e.Text, f.Keyword) {
			return true
		}
	}
	return false
}

func matchAny(values []string, query string) bool {
	for _, v := range values {
		if foldContains(v, query) {
			return true
		}
	}
	return false
}

func foldContains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
