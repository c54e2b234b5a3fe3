package digitalsee

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ParseWarning records a file that failed XML parsing during a load pass.
// Parse failures are isolated to the file; the batch proceeds without it.
type ParseWarning struct {
	File string
	Err  error
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("%s: %v", w.File, w.Err)
}

// Library is the result of one load pass over a source directory: documents
// in directory scan order, indexed by identifier. A Library is never mutated
// after the load pass completes; a reload builds a replacement.
type Library struct {
	// Unique ID of the load pass that produced this library.
	LoadID string `json:"loadId"`

	// When the load pass ran.
	LoadedAt time.Time `json:"loadedAt"`

	// Source directory the library was loaded from.
	Dir string `json:"dir"`

	// Files that failed to parse during the load pass.
	Warnings []ParseWarning `json:"-"`

	docs []*Document
	byID map[string]*Document
}

// NewLibrary returns an empty library for the given source directory.
func NewLibrary(dir string) *Library {
	return &Library{
		LoadID:   uuid.New().String(),
		LoadedAt: time.Now().UTC(),
		Dir:      dir,
		byID:     make(map[string]*Document),
	}
}

// Add appends a document, preserving insertion order.
// Returns ECONFLICT if the identifier is already present.
func (l *Library) Add(doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if _, ok := l.byID[doc.Identifier]; ok {
		return Errorf(ECONFLICT, "duplicate document identifier %q", doc.Identifier)
	}
	l.docs = append(l.docs, doc)
	l.byID[doc.Identifier] = doc
	return nil
}

// Warn records a non-fatal per-file parse failure.
func (l *Library) Warn(file string, err error) {
	l.Warnings = append(l.Warnings, ParseWarning{File: file, Err: err})
}

// Get retrieves a document by identifier.
// Returns ENOTFOUND if the document does not exist.
func (l *Library) Get(identifier string) (*Document, error) {
	doc, ok := l.byID[identifier]
	if !ok {
		return nil, Errorf(ENOTFOUND, "document %q not found", identifier)
	}
	return doc, nil
}

// Documents returns all documents in scan order.
func (l *Library) Documents() []*Document {
	return l.docs
}

// Len returns the number of loaded documents.
func (l *Library) Len() int {
	return len(l.docs)
}

// Find returns the documents matching the filter, in scan order.
// A zero filter returns all documents; no matches returns an empty slice.
func (l *Library) Find(filter Filter) []*Document {
	matched := []*Document{}
	for _, doc := range l.docs {
		if filter.Match(doc) {
			matched = append(matched, doc)
		}
	}
	return matched
}

// Facets aggregates the distinct authors, places, and keywords across a
// library, plus per-author associations used to narrow the other two facets
// once an author is chosen.
type Facets struct {
	Authors  []string `json:"authors"`
	Places   []string `json:"places"`
	Keywords []string `json:"keywords"`

	authorPlaces   map[string][]string
	authorKeywords map[string][]string
}

// Facets computes facet aggregates over all loaded documents.
func (l *Library) Facets() *Facets {
	authors := make(map[string]bool)
	places := make(map[string]bool)
	keywords := make(map[string]bool)
	authorPlaces := make(map[string]map[string]bool)
	authorKeywords := make(map[string]map[string]bool)

	for _, doc := range l.docs {
		docAuthors := doc.BiblAuthors
		if doc.Author != "" {
			docAuthors = append([]string{doc.Author}, docAuthors...)
		}
		for _, a := range docAuthors {
			authors[a] = true
		}
		for _, p := range doc.Places {
			places[p] = true
		}
		for _, k := range doc.Keywords {
			keywords[k] = true
		}
		for _, a := range docAuthors {
			if authorPlaces[a] == nil {
				authorPlaces[a] = make(map[string]bool)
			}
			for _, p := range doc.Places {
				authorPlaces[a][p] = true
			}
			if authorKeywords[a] == nil {
				authorKeywords[a] = make(map[string]bool)
			}
			for _, k := range doc.Keywords {
				authorKeywords[a][k] = true
			}
		}
	}

	f := &Facets{
		Authors:        sortedKeys(authors),
		Places:         sortedKeys(places),
		Keywords:       sortedKeys(keywords),
		authorPlaces:   make(map[string][]string, len(authorPlaces)),
		authorKeywords: make(map[string][]string, len(authorKeywords)),
	}
	for a, set := range authorPlaces {
		f.authorPlaces[a] = sortedKeys(set)
	}
	for a, set := range authorKeywords {
		f.authorKeywords[a] = sortedKeys(set)
	}
	return f
}

// ForAuthor returns a view of the facets narrowed to documents naming the
// given author. An author with no associations narrows to empty places and
// keywords.
func (f *Facets) ForAuthor(author string) *Facets {
	return &Facets{
		Authors:  f.Authors,
		Places:   emptyNotNil(f.authorPlaces[author]),
		Keywords: emptyNotNil(f.authorKeywords[author]),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
