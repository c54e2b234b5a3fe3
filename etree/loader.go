// Package etree provides a TEI XML document loader backed by beevik/etree.
package etree

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	"github.com/beevik/etree"
)

// Ensure Loader implements digitalsee.Loader at compile time.
var _ digitalsee.Loader = (*Loader)(nil)

// Loader reads TEI XML files from a directory and extracts document
// metadata by structural position. Extraction is deterministic: where the
// schema allows multiple candidates, the first in document order wins.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load builds a library from the XML files directly in dir.
func (l *Loader) Load(ctx context.Context, dir string) (*digitalsee.Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, digitalsee.Errorf(digitalsee.ENOTFOUND, "source directory %q does not exist", dir)
		}
		return nil, digitalsee.Errorf(digitalsee.EINTERNAL, "reading source directory %q: %v", dir, err)
	}

	lib := digitalsee.NewLibrary(dir)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			lib.Warn(entry.Name(), err)
			continue
		}

		doc, err := parseDocument(entry.Name(), raw)
		if err != nil {
			lib.Warn(entry.Name(), err)
			continue
		}
		if err := lib.Add(doc); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// parseDocument parses one TEI file into a Document. Missing metadata
// fields yield empty values, never an error; only malformed XML fails.
func parseDocument(identifier string, raw []byte) (*digitalsee.Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(raw); err != nil {
		return nil, err
	}
	if tree.Root() == nil {
		return nil, digitalsee.Errorf(digitalsee.EINVALID, "no root element")
	}

	doc := &digitalsee.Document{
		Identifier:   identifier,
		Title:        firstText(tree, "//teiHeader/fileDesc/titleStmt/title"),
		Author:       firstText(tree, "//teiHeader/fileDesc/titleStmt/author/persName"),
		Publisher:    firstText(tree, "//teiHeader/fileDesc/publicationStmt/publisher"),
		Date:         firstText(tree, "//teiHeader/fileDesc/publicationStmt/date"),
		BiblAuthors:  allText(tree, "//bibl/author/persName"),
		Places:       extractPlaces(tree),
		Keywords:     extractKeywords(tree),
		Commentaries: extractCommentaries(tree),
		Editions:     extractEditions(tree),
		Raw:          raw,
		ContentHash:  digitalsee.HashContent(raw),
	}
	return doc, nil
}

// placePaths are the structural positions that contribute place names, in
// the order the original corpus conventions define them.
var placePaths = []string{
	"//provenance/placeName",
	"//location/name[@type='place']",
	"//div[@type='commentary']//name[@type='contemporary']",
	"//name[@type='current']",
}

func extractPlaces(tree *etree.Document) []string {
	var places []string
	seen := make(map[string]bool)
	for _, path := range placePaths {
		for _, el := range tree.FindElements(path) {
			name := strings.TrimSpace(el.Text())
			// Corpus files use a literal "none" for unknown places.
			if name == "" || strings.EqualFold(name, "none") {
				continue
			}
			if !seen[name] {
				seen[name] = true
				places = append(places, name)
			}
		}
	}
	return places
}

func extractKeywords(tree *etree.Document) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, el := range tree.FindElements("//keywords/list/item") {
		for _, part := range strings.Split(el.Text(), ",") {
			kw := strings.TrimSpace(part)
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func extractCommentaries(tree *etree.Document) []digitalsee.Commentary {
	var commentaries []digitalsee.Commentary
	for _, el := range tree.FindElements("//div[@type='commentary']") {
		commentaries = append(commentaries, digitalsee.Commentary{
			Subtype: el.SelectAttrValue("subtype", "general"),
			XML:     serialize(el),
			Text:    deepText(el),
		})
	}
	return commentaries
}

func extractEditions(tree *etree.Document) []digitalsee.Edition {
	var editions []digitalsee.Edition
	for _, el := range tree.FindElements("//div[@type='edition']") {
		editions = append(editions, digitalsee.Edition{
			Lang: el.SelectAttrValue("xml:lang", "unknown"),
			XML:  serialize(el),
			Text: deepText(el),
		})
	}
	return editions
}

// firstText returns the trimmed text of the first element matching path, or
// "" when no element matches.
func firstText(tree *etree.Document, path string) string {
	el := tree.FindElement(path)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// allText returns the trimmed, deduplicated texts of all elements matching
// path, in document order.
func allText(tree *etree.Document, path string) []string {
	var texts []string
	seen := make(map[string]bool)
	for _, el := range tree.FindElements(path) {
		text := strings.TrimSpace(el.Text())
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		texts = append(texts, text)
	}
	return texts
}

// serialize renders an element subtree as indented XML, tags included.
func serialize(el *etree.Element) string {
	frag := etree.NewDocument()
	frag.SetRoot(el.Copy())
	frag.Indent(2)
	s, err := frag.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// deepText concatenates the character data of an element subtree, with
// single spaces between adjacent runs.
func deepText(el *etree.Element) string {
	var parts []string
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.Child {
			switch c := child.(type) {
			case *etree.CharData:
				if text := strings.TrimSpace(c.Data); text != "" {
					parts = append(parts, text)
				}
			case *etree.Element:
				walk(c)
			}
		}
	}
	walk(el)
	return strings.Join(parts, " ")
}
