package digitalsee

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Document represents one TEI-encoded source file. Fields extracted from the
// TEI header are empty when the corresponding element is absent; nothing is
// fabricated. A Document is immutable once constructed: a reload replaces it
// wholesale.
type Document struct {
	// Filename of the source file, unique within a Library.
	Identifier string `json:"identifier"`

	// Header metadata (titleStmt / publicationStmt), first match in
	// document order.
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Date      string `json:"date"`

	// Authors named in the bibliography (bibl/author/persName).
	BiblAuthors []string `json:"biblAuthors,omitempty"`

	// Place names collected from provenance, location, and commentary
	// references.
	Places []string `json:"places,omitempty"`

	// Keyword list items, comma-split and trimmed.
	Keywords []string `json:"keywords,omitempty"`

	// Body divisions in document order, serialized with tags.
	Commentaries []Commentary `json:"commentaries,omitempty"`
	Editions     []Edition    `json:"editions,omitempty"`

	// Complete original file content, byte-for-byte.
	Raw []byte `json:"-"`

	// Hex xxHash of Raw.
	ContentHash string `json:"contentHash"`
}

// Commentary is a div[@type="commentary"] body division.
type Commentary struct {
	// Subtype attribute of the division; "general" when absent.
	Subtype string `json:"subtype"`

	// Serialized XML of the division, including tags.
	XML string `json:"xml"`

	// Concatenated text content of the division.
	Text string `json:"-"`
}

// Edition is a div[@type="edition"] body division.
type Edition struct {
	// xml:lang attribute of the division; "unknown" when absent.
	Lang string `json:"lang"`

	// Serialized XML of the division, including tags.
	XML string `json:"xml"`

	// Concatenated text content of the division.
	Text string `json:"-"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Identifier == "" {
		return Errorf(EINVALID, "document identifier required")
	}
	return nil
}

// HashContent computes the xxHash of content and returns it as a hex string.
func HashContent(content []byte) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64(content))
	return hex.EncodeToString(b)
}
