// Package fs provides file-based export of loaded documents.
package fs

import (
	"context"
	"os"
	"path/filepath"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
)

// Exporter writes the original XML content of documents to a directory.
// Exported files are byte-identical to the source files.
type Exporter struct {
	baseDir string
}

// NewExporter creates an Exporter that writes to the given base directory.
func NewExporter(baseDir string) *Exporter {
	return &Exporter{baseDir: baseDir}
}

// ExportDocument writes a document's raw content to baseDir, named after its
// identifier. Parent directories are created as needed.
func (e *Exporter) ExportDocument(ctx context.Context, doc *digitalsee.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(e.baseDir, 0755); err != nil {
		return err
	}

	// Identifiers are plain filenames; strip any path components.
	name := filepath.Base(doc.Identifier)
	return os.WriteFile(filepath.Join(e.baseDir, name), doc.Raw, 0644)
}
