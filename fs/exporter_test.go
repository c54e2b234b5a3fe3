package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	"github.com/Bestroi150/digitalsee-tei-navigator/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporter_ExportDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes raw content byte-identical", func(t *testing.T) {
		t.Parallel()

		raw := []byte("<?xml version=\"1.0\"?>\n<TEI>\r\n  <text/>\n</TEI>\n")
		doc := &digitalsee.Document{Identifier: "doc1.xml", Raw: raw}

		outDir := filepath.Join(t.TempDir(), "out")
		exporter := fs.NewExporter(outDir)

		require.NoError(t, exporter.ExportDocument(context.Background(), doc))

		written, err := os.ReadFile(filepath.Join(outDir, "doc1.xml"))
		require.NoError(t, err)
		assert.Equal(t, raw, written)
	})

	t.Run("strips path components from the identifier", func(t *testing.T) {
		t.Parallel()

		doc := &digitalsee.Document{Identifier: "../../escape.xml", Raw: []byte("<TEI/>")}

		outDir := t.TempDir()
		exporter := fs.NewExporter(outDir)

		require.NoError(t, exporter.ExportDocument(context.Background(), doc))

		_, err := os.Stat(filepath.Join(outDir, "escape.xml"))
		assert.NoError(t, err)
	})

	t.Run("rejects documents without identifier", func(t *testing.T) {
		t.Parallel()

		exporter := fs.NewExporter(t.TempDir())

		err := exporter.ExportDocument(context.Background(), &digitalsee.Document{})

		require.Error(t, err)
		assert.Equal(t, digitalsee.EINVALID, digitalsee.ErrorCode(err))
	})
}
