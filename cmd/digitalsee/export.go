package main

import (
	"fmt"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	"github.com/Bestroi150/digitalsee-tei-navigator/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	lib, err := loadLibrary(deps, c.Dir)
	if err != nil {
		return err
	}

	exporter := fs.NewExporter(c.Output)
	for _, id := range c.IDs {
		doc, err := lib.Get(id)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'digitalsee list' to see loaded documents.\n", digitalsee.ErrorMessage(err))
			return err
		}
		if err := exporter.ExportDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: exporting %s: %v\n", id, err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d documents to %s\n", len(c.IDs), c.Output)
	return nil
}
