package main

import (
	"fmt"
	"io"
	"strings"
)

// Run executes the facets command.
func (c *FacetsCmd) Run(deps *Dependencies) error {
	lib, err := loadLibrary(deps, c.Dir)
	if err != nil {
		return err
	}

	facets := lib.Facets()
	if c.Author != "" {
		facets = facets.ForAuthor(c.Author)
	}

	printFacet(deps.Stdout, "Authors", facets.Authors)
	printFacet(deps.Stdout, "Places", facets.Places)
	printFacet(deps.Stdout, "Keywords", facets.Keywords)
	return nil
}

func printFacet(w io.Writer, label string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(w, "%s: (none)\n", label)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(values, ", "))
}
