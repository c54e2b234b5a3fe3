package main

import (
	"fmt"
	"strings"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	lib, err := loadLibrary(deps, c.Dir)
	if err != nil {
		return err
	}

	filter := digitalsee.Filter{
		Author:  c.Author,
		Place:   c.Place,
		Keyword: c.Keyword,
	}
	matched := lib.Find(filter)

	if len(matched) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching documents found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Matched %d of %d documents:\n\n", len(matched), lib.Len())
	for _, doc := range matched {
		title := doc.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "  %s  %s\n", doc.Identifier, title)
		if doc.Author != "" {
			fmt.Fprintf(deps.Stdout, "      author: %s\n", doc.Author)
		}
		if len(doc.Places) > 0 {
			fmt.Fprintf(deps.Stdout, "      places: %s\n", strings.Join(doc.Places, ", "))
		}
	}

	return nil
}
