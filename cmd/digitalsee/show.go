package main

import (
	"fmt"
	"strings"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	lib, err := loadLibrary(deps, c.Dir)
	if err != nil {
		return err
	}

	doc, err := lib.Get(c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'digitalsee list' to see loaded documents.\n", digitalsee.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n\n", doc.Identifier)
	printField(deps, "Title", doc.Title)
	printField(deps, "Author", doc.Author)
	printField(deps, "Publisher", doc.Publisher)
	printField(deps, "Date", doc.Date)
	printField(deps, "Places", strings.Join(doc.Places, ", "))
	printField(deps, "Keywords", strings.Join(doc.Keywords, ", "))

	if len(doc.Commentaries) == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo commentary sections found.")
	} else {
		fmt.Fprintf(deps.Stdout, "\nCommentary sections (%d):\n", len(doc.Commentaries))
		for i, comm := range doc.Commentaries {
			fmt.Fprintf(deps.Stdout, "  %d. subtype=%s\n", i+1, comm.Subtype)
			if c.XML {
				fmt.Fprintln(deps.Stdout, comm.XML)
			}
		}
	}

	if len(doc.Editions) == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo edition sections found.")
	} else {
		fmt.Fprintf(deps.Stdout, "\nEdition sections (%d):\n", len(doc.Editions))
		for i, ed := range doc.Editions {
			fmt.Fprintf(deps.Stdout, "  %d. lang=%s\n", i+1, ed.Lang)
			if c.XML {
				fmt.Fprintln(deps.Stdout, ed.XML)
			}
		}
	}

	return nil
}

// printField prints a labeled header field, skipping absent values.
func printField(deps *Dependencies, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(deps.Stdout, "  %-10s %s\n", label+":", value)
}
