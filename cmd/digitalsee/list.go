package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	lib, err := loadLibrary(deps, c.Dir)
	if err != nil {
		return err
	}

	if lib.Len() == 0 {
		fmt.Fprintf(deps.Stdout, "No XML files found in %s.\n", c.Dir)
		return nil
	}

	for _, doc := range lib.Documents() {
		title := doc.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", doc.Identifier, title)
	}

	return nil
}
