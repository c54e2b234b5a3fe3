package main_test

import (
	"testing"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	main "github.com/Bestroi150/digitalsee-tei-navigator/cmd/digitalsee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("matches author case-insensitively", func(t *testing.T) {
		t.Parallel()

		loader := fixtureLoader(t,
			&digitalsee.Document{Identifier: "doc1.xml", Author: "Jane Doe", Places: []string{"London"}},
			&digitalsee.Document{Identifier: "doc2.xml", Author: "John Roe", Places: []string{"Paris"}},
		)
		deps, stdout, _ := testDeps(loader)

		cmd := &main.SearchCmd{Dir: "./xmls", Author: "doe"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Matched 1 of 2")
		assert.Contains(t, output, "doc1.xml")
		assert.NotContains(t, output, "doc2.xml")
	})

	t.Run("combined criteria behave as AND", func(t *testing.T) {
		t.Parallel()

		loader := fixtureLoader(t,
			&digitalsee.Document{Identifier: "doc1.xml", Author: "Jane Doe", Places: []string{"London"}},
			&digitalsee.Document{Identifier: "doc2.xml", Author: "John Roe", Places: []string{"Paris"}},
		)
		deps, stdout, _ := testDeps(loader)

		cmd := &main.SearchCmd{Dir: "./xmls", Author: "doe", Place: "paris"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matching documents found.")
	})

	t.Run("no matches is not an error", func(t *testing.T) {
		t.Parallel()

		loader := fixtureLoader(t,
			&digitalsee.Document{Identifier: "doc1.xml", Title: "Inscription"},
		)
		deps, stdout, _ := testDeps(loader)

		cmd := &main.SearchCmd{Dir: "./xmls", Keyword: "nonexistent"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matching documents found.")
	})
}
