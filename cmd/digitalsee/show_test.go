package main_test

import (
	"testing"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
	main "github.com/Bestroi150/digitalsee-tei-navigator/cmd/digitalsee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints header fields and section summaries", func(t *testing.T) {
		t.Parallel()

		loader := fixtureLoader(t, &digitalsee.Document{
			Identifier:   "doc1.xml",
			Title:        "Inscription from Serdica",
			Author:       "Maria Petrova",
			Publisher:    "DigitalSEE",
			Date:         "2024",
			Places:       []string{"Serdica"},
			Commentaries: []digitalsee.Commentary{{Subtype: "historical", XML: "<div/>"}},
			Editions:     []digitalsee.Edition{{Lang: "grc", XML: "<div/>"}},
		})
		deps, stdout, _ := testDeps(loader)

		cmd := &main.ShowCmd{Dir: "./xmls", ID: "doc1.xml"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Inscription from Serdica")
		assert.Contains(t, output, "Maria Petrova")
		assert.Contains(t, output, "DigitalSEE")
		assert.Contains(t, output, "subtype=historical")
		assert.Contains(t, output, "lang=grc")
		// Section XML only appears with --xml.
		assert.NotContains(t, output, "<div/>")
	})

	t.Run("omits absent header fields", func(t *testing.T) {
		t.Parallel()

		loader := fixtureLoader(t, &digitalsee.Document{Identifier: "doc1.xml"})
		deps, stdout, _ := testDeps(loader)

		cmd := &main.ShowCmd{Dir: "./xmls", ID: "doc1.xml"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.NotContains(t, output, "Title:")
		assert.Contains(t, output, "No commentary sections found.")
		assert.Contains(t, output, "No edition sections found.")
	})

	t.Run("returns ENOTFOUND for an unknown identifier", func(t *testing.T) {
		t.Parallel()

		loader := fixtureLoader(t)
		deps, _, stderr := testDeps(loader)

		cmd := &main.ShowCmd{Dir: "./xmls", ID: "missing.xml"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, digitalsee.ENOTFOUND, digitalsee.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
