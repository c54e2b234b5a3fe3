package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	digitalsee "github.com/Bestroi150/digitalsee-tei-navigator"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Loader digitalsee.Loader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Serve the HTTP API for browsing and downloading documents"`
	List   ListCmd   `cmd:"" help:"List loaded documents in scan order"`
	Search SearchCmd `cmd:"" help:"Search documents by author, place, or keyword"`
	Show   ShowCmd   `cmd:"" help:"Show one document's metadata and sections"`
	Export ExportCmd `cmd:"" help:"Write original XML copies of documents to a directory"`
	Facets FacetsCmd `cmd:"" help:"List distinct authors, places, and keywords"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Dir   string `short:"d" env:"DIGITALSEE_DIR" default:"./xmls" help:"Source XML directory"`
	Addr  string `env:"DIGITALSEE_ADDR" default:":8080" help:"Listen address"`
	Watch bool   `default:"true" negatable:"" help:"Reload when the directory changes"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Dir string `short:"d" env:"DIGITALSEE_DIR" default:"./xmls" help:"Source XML directory"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Dir     string `short:"d" env:"DIGITALSEE_DIR" default:"./xmls" help:"Source XML directory"`
	Author  string `short:"a" help:"Author to match (case-insensitive substring)"`
	Place   string `short:"p" help:"Place name to match (case-insensitive substring)"`
	Keyword string `short:"k" help:"Keyword to match in title and section text"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID  string `arg:"" help:"Document identifier (filename)"`
	Dir string `short:"d" env:"DIGITALSEE_DIR" default:"./xmls" help:"Source XML directory"`
	XML bool   `help:"Print full section XML"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	IDs    []string `arg:"" help:"Document identifiers (filenames)"`
	Dir    string   `short:"d" env:"DIGITALSEE_DIR" default:"./xmls" help:"Source XML directory"`
	Output string   `short:"o" required:"" help:"Output directory"`
}

// FacetsCmd is the "facets" subcommand.
type FacetsCmd struct {
	Dir    string `short:"d" env:"DIGITALSEE_DIR" default:"./xmls" help:"Source XML directory"`
	Author string `short:"a" help:"Narrow places and keywords to one author (exact name)"`
}

// loadLibrary runs a load pass and surfaces per-file warnings on stderr.
func loadLibrary(deps *Dependencies, dir string) (*digitalsee.Library, error) {
	lib, err := deps.Loader.Load(deps.Ctx, dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", digitalsee.ErrorMessage(err))
		return nil, err
	}
	for _, w := range lib.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: skipped %s\n", w)
	}
	return lib, nil
}
