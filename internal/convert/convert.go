// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert renders prompt/response exports as Markdown. Each entry
// becomes a Prompt section followed by the response in a fenced code block.
package convert

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pdiddy/json-to-md/internal/export"
	"github.com/pdiddy/json-to-md/pkg/types"
)

const (
	// title is the document heading. The Italian template strings are
	// part of the output format and are not translated.
	title = "Esportazione Claude"

	// fenceLanguage tags every response block regardless of its content.
	fenceLanguage = "python"
)

// Result describes a completed conversion.
type Result struct {
	// Entries is the number of entry blocks written.
	Entries int

	// Format is the input syntax the export was read as.
	Format export.Format
}

// Convert loads the export at path and writes its Markdown rendering to w.
// Loading validates the whole document first, so on a load error nothing
// is written to w.
func Convert(path string, w io.Writer) (Result, error) {
	doc, err := export.Load(path)
	if err != nil {
		return Result{}, err
	}
	if err := Render(w, doc); err != nil {
		return Result{}, err
	}
	return Result{
		Entries: len(doc.Entries),
		Format:  export.FormatForPath(path),
	}, nil
}

// Render writes the header block and one block per entry, in order.
// Response text is embedded verbatim; triple backticks inside a response
// are not escaped and will close the fence early.
func Render(w io.Writer, doc *types.Document) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n\nData: %s\n\n", title, doc.Timestamp)
	for _, e := range doc.Entries {
		writeEntry(bw, e)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

func writeEntry(w io.Writer, e types.Entry) {
	fmt.Fprintf(w, "## Prompt\n%s\n\n", e.Prompt)
	fmt.Fprintf(w, "### Risposta\n```%s\n%s\n```\n\n", fenceLanguage, e.Response)
}
