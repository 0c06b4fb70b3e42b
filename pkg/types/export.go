// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Entry is one prompt/response pair from an export.
type Entry struct {
	// Prompt is the user's input text.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Response is the generated output, rendered verbatim inside a
	// fenced code block.
	Response string `json:"risposta" yaml:"risposta"`
}

// Document is a parsed export: a timestamp and the ordered list of entries.
// Entry order is significant and preserved in the rendered output.
type Document struct {
	// Timestamp identifies when the export was produced. Non-string JSON
	// scalars are kept as their literal text.
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// Entries holds the prompt/response pairs in input order.
	Entries []Entry `json:"risposte" yaml:"risposte"`
}
