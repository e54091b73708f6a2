// Package splitter divides extracted document text into bounded,
// context-window-sized chunks for embedding and retrieval.
//
// The central strategy is the recursive delimiter cascade: an ordered list of
// split patterns is tried from coarsest to finest granularity, and any piece
// that still exceeds the configured chunk size is re-split with the next
// pattern in the cascade. The cascade always terminates in the empty
// delimiter, which falls back to fixed-width character windows. A family of
// single-strategy structural splitters (sentence, paragraph, markdown header,
// LaTeX section, JSON key, HTML tag and fixed-width character windows) shares
// the same merge and overlap bookkeeping.
//
// All splitters are pure: one input text and one configuration in, one
// ordered chunk sequence out, with no shared state between invocations.
// Callers that want parallelism fan out independent calls.
package splitter
