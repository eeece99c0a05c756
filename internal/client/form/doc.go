// Package form holds the editable draft behind the create and edit screens.
//
// A Form tracks per-field touched and dirty flags, validates the draft with
// go-playground/validator tags, and derives the display state the screens
// render: gated error messages, field classes, character counters, the
// poster preview and the rating tier. Submit and Cancel implement the save
// and discard flows.
package form
