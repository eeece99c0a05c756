// Package cli provides the interactive Mobie Hub terminal client.
//
// It wires configuration, the REST repository client, the route table and
// the screens, then runs a REPL on stdin. Every navigation leaves the
// current screen and enters the next one, and every successful command
// redraws the screen.
//
// Typical session:
//   - catalog, search, sort and show to browse published movies
//   - admin, filter, delete and toggle to manage the list
//   - new or edit, then set, submit or cancel on the movie form
//
// Destructive actions and leaving a form with unsaved changes ask for
// confirmation on the same input. See App and runREPL for details.
package cli
