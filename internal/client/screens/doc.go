// Package screens implements the route-bound views of the client.
//
// Each screen is entered with the path parameters of its route, loads what
// it needs through the repository client, and renders itself as text. User
// actions arrive through the small optional interfaces declared in
// screen.go; a screen that lacks one does not support that command.
package screens
