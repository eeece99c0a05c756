// Package client contains the Mobie Hub repository client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the movie
//     catalog backend: ListAll, ListByStatus, ListByName, GetByID, Create,
//     Update and Delete.
//  2. A REST implementation (see HTTPClient) that maps each operation onto
//     {apiBase}/movies, encodes write payloads as JSON and decodes responses
//     into models.Movie values. It keeps no state between calls: no cache,
//     no retries.
//
// # Error Handling
//
// Every failure is returned as a *RequestError carrying the operation name,
// the HTTP status (0 for transport failures) and a user-facing message: the
// backend's own message when the error body has one, otherwise a generic
// fallback for the operation. Transport failures also match ErrUnavailable
// and 404 responses match ErrNotFound via errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; the CLI never cancels in-flight requests, but callers
// embedding the client may.
package client
