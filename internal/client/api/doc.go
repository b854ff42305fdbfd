// Package api is the client of the remote catalog/auth service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface): Login,
//     Register, CurrentUser, FetchCourseList, FetchCourseDetail, Ping.
//  2. An HTTP/JSON implementation (see HTTPClient) for DummyJSON-style
//     endpoints. Every request carries an X-Request-ID header.
//  3. One normalization function per endpoint that maps wire payloads to
//     internal/client/models types: token field renaming on login, status
//     derived from stock for catalog items. They are pure and tested apart
//     from the transport.
//
// # Error Handling
//
// Auth operations fail with *AuthError, catalog operations with
// *CatalogError. Both unwrap to sentinel errors where one applies:
// ErrUnavailable (transport failure), ErrUnauthorized (401/403),
// ErrCourseNotFound (no course with the requested id).
//
// There is no caching and no retry at this layer. Cancellation follows the
// caller's context; a client-wide timeout applies only when configured.
package api
