// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: Validates the X-API-Key header and rejects mutating methods when
//     the server runs read-only.
//   - rayid: Assigns every request a ray id, stored in the context locals
//     and echoed in the X-Ray-ID response header.
//
// RayID must be registered first so every log line of a request carries its id.
package middleware
