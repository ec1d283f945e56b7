// Package errs defines the error shapes returned to API clients.
//
// HTTPError is the single wire error. Domain failures are described by
// closed Status catalogs (one per domain) and converted with New.
package errs
