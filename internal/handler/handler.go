// Package handler is the HTTP layer: it binds and validates requests,
// calls the services and writes their results, including the session
// cookies.
package handler
