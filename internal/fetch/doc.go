// Package fetch retrieves archive pages over HTTP.
//
// Fetcher is the seam between the scraper and the network: the scraper only
// depends on the interface, and Client is the production implementation on
// top of resty. A fetch issues exactly one GET request. Nothing is retried
// or cached.
//
// Failures are reported as one of two typed errors:
//   - StatusError when the server answered with a non-2xx status
//   - TransportError when the request could not be executed or the body
//     could not be read
package fetch
