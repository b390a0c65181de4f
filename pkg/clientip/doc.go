// Package clientip resolves the client address of a request behind proxies
// and exposes it to handlers and log records.
//
// GetIP checks the proxy headers in Headers order, then falls back to
// RemoteAddr. Only values that parse as IP addresses are accepted. Deploy the
// service behind a proxy that overwrites these headers; a client can set them
// freely otherwise.
package clientip
