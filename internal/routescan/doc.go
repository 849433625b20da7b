// Package routescan derives URL patterns from a file-based routes directory.
//
// Files under the routes root map to URL patterns by their path:
//
//	index.go            → /
//	about.go            → /about
//	users/[id].go       → /users/:id
//	docs/[...rest].go   → /docs/*rest
//
// Bracketed segments are dynamic parameters; a [...name] segment is a
// catch-all and must be the final segment. layout files wrap the pages in
// their directory and do not produce routes of their own.
package routescan
