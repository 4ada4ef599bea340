// Package customers serves imported customers over HTTP.
//
// It registers a JSON list at /customers, a JSON detail at /customers/:id
// and a browser page at / that renders the list as a sortable, paginated
// table with a detail modal. Imports themselves live in the importer
// subpackage and are driven from the command line.
package customers
