// Package httpapi groups HTTP handlers by area so route behavior is easier to locate.
//
// Area files:
// - page: the embedded single-page form
// - workspace: options, viewer selection and the form draft
// - entries: manual submission and per-user listing
// - imports: administrative spreadsheet upload
// - reports: per-user hours summary
package httpapi
