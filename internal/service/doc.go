// Package service holds the timesheet application logic, one file per area.
//
// Area files:
// - entries: manual submission and per-user listing
// - imports: administrative spreadsheet upload
// - workspace: the shared viewer slot and form draft
// - reports: per-user hours summary
// - status: user-visible status messages for operation results
package service
