// Package provider abstracts the remote source of customer records.
//
// DataProvider is the contract the importer consumes. Two implementations exist and
// the caller picks one explicitly when building the importer:
//
//   - RandomUser calls a randomuser.me compatible endpoint with results=<count> and
//     the configured nat filter, and returns the "results" list.
//   - Fixture serves queued in-memory batches (tests) or a JSON file on disk
//     (the import command's --fixture flag).
//
// Missing configuration, transport errors, non-2xx statuses and payloads without a
// "results" list are all plain errors; there is no partial success.
package provider
