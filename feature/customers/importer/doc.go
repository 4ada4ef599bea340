// Package importer pulls customer records from a provider.DataProvider and
// upserts them into storage keyed by email.
//
// Every import overwrites all mutable fields of a matching customer; nothing
// is merged. Records without an email are skipped and, within one batch, the
// last record for an email wins. Provider failures import nothing and are not
// reported as errors, while storage failures are.
//
// Passwords are stored as salted bcrypt hashes. Fetched batches can optionally
// be archived to object storage with the login credentials removed.
package importer
