// Package store persists customers with GORM.
//
// The Store is an explicit handle passed to its users: the importer reads through
// FindByEmail and writes through a single Commit per import, the HTTP handlers read
// through List and Get. There is no ambient session; Commit is the only transaction
// boundary.
package store
