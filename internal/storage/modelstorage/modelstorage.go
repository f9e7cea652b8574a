// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

// Record is a stored row keyed by its integer primary key.
type Record struct {
	ID      int64  `db:"id" json:"id"`
	Entity  string `db:"entity" json:"entity"`
	Payload string `db:"payload" json:"payload"`
}

// RecordFileEntry is one line of the file storage log.
type RecordFileEntry struct {
	Record
	Deleted bool `json:"deleted,omitempty"`
}
