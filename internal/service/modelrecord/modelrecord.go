// Package modelrecord provides types for service-level record exchange.
package modelrecord

// Record is a stored record as seen from outside the service: its ID is always a hashid.
type Record struct {
	Hashid  string `json:"id"`
	Entity  string `json:"entity"`
	Payload string `json:"payload"`
}
