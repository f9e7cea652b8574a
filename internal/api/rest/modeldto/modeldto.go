// Package modeldto provides locally used types and their structure for data transfer objects.
package modeldto

type (
	RequestCreate struct {
		Payload string `json:"payload"`
	}

	RequestImport struct {
		ID      *int64 `json:"id"`
		Payload string `json:"payload"`
	}

	ResponseEncode struct {
		Hashid string `json:"hashid"`
	}

	ResponseDecode struct {
		ID int64 `json:"id"`
	}

	ResponseError struct {
		Error string `json:"error"`
	}
)
