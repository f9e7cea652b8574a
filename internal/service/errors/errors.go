// Package errors provides custom errors for types implementing Processor interface.
package errors

type (
	ServiceInitHashError struct {
		Entity string
		Msg    string
	}
	ServiceFoundNilStorage struct {
		Msg string
	}
	ServiceNotEncodableError struct {
		Entity string
		ID     int64
	}
	ServiceInvalidHashidError struct {
		Entity string
		Hashid string
	}
	ServiceIncorrectInput struct {
		Msg string
	}
)

func (e *ServiceInitHashError) Error() string {
	if e.Entity == "" {
		return "default hashid bundle: " + e.Msg
	}
	return "hashid bundle for entity " + e.Entity + ": " + e.Msg
}

func (e *ServiceFoundNilStorage) Error() string {
	return e.Msg
}

func (e *ServiceNotEncodableError) Error() string {
	return "id is not encodable for entity " + e.Entity
}

func (e *ServiceInvalidHashidError) Error() string {
	return "invalid hashid " + e.Hashid + " for entity " + e.Entity
}

func (e *ServiceIncorrectInput) Error() string {
	return e.Msg
}
