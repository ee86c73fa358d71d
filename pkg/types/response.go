// Package types holds the JSON shapes shared by every endpoint.
package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// CreatedID acknowledges an insert.
type CreatedID struct {
	ID uint `json:"id"`
}

// UpdatedID acknowledges an overwrite.
type UpdatedID struct {
	UpdatedID uint `json:"updatedID"`
}

// DeletedID acknowledges a removal.
type DeletedID struct {
	DeletedID uint `json:"deletedID"`
}

// Status is a bare acknowledgement such as a logout.
type Status struct {
	Status string `json:"status"`
}
