package models

// Error taxonomy surfaced to clients. The HTTP helper maps each type to a
// status code; messages are shown to the user verbatim.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

// ErrorForbidden is returned when the requester's role is insufficient for
// the requested mutation. The stored record is left unchanged.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}
