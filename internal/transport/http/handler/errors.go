package handler

const (
	errInternalServer     = "internal server error"
	errMissingFields      = "missing fields"
	errEmailTaken         = "user already exists"
	errInvalidCredentials = "invalid credentials"
	errTaskNotFound       = "task not found"
	errNotTaskOwner       = "user not authorized"
	errEmptyDescription   = "please type a description"
)
