package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

type ErrorUnauthorized struct {
}

func (e ErrorUnauthorized) Error() string {
	return "Unauthorized"
}

func NewErrorUnauthorized() ErrorUnauthorized {
	return ErrorUnauthorized{}
}

type ErrorTooManyRequests struct {
}

func (e ErrorTooManyRequests) Error() string {
	return "Too Many Requests"
}

func NewErrorTooManyRequests() ErrorTooManyRequests {
	return ErrorTooManyRequests{}
}

// ErrorInvalidInput carries a field specific validation message
type ErrorInvalidInput struct {
	Message string
}

func (e ErrorInvalidInput) Error() string {
	return e.Message
}

func NewErrorInvalidInput(message string) ErrorInvalidInput {
	return ErrorInvalidInput{Message: message}
}
