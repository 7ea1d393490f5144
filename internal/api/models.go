package api

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginErrorResponse defines the failure body for the login endpoint.
// Unlike the generic error body, it carries only a message plus the
// vendor error code when the provider supplied one.
type LoginErrorResponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode,omitempty"`
}

// DiagnosticResponse is the static payload of the auth diagnostic endpoint.
type DiagnosticResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Endpoint string `json:"endpoint"`
	Method   string `json:"method"`
}

// ProjectRequest defines the payload for creating or updating a project.
type ProjectRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

// TaskRequest defines the payload for creating or updating a task.
// Status is optional: on create an absent status defaults to TODO, on
// update an absent status leaves the stored value unchanged.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}
