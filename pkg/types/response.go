package types

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Errors  []FieldIssue `json:"errors,omitempty"`
}

type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageBody is returned by action endpoints that have no resource to echo.
type MessageBody struct {
	Message string `json:"message"`
}
