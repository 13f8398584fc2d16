package models

type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

func SuccessResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}

// FieldErrorResponse attaches field-scoped validation messages.
func FieldErrorResponse(err string, fields map[string]string) Response {
	return Response{
		Success: false,
		Error:   err,
		Fields:  fields,
	}
}
