package response

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// CountBody is the wire shape of the count endpoints.
type CountBody struct {
	Count int64 `json:"count"`
}

// Error wraps a message in the standard error body.
func Error(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

// Count wraps a row count in the standard count body.
func Count(n int64) CountBody {
	return CountBody{Count: n}
}
