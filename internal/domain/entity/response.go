package entity

import (
	"encoding/json"
	"net/http"
)

// Response is the result contract of one invocation
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// NewResponse builds a Response whose body is the JSON encoding of message
func NewResponse(statusCode int, message string) Response {
	body, err := json.Marshal(message)
	if err != nil {
		return Response{StatusCode: http.StatusInternalServerError}
	}
	return Response{StatusCode: statusCode, Body: string(body)}
}

// Message decodes the body back into its message string
func (r Response) Message() string {
	var message string
	if err := json.Unmarshal([]byte(r.Body), &message); err != nil {
		return r.Body
	}
	return message
}
