package dto

import "net/http"

// ProblemTypeNotFound is the "type" of every 404 problem body.
const ProblemTypeNotFound = "not_found"

// ProblemResponse is the JSON body returned when a resource does not exist.
type ProblemResponse struct {
	Type     string `json:"type" example:"not_found"`
	Title    string `json:"title" example:"ETF not found"`
	Status   int    `json:"status" example:"404"`
	Detail   string `json:"detail" example:"Unknown symbol: NOPE"`
	Instance string `json:"instance" example:"/v1/etfs/NOPE"`
}

// NewNotFoundProblem builds a 404 problem for the request path instance.
func NewNotFoundProblem(title, detail, instance string) ProblemResponse {
	return ProblemResponse{
		Type:     ProblemTypeNotFound,
		Title:    title,
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: instance,
	}
}
