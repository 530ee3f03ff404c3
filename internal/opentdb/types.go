// Package opentdb is a minimal client for the Open Trivia Database API.
package opentdb

import (
	"fmt"
	"net/url"
	"strconv"
)

// Response codes reported in the response_code field.
const (
	CodeSuccess          = 0 // results returned
	CodeNoResults        = 1 // not enough questions for the query
	CodeInvalidParameter = 2 // invalid argument
	CodeTokenNotFound    = 3 // session token does not exist
	CodeTokenEmpty       = 4 // session token exhausted all questions
	CodeRateLimit        = 5 // too many requests from this IP
)

// Question is one raw record as delivered by the API. Text fields are HTML-escaped.
type Question struct {
	Type             string   `json:"type"`       // "multiple" or "boolean"
	Difficulty       string   `json:"difficulty"` // "easy", "medium", "hard"
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Response is the envelope of api.php.
type Response struct {
	ResponseCode int        `json:"response_code"`
	Results      []Question `json:"results"`
}

// Query narrows the requested batch. Zero values are omitted from the request.
type Query struct {
	Amount     int    // number of questions, 1..50
	Category   int    // category id, 0 means any
	Difficulty string // "easy", "medium", "hard" or empty
	Type       string // "multiple", "boolean" or empty
}

// Values encodes the query as URL parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("amount", strconv.Itoa(q.Amount))
	if q.Category > 0 {
		v.Set("category", strconv.Itoa(q.Category))
	}
	if q.Difficulty != "" {
		v.Set("difficulty", q.Difficulty)
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	return v
}

// StatusError is returned for any non-2xx HTTP status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("opentdb: unexpected status %s", e.Status)
}

// ResponseCodeError is returned when the API answers with a non-zero response_code.
type ResponseCodeError struct {
	Code int
}

func (e *ResponseCodeError) Error() string {
	return fmt.Sprintf("opentdb: response code %d (%s)", e.Code, codeText(e.Code))
}

func codeText(code int) string {
	switch code {
	case CodeSuccess:
		return "success"
	case CodeNoResults:
		return "no results"
	case CodeInvalidParameter:
		return "invalid parameter"
	case CodeTokenNotFound:
		return "token not found"
	case CodeTokenEmpty:
		return "token empty"
	case CodeRateLimit:
		return "rate limit"
	default:
		return "unknown"
	}
}
