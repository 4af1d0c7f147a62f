package lambda

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

var knownMethods = map[string]bool{
	"GET":     true,
	"POST":    true,
	"PUT":     true,
	"PATCH":   true,
	"DELETE":  true,
	"HEAD":    true,
	"OPTIONS": true,
}

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// DecodeRequest converts an API Gateway proxy event into a generic Request.
// The envelope is validated rather than silently defaulted: a missing or
// unknown method, or a path that is empty or not rooted, is a decode error.
// Unknown extra fields on the event are ignored. Header names are lowercased
// and the body is base64-decoded when the event flags it.
func DecodeRequest(event events.APIGatewayProxyRequest) (*Request, error) {
	method := strings.ToUpper(strings.TrimSpace(event.HTTPMethod))
	if method == "" {
		return nil, fmt.Errorf("gateway event has no HTTP method")
	}
	if !knownMethods[method] {
		return nil, fmt.Errorf("gateway event has unknown HTTP method %q", event.HTTPMethod)
	}
	if event.Path == "" || !strings.HasPrefix(event.Path, "/") {
		return nil, fmt.Errorf("gateway event has invalid path %q", event.Path)
	}

	headers := make(map[string]string, len(event.Headers))
	for name, value := range event.Headers {
		headers[strings.ToLower(name)] = value
	}

	queryParams := make(map[string]string, len(event.QueryStringParameters))
	for name, value := range event.QueryStringParameters {
		queryParams[name] = value
	}

	var body []byte
	if event.Body != "" {
		if event.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(event.Body)
			if err != nil {
				return nil, fmt.Errorf("gateway event body is not valid base64: %w", err)
			}
			body = decoded
		} else {
			body = []byte(event.Body)
		}
	}

	return &Request{
		Method:      method,
		Path:        event.Path,
		Headers:     headers,
		QueryParams: queryParams,
		Body:        body,
	}, nil
}

// EncodeResult serializes a successful handler result into a 200 response.
func EncodeResult(result interface{}) (*Response, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize handler result: %w", err)
	}
	return &Response{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}

// EncodeError maps a dispatch error onto its response envelope:
// NotFound -> 404, ValidationFailed -> 422, HandlerFailed -> 500.
// Validation details are surfaced; internal failure detail never is.
func EncodeError(derr *DispatchError) *Response {
	status := 500
	body := errorBody{Error: derr.Message}

	switch derr.Kind {
	case ErrNotFound:
		status = 404
	case ErrValidationFailed:
		status = 422
		body.Details = derr.Details
	case ErrHandlerFailed:
		status = 500
	}

	// errorBody only holds strings, marshalling cannot fail
	payload, _ := json.Marshal(body)

	return &Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       payload,
	}
}

// EncodeBadRequest builds the 400 response for a gateway event that failed
// envelope decoding, using the same error body shape as every other error
// response.
func EncodeBadRequest(message string) *Response {
	// errorBody only holds strings, marshalling cannot fail
	payload, _ := json.Marshal(errorBody{Error: message})
	return &Response{
		StatusCode: 400,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       payload,
	}
}

// EncodeResponse converts a generic Response into the API Gateway envelope.
// This service never returns binary bodies, so IsBase64Encoded is always
// false.
func EncodeResponse(resp *Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode:      resp.StatusCode,
		Headers:         resp.Headers,
		Body:            string(resp.Body),
		IsBase64Encoded: false,
	}
}
