package mcp

import (
	"fmt"
)

// TextContent represents a text content item in a response
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Response is the standardized response format for MCP tools. Every handler
// produces exactly one text block; the envelope shape is fixed by the host
// protocol.
type Response struct {
	Content []TextContent `json:"content"`
}

// NewResponse creates a new empty Response
func NewResponse() *Response {
	return &Response{
		Content: make([]TextContent, 0),
	}
}

// WithText adds a text content item to the response
func (r *Response) WithText(text string) *Response {
	r.Content = append(r.Content, TextContent{
		Type: "text",
		Text: text,
	})
	return r
}

// FromString creates a response from a string
func FromString(text string) *Response {
	return NewResponse().WithText(text)
}

// FormatResponse converts any handler return value into a properly shaped
// MCP response. Errors pass through untouched; they are mapped to protocol
// codes at the registry boundary.
func FormatResponse(response interface{}, err error) (interface{}, error) {
	if err != nil {
		return response, err
	}

	// For nil responses, return an empty envelope to avoid a null result
	if response == nil {
		return NewResponse(), nil
	}

	if mcpResp, ok := response.(*Response); ok {
		return mcpResp, nil
	}

	if strResponse, ok := response.(string); ok {
		if strResponse == "" {
			return NewResponse(), nil
		}
		return FromString(strResponse), nil
	}

	// Maps shaped by createTextResponse already carry a content array
	if respMap, ok := response.(map[string]interface{}); ok {
		if _, exists := respMap["content"]; exists {
			return respMap, nil
		}
		return FromString(fmt.Sprintf("%v", respMap)), nil
	}

	// For any other type, convert to string and wrap in the envelope
	return FromString(fmt.Sprintf("%v", response)), nil
}
