// Package qsrest binds QuickSight operations to the REST-JSON protocol.
//
// Both sides of the wire use it: qssdk encodes requests and decodes responses,
// qsserve decodes requests and encodes responses. Path members fill the
// {Name} placeholders of Route.Path, query members become query parameters and
// every other member is sent as a JSON body.
package qsrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

const (
	ContentType = "application/json"

	HeaderRequestID = "X-Amzn-Requestid"
	HeaderErrorType = "X-Amzn-Errortype"
)

// Route describes how one operation is carried over HTTP.
type Route struct {
	Name   string
	Method string

	// Path is the request path with {Member} placeholders for path members. The
	// placeholder syntax is the one net/http.ServeMux patterns use.
	Path string

	// Status is the HTTP status of a successful response.
	Status int

	NewInput  func() qsapi.Input
	NewOutput func() qsapi.Output
}

// Pattern is the ServeMux pattern that matches requests for the route.
func (r *Route) Pattern() string {
	return r.Method + " " + r.Path
}

var routesByName = indexRoutes(Routes)

func indexRoutes(routes []Route) map[string]*Route {
	m := make(map[string]*Route, len(routes))
	for i := range routes {
		m[routes[i].Name] = &routes[i]
	}
	return m
}

// Lookup returns the route of an operation.
func Lookup(operation string) (*Route, bool) {
	r, ok := routesByName[operation]
	return r, ok
}

// EncodeRequest builds the request for in, sent to endpoint.
func EncodeRequest(ctx context.Context, endpoint string, route *Route, in qsapi.Input) (*http.Request, error) {
	v, b, err := bind(in)
	if err != nil {
		return nil, err
	}
	path := route.Path
	for _, f := range b.uri {
		vals := formatValue(v.Field(f.index))
		if len(vals) == 0 {
			return nil, fmt.Errorf("%s: path member %s is not set", route.Name, f.name)
		}
		path = strings.Replace(path, "{"+f.name+"}", url.PathEscape(vals[0]), 1)
	}
	u, err := url.Parse(strings.TrimSuffix(endpoint, "/") + path)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid endpoint: %w", route.Name, err)
	}
	query := url.Values{}
	for _, f := range b.query {
		for _, s := range formatValue(v.Field(f.index)) {
			query.Add(f.name, s)
		}
	}
	u.RawQuery = query.Encode()

	var body io.Reader
	if b.body {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, &smithy.SerializationError{Err: err}
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, route.Method, u.String(), body)
	if err != nil {
		return nil, err
	}
	if b.body {
		req.Header.Set("Content-Type", ContentType)
	}
	return req, nil
}

// DecodeRequest reads the input of route from a request matched by route.Pattern.
// Malformed requests are reported as InvalidParameterValueException.
func DecodeRequest(r *http.Request, route *Route) (qsapi.Input, error) {
	in := route.NewInput()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, in); err != nil {
			return nil, invalidParameter("malformed request body: %v", err)
		}
	}
	v, b, err := bind(in)
	if err != nil {
		return nil, err
	}
	for _, f := range b.uri {
		if s := r.PathValue(f.name); s != "" {
			if err := setValue(v.Field(f.index), []string{s}); err != nil {
				return nil, invalidParameter("path member %s: %v", f.name, err)
			}
		}
	}
	query := r.URL.Query()
	for _, f := range b.query {
		if vals, ok := query[f.name]; ok {
			if err := setValue(v.Field(f.index), vals); err != nil {
				return nil, invalidParameter("query parameter %s: %v", f.name, err)
			}
		}
	}
	return in, nil
}

// EncodeResponse writes a successful result. The request id of the output's
// metadata is echoed in the X-Amzn-Requestid header.
func EncodeResponse(w http.ResponseWriter, route *Route, out qsapi.Output) error {
	md := out.Metadata()
	md.Status = int32(route.Status)
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	if md.RequestId != nil {
		w.Header().Set(HeaderRequestID, *md.RequestId)
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(route.Status)
	_, err = w.Write(data)
	return err
}

// EncodeError writes err as a service exception. Input validation errors become
// InvalidParameterValueException; errors that are not API errors become
// InternalFailureException.
func EncodeError(w http.ResponseWriter, err error, requestID string) {
	code := (&types.InternalFailureException{}).ErrorCode()
	message := err.Error()
	body := map[string]any{}

	var invalid smithy.InvalidParamsError
	var apiErr smithy.APIError
	switch {
	case errors.As(err, &invalid):
		code = (&types.InvalidParameterValueException{}).ErrorCode()
		message = invalid.Error()
	case errors.As(err, &apiErr):
		code = apiErr.ErrorCode()
		message = apiErr.ErrorMessage()
		if data, merr := json.Marshal(apiErr); merr == nil {
			_ = json.Unmarshal(data, &body)
		}
	}
	body["__type"] = code
	body["Message"] = message
	if requestID != "" {
		body["RequestId"] = requestID
		w.Header().Set(HeaderRequestID, requestID)
	}
	data, _ := json.Marshal(body)
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set(HeaderErrorType, code)
	w.WriteHeader(types.ExceptionStatus(code))
	_, _ = w.Write(data)
}

// DecodeResponse reads resp into out, or returns the exception it carries.
// The caller closes the body.
func DecodeResponse(resp *http.Response, out qsapi.Output) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &smithy.DeserializationError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp, data)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &smithy.DeserializationError{Err: err, Snapshot: data}
		}
	}
	md := out.Metadata()
	md.Status = int32(resp.StatusCode)
	if id := resp.Header.Get(HeaderRequestID); md.RequestId == nil && id != "" {
		md.RequestId = aws.String(id)
	}
	return nil
}

type errorEnvelope struct {
	Type    string `json:"__type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeError(resp *http.Response, data []byte) error {
	var env errorEnvelope
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &env); err != nil {
			return &smithy.DeserializationError{
				Err:      fmt.Errorf("decode error response with status %d: %w", resp.StatusCode, err),
				Snapshot: data,
			}
		}
	}
	code := resp.Header.Get(HeaderErrorType)
	if code == "" {
		code = env.Type
	}
	if code == "" {
		code = env.Code
	}
	return types.DecodeException(sanitizeErrorCode(code), env.Message, data)
}

// sanitizeErrorCode reduces "aws.protocoltests#FooError:http://..." to "FooError".
func sanitizeErrorCode(code string) string {
	if i := strings.IndexByte(code, ':'); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndexByte(code, '#'); i >= 0 {
		code = code[i+1:]
	}
	return code
}

func invalidParameter(format string, args ...any) error {
	return &types.InvalidParameterValueException{Message: aws.String(fmt.Sprintf(format, args...))}
}
