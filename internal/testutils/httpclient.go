package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
)

type Response struct {
	StatusCode int
	Body       string
}

type TestRequestOpt func(*http.Request, *http.Response)

// JSONBody encodes v as a request body.
func JSONBody(v any) io.Reader {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bytes.NewReader(body)
}

func MustBindJSON(v any) TestRequestOpt {
	return func(_ *http.Request, resp *http.Response) {
		if resp == nil {
			return
		}
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			panic(err)
		}
	}
}

func WithJSONContentType() TestRequestOpt {
	return func(req *http.Request, _ *http.Response) {
		if req != nil {
			req.Header.Set("Content-Type", "application/json")
		}
	}
}

func DoTestRequest(
	ts *httptest.Server, method, path string, body io.Reader, opts ...TestRequestOpt,
) Response {
	req, err := http.NewRequest(method, ts.URL+path, body) // nolint: noctx
	if err != nil {
		panic(err)
	}
	for _, opt := range opts {
		opt(req, nil)
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	// options that read the body leave nothing for the raw copy
	for _, opt := range opts {
		opt(nil, resp)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	return Response{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
	}
}
