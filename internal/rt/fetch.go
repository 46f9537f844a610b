package rt

import "strings"

// The fetch adapter is a local mock, not a network client: responses are
// synthesized from whether the URL contains the configured marker host.
// Keeping it a mock preserves parity with the observable behavior the
// transpiled programs were written against.

const (
	mockBodyKnown   = `{"message":"Success","data":{"id":1,"name":"Test Data"}}`
	mockBodyUnknown = `{"error":"Not Found"}`
)

// fetchRequest is the task context: it owns private clones of everything
// taken from the caller's options object.
type fetchRequest struct {
	url     string
	method  string
	body    Value
	headers Value
}

func parseFetchOptions(url string, options Value) fetchRequest {
	req := fetchRequest{
		url:     url,
		method:  "GET",
		body:    MakeNull(),
		headers: MakeNull(),
	}
	if options.Kind != VKObject {
		return req
	}
	if m := ObjectGet(options, "method"); m.Kind == VKString && m.Str != "" {
		req.method = m.Str
	}
	req.body = ObjectGet(options, "body")
	req.headers = ObjectGet(options, "headers")
	return req
}

// Fetch parses options for method (default "GET"), body and headers, then
// resolves the returned promise on a pooled worker with a Response-shaped
// object: status, statusText, headers, url and the internal _body string.
// The caller never blocks.
func (r *Runtime) Fetch(url string, options Value) *Promise {
	p := NewPromise()
	req := parseFetchOptions(url, options)
	host := r.cfg.Fetch.MockHost

	err := r.sched.Go(func() {
		p.Resolve(mockResponse(req, host))
	})
	if err != nil {
		p.Reject(errorObject("failed to schedule fetch: " + err.Error()))
	}
	return p
}

// mockResponse synthesizes the canned response for a request. The method,
// body and headers of the request are carried for parity with a real
// client but do not influence the mock.
func mockResponse(req fetchRequest, markerHost string) Value {
	known := strings.Contains(req.url, markerHost)

	headers := MakeObject()
	ObjectSet(headers, "Content-Type", MakeString("application/json"))

	resp := MakeObject()
	if known {
		ObjectSet(resp, "status", MakeNumber(200))
		ObjectSet(resp, "statusText", MakeString("OK"))
		ObjectSet(resp, "_body", MakeString(mockBodyKnown))
	} else {
		ObjectSet(resp, "status", MakeNumber(404))
		ObjectSet(resp, "statusText", MakeString("Not Found"))
		ObjectSet(resp, "_body", MakeString(mockBodyUnknown))
	}
	ObjectSet(resp, "headers", headers)
	ObjectSet(resp, "url", MakeString(req.url))
	return resp
}

// ResponseText returns the raw _body string of a response object, or null
// (with a diagnostic) when resp has no body.
func ResponseText(resp Value) Value {
	body := ObjectGet(resp, "_body")
	if body.Kind != VKString {
		reportf("ResponseText called on value without a _body string")
		return MakeNull()
	}
	return body
}

// ResponseJSON re-derives the canned mock object matching the response
// body. It is keyed off the body content, not parsed: the runtime carries
// no JSON parser.
func ResponseJSON(resp Value) Value {
	body := ObjectGet(resp, "_body")
	if body.Kind != VKString {
		reportf("ResponseJSON called on value without a _body string")
		return MakeNull()
	}

	out := MakeObject()
	if strings.Contains(body.Str, `"data"`) {
		data := MakeObject()
		ObjectSet(data, "id", MakeNumber(1))
		ObjectSet(data, "name", MakeString("Test Data"))
		ObjectSet(out, "message", MakeString("Success"))
		ObjectSet(out, "data", data)
		return out
	}
	ObjectSet(out, "error", MakeString("Not Found"))
	return out
}
