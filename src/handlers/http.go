package handlers

import (
	"io"
	"net/http"

	"finance-api/src/errs"
	"finance-api/src/logger"
)

const maxBodyBytes = 1 << 20

// ServeHTTP adapts a plain HTTP request to Handle. Only the first value of
// each query parameter is kept.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		l := logger.FromContextOr(r.Context(), d.log)
		writeResponse(w, d.fail(l, errs.E(errs.Validation, "read_body", err)))
		return
	}

	params := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	resp := d.Handle(r.Context(), Request{
		HTTPMethod:            r.Method,
		QueryStringParameters: params,
		Body:                  string(body),
	})
	writeResponse(w, resp)
}

func writeResponse(w http.ResponseWriter, resp Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}
