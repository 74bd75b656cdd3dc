package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"finance-api/src/db"
	store "finance-api/src/db/sql"
	"finance-api/src/errs"
	"finance-api/src/logger"
	"finance-api/src/middleware"
)

// Request is one invocation in the serverless event shape.
type Request struct {
	HTTPMethod            string            `json:"httpMethod"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
	Body                  string            `json:"body"`
}

type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

type Options struct {
	// Now is the clock used for month boundaries and defaults.
	Now                     func() time.Time
	Categories              *db.CategoryCache
	Logger                  zerolog.Logger
	TransactionsLimit       int
	RecentTransactionsLimit int
}

// Dispatcher routes a request to one ledger operation on a freshly acquired
// connection.
type Dispatcher struct {
	acquirer    db.Acquirer
	now         func() time.Time
	categories  *db.CategoryCache
	log         zerolog.Logger
	listLimit   int
	recentLimit int
}

func NewDispatcher(acquirer db.Acquirer, opts Options) *Dispatcher {
	d := &Dispatcher{
		acquirer:    acquirer,
		now:         opts.Now,
		categories:  opts.Categories,
		log:         opts.Logger,
		listLimit:   opts.TransactionsLimit,
		recentLimit: opts.RecentTransactionsLimit,
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.listLimit <= 0 {
		d.listLimit = 50
	}
	if d.recentLimit <= 0 {
		d.recentLimit = 10
	}
	return d
}

// Handle runs exactly one operation. It never returns an error: failures are
// encoded in the response as {"error": message}.
func (d *Dispatcher) Handle(ctx context.Context, req Request) (resp Response) {
	start := time.Now()
	method := strings.ToUpper(req.HTTPMethod)
	if method == "" {
		method = http.MethodGet
	}
	if method == http.MethodOptions {
		return Response{StatusCode: http.StatusOK, Headers: preflightHeaders(), Body: ""}
	}

	action := req.QueryStringParameters["action"]
	l := logger.FromContextOr(ctx, d.log).With().Str("method", method).Str("action", action).Logger()

	defer func() {
		if rec := recover(); rec != nil {
			resp = d.fail(l, errs.E(errs.Internal, action, fmt.Errorf("panic: %v", rec)))
		}
		l.Info().Int("status", resp.StatusCode).Dur("duration", time.Since(start)).Msg("handled request")
	}()

	session, err := d.acquirer.Acquire(ctx)
	if err != nil {
		return d.fail(l, errs.E(errs.Persistence, "connect", err))
	}
	defer session.Release()

	h, ok := routes[route{method: method, action: action}]
	if !ok {
		switch method {
		case http.MethodGet, http.MethodPost, http.MethodPut:
			return jsonResponse(http.StatusOK, errorBody{Error: "Unknown action"})
		default:
			return jsonResponse(http.StatusOK, errorBody{Error: "Method not allowed"})
		}
	}

	result, err := h(ctx, d, store.NewStore(session, d.now, d.categories), []byte(req.Body))
	if err != nil {
		return d.fail(l, err)
	}

	body, err := json.Marshal(result)
	if err != nil {
		return d.fail(l, errs.E(errs.Internal, action, err))
	}
	return Response{StatusCode: http.StatusOK, Headers: jsonHeaders(), Body: string(body)}
}

type errorBody struct {
	Error string `json:"error"`
}

func (d *Dispatcher) fail(l zerolog.Logger, err error) Response {
	kind := errs.KindOf(err)
	ev := l.Error()
	if kind == errs.Validation || kind == errs.NotFound {
		ev = l.Warn()
	}
	ev.Err(err).Str("kind", kind.String()).Str("op", errs.OpOf(err)).Msg("request failed")

	return jsonResponse(errs.Status(kind), errorBody{Error: err.Error()})
}

func jsonResponse(status int, v any) Response {
	body, err := json.Marshal(v)
	if err != nil {
		body = []byte(`{"error":"internal server error"}`)
		status = http.StatusInternalServerError
	}
	return Response{StatusCode: status, Headers: jsonHeaders(), Body: string(body)}
}

func jsonHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": middleware.CORSHeaders["Access-Control-Allow-Origin"],
	}
}

func preflightHeaders() map[string]string {
	h := make(map[string]string, len(middleware.CORSHeaders))
	for k, v := range middleware.CORSHeaders {
		h[k] = v
	}
	return h
}
