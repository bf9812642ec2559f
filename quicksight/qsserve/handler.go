package qsserve

import (
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"

	"github.com/acksell/qsight/quicksight/qsiface"
	"github.com/acksell/qsight/quicksight/qsrest"
)

// Handler serves every QuickSight operation of an API over the REST-JSON
// binding.
type Handler struct {
	mux *http.ServeMux
}

var _ http.Handler = &Handler{}

// NewHandler routes each operation in qsrest.Routes to the matching method of api.
func NewHandler(api qsiface.API) (*Handler, error) {
	ops := operations(api)
	mux := http.NewServeMux()
	for i := range qsrest.Routes {
		route := &qsrest.Routes[i]
		call, ok := ops[route.Name]
		if !ok {
			return nil, fmt.Errorf("no handler for operation %s", route.Name)
		}
		mux.Handle(route.Pattern(), serveOperation(route, call))
	}
	return &Handler{mux: mux}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// serveOperation decodes the input of route, calls the operation and writes its
// result. Every response carries a fresh request id, successful or not.
func serveOperation(route *qsrest.Route, call operation) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()

		in, err := qsrest.DecodeRequest(r, route)
		if err != nil {
			qsrest.EncodeError(w, err, requestID)
			return
		}
		out, err := call(r.Context(), in)
		if err != nil {
			qsrest.EncodeError(w, err, requestID)
			return
		}
		out.Metadata().RequestId = aws.String(requestID)
		if err := qsrest.EncodeResponse(w, route, out); err != nil {
			log.Printf("%s: write response: %v", route.Name, err)
		}
	})
}
