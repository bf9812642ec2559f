package qssdk

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/smithy-go/logging"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/acksell/qsight/quicksight/internal/describe"
	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/qsrest"
)

// Options configure an HTTPTransport. They start from the aws.Config the
// transport is built from.
type Options struct {
	Region string

	// Credentials sign every request. Nil sends unsigned requests, which only a
	// local server accepts.
	Credentials aws.CredentialsProvider

	HTTPClient aws.HTTPClient

	// Endpoint overrides the regional service endpoint, for example to reach a
	// local qsserve instance.
	Endpoint string

	Logger        logging.Logger
	ClientLogMode aws.ClientLogMode
}

// WithEndpoint sends requests to url instead of the regional endpoint.
func WithEndpoint(url string) func(*Options) {
	return func(o *Options) {
		o.Endpoint = url
	}
}

func WithHTTPClient(client aws.HTTPClient) func(*Options) {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// HTTPTransport sends operations over the REST-JSON protocol, signed with
// Signature Version 4.
type HTTPTransport struct {
	options Options
	signer  *v4.Signer
	now     func() time.Time
}

var _ Transport = &HTTPTransport{}

func NewHTTPTransport(cfg aws.Config, optFns ...func(*Options)) *HTTPTransport {
	o := Options{
		Region:        cfg.Region,
		Credentials:   cfg.Credentials,
		HTTPClient:    cfg.HTTPClient,
		Logger:        cfg.Logger,
		ClientLogMode: cfg.ClientLogMode,
	}
	if cfg.BaseEndpoint != nil {
		o.Endpoint = *cfg.BaseEndpoint
	}
	for _, fn := range optFns {
		fn(&o)
	}

	switch o.Credentials.(type) {
	case nil, aws.AnonymousCredentials, *aws.AnonymousCredentials:
		o.Credentials = nil
	case *aws.CredentialsCache:
	default:
		o.Credentials = aws.NewCredentialsCache(o.Credentials)
	}
	if o.HTTPClient == nil {
		o.HTTPClient = http.DefaultClient
	}
	if o.Logger == nil {
		o.Logger = logging.Nop{}
	}
	if o.Endpoint == "" {
		o.Endpoint = fmt.Sprintf("https://quicksight.%s.amazonaws.com", o.Region)
	}
	return &HTTPTransport{
		options: o,
		signer:  v4.NewSigner(),
		now:     time.Now,
	}
}

func (t *HTTPTransport) RoundTrip(ctx context.Context, route *qsrest.Route, in qsapi.Input, out qsapi.Output) error {
	req, err := qsrest.EncodeRequest(ctx, t.options.Endpoint, route, in)
	if err != nil {
		return err
	}
	if err := t.sign(ctx, req); err != nil {
		return err
	}
	if t.options.ClientLogMode.IsRequest() {
		t.options.Logger.Logf(logging.Debug, "Request\n%s %s\n%s", req.Method, req.URL.Redacted(), describe.String(in))
	}

	resp, err := t.options.HTTPClient.Do(req)
	if err != nil {
		return &smithyhttp.RequestSendError{Err: err}
	}
	defer resp.Body.Close()

	err = qsrest.DecodeResponse(resp, out)
	if t.options.ClientLogMode.IsResponse() {
		if err != nil {
			t.options.Logger.Logf(logging.Debug, "Response\n%s\n%v", resp.Status, err)
		} else {
			t.options.Logger.Logf(logging.Debug, "Response\n%s\n%s", resp.Status, describe.String(out))
		}
	}
	return err
}

func (t *HTTPTransport) sign(ctx context.Context, req *http.Request) error {
	if t.options.Credentials == nil {
		return nil
	}
	creds, err := t.options.Credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("retrieve credentials: %w", err)
	}
	hash, err := payloadHash(req)
	if err != nil {
		return err
	}
	return t.signer.SignHTTP(ctx, creds, req, hash, qsapi.SigningName, t.options.Region, t.now().UTC())
}

func payloadHash(req *http.Request) (string, error) {
	var payload []byte
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return "", err
		}
		defer body.Close()
		if payload, err = io.ReadAll(body); err != nil {
			return "", err
		}
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
