// Package qssdk is the QuickSight client. Every operation validates its input
// before anything is sent and reports failures as a *smithy.OperationError that
// wraps the typed service exception.
package qssdk

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/qsiface"
	"github.com/acksell/qsight/quicksight/qsrest"
)

// Transport carries one operation to the service and fills out with its result.
type Transport interface {
	RoundTrip(ctx context.Context, route *qsrest.Route, in qsapi.Input, out qsapi.Output) error
}

func New(transport Transport) *Client {
	return &Client{
		transport: transport,
	}
}

// NewFromConfig returns a client that calls the service over HTTPS using the
// region, credentials, HTTP client and logger of cfg.
func NewFromConfig(cfg aws.Config, optFns ...func(*Options)) *Client {
	return New(NewHTTPTransport(cfg, optFns...))
}

type Client struct {
	transport Transport
}

var _ qsiface.API = &Client{}

func (c *Client) invoke(ctx context.Context, operation string, in qsapi.Input, out qsapi.Output) error {
	err := c.call(ctx, operation, in, out)
	if err != nil {
		return &smithy.OperationError{
			ServiceID:     qsapi.ServiceID,
			OperationName: operation,
			Err:           err,
		}
	}
	return nil
}

func (c *Client) call(ctx context.Context, operation string, in qsapi.Input, out qsapi.Output) error {
	route, ok := qsrest.Lookup(operation)
	if !ok {
		return fmt.Errorf("no route for operation %s", operation)
	}
	if err := in.Validate(); err != nil {
		return err
	}
	return c.transport.RoundTrip(ctx, route, in, out)
}
