package qssdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/qsrest"
	"github.com/acksell/qsight/quicksight/types"
)

type recordingTransport struct {
	calls []string
	err   error
}

func (r *recordingTransport) RoundTrip(_ context.Context, route *qsrest.Route, _ qsapi.Input, _ qsapi.Output) error {
	r.calls = append(r.calls, route.Name)
	return r.err
}

var staticCredentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
	return aws.Credentials{AccessKeyID: "AKID", SecretAccessKey: "SECRET"}, nil
})

func newTestClient(t *testing.T, handler http.HandlerFunc, optFns ...func(*Options)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := aws.Config{Region: "us-east-1", Credentials: staticCredentials}
	optFns = append([]func(*Options){WithEndpoint(srv.URL), WithHTTPClient(srv.Client())}, optFns...)
	return NewFromConfig(cfg, optFns...)
}

func TestClient_ValidatesBeforeTransport(t *testing.T) {
	transport := &recordingTransport{}
	client := New(transport)

	_, err := client.CancelIngestion(context.Background(), &qsapi.CancelIngestionInput{
		AwsAccountId: aws.String("123456789012"),
		DataSetId:    aws.String("ds-1"),
		IngestionId:  aws.String("not valid!"),
	})
	require.Error(t, err)
	assert.Empty(t, transport.calls)

	var opErr *smithy.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "QuickSight", opErr.ServiceID)
	assert.Equal(t, "CancelIngestion", opErr.OperationName)

	var invalid smithy.InvalidParamsError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "CancelIngestionInput.IngestionId")
}

func TestClient_RejectsEmptyPathMembers(t *testing.T) {
	tests := []struct {
		name  string
		field string
		call  func(*Client) error
	}{
		{
			name:  "namespace",
			field: "ListGroupsInput.Namespace",
			call: func(c *Client) error {
				_, err := c.ListGroups(context.Background(), &qsapi.ListGroupsInput{
					AwsAccountId: aws.String("123456789012"),
					Namespace:    aws.String(""),
				})
				return err
			},
		},
		{
			name:  "data set id",
			field: "CancelIngestionInput.DataSetId",
			call: func(c *Client) error {
				_, err := c.CancelIngestion(context.Background(), &qsapi.CancelIngestionInput{
					AwsAccountId: aws.String("123456789012"),
					DataSetId:    aws.String(""),
					IngestionId:  aws.String("ing_1"),
				})
				return err
			},
		},
		{
			name:  "data source id",
			field: "DescribeDataSourceInput.DataSourceId",
			call: func(c *Client) error {
				_, err := c.DescribeDataSource(context.Background(), &qsapi.DescribeDataSourceInput{
					AwsAccountId: aws.String("123456789012"),
					DataSourceId: aws.String(""),
				})
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &recordingTransport{}
			err := tt.call(New(transport))

			var invalid smithy.InvalidParamsError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, err.Error(), tt.field)
			assert.Empty(t, transport.calls)
		})
	}
}

func TestClient_NilParams(t *testing.T) {
	transport := &recordingTransport{}
	client := New(transport)

	_, err := client.ListGroups(context.Background(), nil)
	var invalid smithy.InvalidParamsError
	require.ErrorAs(t, err, &invalid)
	assert.Empty(t, transport.calls)
}

func TestClient_TransportErrorIsWrapped(t *testing.T) {
	client := New(&recordingTransport{err: &types.ThrottlingException{Message: aws.String("slow down")}})

	_, err := client.ListUsers(context.Background(), &qsapi.ListUsersInput{
		AwsAccountId: aws.String("123456789012"),
		Namespace:    aws.String("default"),
	})
	var throttled *types.ThrottlingException
	require.ErrorAs(t, err, &throttled)
	var opErr *smithy.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "ListUsers", opErr.OperationName)
}

func TestHTTPTransport_SignsAndDecodes(t *testing.T) {
	var gotAuth, gotPath, gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set(qsrest.HeaderRequestID, "req-1")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Group":{"GroupName":"analysts","Arn":"arn:aws:quicksight:us-east-1:123456789012:group/default/analysts"}}`))
	})

	out, err := client.CreateGroup(context.Background(), &qsapi.CreateGroupInput{
		AwsAccountId: aws.String("123456789012"),
		Namespace:    aws.String("default"),
		GroupName:    aws.String("analysts"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotAuth, "AWS4-HMAC-SHA256 Credential=AKID/"), gotAuth)
	assert.Contains(t, gotAuth, "/us-east-1/quicksight/aws4_request")
	assert.Equal(t, "/accounts/123456789012/namespaces/default/groups", gotPath)
	assert.JSONEq(t, `{"GroupName":"analysts"}`, gotBody)

	assert.Equal(t, int32(http.StatusOK), out.Status)
	assert.Equal(t, "req-1", aws.ToString(out.RequestId))
	assert.Equal(t, "analysts", aws.ToString(out.Group.GroupName))
}

func TestHTTPTransport_Unsigned(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := NewFromConfig(aws.Config{Region: "us-east-1", Credentials: aws.AnonymousCredentials{}}, WithEndpoint(srv.URL))
	_, err := client.DeleteGroup(context.Background(), &qsapi.DeleteGroupInput{
		AwsAccountId: aws.String("123456789012"),
		Namespace:    aws.String("default"),
		GroupName:    aws.String("analysts"),
	})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestHTTPTransport_Exceptions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		qsrest.EncodeError(w, &types.ResourceNotFoundException{
			Message:      aws.String("ingestion ing-1 not found"),
			ResourceType: types.ExceptionResourceTypeIngestion,
		}, "req-2")
	})

	_, err := client.DescribeIngestion(context.Background(), &qsapi.DescribeIngestionInput{
		AwsAccountId: aws.String("123456789012"),
		DataSetId:    aws.String("ds-1"),
		IngestionId:  aws.String("ing-1"),
	})

	var notFound *types.ResourceNotFoundException
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, types.ExceptionResourceTypeIngestion, notFound.ResourceType)
	assert.Equal(t, "req-2", aws.ToString(notFound.RequestId))

	var apiErr smithy.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ResourceNotFoundException", apiErr.ErrorCode())
	assert.Equal(t, smithy.FaultClient, apiErr.ErrorFault())
}

func TestHTTPTransport_SendError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewFromConfig(aws.Config{Region: "us-east-1"}, WithEndpoint(url))
	_, err := client.ListDataSets(context.Background(), &qsapi.ListDataSetsInput{
		AwsAccountId: aws.String("123456789012"),
	})
	require.Error(t, err)
	var opErr *smithy.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "ListDataSets", opErr.OperationName)
}

func TestHTTPTransport_LogsRedactedInput(t *testing.T) {
	var logs bytes.Buffer
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(map[string]any{"DataSourceId": "src-1", "CreationStatus": "CREATION_IN_PROGRESS"})
	}, func(o *Options) {
		o.Logger = logging.NewStandardLogger(&logs)
		o.ClientLogMode = aws.LogRequest | aws.LogResponse
	})

	_, err := client.CreateDataSource(context.Background(), &qsapi.CreateDataSourceInput{
		AwsAccountId: aws.String("123456789012"),
		DataSourceId: aws.String("src-1"),
		Name:         aws.String("warehouse"),
		Type:         types.DataSourceTypePostgresql,
		Credentials: &types.DataSourceCredentialsMemberCredentialPair{Value: types.CredentialPair{
			Username: aws.String("admin"),
			Password: aws.String("hunter2"),
		}},
	})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "POST")
	assert.Contains(t, logs.String(), "warehouse")
	assert.Contains(t, logs.String(), "202")
	assert.NotContains(t, logs.String(), "hunter2")
}

func TestPayloadHash(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
	require.NoError(t, err)
	hash, err := payloadHash(req)
	require.NoError(t, err)
	// sha256 of the empty string
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hash)
}

func TestNewHTTPTransport_Defaults(t *testing.T) {
	tr := NewHTTPTransport(aws.Config{Region: "eu-west-1"})
	assert.Equal(t, "https://quicksight.eu-west-1.amazonaws.com", tr.options.Endpoint)
	assert.Nil(t, tr.options.Credentials)
	assert.NotNil(t, tr.options.Logger)

	tr = NewHTTPTransport(aws.Config{Region: "eu-west-1", BaseEndpoint: aws.String("http://localhost:8080"), Credentials: staticCredentials})
	assert.Equal(t, "http://localhost:8080", tr.options.Endpoint)
	assert.IsType(t, &aws.CredentialsCache{}, tr.options.Credentials)
	assert.WithinDuration(t, time.Now(), tr.now(), time.Minute)
}

func TestClient_ErrorsAreNotOperationErrorsTwice(t *testing.T) {
	client := New(&recordingTransport{err: errors.New("boom")})
	_, err := client.DescribeGroup(context.Background(), &qsapi.DescribeGroupInput{
		AwsAccountId: aws.String("123456789012"),
		Namespace:    aws.String("default"),
		GroupName:    aws.String("g"),
	})
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "operation error"))
}
