package qsserve

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/qsrest"
	"github.com/acksell/qsight/quicksight/qssdk"
	"github.com/acksell/qsight/quicksight/qsstore"
	"github.com/acksell/qsight/quicksight/types"
)

const testAccount = "111122223333"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := qsstore.New(qsstore.StoreOptions{InMemory: true, Region: "eu-west-1"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	handler, err := NewHandler(store)
	require.NoError(t, err)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T) (*qssdk.Client, *httptest.Server) {
	t.Helper()
	srv := newTestServer(t)
	client := qssdk.NewFromConfig(aws.Config{Region: "eu-west-1"},
		qssdk.WithEndpoint(srv.URL), qssdk.WithHTTPClient(srv.Client()))
	return client, srv
}

func TestOperations_CoverEveryRoute(t *testing.T) {
	ops := operations(&qsstore.Store{})
	assert.Len(t, ops, len(qsrest.Routes))
	for _, route := range qsrest.Routes {
		assert.Contains(t, ops, route.Name)
	}
}

func TestHandler_Groups(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	for _, name := range []string{"analysts", "authors"} {
		out, err := client.CreateGroup(ctx, &qsapi.CreateGroupInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String("default"),
			GroupName:    aws.String(name),
			Description:  aws.String(name + " group"),
		})
		require.NoError(t, err)
		assert.Equal(t, "arn:aws:quicksight:eu-west-1:111122223333:group/default/"+name, aws.ToString(out.Group.Arn))
		assert.NotEmpty(t, aws.ToString(out.RequestId))
	}

	list, err := client.ListGroups(ctx, &qsapi.ListGroupsInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String("default"),
	})
	require.NoError(t, err)
	var names []string
	for _, g := range list.GroupList {
		names = append(names, aws.ToString(g.GroupName))
	}
	assert.ElementsMatch(t, []string{"analysts", "authors"}, names)
	assert.Equal(t, int32(http.StatusOK), list.Status)

	_, err = client.DeleteGroup(ctx, &qsapi.DeleteGroupInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String("default"),
		GroupName:    aws.String("authors"),
	})
	require.NoError(t, err)

	_, err = client.DescribeGroup(ctx, &qsapi.DescribeGroupInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String("default"),
		GroupName:    aws.String("authors"),
	})
	var notFound *types.ResourceNotFoundException
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, types.ExceptionResourceTypeGroup, notFound.ResourceType)
	assert.NotEmpty(t, aws.ToString(notFound.RequestId))

	var opErr *smithy.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "DescribeGroup", opErr.OperationName)
}

func TestHandler_DataSourceParameters(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateDataSource(ctx, &qsapi.CreateDataSourceInput{
		AwsAccountId: aws.String(testAccount),
		DataSourceId: aws.String("warehouse"),
		Name:         aws.String("Warehouse"),
		Type:         types.DataSourceTypeAthena,
		DataSourceParameters: &types.DataSourceParametersMemberAthenaParameters{
			Value: types.AthenaParameters{WorkGroup: aws.String("primary")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(http.StatusAccepted), created.Status)

	out, err := client.DescribeDataSource(ctx, &qsapi.DescribeDataSourceInput{
		AwsAccountId: aws.String(testAccount),
		DataSourceId: aws.String("warehouse"),
	})
	require.NoError(t, err)
	params, ok := out.DataSource.DataSourceParameters.(*types.DataSourceParametersMemberAthenaParameters)
	require.True(t, ok, "got %T", out.DataSource.DataSourceParameters)
	assert.Equal(t, "primary", aws.ToString(params.Value.WorkGroup))
}

func TestHandler_ClientValidation(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.ListGroups(context.Background(), &qsapi.ListGroupsInput{
		AwsAccountId: aws.String("not-an-account"),
		Namespace:    aws.String("default"),
	})
	var invalid smithy.InvalidParamsError
	require.ErrorAs(t, err, &invalid)
}

func TestHandler_RawRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantType   string
	}{
		{
			name:       "malformed body",
			method:     http.MethodPost,
			path:       "/accounts/" + testAccount + "/namespaces/default/groups",
			body:       `{"GroupName":`,
			wantStatus: http.StatusBadRequest,
			wantType:   "InvalidParameterValueException",
		},
		{
			name:       "server side validation",
			method:     http.MethodPost,
			path:       "/accounts/123/namespaces/default/groups",
			body:       `{"GroupName":"analysts"}`,
			wantStatus: http.StatusBadRequest,
			wantType:   "InvalidParameterValueException",
		},
		{
			name:       "unknown group",
			method:     http.MethodGet,
			path:       "/accounts/" + testAccount + "/namespaces/default/groups/nobody",
			wantStatus: http.StatusNotFound,
			wantType:   "ResourceNotFoundException",
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			path:       "/nothing/here",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantType, resp.Header.Get(qsrest.HeaderErrorType))
			if tt.wantType != "" {
				assert.NotEmpty(t, resp.Header.Get(qsrest.HeaderRequestID))
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), `"__type":"`+tt.wantType+`"`)
			}
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		qsrest.EncodeError(w, &types.ThrottlingException{Message: aws.String("slow down")}, "req-1")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/1/data-sets", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, buf.String(), "GET /accounts/1/data-sets 429 ThrottlingException")
}
