package qsrest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

const endpoint = "https://quicksight.us-east-1.amazonaws.com"

func route(t *testing.T, name string) *Route {
	t.Helper()
	r, ok := Lookup(name)
	require.True(t, ok, name)
	return r
}

func TestRoutes(t *testing.T) {
	require.Len(t, Routes, 66)

	mux := http.NewServeMux()
	for i := range Routes {
		r := &Routes[i]
		t.Run(r.Name, func(t *testing.T) {
			in := r.NewInput()
			assert.Equal(t, r.Name+"Input", reflect.TypeOf(in).Elem().Name())
			assert.Equal(t, r.Name+"Output", reflect.TypeOf(r.NewOutput()).Elem().Name())

			_, b, err := bind(in)
			require.NoError(t, err)
			placeholders := strings.Count(r.Path, "{")
			assert.Len(t, b.uri, placeholders, "every path placeholder is bound to a member")
			for _, m := range b.uri {
				assert.Contains(t, r.Path, "{"+m.name+"}")
			}
			for _, m := range b.query {
				assert.NotEmpty(t, m.name)
			}
			assert.NotPanics(t, func() { mux.HandleFunc(r.Pattern(), func(http.ResponseWriter, *http.Request) {}) })
		})
	}
}

func TestEncodeRequest_CancelIngestion(t *testing.T) {
	req, err := EncodeRequest(context.Background(), endpoint+"/", route(t, "CancelIngestion"), &qsapi.CancelIngestionInput{
		AwsAccountId: aws.String("123456789012"),
		DataSetId:    aws.String("ds-1"),
		IngestionId:  aws.String("ing_1"),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, endpoint+"/accounts/123456789012/data-sets/ds-1/ingestions/ing_1", req.URL.String())
	assert.Nil(t, req.Body)
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestEncodeRequest_QueryAndBody(t *testing.T) {
	t.Run("query members", func(t *testing.T) {
		req, err := EncodeRequest(context.Background(), endpoint, route(t, "ListTemplates"), &qsapi.ListTemplatesInput{
			AwsAccountId: aws.String("123456789012"),
			MaxResults:   aws.Int32(10),
			NextToken:    aws.String("abc"),
		})
		require.NoError(t, err)
		assert.Equal(t, "/accounts/123456789012/templates", req.URL.Path)
		assert.Equal(t, "10", req.URL.Query().Get("max-result"))
		assert.Equal(t, "abc", req.URL.Query().Get("next-token"))
	})

	t.Run("repeated query member", func(t *testing.T) {
		req, err := EncodeRequest(context.Background(), endpoint, route(t, "UntagResource"), &qsapi.UntagResourceInput{
			ResourceArn: aws.String("arn:aws:quicksight:us-east-1:123456789012:dashboard/d1"),
			TagKeys:     []string{"env", "team"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"env", "team"}, req.URL.Query()["keys"])
		assert.Equal(t, "/resources/arn:aws:quicksight:us-east-1:123456789012:dashboard%2Fd1/tags", req.URL.EscapedPath())
	})

	t.Run("body members", func(t *testing.T) {
		req, err := EncodeRequest(context.Background(), endpoint, route(t, "CreateGroup"), &qsapi.CreateGroupInput{
			AwsAccountId: aws.String("123456789012"),
			Namespace:    aws.String("default"),
			GroupName:    aws.String("analysts"),
		})
		require.NoError(t, err)
		assert.Equal(t, ContentType, req.Header.Get("Content-Type"))
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"GroupName":"analysts"}`, string(body))
	})

	t.Run("missing path member", func(t *testing.T) {
		_, err := EncodeRequest(context.Background(), endpoint, route(t, "DescribeGroup"), &qsapi.DescribeGroupInput{
			AwsAccountId: aws.String("123456789012"),
			Namespace:    aws.String("default"),
		})
		require.ErrorContains(t, err, "GroupName")
	})
}

// serve encodes in as a request and decodes it again the way the server does.
func serve(t *testing.T, r *Route, in qsapi.Input) qsapi.Input {
	t.Helper()
	got := make(chan qsapi.Input, 1)
	mux := http.NewServeMux()
	mux.HandleFunc(r.Pattern(), func(w http.ResponseWriter, req *http.Request) {
		in, err := DecodeRequest(req, r)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		got <- in
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	req, err := EncodeRequest(context.Background(), srv.URL, r, in)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	return <-got
}

func TestDecodeRequest_RoundTrip(t *testing.T) {
	t.Run("cancel ingestion", func(t *testing.T) {
		in := &qsapi.CancelIngestionInput{
			AwsAccountId: aws.String("123456789012"),
			DataSetId:    aws.String("ds-1"),
			IngestionId:  aws.String("ing_1"),
		}
		require.NoError(t, in.Validate())
		got := serve(t, route(t, "CancelIngestion"), in)
		assert.Equal(t, in, got)
		require.NoError(t, got.Validate())
	})

	t.Run("escaped arn in path", func(t *testing.T) {
		in := &qsapi.UntagResourceInput{
			ResourceArn: aws.String("arn:aws:quicksight:us-east-1:123456789012:dashboard/d1"),
			TagKeys:     []string{"env", "team"},
		}
		assert.Equal(t, in, serve(t, route(t, "UntagResource"), in))
	})

	t.Run("typed query members", func(t *testing.T) {
		in := &qsapi.GetDashboardEmbedUrlInput{
			AwsAccountId:             aws.String("123456789012"),
			DashboardId:              aws.String("d1"),
			IdentityType:             types.EmbeddingIdentityTypeIam,
			SessionLifetimeInMinutes: aws.Int64(60),
			ResetDisabled:            aws.Bool(true),
		}
		assert.Equal(t, in, serve(t, route(t, "GetDashboardEmbedUrl"), in))
	})

	t.Run("integer path member", func(t *testing.T) {
		in := &qsapi.UpdateDashboardPublishedVersionInput{
			AwsAccountId:  aws.String("123456789012"),
			DashboardId:   aws.String("d1"),
			VersionNumber: aws.Int64(3),
		}
		assert.Equal(t, in, serve(t, route(t, "UpdateDashboardPublishedVersion"), in))
	})

	t.Run("path and body members", func(t *testing.T) {
		in := &qsapi.UpdateUserInput{
			AwsAccountId: aws.String("123456789012"),
			Namespace:    aws.String("default"),
			UserName:     aws.String("ann"),
			Email:        aws.String("ann@example.com"),
			Role:         types.UserRoleAuthor,
		}
		assert.Equal(t, in, serve(t, route(t, "UpdateUser"), in))
	})
}

func TestDecodeRequest_Malformed(t *testing.T) {
	r := route(t, "UpdateGroup")
	req := httptest.NewRequest(http.MethodPut, "/accounts/1/namespaces/default/groups/g", strings.NewReader("{"))
	_, err := DecodeRequest(req, r)

	var invalid *types.InvalidParameterValueException
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.ErrorMessage(), "malformed request body")
}

func TestResponse_RoundTrip(t *testing.T) {
	r := route(t, "CreateIngestion")
	out := &qsapi.CreateIngestionOutput{
		Arn:             aws.String("arn:aws:quicksight:us-east-1:123456789012:dataset/ds-1/ingestion/ing-1"),
		IngestionId:     aws.String("ing-1"),
		IngestionStatus: types.IngestionStatusQueued,
	}
	out.RequestId = aws.String("req-1")

	rec := httptest.NewRecorder()
	require.NoError(t, EncodeResponse(rec, r, out))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(HeaderRequestID))

	got := &qsapi.CreateIngestionOutput{}
	require.NoError(t, DecodeResponse(rec.Result(), got))
	assert.Equal(t, int32(http.StatusCreated), got.Status)
	assert.Equal(t, out, got)
}

func TestDecodeResponse_RequestIdFromHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set(HeaderRequestID, "req-2")
	rec.WriteHeader(http.StatusOK)
	_, _ = rec.WriteString(`{"Status":200}`)

	got := &qsapi.DeleteGroupOutput{}
	require.NoError(t, DecodeResponse(rec.Result(), got))
	assert.Equal(t, "req-2", aws.ToString(got.RequestId))
	assert.Equal(t, int32(200), got.Status)
}

func TestErrors_RoundTrip(t *testing.T) {
	t.Run("modelled exception keeps its members", func(t *testing.T) {
		rec := httptest.NewRecorder()
		EncodeError(rec, &types.ResourceNotFoundException{
			Message:      aws.String("data set ds-1 not found"),
			ResourceType: types.ExceptionResourceTypeDataSet,
		}, "req-3")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ResourceNotFoundException", rec.Header().Get(HeaderErrorType))

		err := DecodeResponse(rec.Result(), &qsapi.DescribeDataSetOutput{})
		var notFound *types.ResourceNotFoundException
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "data set ds-1 not found", notFound.ErrorMessage())
		assert.Equal(t, types.ExceptionResourceTypeDataSet, notFound.ResourceType)
		assert.Equal(t, "req-3", aws.ToString(notFound.RequestId))
	})

	t.Run("validation errors become InvalidParameterValueException", func(t *testing.T) {
		rec := httptest.NewRecorder()
		EncodeError(rec, (&qsapi.DescribeUserInput{}).Validate(), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		err := DecodeResponse(rec.Result(), &qsapi.DescribeUserOutput{})
		var invalid *types.InvalidParameterValueException
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, invalid.ErrorMessage(), "AwsAccountId")
	})

	t.Run("code from body with namespace prefix", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rec.WriteHeader(http.StatusTooManyRequests)
		_, _ = rec.WriteString(`{"__type":"com.amazonaws.quicksight#ThrottlingException","message":"slow down"}`)

		err := DecodeResponse(rec.Result(), &qsapi.ListUsersOutput{})
		var throttled *types.ThrottlingException
		require.ErrorAs(t, err, &throttled)
		assert.Equal(t, "slow down", throttled.ErrorMessage())
	})

	t.Run("unmodelled code", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rec.Header().Set(HeaderErrorType, "SomethingNewException:http://internal.amazon.com/")
		rec.WriteHeader(http.StatusBadRequest)
		_, _ = rec.WriteString(`{"message":"new"}`)

		err := DecodeResponse(rec.Result(), &qsapi.ListUsersOutput{})
		var generic *smithy.GenericAPIError
		require.ErrorAs(t, err, &generic)
		assert.Equal(t, "SomethingNewException", generic.Code)
		assert.Equal(t, "new", generic.Message)
	})

	t.Run("garbage body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		rec.WriteHeader(http.StatusBadGateway)
		_, _ = rec.WriteString(`<html>`)

		err := DecodeResponse(rec.Result(), &qsapi.ListUsersOutput{})
		var deser *smithy.DeserializationError
		require.ErrorAs(t, err, &deser)
	})
}

func TestEncodeError_PlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	EncodeError(rec, io.ErrUnexpectedEOF, "req-4")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "InternalFailureException", body["__type"])
	assert.Equal(t, "req-4", body["RequestId"])
}
