package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/qsstore"
	"github.com/acksell/qsight/quicksight/types"
)

const testAccount = "111122223333"

func newTestSession(t *testing.T) *session {
	t.Helper()
	store, err := qsstore.New(qsstore.StoreOptions{InMemory: true, Region: "eu-west-1"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return &session{api: store, account: testAccount, namespace: "default"}
}

type fakeSTS struct {
	account *string
	err     error
}

func (f fakeSTS) GetCallerIdentity(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{Account: f.account}, nil
}

type fakeIAM map[string]string

func (f fakeIAM) GetUser(_ context.Context, in *iam.GetUserInput, _ ...func(*iam.Options)) (*iam.GetUserOutput, error) {
	arn, ok := f[aws.ToString(in.UserName)]
	if !ok {
		return nil, errors.New("NoSuchEntity")
	}
	return &iam.GetUserOutput{User: &iamtypes.User{Arn: aws.String(arn), UserName: in.UserName}}, nil
}

func TestCallerAccount(t *testing.T) {
	ctx := context.Background()

	account, err := callerAccount(ctx, fakeSTS{account: aws.String(testAccount)})
	require.NoError(t, err)
	assert.Equal(t, testAccount, account)

	_, err = callerAccount(ctx, fakeSTS{err: errors.New("no credentials")})
	require.ErrorIs(t, err, errNoAccount)
	assert.Contains(t, err.Error(), "no credentials")

	_, err = callerAccount(ctx, fakeSTS{})
	require.ErrorIs(t, err, errNoAccount)
}

func TestGroupCommands(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	var out bytes.Buffer

	require.NoError(t, createGroup(ctx, &out, s, "analysts", "Reads dashboards"))
	assert.Contains(t, out.String(), "group/default/analysts")
	require.NoError(t, createGroup(ctx, &out, s, "authors", ""))

	out.Reset()
	require.NoError(t, listGroups(ctx, &out, s, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, out.String(), "Reads dashboards")

	out.Reset()
	require.NoError(t, deleteGroup(ctx, &out, s, []string{"authors"}))
	assert.Equal(t, "Deleted group authors\n", out.String())

	err := deleteGroup(ctx, &out, s, []string{"authors"})
	var notFound *types.ResourceNotFoundException
	assert.ErrorAs(t, err, &notFound)
}

func TestUserCommands(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	var out bytes.Buffer

	lookup := fakeIAM{"ana": "arn:aws:iam::111122223333:user/ana"}

	t.Run("iam user by name", func(t *testing.T) {
		out.Reset()
		err := registerUser(ctx, &out, s, registerOptions{email: "ana@example.com", role: "AUTHOR", iamUser: "ana"}, lookup)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "user/default/ana")
		assert.NotContains(t, out.String(), "Invitation URL")
	})

	t.Run("unknown iam user", func(t *testing.T) {
		err := registerUser(ctx, &out, s, registerOptions{email: "x@example.com", role: "READER", iamUser: "ghost"}, lookup)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("quicksight user is invited", func(t *testing.T) {
		out.Reset()
		err := registerUser(ctx, &out, s, registerOptions{email: "bo@example.com", role: "READER", userName: "bo"}, nil)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Invitation URL: https://eu-west-1.quicksight.aws.amazon.com/")
	})

	t.Run("bad role", func(t *testing.T) {
		err := registerUser(ctx, &out, s, registerOptions{email: "c@example.com", role: "OWNER", userName: "c"}, nil)
		require.Error(t, err)
	})

	out.Reset()
	require.NoError(t, listUsers(ctx, &out, s, nil))
	assert.Contains(t, out.String(), "ana@example.com")
	assert.Contains(t, out.String(), "bo@example.com")
	assert.Contains(t, out.String(), "AUTHOR")
}

func createSpiceDataSet(t *testing.T, s *session, id string) {
	t.Helper()
	ctx := context.Background()
	source, err := s.api.CreateDataSource(ctx, &qsapi.CreateDataSourceInput{
		AwsAccountId: aws.String(s.account),
		DataSourceId: aws.String(id + "-source"),
		Name:         aws.String("Athena"),
		Type:         types.DataSourceTypeAthena,
		DataSourceParameters: &types.DataSourceParametersMemberAthenaParameters{
			Value: types.AthenaParameters{WorkGroup: aws.String("primary")},
		},
	})
	require.NoError(t, err)
	_, err = s.api.CreateDataSet(ctx, &qsapi.CreateDataSetInput{
		AwsAccountId: aws.String(s.account),
		DataSetId:    aws.String(id),
		Name:         aws.String("Sales"),
		ImportMode:   types.DataSetImportModeSpice,
		PhysicalTableMap: map[string]types.PhysicalTable{
			"sales": &types.PhysicalTableMemberRelationalTable{Value: types.RelationalTable{
				DataSourceArn: source.Arn,
				Name:          aws.String("sales"),
				InputColumns: []types.InputColumn{
					{Name: aws.String("region"), Type: types.InputColumnDataTypeString},
				},
			}},
		},
	})
	require.NoError(t, err)
}

func TestIngestionCommands(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	var out bytes.Buffer

	createSpiceDataSet(t, s, "sales")

	require.NoError(t, createIngestion(ctx, &out, s, "sales", "refresh-1"))
	assert.Equal(t, "Ingestion refresh-1: QUEUED\n", out.String())

	out.Reset()
	require.NoError(t, cancelIngestion(ctx, &out, s, []string{"sales", "refresh-1"}))
	assert.Equal(t, "Cancelled ingestion refresh-1\n", out.String())

	out.Reset()
	require.NoError(t, describeIngestion(ctx, &out, s, []string{"sales", "refresh-1"}))
	assert.Contains(t, out.String(), "Status:   CANCELLED")
	assert.Contains(t, out.String(), "MANUAL FULL_REFRESH")

	out.Reset()
	require.NoError(t, listIngestions(ctx, &out, s, []string{"sales"}))
	assert.Contains(t, out.String(), "refresh-1")
	assert.Contains(t, out.String(), "INITIAL_INGESTION")

	out.Reset()
	require.NoError(t, listDataSets(ctx, &out, s, nil))
	assert.Contains(t, out.String(), "sales")
	assert.Contains(t, out.String(), "SPICE")

	err := createIngestion(ctx, &out, s, "missing", "refresh-2")
	var notFound *types.ResourceNotFoundException
	assert.ErrorAs(t, err, &notFound)
}

func TestListDashboards_Empty(t *testing.T) {
	s := newTestSession(t)
	var out bytes.Buffer

	require.NoError(t, listDashboards(context.Background(), &out, s, nil))
	assert.Equal(t, "ID   NAME   PUBLISHED   UPDATED\n--   ----   ---------   -------\n", out.String())
}

func TestPaginate(t *testing.T) {
	pages := map[string][]int{"": {1, 2}, "a": {3}, "b": {4, 5}}
	next := map[string]*string{"": aws.String("a"), "a": aws.String("b"), "b": nil}

	var calls int
	all, err := paginate(func(token *string) ([]int, *string, error) {
		calls++
		key := aws.ToString(token)
		return pages[key], next[key], nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, all)
	assert.Equal(t, 3, calls)

	_, err = paginate(func(*string) ([]int, *string, error) { return nil, nil, errors.New("boom") })
	assert.EqualError(t, err, "boom")
}
