package qsstore

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

const (
	testAccount   = "111122223333"
	testNamespace = "default"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(StoreOptions{InMemory: true, Region: "eu-west-1"})
	require.NoError(t, err)
	store.now = func() time.Time { return testNow }
	t.Cleanup(func() { store.Close() })
	return store
}

func createGroup(t *testing.T, store *Store, name string) *types.Group {
	t.Helper()
	out, err := store.CreateGroup(context.Background(), &qsapi.CreateGroupInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String(testNamespace),
		GroupName:    aws.String(name),
	})
	require.NoError(t, err)
	return out.Group
}

func registerUser(t *testing.T, store *Store, name string) *types.User {
	t.Helper()
	out, err := store.RegisterUser(context.Background(), &qsapi.RegisterUserInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String(testNamespace),
		IdentityType: types.IdentityTypeQuicksight,
		Email:        aws.String(name + "@example.com"),
		UserRole:     types.UserRoleAuthor,
		UserName:     aws.String(name),
	})
	require.NoError(t, err)
	return out.User
}

func TestNew_DefaultRegion(t *testing.T) {
	store, err := New(StoreOptions{})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, "arn:aws:quicksight:us-east-1:111122223333:group/default/g", store.arn(testAccount, "group/default/g"))
}

func TestStore_RejectsNilAndInvalidInput(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.DescribeGroup(ctx, nil)
	require.ErrorIs(t, err, errParamsRequired)

	_, err = store.DescribeGroup(ctx, &qsapi.DescribeGroupInput{
		AwsAccountId: aws.String("123"),
		Namespace:    aws.String(testNamespace),
		GroupName:    aws.String("g"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DescribeGroupInput.AwsAccountId")
}

// =============================================================================
// Keys and pagination
// =============================================================================

func TestEncodeKey_VersionOrdering(t *testing.T) {
	v9 := encodeKey(kindTemplateVersion, testAccount, "t", versionPart(9))
	v10 := encodeKey(kindTemplateVersion, testAccount, "t", versionPart(10))
	assert.Less(t, string(v9), string(v10))
}

func TestKeyPrefix_DoesNotMatchLongerParts(t *testing.T) {
	prefix := keyPrefix(kindMember, testAccount, testNamespace, "a")
	assert.NotContains(t, string(encodeKey(kindMember, testAccount, testNamespace, "ab", "u")), string(prefix))
	assert.Contains(t, string(encodeKey(kindMember, testAccount, testNamespace, "a", "u")), string(prefix))
}

func TestEncodeKey_EscapesSeparator(t *testing.T) {
	prefix := keyPrefix(kindIngestion, testAccount, "a")
	assert.False(t, bytes.HasPrefix(encodeKey(kindIngestion, testAccount, "a\x00b", "i1"), prefix))
	assert.True(t, bytes.HasPrefix(encodeKey(kindIngestion, testAccount, "a", "i1"), prefix))
	assert.NotEqual(t, encodeKey(kindDataSet, testAccount, "a\x01\x01"), encodeKey(kindDataSet, testAccount, "a\x00"))
	assert.Equal(t, 2, bytes.Count(encodeKey(kindDataSet, testAccount, "x\x00y"), []byte{keySeparator}))
}

func TestDecodeToken(t *testing.T) {
	prefix := keyPrefix(kindGroup, testAccount, testNamespace)

	key := encodeKey(kindGroup, testAccount, testNamespace, "g1")
	got, err := decodeToken(*encodeToken(key), prefix)
	require.NoError(t, err)
	assert.Equal(t, key, got)

	var tokenErr *types.InvalidNextTokenException
	_, err = decodeToken("not base64!", prefix)
	require.ErrorAs(t, err, &tokenErr)

	foreign := encodeKey(kindUser, testAccount, testNamespace, "u1")
	_, err = decodeToken(*encodeToken(foreign), prefix)
	require.ErrorAs(t, err, &tokenErr)
}

func TestListGroups_Pagination(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"g5", "g3", "g1", "g4", "g2"} {
		createGroup(t, store, name)
	}

	var names []string
	var token *string
	pages := 0
	for {
		out, err := store.ListGroups(ctx, &qsapi.ListGroupsInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			MaxResults:   aws.Int32(2),
			NextToken:    token,
		})
		require.NoError(t, err)
		pages++
		assert.LessOrEqual(t, len(out.GroupList), 2)
		for _, g := range out.GroupList {
			names = append(names, *g.GroupName)
		}
		if out.NextToken == nil {
			break
		}
		token = out.NextToken
	}
	assert.Equal(t, 3, pages)
	assert.Equal(t, []string{"g1", "g2", "g3", "g4", "g5"}, names)
}

func TestListGroups_ExactPageHasNoToken(t *testing.T) {
	store := newTestStore(t)
	createGroup(t, store, "g1")
	createGroup(t, store, "g2")

	out, err := store.ListGroups(context.Background(), &qsapi.ListGroupsInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String(testNamespace),
		MaxResults:   aws.Int32(2),
	})
	require.NoError(t, err)
	assert.Len(t, out.GroupList, 2)
	assert.Nil(t, out.NextToken)
}

func TestListGroups_InvalidToken(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ListGroups(context.Background(), &qsapi.ListGroupsInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String(testNamespace),
		NextToken:    aws.String("garbage!"),
	})
	var tokenErr *types.InvalidNextTokenException
	require.ErrorAs(t, err, &tokenErr)
}

// =============================================================================
// Permissions and tags
// =============================================================================

func TestApplyGrants(t *testing.T) {
	perms := []types.ResourcePermission{
		{Principal: aws.String("arn:user/b"), Actions: []string{"quicksight:DescribeDataSet"}},
	}
	grant := []types.ResourcePermission{
		{Principal: aws.String("arn:user/a"), Actions: []string{"quicksight:UpdateDataSet", "quicksight:DescribeDataSet"}},
		{Principal: aws.String("arn:user/b"), Actions: []string{"quicksight:DescribeDataSet"}},
	}
	revoke := []types.ResourcePermission{
		{Principal: aws.String("arn:user/b"), Actions: []string{"quicksight:DescribeDataSet"}},
	}

	got := applyGrants(perms, grant, revoke)
	assert.Equal(t, []types.ResourcePermission{
		{Principal: aws.String("arn:user/a"), Actions: []string{"quicksight:DescribeDataSet", "quicksight:UpdateDataSet"}},
	}, got)
	assert.True(t, hasPrincipal(got, "arn:user/a"))
	assert.False(t, hasPrincipal(got, "arn:user/b"))
}

func TestMergeTags(t *testing.T) {
	got := mergeTags(
		[]types.Tag{{Key: aws.String("team"), Value: aws.String("bi")}, {Key: aws.String("env"), Value: aws.String("dev")}},
		[]types.Tag{{Key: aws.String("env"), Value: aws.String("prod")}},
	)
	assert.Equal(t, []types.Tag{
		{Key: aws.String("env"), Value: aws.String("prod")},
		{Key: aws.String("team"), Value: aws.String("bi")},
	}, got)
}

func TestMetadata(t *testing.T) {
	md := metadata("CreateDataSet")
	assert.Equal(t, int32(201), md.Status)
	require.NotNil(t, md.RequestId)
	assert.NotEmpty(t, *md.RequestId)

	assert.Equal(t, int32(200), metadata("DescribeDataSet").Status)
}
