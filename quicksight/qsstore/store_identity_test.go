package qsstore

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

// =============================================================================
// Groups
// =============================================================================

func TestStore_Groups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := createGroup(t, store, "analysts")
	assert.Equal(t, "arn:aws:quicksight:eu-west-1:111122223333:group/default/analysts", *group.Arn)
	assert.NotEmpty(t, *group.PrincipalId)

	t.Run("duplicate", func(t *testing.T) {
		_, err := store.CreateGroup(ctx, &qsapi.CreateGroupInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			GroupName:    aws.String("analysts"),
		})
		var exists *types.ResourceExistsException
		require.ErrorAs(t, err, &exists)
		assert.Equal(t, types.ExceptionResourceTypeGroup, exists.ResourceType)
	})

	t.Run("update description", func(t *testing.T) {
		_, err := store.UpdateGroup(ctx, &qsapi.UpdateGroupInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			GroupName:    aws.String("analysts"),
			Description:  aws.String("BI analysts"),
		})
		require.NoError(t, err)

		out, err := store.DescribeGroup(ctx, &qsapi.DescribeGroupInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			GroupName:    aws.String("analysts"),
		})
		require.NoError(t, err)
		assert.Equal(t, "BI analysts", *out.Group.Description)
		assert.Equal(t, group.PrincipalId, out.Group.PrincipalId)
	})

	t.Run("namespaces are separate", func(t *testing.T) {
		_, err := store.DescribeGroup(ctx, &qsapi.DescribeGroupInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String("other"),
			GroupName:    aws.String("analysts"),
		})
		var nf *types.ResourceNotFoundException
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, types.ExceptionResourceTypeGroup, nf.ResourceType)
	})

	t.Run("delete", func(t *testing.T) {
		_, err := store.DeleteGroup(ctx, &qsapi.DeleteGroupInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			GroupName:    aws.String("analysts"),
		})
		require.NoError(t, err)

		_, err = store.DeleteGroup(ctx, &qsapi.DeleteGroupInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			GroupName:    aws.String("analysts"),
		})
		var nf *types.ResourceNotFoundException
		require.ErrorAs(t, err, &nf)
	})
}

func TestStore_GroupMemberships(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	createGroup(t, store, "analysts")
	createGroup(t, store, "admins")
	ann := registerUser(t, store, "ann")
	registerUser(t, store, "bob")

	addMember := func(group, user string) (*qsapi.CreateGroupMembershipOutput, error) {
		return store.CreateGroupMembership(ctx, &qsapi.CreateGroupMembershipInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			GroupName:    aws.String(group),
			MemberName:   aws.String(user),
		})
	}

	out, err := addMember("analysts", "ann")
	require.NoError(t, err)
	assert.Equal(t, ann.Arn, out.GroupMember.Arn)

	_, err = addMember("analysts", "ann")
	require.NoError(t, err, "adding an existing member succeeds")
	_, err = addMember("analysts", "bob")
	require.NoError(t, err)
	_, err = addMember("admins", "ann")
	require.NoError(t, err)

	_, err = addMember("analysts", "nobody")
	var nf *types.ResourceNotFoundException
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, types.ExceptionResourceTypeUser, nf.ResourceType)

	members, err := store.ListGroupMemberships(ctx, &qsapi.ListGroupMembershipsInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String(testNamespace),
		GroupName:    aws.String("analysts"),
	})
	require.NoError(t, err)
	require.Len(t, members.GroupMemberList, 2)
	assert.Equal(t, "ann", *members.GroupMemberList[0].MemberName)
	assert.Equal(t, "bob", *members.GroupMemberList[1].MemberName)

	groups, err := store.ListUserGroups(ctx, &qsapi.ListUserGroupsInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String(testNamespace),
		UserName:     aws.String("ann"),
	})
	require.NoError(t, err)
	require.Len(t, groups.GroupList, 2)
	assert.Equal(t, "admins", *groups.GroupList[0].GroupName)
	assert.Equal(t, "analysts", *groups.GroupList[1].GroupName)

	t.Run("filtered pages end on the last match", func(t *testing.T) {
		page := func(token *string) *qsapi.ListUserGroupsOutput {
			out, err := store.ListUserGroups(ctx, &qsapi.ListUserGroupsInput{
				AwsAccountId: aws.String(testAccount),
				Namespace:    aws.String(testNamespace),
				UserName:     aws.String("ann"),
				MaxResults:   aws.Int32(1),
				NextToken:    token,
			})
			require.NoError(t, err)
			return out
		}

		first := page(nil)
		require.Len(t, first.GroupList, 1)
		assert.Equal(t, "admins", *first.GroupList[0].GroupName)
		require.NotNil(t, first.NextToken)

		// analysts/bob follows ann's last membership but does not match.
		second := page(first.NextToken)
		require.Len(t, second.GroupList, 1)
		assert.Equal(t, "analysts", *second.GroupList[0].GroupName)
		assert.Nil(t, second.NextToken)
	})

	t.Run("remove member", func(t *testing.T) {
		_, err := store.DeleteGroupMembership(ctx, &qsapi.DeleteGroupMembershipInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			GroupName:    aws.String("analysts"),
			MemberName:   aws.String("bob"),
		})
		require.NoError(t, err)

		_, err = store.DeleteGroupMembership(ctx, &qsapi.DeleteGroupMembershipInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			GroupName:    aws.String("analysts"),
			MemberName:   aws.String("bob"),
		})
		var nf *types.ResourceNotFoundException
		require.ErrorAs(t, err, &nf)
	})

	t.Run("deleting a user removes its memberships", func(t *testing.T) {
		_, err := store.DeleteUser(ctx, &qsapi.DeleteUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			UserName:     aws.String("ann"),
		})
		require.NoError(t, err)

		members, err := store.ListGroupMemberships(ctx, &qsapi.ListGroupMembershipsInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			GroupName:    aws.String("admins"),
		})
		require.NoError(t, err)
		assert.Empty(t, members.GroupMemberList)
	})
}

// =============================================================================
// Users
// =============================================================================

func TestRegisteredUserName(t *testing.T) {
	tests := []struct {
		name    string
		input   qsapi.RegisterUserInput
		want    string
		wantErr any
	}{
		{
			name:  "quicksight user",
			input: qsapi.RegisterUserInput{IdentityType: types.IdentityTypeQuicksight, UserName: aws.String("ann")},
			want:  "ann",
		},
		{
			name:    "quicksight user without name",
			input:   qsapi.RegisterUserInput{IdentityType: types.IdentityTypeQuicksight},
			wantErr: &types.InvalidParameterValueException{},
		},
		{
			name:  "iam user",
			input: qsapi.RegisterUserInput{IdentityType: types.IdentityTypeIam, IamArn: aws.String("arn:aws:iam::111122223333:user/division/ann")},
			want:  "ann",
		},
		{
			name: "iam role session",
			input: qsapi.RegisterUserInput{
				IdentityType: types.IdentityTypeIam,
				IamArn:       aws.String("arn:aws:iam::111122223333:role/Analyst"),
				SessionName:  aws.String("ann"),
			},
			want: "Analyst/ann",
		},
		{
			name:    "iam role without session",
			input:   qsapi.RegisterUserInput{IdentityType: types.IdentityTypeIam, IamArn: aws.String("arn:aws:iam::111122223333:role/Analyst")},
			wantErr: &types.InvalidParameterValueException{},
		},
		{
			name:    "iam group",
			input:   qsapi.RegisterUserInput{IdentityType: types.IdentityTypeIam, IamArn: aws.String("arn:aws:iam::111122223333:group/Analysts")},
			wantErr: &types.IdentityTypeNotSupportedException{},
		},
		{
			name:    "not an iam arn",
			input:   qsapi.RegisterUserInput{IdentityType: types.IdentityTypeIam, IamArn: aws.String("arn:aws:s3:::bucket")},
			wantErr: &types.InvalidParameterValueException{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registeredUserName(&tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("quicksight user gets an invitation", func(t *testing.T) {
		out, err := store.RegisterUser(ctx, &qsapi.RegisterUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			IdentityType: types.IdentityTypeQuicksight,
			Email:        aws.String("ann@example.com"),
			UserRole:     types.UserRoleAuthor,
			UserName:     aws.String("ann"),
		})
		require.NoError(t, err)
		assert.False(t, out.User.Active)
		require.NotNil(t, out.UserInvitationUrl)
		assert.Contains(t, *out.UserInvitationUrl, "https://eu-west-1.quicksight.aws.amazon.com/")
	})

	t.Run("iam user is active", func(t *testing.T) {
		out, err := store.RegisterUser(ctx, &qsapi.RegisterUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			IdentityType: types.IdentityTypeIam,
			Email:        aws.String("bob@example.com"),
			UserRole:     types.UserRoleReader,
			IamArn:       aws.String("arn:aws:iam::111122223333:user/bob"),
		})
		require.NoError(t, err)
		assert.True(t, out.User.Active)
		assert.Nil(t, out.UserInvitationUrl)
		assert.Equal(t, "arn:aws:quicksight:eu-west-1:111122223333:user/default/bob", *out.User.Arn)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := store.RegisterUser(ctx, &qsapi.RegisterUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			IdentityType: types.IdentityTypeQuicksight,
			Email:        aws.String("ann@example.com"),
			UserRole:     types.UserRoleAuthor,
			UserName:     aws.String("ann"),
		})
		var exists *types.ResourceExistsException
		require.ErrorAs(t, err, &exists)
	})

	t.Run("update", func(t *testing.T) {
		out, err := store.UpdateUser(ctx, &qsapi.UpdateUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			UserName:     aws.String("ann"),
			Email:        aws.String("ann@corp.example.com"),
			Role:         types.UserRoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, types.UserRoleAdmin, out.User.Role)

		got, err := store.DescribeUser(ctx, &qsapi.DescribeUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			UserName:     aws.String("ann"),
		})
		require.NoError(t, err)
		assert.Equal(t, "ann@corp.example.com", *got.User.Email)
	})

	t.Run("list", func(t *testing.T) {
		out, err := store.ListUsers(ctx, &qsapi.ListUsersInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
		})
		require.NoError(t, err)
		require.Len(t, out.UserList, 2)
		assert.Equal(t, "ann", *out.UserList[0].UserName)
		assert.Equal(t, "bob", *out.UserList[1].UserName)
	})

	t.Run("delete by principal id", func(t *testing.T) {
		bob, err := store.DescribeUser(ctx, &qsapi.DescribeUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			UserName:     aws.String("bob"),
		})
		require.NoError(t, err)

		_, err = store.DeleteUserByPrincipalId(ctx, &qsapi.DeleteUserByPrincipalIdInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			PrincipalId:  bob.User.PrincipalId,
		})
		require.NoError(t, err)

		_, err = store.DescribeUser(ctx, &qsapi.DescribeUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			UserName:     aws.String("bob"),
		})
		var nf *types.ResourceNotFoundException
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, types.ExceptionResourceTypeUser, nf.ResourceType)

		_, err = store.DeleteUserByPrincipalId(ctx, &qsapi.DeleteUserByPrincipalIdInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			PrincipalId:  bob.User.PrincipalId,
		})
		require.ErrorAs(t, err, &nf)
	})
}

// =============================================================================
// IAM policy assignments
// =============================================================================

func TestStore_IAMPolicyAssignments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	createGroup(t, store, "analysts")
	registerUser(t, store, "ann")
	registerUser(t, store, "bob")
	_, err := store.CreateGroupMembership(ctx, &qsapi.CreateGroupMembershipInput{
		AwsAccountId: aws.String(testAccount),
		Namespace:    aws.String(testNamespace),
		GroupName:    aws.String("analysts"),
		MemberName:   aws.String("ann"),
	})
	require.NoError(t, err)

	create := func(name string, status types.AssignmentStatus, identities map[string][]string) {
		t.Helper()
		out, err := store.CreateIAMPolicyAssignment(ctx, &qsapi.CreateIAMPolicyAssignmentInput{
			AwsAccountId:     aws.String(testAccount),
			Namespace:        aws.String(testNamespace),
			AssignmentName:   aws.String(name),
			AssignmentStatus: status,
			PolicyArn:        aws.String("arn:aws:iam::aws:policy/" + name),
			Identities:       identities,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, *out.AssignmentId)
	}
	create("by-group", types.AssignmentStatusEnabled, map[string][]string{"group": {"analysts"}})
	create("by-user", types.AssignmentStatusEnabled, map[string][]string{"user": {"bob"}})
	create("disabled", types.AssignmentStatusDisabled, map[string][]string{"user": {"ann"}})

	t.Run("duplicate", func(t *testing.T) {
		_, err := store.CreateIAMPolicyAssignment(ctx, &qsapi.CreateIAMPolicyAssignmentInput{
			AwsAccountId:     aws.String(testAccount),
			Namespace:        aws.String(testNamespace),
			AssignmentName:   aws.String("by-user"),
			AssignmentStatus: types.AssignmentStatusDraft,
		})
		var exists *types.ResourceExistsException
		require.ErrorAs(t, err, &exists)
		assert.Equal(t, types.ExceptionResourceTypeIampolicyAssignment, exists.ResourceType)
	})

	t.Run("list filters by status", func(t *testing.T) {
		out, err := store.ListIAMPolicyAssignments(ctx, &qsapi.ListIAMPolicyAssignmentsInput{
			AwsAccountId:     aws.String(testAccount),
			Namespace:        aws.String(testNamespace),
			AssignmentStatus: types.AssignmentStatusEnabled,
		})
		require.NoError(t, err)
		require.Len(t, out.IAMPolicyAssignments, 2)
		assert.Equal(t, "by-group", *out.IAMPolicyAssignments[0].AssignmentName)
		assert.Equal(t, "by-user", *out.IAMPolicyAssignments[1].AssignmentName)
	})

	t.Run("for user through groups", func(t *testing.T) {
		out, err := store.ListIAMPolicyAssignmentsForUser(ctx, &qsapi.ListIAMPolicyAssignmentsForUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			UserName:     aws.String("ann"),
		})
		require.NoError(t, err)
		require.Len(t, out.ActiveAssignments, 1)
		assert.Equal(t, "by-group", *out.ActiveAssignments[0].AssignmentName)
		assert.Equal(t, "arn:aws:iam::aws:policy/by-group", *out.ActiveAssignments[0].PolicyArn)
	})

	t.Run("update keeps unset members", func(t *testing.T) {
		out, err := store.UpdateIAMPolicyAssignment(ctx, &qsapi.UpdateIAMPolicyAssignmentInput{
			AwsAccountId:     aws.String(testAccount),
			Namespace:        aws.String(testNamespace),
			AssignmentName:   aws.String("disabled"),
			AssignmentStatus: types.AssignmentStatusEnabled,
		})
		require.NoError(t, err)
		assert.Equal(t, types.AssignmentStatusEnabled, out.AssignmentStatus)
		assert.Equal(t, map[string][]string{"user": {"ann"}}, out.Identities)

		forAnn, err := store.ListIAMPolicyAssignmentsForUser(ctx, &qsapi.ListIAMPolicyAssignmentsForUserInput{
			AwsAccountId: aws.String(testAccount),
			Namespace:    aws.String(testNamespace),
			UserName:     aws.String("ann"),
		})
		require.NoError(t, err)
		assert.Len(t, forAnn.ActiveAssignments, 2)
	})

	t.Run("delete", func(t *testing.T) {
		out, err := store.DeleteIAMPolicyAssignment(ctx, &qsapi.DeleteIAMPolicyAssignmentInput{
			AwsAccountId:   aws.String(testAccount),
			Namespace:      aws.String(testNamespace),
			AssignmentName: aws.String("by-user"),
		})
		require.NoError(t, err)
		assert.Equal(t, "by-user", *out.AssignmentName)

		_, err = store.DescribeIAMPolicyAssignment(ctx, &qsapi.DescribeIAMPolicyAssignmentInput{
			AwsAccountId:   aws.String(testAccount),
			Namespace:      aws.String(testNamespace),
			AssignmentName: aws.String("by-user"),
		})
		var nf *types.ResourceNotFoundException
		require.ErrorAs(t, err, &nf)
	})
}
