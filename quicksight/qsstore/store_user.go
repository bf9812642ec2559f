package qsstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

func userKey(account, namespace, name *string) []byte {
	return encodeKey(kindUser, *account, *namespace, *name)
}

func (s *Store) getUser(txn *badger.Txn, account, namespace, name *string) (*types.User, error) {
	var u types.User
	if err := getDoc(txn, userKey(account, namespace, name), &u); err != nil {
		if err == errNotFound {
			return nil, notFound(types.ExceptionResourceTypeUser, "user %s not found in namespace %s", *name, *namespace)
		}
		return nil, err
	}
	return &u, nil
}

// registeredUserName derives the QuickSight user name of a registration. IAM
// users keep their IAM name; IAM roles are registered per session as
// "role/session".
func registeredUserName(params *qsapi.RegisterUserInput) (string, error) {
	if params.IdentityType != types.IdentityTypeIam {
		if params.UserName == nil {
			return "", invalidParameter("UserName is required for %s identities", params.IdentityType)
		}
		return *params.UserName, nil
	}
	if params.IamArn == nil {
		return "", invalidParameter("IamArn is required for IAM identities")
	}
	_, resource, ok := strings.Cut(*params.IamArn, ":iam::")
	if !ok {
		return "", invalidParameter("%s is not an IAM ARN", *params.IamArn)
	}
	_, resource, _ = strings.Cut(resource, ":")
	kind, path, _ := strings.Cut(resource, "/")
	name := path[strings.LastIndexByte(path, '/')+1:]
	switch {
	case name == "":
		return "", invalidParameter("%s does not name an IAM user or role", *params.IamArn)
	case kind == "user":
		return name, nil
	case kind == "role" && params.SessionName != nil:
		return name + "/" + *params.SessionName, nil
	case kind == "role":
		return "", invalidParameter("SessionName is required to register role %s", name)
	}
	return "", &types.IdentityTypeNotSupportedException{Message: aws.String(fmt.Sprintf("cannot register IAM %s identities", kind))}
}

// RegisterUser creates a user for an IAM identity or a QuickSight-only user.
// QuickSight-only users are inactive until they accept the returned invitation.
func (s *Store) RegisterUser(ctx context.Context, params *qsapi.RegisterUserInput) (*qsapi.RegisterUserOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	name, err := registeredUserName(params)
	if err != nil {
		return nil, err
	}

	user := types.User{
		Arn:          aws.String(s.arn(*params.AwsAccountId, "user/"+*params.Namespace+"/"+name)),
		UserName:     aws.String(name),
		Email:        params.Email,
		Role:         params.UserRole,
		IdentityType: params.IdentityType,
		Active:       params.IdentityType == types.IdentityTypeIam,
		PrincipalId:  aws.String(uuid.NewString()),
	}
	key := userKey(params.AwsAccountId, params.Namespace, &name)
	err = s.db.Update(func(txn *badger.Txn) error {
		exists, err := hasKey(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return alreadyExists(types.ExceptionResourceTypeUser, "user %s already exists", name)
		}
		return putDoc(txn, key, user)
	})
	if err != nil {
		return nil, err
	}

	out := &qsapi.RegisterUserOutput{ResultMetadata: metadata("RegisterUser"), User: &user}
	if params.IdentityType == types.IdentityTypeQuicksight {
		out.UserInvitationUrl = aws.String(fmt.Sprintf("https://%s.quicksight.aws.amazon.com/sn/console/invitation/%s", s.region, uuid.NewString()))
	}
	return out, nil
}

func (s *Store) DescribeUser(ctx context.Context, params *qsapi.DescribeUserInput) (*qsapi.DescribeUserOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var user *types.User
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = s.getUser(txn, params.AwsAccountId, params.Namespace, params.UserName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DescribeUserOutput{ResultMetadata: metadata("DescribeUser"), User: user}, nil
}

func (s *Store) UpdateUser(ctx context.Context, params *qsapi.UpdateUserInput) (*qsapi.UpdateUserOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var user *types.User
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		user, err = s.getUser(txn, params.AwsAccountId, params.Namespace, params.UserName)
		if err != nil {
			return err
		}
		user.Email = params.Email
		user.Role = params.Role
		return putDoc(txn, userKey(params.AwsAccountId, params.Namespace, params.UserName), user)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.UpdateUserOutput{ResultMetadata: metadata("UpdateUser"), User: user}, nil
}

// deleteUser removes a user and its group memberships.
func deleteUser(txn *badger.Txn, account, namespace, name string) error {
	groups, err := groupsOf(txn, account, namespace, name)
	if err != nil {
		return err
	}
	for _, g := range groups {
		if err := deleteKey(txn, encodeKey(kindMember, account, namespace, g, name)); err != nil {
			return err
		}
	}
	return deleteKey(txn, encodeKey(kindUser, account, namespace, name))
}

func (s *Store) DeleteUser(ctx context.Context, params *qsapi.DeleteUserInput) (*qsapi.DeleteUserOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := s.getUser(txn, params.AwsAccountId, params.Namespace, params.UserName); err != nil {
			return err
		}
		return deleteUser(txn, *params.AwsAccountId, *params.Namespace, *params.UserName)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteUserOutput{ResultMetadata: metadata("DeleteUser")}, nil
}

func (s *Store) DeleteUserByPrincipalId(ctx context.Context, params *qsapi.DeleteUserByPrincipalIdInput) (*qsapi.DeleteUserByPrincipalIdOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		users, _, err := listDocs[types.User](txn, keyPrefix(kindUser, *params.AwsAccountId, *params.Namespace), nil, aws.Int32(1),
			func(u *types.User) bool { return aws.ToString(u.PrincipalId) == *params.PrincipalId })
		if err != nil {
			return err
		}
		if len(users) == 0 {
			return notFound(types.ExceptionResourceTypeUser, "no user with principal id %s", *params.PrincipalId)
		}
		return deleteUser(txn, *params.AwsAccountId, *params.Namespace, aws.ToString(users[0].UserName))
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteUserByPrincipalIdOutput{ResultMetadata: metadata("DeleteUserByPrincipalId")}, nil
}

func (s *Store) ListUsers(ctx context.Context, params *qsapi.ListUsersInput) (*qsapi.ListUsersOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListUsersOutput{ResultMetadata: metadata("ListUsers")}
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		out.UserList, out.NextToken, err = listDocs[types.User](txn,
			keyPrefix(kindUser, *params.AwsAccountId, *params.Namespace), params.NextToken, params.MaxResults, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListUserGroups lists the groups a user belongs to, paging over the user's
// memberships.
func (s *Store) ListUserGroups(ctx context.Context, params *qsapi.ListUserGroupsInput) (*qsapi.ListUserGroupsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListUserGroupsOutput{ResultMetadata: metadata("ListUserGroups")}
	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := s.getUser(txn, params.AwsAccountId, params.Namespace, params.UserName); err != nil {
			return err
		}
		members, next, err := listDocs[membership](txn, keyPrefix(kindMember, *params.AwsAccountId, *params.Namespace),
			params.NextToken, params.MaxResults, func(m *membership) bool { return m.MemberName == *params.UserName })
		if err != nil {
			return err
		}
		for _, m := range members {
			group, err := s.getGroup(txn, params.AwsAccountId, params.Namespace, &m.GroupName)
			if err != nil {
				return err
			}
			out.GroupList = append(out.GroupList, *group)
		}
		out.NextToken = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
