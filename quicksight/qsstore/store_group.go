package qsstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

// membership links a user to a group. It is stored under the group so that
// group listings are a prefix scan.
type membership struct {
	GroupName  string
	MemberName string
	Arn        string
}

func (m membership) member() types.GroupMember {
	return types.GroupMember{Arn: aws.String(m.Arn), MemberName: aws.String(m.MemberName)}
}

func groupKey(account, namespace, name *string) []byte {
	return encodeKey(kindGroup, *account, *namespace, *name)
}

func (s *Store) getGroup(txn *badger.Txn, account, namespace, name *string) (*types.Group, error) {
	var g types.Group
	if err := getDoc(txn, groupKey(account, namespace, name), &g); err != nil {
		if err == errNotFound {
			return nil, notFound(types.ExceptionResourceTypeGroup, "group %s not found in namespace %s", *name, *namespace)
		}
		return nil, err
	}
	return &g, nil
}

// CreateGroup creates a group in a namespace.
func (s *Store) CreateGroup(ctx context.Context, params *qsapi.CreateGroupInput) (*qsapi.CreateGroupOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	group := types.Group{
		Arn:         aws.String(s.arn(*params.AwsAccountId, "group/"+*params.Namespace+"/"+*params.GroupName)),
		GroupName:   params.GroupName,
		Description: params.Description,
		PrincipalId: aws.String("group/d-" + uuid.NewString()),
	}
	key := groupKey(params.AwsAccountId, params.Namespace, params.GroupName)
	err := s.db.Update(func(txn *badger.Txn) error {
		exists, err := hasKey(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return alreadyExists(types.ExceptionResourceTypeGroup, "group %s already exists", *params.GroupName)
		}
		return putDoc(txn, key, group)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.CreateGroupOutput{ResultMetadata: metadata("CreateGroup"), Group: &group}, nil
}

func (s *Store) DescribeGroup(ctx context.Context, params *qsapi.DescribeGroupInput) (*qsapi.DescribeGroupOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var group *types.Group
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		group, err = s.getGroup(txn, params.AwsAccountId, params.Namespace, params.GroupName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DescribeGroupOutput{ResultMetadata: metadata("DescribeGroup"), Group: group}, nil
}

// UpdateGroup changes the description of a group.
func (s *Store) UpdateGroup(ctx context.Context, params *qsapi.UpdateGroupInput) (*qsapi.UpdateGroupOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var group *types.Group
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		group, err = s.getGroup(txn, params.AwsAccountId, params.Namespace, params.GroupName)
		if err != nil {
			return err
		}
		group.Description = params.Description
		return putDoc(txn, groupKey(params.AwsAccountId, params.Namespace, params.GroupName), group)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.UpdateGroupOutput{ResultMetadata: metadata("UpdateGroup"), Group: group}, nil
}

// DeleteGroup deletes a group and its memberships.
func (s *Store) DeleteGroup(ctx context.Context, params *qsapi.DeleteGroupInput) (*qsapi.DeleteGroupOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := s.getGroup(txn, params.AwsAccountId, params.Namespace, params.GroupName); err != nil {
			return err
		}
		if err := deletePrefix(txn, keyPrefix(kindMember, *params.AwsAccountId, *params.Namespace, *params.GroupName)); err != nil {
			return err
		}
		return deleteKey(txn, groupKey(params.AwsAccountId, params.Namespace, params.GroupName))
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteGroupOutput{ResultMetadata: metadata("DeleteGroup")}, nil
}

func (s *Store) ListGroups(ctx context.Context, params *qsapi.ListGroupsInput) (*qsapi.ListGroupsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListGroupsOutput{ResultMetadata: metadata("ListGroups")}
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		out.GroupList, out.NextToken, err = listDocs[types.Group](txn,
			keyPrefix(kindGroup, *params.AwsAccountId, *params.Namespace), params.NextToken, params.MaxResults, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGroupMembership adds a user to a group. Adding an existing member
// succeeds without change.
func (s *Store) CreateGroupMembership(ctx context.Context, params *qsapi.CreateGroupMembershipInput) (*qsapi.CreateGroupMembershipOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var m membership
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := s.getGroup(txn, params.AwsAccountId, params.Namespace, params.GroupName); err != nil {
			return err
		}
		user, err := s.getUser(txn, params.AwsAccountId, params.Namespace, params.MemberName)
		if err != nil {
			return err
		}
		m = membership{GroupName: *params.GroupName, MemberName: *params.MemberName, Arn: aws.ToString(user.Arn)}
		return putDoc(txn, encodeKey(kindMember, *params.AwsAccountId, *params.Namespace, *params.GroupName, *params.MemberName), m)
	})
	if err != nil {
		return nil, err
	}
	member := m.member()
	return &qsapi.CreateGroupMembershipOutput{ResultMetadata: metadata("CreateGroupMembership"), GroupMember: &member}, nil
}

func (s *Store) DeleteGroupMembership(ctx context.Context, params *qsapi.DeleteGroupMembershipInput) (*qsapi.DeleteGroupMembershipOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	key := encodeKey(kindMember, *params.AwsAccountId, *params.Namespace, *params.GroupName, *params.MemberName)
	err := s.db.Update(func(txn *badger.Txn) error {
		exists, err := hasKey(txn, key)
		if err != nil {
			return err
		}
		if !exists {
			return notFound(types.ExceptionResourceTypeUser, "user %s is not a member of group %s", *params.MemberName, *params.GroupName)
		}
		return deleteKey(txn, key)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteGroupMembershipOutput{ResultMetadata: metadata("DeleteGroupMembership")}, nil
}

func (s *Store) ListGroupMemberships(ctx context.Context, params *qsapi.ListGroupMembershipsInput) (*qsapi.ListGroupMembershipsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListGroupMembershipsOutput{ResultMetadata: metadata("ListGroupMemberships")}
	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := s.getGroup(txn, params.AwsAccountId, params.Namespace, params.GroupName); err != nil {
			return err
		}
		members, next, err := listDocs[membership](txn,
			keyPrefix(kindMember, *params.AwsAccountId, *params.Namespace, *params.GroupName), params.NextToken, params.MaxResults, nil)
		if err != nil {
			return err
		}
		for _, m := range members {
			out.GroupMemberList = append(out.GroupMemberList, m.member())
		}
		out.NextToken = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// groupsOf returns the names of the groups user belongs to.
func groupsOf(txn *badger.Txn, account, namespace, user string) ([]string, error) {
	members, err := allDocs(txn, keyPrefix(kindMember, account, namespace),
		func(m *membership) bool { return m.MemberName == user })
	if err != nil {
		return nil, err
	}
	groups := make([]string, 0, len(members))
	for _, m := range members {
		groups = append(groups, m.GroupName)
	}
	return groups, nil
}
