package qsstore

import (
	"context"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

// Identity kinds of IAMPolicyAssignment.Identities.
const (
	identityUser  = "user"
	identityGroup = "group"
)

func assignmentKey(account, namespace, name *string) []byte {
	return encodeKey(kindAssignment, *account, *namespace, *name)
}

func (s *Store) getAssignment(txn *badger.Txn, account, namespace, name *string) (*types.IAMPolicyAssignment, error) {
	var a types.IAMPolicyAssignment
	if err := getDoc(txn, assignmentKey(account, namespace, name), &a); err != nil {
		if err == errNotFound {
			return nil, notFound(types.ExceptionResourceTypeIampolicyAssignment, "assignment %s not found", *name)
		}
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreateIAMPolicyAssignment(ctx context.Context, params *qsapi.CreateIAMPolicyAssignmentInput) (*qsapi.CreateIAMPolicyAssignmentOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	a := types.IAMPolicyAssignment{
		AwsAccountId:     params.AwsAccountId,
		AssignmentId:     aws.String(uuid.NewString()),
		AssignmentName:   params.AssignmentName,
		PolicyArn:        params.PolicyArn,
		Identities:       params.Identities,
		AssignmentStatus: params.AssignmentStatus,
	}
	key := assignmentKey(params.AwsAccountId, params.Namespace, params.AssignmentName)
	err := s.db.Update(func(txn *badger.Txn) error {
		exists, err := hasKey(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return alreadyExists(types.ExceptionResourceTypeIampolicyAssignment, "assignment %s already exists", *params.AssignmentName)
		}
		return putDoc(txn, key, a)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.CreateIAMPolicyAssignmentOutput{
		ResultMetadata:   metadata("CreateIAMPolicyAssignment"),
		AssignmentName:   a.AssignmentName,
		AssignmentId:     a.AssignmentId,
		AssignmentStatus: a.AssignmentStatus,
		PolicyArn:        a.PolicyArn,
		Identities:       a.Identities,
	}, nil
}

func (s *Store) DescribeIAMPolicyAssignment(ctx context.Context, params *qsapi.DescribeIAMPolicyAssignmentInput) (*qsapi.DescribeIAMPolicyAssignmentOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var a *types.IAMPolicyAssignment
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		a, err = s.getAssignment(txn, params.AwsAccountId, params.Namespace, params.AssignmentName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DescribeIAMPolicyAssignmentOutput{ResultMetadata: metadata("DescribeIAMPolicyAssignment"), IAMPolicyAssignment: a}, nil
}

// UpdateIAMPolicyAssignment replaces the members that are set on the input.
func (s *Store) UpdateIAMPolicyAssignment(ctx context.Context, params *qsapi.UpdateIAMPolicyAssignmentInput) (*qsapi.UpdateIAMPolicyAssignmentOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var a *types.IAMPolicyAssignment
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		a, err = s.getAssignment(txn, params.AwsAccountId, params.Namespace, params.AssignmentName)
		if err != nil {
			return err
		}
		if params.AssignmentStatus != "" {
			a.AssignmentStatus = params.AssignmentStatus
		}
		if params.PolicyArn != nil {
			a.PolicyArn = params.PolicyArn
		}
		if params.Identities != nil {
			a.Identities = params.Identities
		}
		return putDoc(txn, assignmentKey(params.AwsAccountId, params.Namespace, params.AssignmentName), a)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.UpdateIAMPolicyAssignmentOutput{
		ResultMetadata:   metadata("UpdateIAMPolicyAssignment"),
		AssignmentName:   a.AssignmentName,
		AssignmentId:     a.AssignmentId,
		PolicyArn:        a.PolicyArn,
		Identities:       a.Identities,
		AssignmentStatus: a.AssignmentStatus,
	}, nil
}

func (s *Store) DeleteIAMPolicyAssignment(ctx context.Context, params *qsapi.DeleteIAMPolicyAssignmentInput) (*qsapi.DeleteIAMPolicyAssignmentOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := s.getAssignment(txn, params.AwsAccountId, params.Namespace, params.AssignmentName); err != nil {
			return err
		}
		return deleteKey(txn, assignmentKey(params.AwsAccountId, params.Namespace, params.AssignmentName))
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteIAMPolicyAssignmentOutput{ResultMetadata: metadata("DeleteIAMPolicyAssignment"), AssignmentName: params.AssignmentName}, nil
}

func (s *Store) ListIAMPolicyAssignments(ctx context.Context, params *qsapi.ListIAMPolicyAssignmentsInput) (*qsapi.ListIAMPolicyAssignmentsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListIAMPolicyAssignmentsOutput{ResultMetadata: metadata("ListIAMPolicyAssignments")}
	err := s.db.View(func(txn *badger.Txn) error {
		assignments, next, err := listDocs[types.IAMPolicyAssignment](txn,
			keyPrefix(kindAssignment, *params.AwsAccountId, *params.Namespace), params.NextToken, params.MaxResults,
			func(a *types.IAMPolicyAssignment) bool {
				return params.AssignmentStatus == "" || a.AssignmentStatus == params.AssignmentStatus
			})
		if err != nil {
			return err
		}
		for _, a := range assignments {
			out.IAMPolicyAssignments = append(out.IAMPolicyAssignments, types.IAMPolicyAssignmentSummary{
				AssignmentName:   a.AssignmentName,
				AssignmentStatus: a.AssignmentStatus,
			})
		}
		out.NextToken = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListIAMPolicyAssignmentsForUser lists the enabled assignments that apply to a
// user, directly or through one of its groups.
func (s *Store) ListIAMPolicyAssignmentsForUser(ctx context.Context, params *qsapi.ListIAMPolicyAssignmentsForUserInput) (*qsapi.ListIAMPolicyAssignmentsForUserOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListIAMPolicyAssignmentsForUserOutput{ResultMetadata: metadata("ListIAMPolicyAssignmentsForUser")}
	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := s.getUser(txn, params.AwsAccountId, params.Namespace, params.UserName); err != nil {
			return err
		}
		groups, err := groupsOf(txn, *params.AwsAccountId, *params.Namespace, *params.UserName)
		if err != nil {
			return err
		}
		applies := func(a *types.IAMPolicyAssignment) bool {
			if a.AssignmentStatus != types.AssignmentStatusEnabled {
				return false
			}
			if slices.Contains(a.Identities[identityUser], *params.UserName) {
				return true
			}
			for _, g := range a.Identities[identityGroup] {
				if slices.Contains(groups, g) {
					return true
				}
			}
			return false
		}
		assignments, next, err := listDocs[types.IAMPolicyAssignment](txn,
			keyPrefix(kindAssignment, *params.AwsAccountId, *params.Namespace), params.NextToken, params.MaxResults, applies)
		if err != nil {
			return err
		}
		for _, a := range assignments {
			out.ActiveAssignments = append(out.ActiveAssignments, types.ActiveIAMPolicyAssignment{
				AssignmentName: a.AssignmentName,
				PolicyArn:      a.PolicyArn,
			})
		}
		out.NextToken = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
