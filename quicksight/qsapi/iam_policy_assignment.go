package qsapi

import (
	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

func checkAssignmentName(c *constraint.Checker, v *string) {
	c.String("AssignmentName", v, 2, 256, constraint.AssignmentName)
}

type CreateIAMPolicyAssignmentInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`

	// Unique within the account. This member is required.
	AssignmentName *string `json:"AssignmentName,omitempty"`

	// This member is required.
	AssignmentStatus types.AssignmentStatus `json:"AssignmentStatus,omitempty"`

	PolicyArn *string `json:"PolicyArn,omitempty"`

	// Users and groups the policy applies to, keyed by "user" and "group".
	Identities map[string][]string `json:"Identities,omitempty"`
}

func (v *CreateIAMPolicyAssignmentInput) Validate() error {
	c := constraint.New("CreateIAMPolicyAssignmentInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkAssignmentName(c, v.AssignmentName)
	c.Required("AssignmentStatus", v.AssignmentStatus != "")
	return c.Err()
}

type CreateIAMPolicyAssignmentOutput struct {
	ResultMetadata

	AssignmentName   *string                `json:"AssignmentName,omitempty"`
	AssignmentId     *string                `json:"AssignmentId,omitempty"`
	AssignmentStatus types.AssignmentStatus `json:"AssignmentStatus,omitempty"`
	PolicyArn        *string                `json:"PolicyArn,omitempty"`
	Identities       map[string][]string    `json:"Identities,omitempty"`
}

type DeleteIAMPolicyAssignmentInput struct {
	AwsAccountId   *string `json:"-" location:"uri"`
	Namespace      *string `json:"-" location:"uri"`
	AssignmentName *string `json:"-" location:"uri"`
}

func (v *DeleteIAMPolicyAssignmentInput) Validate() error {
	c := constraint.New("DeleteIAMPolicyAssignmentInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkAssignmentName(c, v.AssignmentName)
	return c.Err()
}

type DeleteIAMPolicyAssignmentOutput struct {
	ResultMetadata

	AssignmentName *string `json:"AssignmentName,omitempty"`
}

type DescribeIAMPolicyAssignmentInput struct {
	AwsAccountId   *string `json:"-" location:"uri"`
	Namespace      *string `json:"-" location:"uri"`
	AssignmentName *string `json:"-" location:"uri"`
}

func (v *DescribeIAMPolicyAssignmentInput) Validate() error {
	c := constraint.New("DescribeIAMPolicyAssignmentInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkAssignmentName(c, v.AssignmentName)
	return c.Err()
}

type DescribeIAMPolicyAssignmentOutput struct {
	ResultMetadata

	IAMPolicyAssignment *types.IAMPolicyAssignment `json:"IAMPolicyAssignment,omitempty"`
}

type ListIAMPolicyAssignmentsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`

	// Only assignments in this status are listed when set.
	AssignmentStatus types.AssignmentStatus `json:"-" location:"querystring" name:"assignment-status"`

	NextToken  *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListIAMPolicyAssignmentsInput) Validate() error {
	c := constraint.New("ListIAMPolicyAssignmentsInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListIAMPolicyAssignmentsOutput struct {
	ResultMetadata

	IAMPolicyAssignments []types.IAMPolicyAssignmentSummary `json:"IAMPolicyAssignments,omitempty"`
	NextToken            *string                            `json:"NextToken,omitempty"`
}

type ListIAMPolicyAssignmentsForUserInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	UserName     *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListIAMPolicyAssignmentsForUserInput) Validate() error {
	c := constraint.New("ListIAMPolicyAssignmentsForUserInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkUserName(c, v.UserName)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListIAMPolicyAssignmentsForUserOutput struct {
	ResultMetadata

	ActiveAssignments []types.ActiveIAMPolicyAssignment `json:"ActiveAssignments,omitempty"`
	NextToken         *string                           `json:"NextToken,omitempty"`
}

// UpdateIAMPolicyAssignmentInput changes the members that are set; nil members
// keep their current value.
type UpdateIAMPolicyAssignmentInput struct {
	AwsAccountId     *string                `json:"-" location:"uri"`
	Namespace        *string                `json:"-" location:"uri"`
	AssignmentName   *string                `json:"-" location:"uri"`
	AssignmentStatus types.AssignmentStatus `json:"AssignmentStatus,omitempty"`
	PolicyArn        *string                `json:"PolicyArn,omitempty"`
	Identities       map[string][]string    `json:"Identities,omitempty"`
}

func (v *UpdateIAMPolicyAssignmentInput) Validate() error {
	c := constraint.New("UpdateIAMPolicyAssignmentInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkAssignmentName(c, v.AssignmentName)
	return c.Err()
}

type UpdateIAMPolicyAssignmentOutput struct {
	ResultMetadata

	AssignmentName   *string                `json:"AssignmentName,omitempty"`
	AssignmentId     *string                `json:"AssignmentId,omitempty"`
	PolicyArn        *string                `json:"PolicyArn,omitempty"`
	Identities       map[string][]string    `json:"Identities,omitempty"`
	AssignmentStatus types.AssignmentStatus `json:"AssignmentStatus,omitempty"`
}
