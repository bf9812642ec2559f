package qsapi

import (
	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

func checkScope(c *constraint.Checker, account, namespace *string) {
	c.AwsAccountID("AwsAccountId", account)
	c.Namespace("Namespace", namespace)
}

func checkGroupName(c *constraint.Checker, v *string) {
	c.String("GroupName", v, 1, constraint.Unbounded, constraint.PrincipalName)
}

type CreateGroupInput struct {
	AwsAccountId *string `json:"-" location:"uri"`

	// Currently only "default" is supported. This member is required.
	Namespace *string `json:"-" location:"uri"`

	// A name for the group that you want to create. This member is required.
	GroupName *string `json:"GroupName,omitempty"`

	Description *string `json:"Description,omitempty"`
}

func (v *CreateGroupInput) Validate() error {
	c := constraint.New("CreateGroupInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkGroupName(c, v.GroupName)
	c.OptionalString("Description", v.Description, 1, 512, nil)
	return c.Err()
}

type CreateGroupOutput struct {
	ResultMetadata

	Group *types.Group `json:"Group,omitempty"`
}

type CreateGroupMembershipInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	GroupName    *string `json:"-" location:"uri"`

	// The name of the user to add to the group. This member is required.
	MemberName *string `json:"-" location:"uri"`
}

func (v *CreateGroupMembershipInput) Validate() error {
	c := constraint.New("CreateGroupMembershipInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkGroupName(c, v.GroupName)
	c.String("MemberName", v.MemberName, 1, 256, constraint.PrincipalName)
	return c.Err()
}

type CreateGroupMembershipOutput struct {
	ResultMetadata

	GroupMember *types.GroupMember `json:"GroupMember,omitempty"`
}

type DeleteGroupInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	GroupName    *string `json:"-" location:"uri"`
}

func (v *DeleteGroupInput) Validate() error {
	c := constraint.New("DeleteGroupInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkGroupName(c, v.GroupName)
	return c.Err()
}

type DeleteGroupOutput struct {
	ResultMetadata
}

type DeleteGroupMembershipInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	GroupName    *string `json:"-" location:"uri"`
	MemberName   *string `json:"-" location:"uri"`
}

func (v *DeleteGroupMembershipInput) Validate() error {
	c := constraint.New("DeleteGroupMembershipInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkGroupName(c, v.GroupName)
	c.String("MemberName", v.MemberName, 1, 256, constraint.PrincipalName)
	return c.Err()
}

type DeleteGroupMembershipOutput struct {
	ResultMetadata
}

type DescribeGroupInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	GroupName    *string `json:"-" location:"uri"`
}

func (v *DescribeGroupInput) Validate() error {
	c := constraint.New("DescribeGroupInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkGroupName(c, v.GroupName)
	return c.Err()
}

type DescribeGroupOutput struct {
	ResultMetadata

	Group *types.Group `json:"Group,omitempty"`
}

type ListGroupMembershipsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	GroupName    *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListGroupMembershipsInput) Validate() error {
	c := constraint.New("ListGroupMembershipsInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkGroupName(c, v.GroupName)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListGroupMembershipsOutput struct {
	ResultMetadata

	GroupMemberList []types.GroupMember `json:"GroupMemberList,omitempty"`
	NextToken       *string             `json:"NextToken,omitempty"`
}

// ListGroupsInput lists the groups of a namespace, one page at a time.
type ListGroupsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`

	// A pagination token that can be used in a subsequent request.
	NextToken *string `json:"-" location:"querystring" name:"next-token"`

	// The maximum number of results to return, from 1 to 100.
	MaxResults *int32 `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListGroupsInput) Validate() error {
	c := constraint.New("ListGroupsInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListGroupsOutput struct {
	ResultMetadata

	GroupList []types.Group `json:"GroupList,omitempty"`

	// A pagination token that can be used in a subsequent request. Nil when there
	// are no more groups.
	NextToken *string `json:"NextToken,omitempty"`
}

type UpdateGroupInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	GroupName    *string `json:"-" location:"uri"`
	Description  *string `json:"Description,omitempty"`
}

func (v *UpdateGroupInput) Validate() error {
	c := constraint.New("UpdateGroupInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkGroupName(c, v.GroupName)
	c.OptionalString("Description", v.Description, 1, 512, nil)
	return c.Err()
}

type UpdateGroupOutput struct {
	ResultMetadata

	Group *types.Group `json:"Group,omitempty"`
}
