package qsapi

import (
	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

func checkUserName(c *constraint.Checker, v *string) {
	c.String("UserName", v, 1, constraint.Unbounded, constraint.PrincipalName)
}

type DeleteUserInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	UserName     *string `json:"-" location:"uri"`
}

func (v *DeleteUserInput) Validate() error {
	c := constraint.New("DeleteUserInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkUserName(c, v.UserName)
	return c.Err()
}

type DeleteUserOutput struct {
	ResultMetadata
}

type DeleteUserByPrincipalIdInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`

	// The principal ID of the user. This member is required.
	PrincipalId *string `json:"-" location:"uri"`
}

func (v *DeleteUserByPrincipalIdInput) Validate() error {
	c := constraint.New("DeleteUserByPrincipalIdInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	c.ID("PrincipalId", v.PrincipalId)
	return c.Err()
}

type DeleteUserByPrincipalIdOutput struct {
	ResultMetadata
}

type DescribeUserInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	UserName     *string `json:"-" location:"uri"`
}

func (v *DescribeUserInput) Validate() error {
	c := constraint.New("DescribeUserInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkUserName(c, v.UserName)
	return c.Err()
}

type DescribeUserOutput struct {
	ResultMetadata

	User *types.User `json:"User,omitempty"`
}

type ListUserGroupsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	UserName     *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListUserGroupsInput) Validate() error {
	c := constraint.New("ListUserGroupsInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkUserName(c, v.UserName)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListUserGroupsOutput struct {
	ResultMetadata

	GroupList []types.Group `json:"GroupList,omitempty"`
	NextToken *string       `json:"NextToken,omitempty"`
}

type ListUsersInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListUsersInput) Validate() error {
	c := constraint.New("ListUsersInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListUsersOutput struct {
	ResultMetadata

	UserList  []types.User `json:"UserList,omitempty"`
	NextToken *string      `json:"NextToken,omitempty"`
}

// RegisterUserInput registers an IAM identity or a QuickSight-only user.
//
// IAM users are registered with IamArn. IAM roles additionally need SessionName,
// which becomes part of the user name. QUICKSIGHT users are registered with
// UserName and receive an invitation URL.
type RegisterUserInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	Namespace    *string `json:"-" location:"uri"`

	// This member is required.
	IdentityType types.IdentityType `json:"IdentityType,omitempty"`

	// This member is required.
	Email *string `json:"Email,omitempty"`

	// This member is required.
	UserRole types.UserRole `json:"UserRole,omitempty"`

	IamArn      *string `json:"IamArn,omitempty"`
	SessionName *string `json:"SessionName,omitempty"`
	UserName    *string `json:"UserName,omitempty"`
}

func (v *RegisterUserInput) Validate() error {
	c := constraint.New("RegisterUserInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	c.Required("IdentityType", v.IdentityType != "")
	c.Required("Email", v.Email != nil)
	c.Required("UserRole", v.UserRole != "")
	c.OptionalString("SessionName", v.SessionName, 2, 64, constraint.SessionName)
	c.OptionalString("UserName", v.UserName, 1, constraint.Unbounded, constraint.PrincipalName)
	return c.Err()
}

type RegisterUserOutput struct {
	ResultMetadata

	User *types.User `json:"User,omitempty"`

	// Set for QUICKSIGHT identities only.
	UserInvitationUrl *string `json:"UserInvitationUrl,omitempty"`
}

type UpdateUserInput struct {
	AwsAccountId *string        `json:"-" location:"uri"`
	Namespace    *string        `json:"-" location:"uri"`
	UserName     *string        `json:"-" location:"uri"`
	Email        *string        `json:"Email,omitempty"`
	Role         types.UserRole `json:"Role,omitempty"`
}

func (v *UpdateUserInput) Validate() error {
	c := constraint.New("UpdateUserInput")
	checkScope(c, v.AwsAccountId, v.Namespace)
	checkUserName(c, v.UserName)
	c.Required("Email", v.Email != nil)
	c.Required("Role", v.Role != "")
	return c.Err()
}

type UpdateUserOutput struct {
	ResultMetadata

	User *types.User `json:"User,omitempty"`
}
