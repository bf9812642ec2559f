package types

// User is a registered user of the service.
type User struct {
	Arn          *string      `json:"Arn,omitempty"`
	UserName     *string      `json:"UserName,omitempty"`
	Email        *string      `json:"Email,omitempty"`
	Role         UserRole     `json:"Role,omitempty"`
	IdentityType IdentityType `json:"IdentityType,omitempty"`
	Active       bool         `json:"Active,omitempty"`
	PrincipalId  *string      `json:"PrincipalId,omitempty"`
}

// Group is a named set of users in a namespace.
type Group struct {
	Arn         *string `json:"Arn,omitempty"`
	GroupName   *string `json:"GroupName,omitempty"`
	Description *string `json:"Description,omitempty"`
	PrincipalId *string `json:"PrincipalId,omitempty"`
}

type GroupMember struct {
	Arn        *string `json:"Arn,omitempty"`
	MemberName *string `json:"MemberName,omitempty"`
}

// IAMPolicyAssignment assigns an IAM policy to users and groups.
type IAMPolicyAssignment struct {
	AwsAccountId     *string             `json:"AwsAccountId,omitempty"`
	AssignmentId     *string             `json:"AssignmentId,omitempty"`
	AssignmentName   *string             `json:"AssignmentName,omitempty"`
	PolicyArn        *string             `json:"PolicyArn,omitempty"`
	Identities       map[string][]string `json:"Identities,omitempty"`
	AssignmentStatus AssignmentStatus    `json:"AssignmentStatus,omitempty"`
}

type IAMPolicyAssignmentSummary struct {
	AssignmentName   *string          `json:"AssignmentName,omitempty"`
	AssignmentStatus AssignmentStatus `json:"AssignmentStatus,omitempty"`
}

type ActiveIAMPolicyAssignment struct {
	AssignmentName *string `json:"AssignmentName,omitempty"`
	PolicyArn      *string `json:"PolicyArn,omitempty"`
}
