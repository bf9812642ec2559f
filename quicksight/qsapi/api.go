// Package qsapi holds the request and result shapes of every QuickSight control
// plane operation.
//
// Input members are bound to the HTTP request by struct tags: `location:"uri"`
// members fill the {Name} placeholder of the operation's path, and
// `location:"querystring" name:"..."` members become query parameters. All other
// members travel in the JSON body. Every input has a Validate method, the single
// point at which member constraints are checked.
package qsapi

import (
	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

// ServiceID names the service in operation errors and request signing.
const (
	ServiceID   = "QuickSight"
	SigningName = "quicksight"
)

// Input is implemented by every operation input.
type Input interface {
	Validate() error
}

// ResultMetadata is carried by every operation output. Status is the HTTP status
// code of the response; RequestId identifies the request for support cases.
type ResultMetadata struct {
	Status    int32   `json:"-"`
	RequestId *string `json:"RequestId,omitempty"`
}

// Metadata returns the result metadata of an output.
func (m *ResultMetadata) Metadata() *ResultMetadata {
	return m
}

// Output is implemented by every operation output through ResultMetadata.
type Output interface {
	Metadata() *ResultMetadata
}

// DefaultNamespace is the namespace users and groups live in unless the account
// has created others.
const DefaultNamespace = constraint.DefaultNamespace

func checkMaxResults(c *constraint.Checker, v *int32) {
	constraint.Range(c, "MaxResults", v, 1, 100)
}

// checkGrants checks the optional grant and revoke lists of an Update*Permissions
// input.
func checkGrants(c *constraint.Checker, grant, revoke []types.ResourcePermission) {
	if grant != nil {
		types.CheckPermissions(c, "GrantPermissions", grant, 1, 100)
	}
	if revoke != nil {
		types.CheckPermissions(c, "RevokePermissions", revoke, 1, 100)
	}
}

// checkPermissions checks the optional initial permissions of a Create* input.
func checkPermissions(c *constraint.Checker, perms []types.ResourcePermission) {
	if perms != nil {
		types.CheckPermissions(c, "Permissions", perms, 1, 64)
	}
}

// checkTags checks the optional initial tags of a Create* input.
func checkTags(c *constraint.Checker, tags []types.Tag) {
	if tags != nil {
		types.CheckTags(c, "Tags", tags, 1, 200)
	}
}
