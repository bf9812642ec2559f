package qsapi

import (
	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

func checkDashboardID(c *constraint.Checker, v *string) {
	c.String("DashboardId", v, 1, 2048, constraint.ResourceID)
}

func checkDashboardDefinition(c *constraint.Checker, name *string, source *types.DashboardSourceEntity, params *types.Parameters, description *string) {
	c.String("Name", name, 1, 2048, nil)
	if c.Required("SourceEntity", source != nil) {
		c.Nested("SourceEntity", source.Validate())
	}
	if params != nil {
		c.Nested("Parameters", params.Validate())
	}
	c.OptionalString("VersionDescription", description, 1, 512, nil)
}

type CreateDashboardInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DashboardId  *string `json:"-" location:"uri"`

	// The display name of the dashboard. This member is required.
	Name *string `json:"Name,omitempty"`

	// The template the dashboard is created from. This member is required.
	SourceEntity *types.DashboardSourceEntity `json:"SourceEntity,omitempty"`

	Parameters              *types.Parameters              `json:"Parameters,omitempty"`
	Permissions             []types.ResourcePermission     `json:"Permissions,omitempty"`
	Tags                    []types.Tag                    `json:"Tags,omitempty"`
	VersionDescription      *string                        `json:"VersionDescription,omitempty"`
	DashboardPublishOptions *types.DashboardPublishOptions `json:"DashboardPublishOptions,omitempty"`
}

func (v *CreateDashboardInput) Validate() error {
	c := constraint.New("CreateDashboardInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkDashboardID(c, v.DashboardId)
	checkDashboardDefinition(c, v.Name, v.SourceEntity, v.Parameters, v.VersionDescription)
	checkPermissions(c, v.Permissions)
	checkTags(c, v.Tags)
	return c.Err()
}

type CreateDashboardOutput struct {
	ResultMetadata

	Arn            *string              `json:"Arn,omitempty"`
	VersionArn     *string              `json:"VersionArn,omitempty"`
	DashboardId    *string              `json:"DashboardId,omitempty"`
	CreationStatus types.ResourceStatus `json:"CreationStatus,omitempty"`
}

// DeleteDashboardInput deletes one version of a dashboard, or the whole dashboard
// when VersionNumber is nil.
type DeleteDashboardInput struct {
	AwsAccountId  *string `json:"-" location:"uri"`
	DashboardId   *string `json:"-" location:"uri"`
	VersionNumber *int64  `json:"-" location:"querystring" name:"version-number"`
}

func (v *DeleteDashboardInput) Validate() error {
	c := constraint.New("DeleteDashboardInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkDashboardID(c, v.DashboardId)
	checkVersionNumber(c, "VersionNumber", v.VersionNumber)
	return c.Err()
}

type DeleteDashboardOutput struct {
	ResultMetadata

	Arn         *string `json:"Arn,omitempty"`
	DashboardId *string `json:"DashboardId,omitempty"`
}

type DescribeDashboardInput struct {
	AwsAccountId  *string `json:"-" location:"uri"`
	DashboardId   *string `json:"-" location:"uri"`
	VersionNumber *int64  `json:"-" location:"querystring" name:"version-number"`
	AliasName     *string `json:"-" location:"querystring" name:"alias-name"`
}

func (v *DescribeDashboardInput) Validate() error {
	c := constraint.New("DescribeDashboardInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkDashboardID(c, v.DashboardId)
	checkVersionNumber(c, "VersionNumber", v.VersionNumber)
	c.OptionalString("AliasName", v.AliasName, 1, 2048, constraint.AliasName)
	return c.Err()
}

type DescribeDashboardOutput struct {
	ResultMetadata

	Dashboard *types.Dashboard `json:"Dashboard,omitempty"`
}

type DescribeDashboardPermissionsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DashboardId  *string `json:"-" location:"uri"`
}

func (v *DescribeDashboardPermissionsInput) Validate() error {
	c := constraint.New("DescribeDashboardPermissionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkDashboardID(c, v.DashboardId)
	return c.Err()
}

type DescribeDashboardPermissionsOutput struct {
	ResultMetadata

	DashboardId  *string                    `json:"DashboardId,omitempty"`
	DashboardArn *string                    `json:"DashboardArn,omitempty"`
	Permissions  []types.ResourcePermission `json:"Permissions,omitempty"`
}

type GetDashboardEmbedUrlInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DashboardId  *string `json:"-" location:"uri"`

	// The authentication method of the user. This member is required.
	IdentityType types.EmbeddingIdentityType `json:"-" location:"querystring" name:"creds-type"`

	// How many minutes the session is valid, from 15 to 600.
	SessionLifetimeInMinutes *int64 `json:"-" location:"querystring" name:"session-lifetime"`

	UndoRedoDisabled *bool `json:"-" location:"querystring" name:"undo-redo-disabled"`
	ResetDisabled    *bool `json:"-" location:"querystring" name:"reset-disabled"`

	// Required when IdentityType is QUICKSIGHT.
	UserArn *string `json:"-" location:"querystring" name:"user-arn"`
}

func (v *GetDashboardEmbedUrlInput) Validate() error {
	c := constraint.New("GetDashboardEmbedUrlInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkDashboardID(c, v.DashboardId)
	c.Required("IdentityType", v.IdentityType != "")
	constraint.Range(c, "SessionLifetimeInMinutes", v.SessionLifetimeInMinutes, 15, 600)
	return c.Err()
}

type GetDashboardEmbedUrlOutput struct {
	ResultMetadata

	// A single-use URL that opens the dashboard. It is a credential.
	EmbedUrl *string `json:"EmbedUrl,omitempty" sensitive:"true"`
}

type ListDashboardVersionsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DashboardId  *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListDashboardVersionsInput) Validate() error {
	c := constraint.New("ListDashboardVersionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkDashboardID(c, v.DashboardId)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListDashboardVersionsOutput struct {
	ResultMetadata

	DashboardVersionSummaryList []types.DashboardVersionSummary `json:"DashboardVersionSummaryList,omitempty"`
	NextToken                   *string                         `json:"NextToken,omitempty"`
}

type ListDashboardsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListDashboardsInput) Validate() error {
	c := constraint.New("ListDashboardsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListDashboardsOutput struct {
	ResultMetadata

	DashboardSummaryList []types.DashboardSummary `json:"DashboardSummaryList,omitempty"`
	NextToken            *string                  `json:"NextToken,omitempty"`
}

// SearchDashboardsInput finds the dashboards a user has access to. Unlike the
// list operations, its paging members travel in the request body.
type SearchDashboardsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`

	// Exactly one filter. This member is required.
	Filters []types.DashboardSearchFilter `json:"Filters,omitempty"`

	NextToken  *string `json:"NextToken,omitempty"`
	MaxResults *int32  `json:"MaxResults,omitempty"`
}

func (v *SearchDashboardsInput) Validate() error {
	c := constraint.New("SearchDashboardsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	if c.Required("Filters", v.Filters != nil) {
		c.Items("Filters", len(v.Filters), 1, 1)
		c.Each("Filters", len(v.Filters), func(i int) error { return v.Filters[i].Validate() })
	}
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type SearchDashboardsOutput struct {
	ResultMetadata

	DashboardSummaryList []types.DashboardSummary `json:"DashboardSummaryList,omitempty"`
	NextToken            *string                  `json:"NextToken,omitempty"`
}

// UpdateDashboardInput creates a new version of a dashboard. The new version is
// not published until UpdateDashboardPublishedVersion is called.
type UpdateDashboardInput struct {
	AwsAccountId            *string                        `json:"-" location:"uri"`
	DashboardId             *string                        `json:"-" location:"uri"`
	Name                    *string                        `json:"Name,omitempty"`
	SourceEntity            *types.DashboardSourceEntity   `json:"SourceEntity,omitempty"`
	Parameters              *types.Parameters              `json:"Parameters,omitempty"`
	VersionDescription      *string                        `json:"VersionDescription,omitempty"`
	DashboardPublishOptions *types.DashboardPublishOptions `json:"DashboardPublishOptions,omitempty"`
}

func (v *UpdateDashboardInput) Validate() error {
	c := constraint.New("UpdateDashboardInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkDashboardID(c, v.DashboardId)
	checkDashboardDefinition(c, v.Name, v.SourceEntity, v.Parameters, v.VersionDescription)
	return c.Err()
}

type UpdateDashboardOutput struct {
	ResultMetadata

	Arn            *string              `json:"Arn,omitempty"`
	VersionArn     *string              `json:"VersionArn,omitempty"`
	DashboardId    *string              `json:"DashboardId,omitempty"`
	CreationStatus types.ResourceStatus `json:"CreationStatus,omitempty"`
}

type UpdateDashboardPermissionsInput struct {
	AwsAccountId      *string                    `json:"-" location:"uri"`
	DashboardId       *string                    `json:"-" location:"uri"`
	GrantPermissions  []types.ResourcePermission `json:"GrantPermissions,omitempty"`
	RevokePermissions []types.ResourcePermission `json:"RevokePermissions,omitempty"`
}

func (v *UpdateDashboardPermissionsInput) Validate() error {
	c := constraint.New("UpdateDashboardPermissionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkDashboardID(c, v.DashboardId)
	checkGrants(c, v.GrantPermissions, v.RevokePermissions)
	return c.Err()
}

type UpdateDashboardPermissionsOutput struct {
	ResultMetadata

	DashboardArn *string                    `json:"DashboardArn,omitempty"`
	DashboardId  *string                    `json:"DashboardId,omitempty"`
	Permissions  []types.ResourcePermission `json:"Permissions,omitempty"`
}

type UpdateDashboardPublishedVersionInput struct {
	AwsAccountId  *string `json:"-" location:"uri"`
	DashboardId   *string `json:"-" location:"uri"`
	VersionNumber *int64  `json:"-" location:"uri"`
}

func (v *UpdateDashboardPublishedVersionInput) Validate() error {
	c := constraint.New("UpdateDashboardPublishedVersionInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkDashboardID(c, v.DashboardId)
	if c.Required("VersionNumber", v.VersionNumber != nil) {
		checkVersionNumber(c, "VersionNumber", v.VersionNumber)
	}
	return c.Err()
}

type UpdateDashboardPublishedVersionOutput struct {
	ResultMetadata

	DashboardId  *string `json:"DashboardId,omitempty"`
	DashboardArn *string `json:"DashboardArn,omitempty"`
}
