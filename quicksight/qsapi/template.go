package qsapi

import (
	"encoding/json"
	"fmt"

	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

func checkTemplateID(c *constraint.Checker, v *string) {
	c.String("TemplateId", v, 1, 2048, constraint.ResourceID)
}

func checkAliasName(c *constraint.Checker, v *string) {
	c.String("AliasName", v, 1, 2048, constraint.AliasName)
}

func checkVersionNumber(c *constraint.Checker, field string, v *int64) {
	constraint.Min(c, field, v, 1)
}

func checkSourceEntity(c *constraint.Checker, v types.TemplateSourceEntity) {
	if c.Required("SourceEntity", v != nil) {
		c.Nested("SourceEntity", types.ValidateTemplateSourceEntity(v))
	}
}

func decodeSourceEntity(raw json.RawMessage, dst *types.TemplateSourceEntity) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	v, err := types.UnmarshalTemplateSourceEntity(raw)
	if err != nil {
		return fmt.Errorf("SourceEntity: %w", err)
	}
	*dst = v
	return nil
}

type CreateTemplateInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	TemplateId   *string `json:"-" location:"uri"`

	// The analysis or template the new template is created from. This member is
	// required.
	SourceEntity types.TemplateSourceEntity `json:"SourceEntity,omitempty"`

	Name               *string                    `json:"Name,omitempty"`
	Permissions        []types.ResourcePermission `json:"Permissions,omitempty"`
	Tags               []types.Tag                `json:"Tags,omitempty"`
	VersionDescription *string                    `json:"VersionDescription,omitempty"`
}

func (v *CreateTemplateInput) Validate() error {
	c := constraint.New("CreateTemplateInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkSourceEntity(c, v.SourceEntity)
	c.OptionalString("Name", v.Name, 1, 2048, nil)
	checkPermissions(c, v.Permissions)
	checkTags(c, v.Tags)
	c.OptionalString("VersionDescription", v.VersionDescription, 1, 512, nil)
	return c.Err()
}

func (v *CreateTemplateInput) UnmarshalJSON(b []byte) error {
	type plain CreateTemplateInput
	aux := struct {
		*plain
		SourceEntity json.RawMessage `json:"SourceEntity,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeSourceEntity(aux.SourceEntity, &v.SourceEntity)
}

type CreateTemplateOutput struct {
	ResultMetadata

	Arn            *string              `json:"Arn,omitempty"`
	VersionArn     *string              `json:"VersionArn,omitempty"`
	TemplateId     *string              `json:"TemplateId,omitempty"`
	CreationStatus types.ResourceStatus `json:"CreationStatus,omitempty"`
}

type CreateTemplateAliasInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	TemplateId   *string `json:"-" location:"uri"`

	// The reserved names $LATEST and $PUBLISHED cannot be created.
	AliasName *string `json:"-" location:"uri"`

	// This member is required.
	TemplateVersionNumber *int64 `json:"TemplateVersionNumber,omitempty"`
}

func (v *CreateTemplateAliasInput) Validate() error {
	c := constraint.New("CreateTemplateAliasInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkAliasName(c, v.AliasName)
	if c.Required("TemplateVersionNumber", v.TemplateVersionNumber != nil) {
		checkVersionNumber(c, "TemplateVersionNumber", v.TemplateVersionNumber)
	}
	return c.Err()
}

type CreateTemplateAliasOutput struct {
	ResultMetadata

	TemplateAlias *types.TemplateAlias `json:"TemplateAlias,omitempty"`
}

// DeleteTemplateInput deletes one version of a template, or the whole template
// with all of its versions and aliases when VersionNumber is nil.
type DeleteTemplateInput struct {
	AwsAccountId  *string `json:"-" location:"uri"`
	TemplateId    *string `json:"-" location:"uri"`
	VersionNumber *int64  `json:"-" location:"querystring" name:"version-number"`
}

func (v *DeleteTemplateInput) Validate() error {
	c := constraint.New("DeleteTemplateInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkVersionNumber(c, "VersionNumber", v.VersionNumber)
	return c.Err()
}

type DeleteTemplateOutput struct {
	ResultMetadata

	Arn        *string `json:"Arn,omitempty"`
	TemplateId *string `json:"TemplateId,omitempty"`
}

type DeleteTemplateAliasInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	TemplateId   *string `json:"-" location:"uri"`
	AliasName    *string `json:"-" location:"uri"`
}

func (v *DeleteTemplateAliasInput) Validate() error {
	c := constraint.New("DeleteTemplateAliasInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkAliasName(c, v.AliasName)
	return c.Err()
}

type DeleteTemplateAliasOutput struct {
	ResultMetadata

	TemplateId *string `json:"TemplateId,omitempty"`
	AliasName  *string `json:"AliasName,omitempty"`
	Arn        *string `json:"Arn,omitempty"`
}

// DescribeTemplateInput selects the version to describe by VersionNumber or by
// AliasName. With neither, the latest version is described.
type DescribeTemplateInput struct {
	AwsAccountId  *string `json:"-" location:"uri"`
	TemplateId    *string `json:"-" location:"uri"`
	VersionNumber *int64  `json:"-" location:"querystring" name:"version-number"`
	AliasName     *string `json:"-" location:"querystring" name:"alias-name"`
}

func (v *DescribeTemplateInput) Validate() error {
	c := constraint.New("DescribeTemplateInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkVersionNumber(c, "VersionNumber", v.VersionNumber)
	c.OptionalString("AliasName", v.AliasName, 1, 2048, constraint.AliasName)
	return c.Err()
}

type DescribeTemplateOutput struct {
	ResultMetadata

	Template *types.Template `json:"Template,omitempty"`
}

type DescribeTemplateAliasInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	TemplateId   *string `json:"-" location:"uri"`
	AliasName    *string `json:"-" location:"uri"`
}

func (v *DescribeTemplateAliasInput) Validate() error {
	c := constraint.New("DescribeTemplateAliasInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkAliasName(c, v.AliasName)
	return c.Err()
}

type DescribeTemplateAliasOutput struct {
	ResultMetadata

	TemplateAlias *types.TemplateAlias `json:"TemplateAlias,omitempty"`
}

type DescribeTemplatePermissionsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	TemplateId   *string `json:"-" location:"uri"`
}

func (v *DescribeTemplatePermissionsInput) Validate() error {
	c := constraint.New("DescribeTemplatePermissionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	return c.Err()
}

type DescribeTemplatePermissionsOutput struct {
	ResultMetadata

	TemplateId  *string                    `json:"TemplateId,omitempty"`
	TemplateArn *string                    `json:"TemplateArn,omitempty"`
	Permissions []types.ResourcePermission `json:"Permissions,omitempty"`
}

type ListTemplateAliasesInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	TemplateId   *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`

	// The service names this parameter max-result, without the trailing s.
	MaxResults *int32 `json:"-" location:"querystring" name:"max-result"`
}

func (v *ListTemplateAliasesInput) Validate() error {
	c := constraint.New("ListTemplateAliasesInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListTemplateAliasesOutput struct {
	ResultMetadata

	TemplateAliasList []types.TemplateAlias `json:"TemplateAliasList,omitempty"`
	NextToken         *string               `json:"NextToken,omitempty"`
}

type ListTemplateVersionsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	TemplateId   *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListTemplateVersionsInput) Validate() error {
	c := constraint.New("ListTemplateVersionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListTemplateVersionsOutput struct {
	ResultMetadata

	TemplateVersionSummaryList []types.TemplateVersionSummary `json:"TemplateVersionSummaryList,omitempty"`
	NextToken                  *string                        `json:"NextToken,omitempty"`
}

type ListTemplatesInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-result"`
}

func (v *ListTemplatesInput) Validate() error {
	c := constraint.New("ListTemplatesInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListTemplatesOutput struct {
	ResultMetadata

	TemplateSummaryList []types.TemplateSummary `json:"TemplateSummaryList,omitempty"`
	NextToken           *string                 `json:"NextToken,omitempty"`
}

// UpdateTemplateInput creates a new version of a template from a source entity.
type UpdateTemplateInput struct {
	AwsAccountId       *string                    `json:"-" location:"uri"`
	TemplateId         *string                    `json:"-" location:"uri"`
	SourceEntity       types.TemplateSourceEntity `json:"SourceEntity,omitempty"`
	VersionDescription *string                    `json:"VersionDescription,omitempty"`
	Name               *string                    `json:"Name,omitempty"`
}

func (v *UpdateTemplateInput) Validate() error {
	c := constraint.New("UpdateTemplateInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkSourceEntity(c, v.SourceEntity)
	c.OptionalString("VersionDescription", v.VersionDescription, 1, 512, nil)
	c.OptionalString("Name", v.Name, 1, 2048, nil)
	return c.Err()
}

func (v *UpdateTemplateInput) UnmarshalJSON(b []byte) error {
	type plain UpdateTemplateInput
	aux := struct {
		*plain
		SourceEntity json.RawMessage `json:"SourceEntity,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeSourceEntity(aux.SourceEntity, &v.SourceEntity)
}

type UpdateTemplateOutput struct {
	ResultMetadata

	TemplateId     *string              `json:"TemplateId,omitempty"`
	Arn            *string              `json:"Arn,omitempty"`
	VersionArn     *string              `json:"VersionArn,omitempty"`
	CreationStatus types.ResourceStatus `json:"CreationStatus,omitempty"`
}

type UpdateTemplateAliasInput struct {
	AwsAccountId          *string `json:"-" location:"uri"`
	TemplateId            *string `json:"-" location:"uri"`
	AliasName             *string `json:"-" location:"uri"`
	TemplateVersionNumber *int64  `json:"TemplateVersionNumber,omitempty"`
}

func (v *UpdateTemplateAliasInput) Validate() error {
	c := constraint.New("UpdateTemplateAliasInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkAliasName(c, v.AliasName)
	if c.Required("TemplateVersionNumber", v.TemplateVersionNumber != nil) {
		checkVersionNumber(c, "TemplateVersionNumber", v.TemplateVersionNumber)
	}
	return c.Err()
}

type UpdateTemplateAliasOutput struct {
	ResultMetadata

	TemplateAlias *types.TemplateAlias `json:"TemplateAlias,omitempty"`
}

type UpdateTemplatePermissionsInput struct {
	AwsAccountId      *string                    `json:"-" location:"uri"`
	TemplateId        *string                    `json:"-" location:"uri"`
	GrantPermissions  []types.ResourcePermission `json:"GrantPermissions,omitempty"`
	RevokePermissions []types.ResourcePermission `json:"RevokePermissions,omitempty"`
}

func (v *UpdateTemplatePermissionsInput) Validate() error {
	c := constraint.New("UpdateTemplatePermissionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkTemplateID(c, v.TemplateId)
	checkGrants(c, v.GrantPermissions, v.RevokePermissions)
	return c.Err()
}

type UpdateTemplatePermissionsOutput struct {
	ResultMetadata

	TemplateId  *string                    `json:"TemplateId,omitempty"`
	TemplateArn *string                    `json:"TemplateArn,omitempty"`
	Permissions []types.ResourcePermission `json:"Permissions,omitempty"`
}
