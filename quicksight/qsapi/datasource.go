package qsapi

import (
	"encoding/json"
	"fmt"

	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

type CreateDataSourceInput struct {
	AwsAccountId *string `json:"-" location:"uri"`

	// An ID for the data source, unique per region per account. This member is required.
	DataSourceId *string `json:"DataSourceId,omitempty"`

	// A display name for the data source. This member is required.
	Name *string `json:"Name,omitempty"`

	// The type of the data source. This member is required.
	Type types.DataSourceType `json:"Type,omitempty"`

	DataSourceParameters    types.DataSourceParameters     `json:"DataSourceParameters,omitempty"`
	Credentials             types.DataSourceCredentials    `json:"Credentials,omitempty" sensitive:"true"`
	Permissions             []types.ResourcePermission     `json:"Permissions,omitempty"`
	VpcConnectionProperties *types.VpcConnectionProperties `json:"VpcConnectionProperties,omitempty"`
	SslProperties           *types.SslProperties           `json:"SslProperties,omitempty"`
	Tags                    []types.Tag                    `json:"Tags,omitempty"`
}

func (v *CreateDataSourceInput) Validate() error {
	c := constraint.New("CreateDataSourceInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSourceId", v.DataSourceId)
	c.String("Name", v.Name, 1, 128, nil)
	c.Required("Type", v.Type != "")
	checkDataSourceConnection(c, v.DataSourceParameters, v.Credentials, v.VpcConnectionProperties)
	checkPermissions(c, v.Permissions)
	checkTags(c, v.Tags)
	return c.Err()
}

func (v *CreateDataSourceInput) UnmarshalJSON(b []byte) error {
	type plain CreateDataSourceInput
	aux := struct {
		*plain
		DataSourceParameters json.RawMessage `json:"DataSourceParameters,omitempty"`
		Credentials          json.RawMessage `json:"Credentials,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeDataSourceConnection(aux.DataSourceParameters, aux.Credentials, &v.DataSourceParameters, &v.Credentials)
}

func checkDataSourceConnection(c *constraint.Checker, params types.DataSourceParameters, creds types.DataSourceCredentials, vpc *types.VpcConnectionProperties) {
	if params != nil {
		c.Nested("DataSourceParameters", types.ValidateDataSourceParameters(params))
	}
	if creds != nil {
		c.Nested("Credentials", types.ValidateDataSourceCredentials(creds))
	}
	if vpc != nil {
		c.Nested("VpcConnectionProperties", vpc.Validate())
	}
}

func decodeDataSourceConnection(rawParams, rawCreds json.RawMessage, params *types.DataSourceParameters, creds *types.DataSourceCredentials) error {
	if len(rawParams) > 0 && string(rawParams) != "null" {
		p, err := types.UnmarshalDataSourceParameters(rawParams)
		if err != nil {
			return err
		}
		*params = p
	}
	if len(rawCreds) > 0 && string(rawCreds) != "null" {
		cr, err := types.UnmarshalDataSourceCredentials(rawCreds)
		if err != nil {
			return fmt.Errorf("Credentials: %w", err)
		}
		*creds = cr
	}
	return nil
}

type CreateDataSourceOutput struct {
	ResultMetadata

	Arn            *string              `json:"Arn,omitempty"`
	DataSourceId   *string              `json:"DataSourceId,omitempty"`
	CreationStatus types.ResourceStatus `json:"CreationStatus,omitempty"`
}

type DeleteDataSourceInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSourceId *string `json:"-" location:"uri"`
}

func (v *DeleteDataSourceInput) Validate() error {
	c := constraint.New("DeleteDataSourceInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSourceId", v.DataSourceId)
	return c.Err()
}

type DeleteDataSourceOutput struct {
	ResultMetadata

	Arn          *string `json:"Arn,omitempty"`
	DataSourceId *string `json:"DataSourceId,omitempty"`
}

type DescribeDataSourceInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSourceId *string `json:"-" location:"uri"`
}

func (v *DescribeDataSourceInput) Validate() error {
	c := constraint.New("DescribeDataSourceInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSourceId", v.DataSourceId)
	return c.Err()
}

type DescribeDataSourceOutput struct {
	ResultMetadata

	DataSource *types.DataSource `json:"DataSource,omitempty"`
}

type DescribeDataSourcePermissionsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSourceId *string `json:"-" location:"uri"`
}

func (v *DescribeDataSourcePermissionsInput) Validate() error {
	c := constraint.New("DescribeDataSourcePermissionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSourceId", v.DataSourceId)
	return c.Err()
}

type DescribeDataSourcePermissionsOutput struct {
	ResultMetadata

	DataSourceArn *string                    `json:"DataSourceArn,omitempty"`
	DataSourceId  *string                    `json:"DataSourceId,omitempty"`
	Permissions   []types.ResourcePermission `json:"Permissions,omitempty"`
}

type ListDataSourcesInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListDataSourcesInput) Validate() error {
	c := constraint.New("ListDataSourcesInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListDataSourcesOutput struct {
	ResultMetadata

	DataSources []types.DataSource `json:"DataSources,omitempty"`
	NextToken   *string            `json:"NextToken,omitempty"`
}

type UpdateDataSourceInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSourceId *string `json:"-" location:"uri"`

	// This member is required.
	Name *string `json:"Name,omitempty"`

	DataSourceParameters    types.DataSourceParameters     `json:"DataSourceParameters,omitempty"`
	Credentials             types.DataSourceCredentials    `json:"Credentials,omitempty" sensitive:"true"`
	VpcConnectionProperties *types.VpcConnectionProperties `json:"VpcConnectionProperties,omitempty"`
	SslProperties           *types.SslProperties           `json:"SslProperties,omitempty"`
}

func (v *UpdateDataSourceInput) Validate() error {
	c := constraint.New("UpdateDataSourceInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSourceId", v.DataSourceId)
	c.String("Name", v.Name, 1, 128, nil)
	checkDataSourceConnection(c, v.DataSourceParameters, v.Credentials, v.VpcConnectionProperties)
	return c.Err()
}

func (v *UpdateDataSourceInput) UnmarshalJSON(b []byte) error {
	type plain UpdateDataSourceInput
	aux := struct {
		*plain
		DataSourceParameters json.RawMessage `json:"DataSourceParameters,omitempty"`
		Credentials          json.RawMessage `json:"Credentials,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeDataSourceConnection(aux.DataSourceParameters, aux.Credentials, &v.DataSourceParameters, &v.Credentials)
}

type UpdateDataSourceOutput struct {
	ResultMetadata

	Arn          *string              `json:"Arn,omitempty"`
	DataSourceId *string              `json:"DataSourceId,omitempty"`
	UpdateStatus types.ResourceStatus `json:"UpdateStatus,omitempty"`
}

type UpdateDataSourcePermissionsInput struct {
	AwsAccountId      *string                    `json:"-" location:"uri"`
	DataSourceId      *string                    `json:"-" location:"uri"`
	GrantPermissions  []types.ResourcePermission `json:"GrantPermissions,omitempty"`
	RevokePermissions []types.ResourcePermission `json:"RevokePermissions,omitempty"`
}

func (v *UpdateDataSourcePermissionsInput) Validate() error {
	c := constraint.New("UpdateDataSourcePermissionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSourceId", v.DataSourceId)
	checkGrants(c, v.GrantPermissions, v.RevokePermissions)
	return c.Err()
}

type UpdateDataSourcePermissionsOutput struct {
	ResultMetadata

	DataSourceArn *string `json:"DataSourceArn,omitempty"`
	DataSourceId  *string `json:"DataSourceId,omitempty"`
}
