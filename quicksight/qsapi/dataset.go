package qsapi

import (
	"encoding/json"

	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

type CreateDataSetInput struct {
	AwsAccountId *string `json:"-" location:"uri"`

	// An ID for the dataset, unique per region per account. This member is required.
	DataSetId *string `json:"DataSetId,omitempty"`

	// The display name for the dataset. This member is required.
	Name *string `json:"Name,omitempty"`

	// Declares the physical tables that are available in the underlying data
	// sources. This member is required.
	PhysicalTableMap map[string]types.PhysicalTable `json:"PhysicalTableMap,omitempty"`

	// Configures the combination and transformation of the data from the physical
	// tables.
	LogicalTableMap map[string]types.LogicalTable `json:"LogicalTableMap,omitempty"`

	// Indicates whether you want to import the data into SPICE. This member is required.
	ImportMode types.DataSetImportMode `json:"ImportMode,omitempty"`

	ColumnGroups              []types.ColumnGroup              `json:"ColumnGroups,omitempty"`
	Permissions               []types.ResourcePermission       `json:"Permissions,omitempty"`
	RowLevelPermissionDataSet *types.RowLevelPermissionDataSet `json:"RowLevelPermissionDataSet,omitempty"`
	Tags                      []types.Tag                      `json:"Tags,omitempty"`
}

func (v *CreateDataSetInput) Validate() error {
	c := constraint.New("CreateDataSetInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSetId", v.DataSetId)
	c.String("Name", v.Name, 1, 128, nil)
	c.Required("ImportMode", v.ImportMode != "")
	types.CheckDataSetTables(c, v.PhysicalTableMap, v.LogicalTableMap, v.ColumnGroups, v.RowLevelPermissionDataSet)
	checkPermissions(c, v.Permissions)
	checkTags(c, v.Tags)
	return c.Err()
}

func (v *CreateDataSetInput) UnmarshalJSON(b []byte) error {
	type plain CreateDataSetInput
	aux := struct {
		*plain
		PhysicalTableMap map[string]json.RawMessage `json:"PhysicalTableMap,omitempty"`
		ColumnGroups     []json.RawMessage          `json:"ColumnGroups,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeDataSetUnions(aux.PhysicalTableMap, aux.ColumnGroups, &v.PhysicalTableMap, &v.ColumnGroups)
}

func decodeDataSetUnions(rawTables map[string]json.RawMessage, rawGroups []json.RawMessage, tables *map[string]types.PhysicalTable, groups *[]types.ColumnGroup) error {
	t, err := types.DecodePhysicalTableMap(rawTables)
	if err != nil {
		return err
	}
	g, err := types.DecodeColumnGroups(rawGroups)
	if err != nil {
		return err
	}
	*tables, *groups = t, g
	return nil
}

type CreateDataSetOutput struct {
	ResultMetadata

	Arn       *string `json:"Arn,omitempty"`
	DataSetId *string `json:"DataSetId,omitempty"`

	// Set only for SPICE data sets, which start an initial ingestion on creation.
	IngestionArn *string `json:"IngestionArn,omitempty"`
	IngestionId  *string `json:"IngestionId,omitempty"`
}

type DeleteDataSetInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSetId    *string `json:"-" location:"uri"`
}

func (v *DeleteDataSetInput) Validate() error {
	c := constraint.New("DeleteDataSetInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSetId", v.DataSetId)
	return c.Err()
}

type DeleteDataSetOutput struct {
	ResultMetadata

	Arn       *string `json:"Arn,omitempty"`
	DataSetId *string `json:"DataSetId,omitempty"`
}

type DescribeDataSetInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSetId    *string `json:"-" location:"uri"`
}

func (v *DescribeDataSetInput) Validate() error {
	c := constraint.New("DescribeDataSetInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSetId", v.DataSetId)
	return c.Err()
}

type DescribeDataSetOutput struct {
	ResultMetadata

	DataSet *types.DataSet `json:"DataSet,omitempty"`
}

type DescribeDataSetPermissionsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSetId    *string `json:"-" location:"uri"`
}

func (v *DescribeDataSetPermissionsInput) Validate() error {
	c := constraint.New("DescribeDataSetPermissionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSetId", v.DataSetId)
	return c.Err()
}

type DescribeDataSetPermissionsOutput struct {
	ResultMetadata

	DataSetArn  *string                    `json:"DataSetArn,omitempty"`
	DataSetId   *string                    `json:"DataSetId,omitempty"`
	Permissions []types.ResourcePermission `json:"Permissions,omitempty"`
}

type ListDataSetsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	NextToken    *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults   *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListDataSetsInput) Validate() error {
	c := constraint.New("ListDataSetsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListDataSetsOutput struct {
	ResultMetadata

	DataSetSummaries []types.DataSetSummary `json:"DataSetSummaries,omitempty"`
	NextToken        *string                `json:"NextToken,omitempty"`
}

// UpdateDataSetInput replaces the definition of a data set. Permissions and tags
// are not part of the definition and are left unchanged.
type UpdateDataSetInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSetId    *string `json:"-" location:"uri"`

	Name                      *string                          `json:"Name,omitempty"`
	PhysicalTableMap          map[string]types.PhysicalTable   `json:"PhysicalTableMap,omitempty"`
	LogicalTableMap           map[string]types.LogicalTable    `json:"LogicalTableMap,omitempty"`
	ImportMode                types.DataSetImportMode          `json:"ImportMode,omitempty"`
	ColumnGroups              []types.ColumnGroup              `json:"ColumnGroups,omitempty"`
	RowLevelPermissionDataSet *types.RowLevelPermissionDataSet `json:"RowLevelPermissionDataSet,omitempty"`
}

func (v *UpdateDataSetInput) Validate() error {
	c := constraint.New("UpdateDataSetInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSetId", v.DataSetId)
	c.String("Name", v.Name, 1, 128, nil)
	c.Required("ImportMode", v.ImportMode != "")
	types.CheckDataSetTables(c, v.PhysicalTableMap, v.LogicalTableMap, v.ColumnGroups, v.RowLevelPermissionDataSet)
	return c.Err()
}

func (v *UpdateDataSetInput) UnmarshalJSON(b []byte) error {
	type plain UpdateDataSetInput
	aux := struct {
		*plain
		PhysicalTableMap map[string]json.RawMessage `json:"PhysicalTableMap,omitempty"`
		ColumnGroups     []json.RawMessage          `json:"ColumnGroups,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	return decodeDataSetUnions(aux.PhysicalTableMap, aux.ColumnGroups, &v.PhysicalTableMap, &v.ColumnGroups)
}

type UpdateDataSetOutput struct {
	ResultMetadata

	Arn          *string `json:"Arn,omitempty"`
	DataSetId    *string `json:"DataSetId,omitempty"`
	IngestionArn *string `json:"IngestionArn,omitempty"`
	IngestionId  *string `json:"IngestionId,omitempty"`
}

type UpdateDataSetPermissionsInput struct {
	AwsAccountId      *string                    `json:"-" location:"uri"`
	DataSetId         *string                    `json:"-" location:"uri"`
	GrantPermissions  []types.ResourcePermission `json:"GrantPermissions,omitempty"`
	RevokePermissions []types.ResourcePermission `json:"RevokePermissions,omitempty"`
}

func (v *UpdateDataSetPermissionsInput) Validate() error {
	c := constraint.New("UpdateDataSetPermissionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSetId", v.DataSetId)
	checkGrants(c, v.GrantPermissions, v.RevokePermissions)
	return c.Err()
}

type UpdateDataSetPermissionsOutput struct {
	ResultMetadata

	DataSetArn *string `json:"DataSetArn,omitempty"`
	DataSetId  *string `json:"DataSetId,omitempty"`
}
