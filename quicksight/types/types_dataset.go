package types

import (
	"encoding/json"
	"fmt"

	"github.com/acksell/qsight/quicksight/internal/constraint"
)

// InputColumn is a column of a physical table as the data source exposes it.
type InputColumn struct {
	Name *string             `json:"Name,omitempty"`
	Type InputColumnDataType `json:"Type,omitempty"`
}

func (v *InputColumn) Validate() error {
	c := constraint.New("InputColumn")
	c.String("Name", v.Name, 1, 128, nil)
	c.Required("Type", v.Type != "")
	return c.Err()
}

func checkInputColumns(c *constraint.Checker, field string, cols []InputColumn, required bool) {
	if required && !c.Required(field, cols != nil) {
		return
	}
	if cols == nil {
		return
	}
	c.Items(field, len(cols), 1, 2048)
	c.Each(field, len(cols), func(i int) error { return cols[i].Validate() })
}

// UploadSettings describes the layout of an uploaded or S3 file.
type UploadSettings struct {
	Format         FileFormat    `json:"Format,omitempty"`
	StartFromRow   *int32        `json:"StartFromRow,omitempty"`
	ContainsHeader *bool         `json:"ContainsHeader,omitempty"`
	TextQualifier  TextQualifier `json:"TextQualifier,omitempty"`
	Delimiter      *string       `json:"Delimiter,omitempty"`
}

func (v *UploadSettings) Validate() error {
	c := constraint.New("UploadSettings")
	constraint.Min(c, "StartFromRow", v.StartFromRow, 1)
	c.Length("Delimiter", v.Delimiter, 1, 1)
	return c.Err()
}

// RelationalTable is a table of a relational data source.
type RelationalTable struct {
	DataSourceArn *string       `json:"DataSourceArn,omitempty"`
	Schema        *string       `json:"Schema,omitempty"`
	Name          *string       `json:"Name,omitempty"`
	InputColumns  []InputColumn `json:"InputColumns,omitempty"`
}

func (v *RelationalTable) Validate() error {
	c := constraint.New("RelationalTable")
	c.Required("DataSourceArn", v.DataSourceArn != nil)
	c.Length("Schema", v.Schema, 0, 64)
	c.String("Name", v.Name, 1, 64, nil)
	checkInputColumns(c, "InputColumns", v.InputColumns, true)
	return c.Err()
}

// CustomSql is a physical table defined by a SQL query.
type CustomSql struct {
	DataSourceArn *string       `json:"DataSourceArn,omitempty"`
	Name          *string       `json:"Name,omitempty"`
	SqlQuery      *string       `json:"SqlQuery,omitempty"`
	Columns       []InputColumn `json:"Columns,omitempty"`
}

func (v *CustomSql) Validate() error {
	c := constraint.New("CustomSql")
	c.Required("DataSourceArn", v.DataSourceArn != nil)
	c.String("Name", v.Name, 1, 128, nil)
	c.String("SqlQuery", v.SqlQuery, 1, 65536, nil)
	checkInputColumns(c, "Columns", v.Columns, false)
	return c.Err()
}

// S3Source is a physical table read from files in S3.
type S3Source struct {
	DataSourceArn  *string         `json:"DataSourceArn,omitempty"`
	UploadSettings *UploadSettings `json:"UploadSettings,omitempty"`
	InputColumns   []InputColumn   `json:"InputColumns,omitempty"`
}

func (v *S3Source) Validate() error {
	c := constraint.New("S3Source")
	c.Required("DataSourceArn", v.DataSourceArn != nil)
	if v.UploadSettings != nil {
		c.Nested("UploadSettings", v.UploadSettings.Validate())
	}
	checkInputColumns(c, "InputColumns", v.InputColumns, true)
	return c.Err()
}

// PhysicalTable is the source of one physical table of a data set.
//
// The following types satisfy this interface:
//
//	PhysicalTableMemberRelationalTable
//	PhysicalTableMemberCustomSql
//	PhysicalTableMemberS3Source
type PhysicalTable interface {
	isPhysicalTable()
}

type PhysicalTableMemberRelationalTable struct {
	Value RelationalTable
}

func (*PhysicalTableMemberRelationalTable) isPhysicalTable() {}

func (m PhysicalTableMemberRelationalTable) MarshalJSON() ([]byte, error) {
	return encodeUnion("RelationalTable", m.Value)
}

type PhysicalTableMemberCustomSql struct {
	Value CustomSql
}

func (*PhysicalTableMemberCustomSql) isPhysicalTable() {}

func (m PhysicalTableMemberCustomSql) MarshalJSON() ([]byte, error) {
	return encodeUnion("CustomSql", m.Value)
}

type PhysicalTableMemberS3Source struct {
	Value S3Source
}

func (*PhysicalTableMemberS3Source) isPhysicalTable() {}

func (m PhysicalTableMemberS3Source) MarshalJSON() ([]byte, error) {
	return encodeUnion("S3Source", m.Value)
}

// UnmarshalPhysicalTable decodes a PhysicalTable union object.
func UnmarshalPhysicalTable(data []byte) (PhysicalTable, error) {
	tag, raw, err := decodeUnion("PhysicalTable", data)
	if err != nil {
		return nil, err
	}
	var (
		v   PhysicalTable
		dst any
	)
	switch tag {
	case "RelationalTable":
		m := &PhysicalTableMemberRelationalTable{}
		v, dst = m, &m.Value
	case "CustomSql":
		m := &PhysicalTableMemberCustomSql{}
		v, dst = m, &m.Value
	case "S3Source":
		m := &PhysicalTableMemberS3Source{}
		v, dst = m, &m.Value
	default:
		return unknownMember(tag, raw), nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, fmt.Errorf("PhysicalTable.%s: %w", tag, err)
	}
	return v, nil
}

// ValidatePhysicalTable checks the selected physical table member.
func ValidatePhysicalTable(v PhysicalTable) error {
	c := constraint.New("PhysicalTable")
	switch m := v.(type) {
	case *PhysicalTableMemberRelationalTable:
		c.Nested("RelationalTable", m.Value.Validate())
	case *PhysicalTableMemberCustomSql:
		c.Nested("CustomSql", m.Value.Validate())
	case *PhysicalTableMemberS3Source:
		c.Nested("S3Source", m.Value.Validate())
	case *UnknownUnionMember:
		checkUnknown(c, "PhysicalTable", m)
	case nil:
		c.Add(constraint.NewErrParamUnion("PhysicalTable", ""))
	}
	return c.Err()
}

// JoinInstruction joins two logical tables.
type JoinInstruction struct {
	LeftOperand  *string  `json:"LeftOperand,omitempty"`
	RightOperand *string  `json:"RightOperand,omitempty"`
	Type         JoinType `json:"Type,omitempty"`
	OnClause     *string  `json:"OnClause,omitempty"`
}

func (v *JoinInstruction) Validate() error {
	c := constraint.New("JoinInstruction")
	c.String("LeftOperand", v.LeftOperand, 1, 64, constraint.TableID)
	c.String("RightOperand", v.RightOperand, 1, 64, constraint.TableID)
	c.Required("Type", v.Type != "")
	c.String("OnClause", v.OnClause, 1, 512, nil)
	return c.Err()
}

// LogicalTableSource is either a join of two logical tables or a physical table.
//
// The following types satisfy this interface:
//
//	LogicalTableSourceMemberJoinInstruction
//	LogicalTableSourceMemberPhysicalTableId
type LogicalTableSource interface {
	isLogicalTableSource()
}

type LogicalTableSourceMemberJoinInstruction struct {
	Value JoinInstruction
}

func (*LogicalTableSourceMemberJoinInstruction) isLogicalTableSource() {}

func (m LogicalTableSourceMemberJoinInstruction) MarshalJSON() ([]byte, error) {
	return encodeUnion("JoinInstruction", m.Value)
}

type LogicalTableSourceMemberPhysicalTableId struct {
	Value string
}

func (*LogicalTableSourceMemberPhysicalTableId) isLogicalTableSource() {}

func (m LogicalTableSourceMemberPhysicalTableId) MarshalJSON() ([]byte, error) {
	return encodeUnion("PhysicalTableId", m.Value)
}

// UnmarshalLogicalTableSource decodes a LogicalTableSource union object.
func UnmarshalLogicalTableSource(data []byte) (LogicalTableSource, error) {
	tag, raw, err := decodeUnion("LogicalTableSource", data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "JoinInstruction":
		var m LogicalTableSourceMemberJoinInstruction
		if err := json.Unmarshal(raw, &m.Value); err != nil {
			return nil, fmt.Errorf("LogicalTableSource.%s: %w", tag, err)
		}
		return &m, nil
	case "PhysicalTableId":
		var m LogicalTableSourceMemberPhysicalTableId
		if err := json.Unmarshal(raw, &m.Value); err != nil {
			return nil, fmt.Errorf("LogicalTableSource.%s: %w", tag, err)
		}
		return &m, nil
	}
	return unknownMember(tag, raw), nil
}

func validateLogicalTableSource(v LogicalTableSource) error {
	c := constraint.New("LogicalTableSource")
	switch m := v.(type) {
	case *LogicalTableSourceMemberJoinInstruction:
		c.Nested("JoinInstruction", m.Value.Validate())
	case *LogicalTableSourceMemberPhysicalTableId:
		c.OptionalString("PhysicalTableId", &m.Value, 1, 64, constraint.TableID)
	case *UnknownUnionMember:
		checkUnknown(c, "LogicalTableSource", m)
	}
	return c.Err()
}

// CalculatedColumn is a column computed from an expression.
type CalculatedColumn struct {
	ColumnName *string `json:"ColumnName,omitempty"`
	ColumnId   *string `json:"ColumnId,omitempty"`
	Expression *string `json:"Expression,omitempty"`
}

func (v *CalculatedColumn) Validate() error {
	c := constraint.New("CalculatedColumn")
	c.String("ColumnName", v.ColumnName, 1, 128, nil)
	c.String("ColumnId", v.ColumnId, 1, 64, nil)
	c.String("Expression", v.Expression, 1, 4096, nil)
	return c.Err()
}

// ProjectOperation keeps only the listed columns.
type ProjectOperation struct {
	ProjectedColumns []string `json:"ProjectedColumns,omitempty"`
}

// FilterOperation keeps the rows matching a condition.
type FilterOperation struct {
	ConditionExpression *string `json:"ConditionExpression,omitempty"`
}

// CreateColumnsOperation adds calculated columns.
type CreateColumnsOperation struct {
	Columns []CalculatedColumn `json:"Columns,omitempty"`
}

// RenameColumnOperation renames one column.
type RenameColumnOperation struct {
	ColumnName    *string `json:"ColumnName,omitempty"`
	NewColumnName *string `json:"NewColumnName,omitempty"`
}

// CastColumnTypeOperation changes the type of one column.
type CastColumnTypeOperation struct {
	ColumnName    *string        `json:"ColumnName,omitempty"`
	NewColumnType ColumnDataType `json:"NewColumnType,omitempty"`
	Format        *string        `json:"Format,omitempty"`
}

// TagColumnOperation attaches tags to one column.
type TagColumnOperation struct {
	ColumnName *string     `json:"ColumnName,omitempty"`
	Tags       []ColumnTag `json:"Tags,omitempty"`
}

func (v *TagColumnOperation) UnmarshalJSON(b []byte) error {
	type plain TagColumnOperation
	aux := struct {
		*plain
		Tags []json.RawMessage `json:"Tags,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	tags, err := decodeUnionList(aux.Tags, UnmarshalColumnTag)
	if err != nil {
		return fmt.Errorf("Tags%w", err)
	}
	v.Tags = tags
	return nil
}

// TransformOperation is one step of a logical table's transform pipeline.
//
// The following types satisfy this interface:
//
//	TransformOperationMemberProjectOperation
//	TransformOperationMemberFilterOperation
//	TransformOperationMemberCreateColumnsOperation
//	TransformOperationMemberRenameColumnOperation
//	TransformOperationMemberCastColumnTypeOperation
//	TransformOperationMemberTagColumnOperation
type TransformOperation interface {
	isTransformOperation()
}

type TransformOperationMemberProjectOperation struct {
	Value ProjectOperation
}

type TransformOperationMemberFilterOperation struct {
	Value FilterOperation
}

type TransformOperationMemberCreateColumnsOperation struct {
	Value CreateColumnsOperation
}

type TransformOperationMemberRenameColumnOperation struct {
	Value RenameColumnOperation
}

type TransformOperationMemberCastColumnTypeOperation struct {
	Value CastColumnTypeOperation
}

type TransformOperationMemberTagColumnOperation struct {
	Value TagColumnOperation
}

func (*TransformOperationMemberProjectOperation) isTransformOperation()        {}
func (*TransformOperationMemberFilterOperation) isTransformOperation()         {}
func (*TransformOperationMemberCreateColumnsOperation) isTransformOperation()  {}
func (*TransformOperationMemberRenameColumnOperation) isTransformOperation()   {}
func (*TransformOperationMemberCastColumnTypeOperation) isTransformOperation() {}
func (*TransformOperationMemberTagColumnOperation) isTransformOperation()      {}

func (m TransformOperationMemberProjectOperation) MarshalJSON() ([]byte, error) {
	return encodeUnion("ProjectOperation", m.Value)
}

func (m TransformOperationMemberFilterOperation) MarshalJSON() ([]byte, error) {
	return encodeUnion("FilterOperation", m.Value)
}

func (m TransformOperationMemberCreateColumnsOperation) MarshalJSON() ([]byte, error) {
	return encodeUnion("CreateColumnsOperation", m.Value)
}

func (m TransformOperationMemberRenameColumnOperation) MarshalJSON() ([]byte, error) {
	return encodeUnion("RenameColumnOperation", m.Value)
}

func (m TransformOperationMemberCastColumnTypeOperation) MarshalJSON() ([]byte, error) {
	return encodeUnion("CastColumnTypeOperation", m.Value)
}

func (m TransformOperationMemberTagColumnOperation) MarshalJSON() ([]byte, error) {
	return encodeUnion("TagColumnOperation", m.Value)
}

// UnmarshalTransformOperation decodes a TransformOperation union object.
func UnmarshalTransformOperation(data []byte) (TransformOperation, error) {
	tag, raw, err := decodeUnion("TransformOperation", data)
	if err != nil {
		return nil, err
	}
	var (
		v   TransformOperation
		dst any
	)
	switch tag {
	case "ProjectOperation":
		m := &TransformOperationMemberProjectOperation{}
		v, dst = m, &m.Value
	case "FilterOperation":
		m := &TransformOperationMemberFilterOperation{}
		v, dst = m, &m.Value
	case "CreateColumnsOperation":
		m := &TransformOperationMemberCreateColumnsOperation{}
		v, dst = m, &m.Value
	case "RenameColumnOperation":
		m := &TransformOperationMemberRenameColumnOperation{}
		v, dst = m, &m.Value
	case "CastColumnTypeOperation":
		m := &TransformOperationMemberCastColumnTypeOperation{}
		v, dst = m, &m.Value
	case "TagColumnOperation":
		m := &TransformOperationMemberTagColumnOperation{}
		v, dst = m, &m.Value
	default:
		return unknownMember(tag, raw), nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, fmt.Errorf("TransformOperation.%s: %w", tag, err)
	}
	return v, nil
}

func validateTransformOperation(v TransformOperation) error {
	c := constraint.New("TransformOperation")
	switch m := v.(type) {
	case *TransformOperationMemberProjectOperation:
		op := constraint.New("ProjectOperation")
		if op.Required("ProjectedColumns", m.Value.ProjectedColumns != nil) {
			op.Items("ProjectedColumns", len(m.Value.ProjectedColumns), 1, 2000)
		}
		c.Nested("ProjectOperation", op.Err())
	case *TransformOperationMemberFilterOperation:
		op := constraint.New("FilterOperation")
		op.String("ConditionExpression", m.Value.ConditionExpression, 1, 4096, nil)
		c.Nested("FilterOperation", op.Err())
	case *TransformOperationMemberCreateColumnsOperation:
		op := constraint.New("CreateColumnsOperation")
		cols := m.Value.Columns
		if op.Required("Columns", cols != nil) {
			op.Items("Columns", len(cols), 1, 128)
			op.Each("Columns", len(cols), func(i int) error { return cols[i].Validate() })
		}
		c.Nested("CreateColumnsOperation", op.Err())
	case *TransformOperationMemberRenameColumnOperation:
		op := constraint.New("RenameColumnOperation")
		op.String("ColumnName", m.Value.ColumnName, 1, 128, nil)
		op.String("NewColumnName", m.Value.NewColumnName, 1, 128, nil)
		c.Nested("RenameColumnOperation", op.Err())
	case *TransformOperationMemberCastColumnTypeOperation:
		op := constraint.New("CastColumnTypeOperation")
		op.String("ColumnName", m.Value.ColumnName, 1, 128, nil)
		op.Required("NewColumnType", m.Value.NewColumnType != "")
		op.Length("Format", m.Value.Format, 0, 32)
		c.Nested("CastColumnTypeOperation", op.Err())
	case *TransformOperationMemberTagColumnOperation:
		op := constraint.New("TagColumnOperation")
		op.String("ColumnName", m.Value.ColumnName, 1, 128, nil)
		tags := m.Value.Tags
		if op.Required("Tags", tags != nil) {
			op.Items("Tags", len(tags), 1, 16)
			op.Each("Tags", len(tags), func(i int) error { return validateColumnTag(tags[i]) })
		}
		c.Nested("TagColumnOperation", op.Err())
	case *UnknownUnionMember:
		checkUnknown(c, "TransformOperation", m)
	}
	return c.Err()
}

// ColumnDescription is a free-text description of a column.
type ColumnDescription struct {
	Text *string `json:"Text,omitempty"`
}

// ColumnTag is one tag on a column.
//
// The following types satisfy this interface:
//
//	ColumnTagMemberColumnGeographicRole
//	ColumnTagMemberColumnDescription
type ColumnTag interface {
	isColumnTag()
}

type ColumnTagMemberColumnGeographicRole struct {
	Value GeoSpatialDataRole
}

func (*ColumnTagMemberColumnGeographicRole) isColumnTag() {}

func (m ColumnTagMemberColumnGeographicRole) MarshalJSON() ([]byte, error) {
	return encodeUnion("ColumnGeographicRole", m.Value)
}

type ColumnTagMemberColumnDescription struct {
	Value ColumnDescription
}

func (*ColumnTagMemberColumnDescription) isColumnTag() {}

func (m ColumnTagMemberColumnDescription) MarshalJSON() ([]byte, error) {
	return encodeUnion("ColumnDescription", m.Value)
}

// UnmarshalColumnTag decodes a ColumnTag union object.
func UnmarshalColumnTag(data []byte) (ColumnTag, error) {
	tag, raw, err := decodeUnion("ColumnTag", data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "ColumnGeographicRole":
		var m ColumnTagMemberColumnGeographicRole
		if err := json.Unmarshal(raw, &m.Value); err != nil {
			return nil, fmt.Errorf("ColumnTag.%s: %w", tag, err)
		}
		return &m, nil
	case "ColumnDescription":
		var m ColumnTagMemberColumnDescription
		if err := json.Unmarshal(raw, &m.Value); err != nil {
			return nil, fmt.Errorf("ColumnTag.%s: %w", tag, err)
		}
		return &m, nil
	}
	return unknownMember(tag, raw), nil
}

func validateColumnTag(v ColumnTag) error {
	c := constraint.New("ColumnTag")
	switch m := v.(type) {
	case *ColumnTagMemberColumnDescription:
		d := constraint.New("ColumnDescription")
		d.Length("Text", m.Value.Text, 0, 500)
		c.Nested("ColumnDescription", d.Err())
	case *UnknownUnionMember:
		checkUnknown(c, "ColumnTag", m)
	}
	return c.Err()
}

// GeoSpatialColumnGroup groups columns forming a geographic hierarchy.
type GeoSpatialColumnGroup struct {
	Name        *string               `json:"Name,omitempty"`
	CountryCode GeoSpatialCountryCode `json:"CountryCode,omitempty"`
	Columns     []string              `json:"Columns,omitempty"`
}

func (v *GeoSpatialColumnGroup) Validate() error {
	c := constraint.New("GeoSpatialColumnGroup")
	c.String("Name", v.Name, 1, 64, nil)
	c.Required("CountryCode", v.CountryCode != "")
	if c.Required("Columns", v.Columns != nil) {
		c.Items("Columns", len(v.Columns), 1, 16)
	}
	return c.Err()
}

// ColumnGroup groups columns of a data set.
//
// The following types satisfy this interface:
//
//	ColumnGroupMemberGeoSpatialColumnGroup
type ColumnGroup interface {
	isColumnGroup()
}

type ColumnGroupMemberGeoSpatialColumnGroup struct {
	Value GeoSpatialColumnGroup
}

func (*ColumnGroupMemberGeoSpatialColumnGroup) isColumnGroup() {}

func (m ColumnGroupMemberGeoSpatialColumnGroup) MarshalJSON() ([]byte, error) {
	return encodeUnion("GeoSpatialColumnGroup", m.Value)
}

// UnmarshalColumnGroup decodes a ColumnGroup union object.
func UnmarshalColumnGroup(data []byte) (ColumnGroup, error) {
	tag, raw, err := decodeUnion("ColumnGroup", data)
	if err != nil {
		return nil, err
	}
	if tag != "GeoSpatialColumnGroup" {
		return unknownMember(tag, raw), nil
	}
	var m ColumnGroupMemberGeoSpatialColumnGroup
	if err := json.Unmarshal(raw, &m.Value); err != nil {
		return nil, fmt.Errorf("ColumnGroup.%s: %w", tag, err)
	}
	return &m, nil
}

// ValidateColumnGroup checks the selected column group member.
func ValidateColumnGroup(v ColumnGroup) error {
	c := constraint.New("ColumnGroup")
	switch m := v.(type) {
	case *ColumnGroupMemberGeoSpatialColumnGroup:
		c.Nested("GeoSpatialColumnGroup", m.Value.Validate())
	case *UnknownUnionMember:
		checkUnknown(c, "ColumnGroup", m)
	}
	return c.Err()
}

// LogicalTable is a table built from a source and a pipeline of transforms.
type LogicalTable struct {
	Alias          *string              `json:"Alias,omitempty"`
	DataTransforms []TransformOperation `json:"DataTransforms,omitempty"`
	Source         LogicalTableSource   `json:"Source,omitempty"`
}

func (v *LogicalTable) UnmarshalJSON(b []byte) error {
	type plain LogicalTable
	aux := struct {
		*plain
		DataTransforms []json.RawMessage `json:"DataTransforms,omitempty"`
		Source         json.RawMessage   `json:"Source,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	transforms, err := decodeUnionList(aux.DataTransforms, UnmarshalTransformOperation)
	if err != nil {
		return fmt.Errorf("DataTransforms%w", err)
	}
	source, err := decodeOptionalUnion(aux.Source, UnmarshalLogicalTableSource)
	if err != nil {
		return fmt.Errorf("Source: %w", err)
	}
	v.DataTransforms, v.Source = transforms, source
	return nil
}

func (v *LogicalTable) Validate() error {
	c := constraint.New("LogicalTable")
	c.String("Alias", v.Alias, 1, 64, nil)
	if v.DataTransforms != nil {
		c.Items("DataTransforms", len(v.DataTransforms), 1, 2048)
		c.Each("DataTransforms", len(v.DataTransforms), func(i int) error {
			return validateTransformOperation(v.DataTransforms[i])
		})
	}
	if c.Required("Source", v.Source != nil) {
		c.Nested("Source", validateLogicalTableSource(v.Source))
	}
	return c.Err()
}

// RowLevelPermissionDataSet restricts the rows a principal can see using the rules
// stored in another data set.
type RowLevelPermissionDataSet struct {
	Namespace        *string                  `json:"Namespace,omitempty"`
	Arn              *string                  `json:"Arn,omitempty"`
	PermissionPolicy RowLevelPermissionPolicy `json:"PermissionPolicy,omitempty"`
}

func (v *RowLevelPermissionDataSet) Validate() error {
	c := constraint.New("RowLevelPermissionDataSet")
	c.OptionalString("Namespace", v.Namespace, 0, 64, constraint.Namespace)
	c.Required("Arn", v.Arn != nil)
	c.Required("PermissionPolicy", v.PermissionPolicy != "")
	return c.Err()
}

// OutputColumn is a column of a data set as analyses see it.
type OutputColumn struct {
	Name        *string        `json:"Name,omitempty"`
	Description *string        `json:"Description,omitempty"`
	Type        ColumnDataType `json:"Type,omitempty"`
}

// DataSet is a prepared set of tables ready for analysis.
type DataSet struct {
	Arn                          *string                    `json:"Arn,omitempty"`
	DataSetId                    *string                    `json:"DataSetId,omitempty"`
	Name                         *string                    `json:"Name,omitempty"`
	CreatedTime                  *Timestamp                 `json:"CreatedTime,omitempty"`
	LastUpdatedTime              *Timestamp                 `json:"LastUpdatedTime,omitempty"`
	PhysicalTableMap             map[string]PhysicalTable   `json:"PhysicalTableMap,omitempty"`
	LogicalTableMap              map[string]LogicalTable    `json:"LogicalTableMap,omitempty"`
	OutputColumns                []OutputColumn             `json:"OutputColumns,omitempty"`
	ImportMode                   DataSetImportMode          `json:"ImportMode,omitempty"`
	ConsumedSpiceCapacityInBytes int64                      `json:"ConsumedSpiceCapacityInBytes,omitempty"`
	ColumnGroups                 []ColumnGroup              `json:"ColumnGroups,omitempty"`
	RowLevelPermissionDataSet    *RowLevelPermissionDataSet `json:"RowLevelPermissionDataSet,omitempty"`
}

func (v *DataSet) UnmarshalJSON(b []byte) error {
	type plain DataSet
	aux := struct {
		*plain
		PhysicalTableMap map[string]json.RawMessage `json:"PhysicalTableMap,omitempty"`
		ColumnGroups     []json.RawMessage          `json:"ColumnGroups,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	tables, err := DecodePhysicalTableMap(aux.PhysicalTableMap)
	if err != nil {
		return err
	}
	groups, err := DecodeColumnGroups(aux.ColumnGroups)
	if err != nil {
		return err
	}
	v.PhysicalTableMap, v.ColumnGroups = tables, groups
	return nil
}

// DecodePhysicalTableMap decodes the raw entries of a PhysicalTableMap member.
func DecodePhysicalTableMap(raw map[string]json.RawMessage) (map[string]PhysicalTable, error) {
	m, err := decodeUnionMap(raw, UnmarshalPhysicalTable)
	if err != nil {
		return nil, fmt.Errorf("PhysicalTableMap%w", err)
	}
	return m, nil
}

// DecodeColumnGroups decodes the raw elements of a ColumnGroups member.
func DecodeColumnGroups(raw []json.RawMessage) ([]ColumnGroup, error) {
	l, err := decodeUnionList(raw, UnmarshalColumnGroup)
	if err != nil {
		return nil, fmt.Errorf("ColumnGroups%w", err)
	}
	return l, nil
}

// CheckDataSetTables checks the table maps, column groups and row level permission
// members shared by CreateDataSet and UpdateDataSet.
func CheckDataSetTables(c *constraint.Checker, physical map[string]PhysicalTable, logical map[string]LogicalTable, groups []ColumnGroup, rls *RowLevelPermissionDataSet) {
	if c.Required("PhysicalTableMap", physical != nil) {
		c.Items("PhysicalTableMap", len(physical), 0, 16)
		constraint.EachKey(c, "PhysicalTableMap", physical, func(k string, t PhysicalTable) error {
			return ValidatePhysicalTable(t)
		})
	}
	if logical != nil {
		c.Items("LogicalTableMap", len(logical), 1, 32)
		constraint.EachKey(c, "LogicalTableMap", logical, func(k string, t LogicalTable) error {
			return t.Validate()
		})
	}
	if groups != nil {
		c.Items("ColumnGroups", len(groups), 1, 8)
		c.Each("ColumnGroups", len(groups), func(i int) error {
			return ValidateColumnGroup(groups[i])
		})
	}
	if rls != nil {
		c.Nested("RowLevelPermissionDataSet", rls.Validate())
	}
}

// DataSetSummary is the list form of a data set.
type DataSetSummary struct {
	Arn                       *string                    `json:"Arn,omitempty"`
	DataSetId                 *string                    `json:"DataSetId,omitempty"`
	Name                      *string                    `json:"Name,omitempty"`
	CreatedTime               *Timestamp                 `json:"CreatedTime,omitempty"`
	LastUpdatedTime           *Timestamp                 `json:"LastUpdatedTime,omitempty"`
	ImportMode                DataSetImportMode          `json:"ImportMode,omitempty"`
	RowLevelPermissionDataSet *RowLevelPermissionDataSet `json:"RowLevelPermissionDataSet,omitempty"`
}
