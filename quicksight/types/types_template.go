package types

import (
	"encoding/json"
	"fmt"

	"github.com/acksell/qsight/quicksight/internal/constraint"
)

// DataSetReference binds a data set to a placeholder of a template or analysis.
type DataSetReference struct {
	DataSetPlaceholder *string `json:"DataSetPlaceholder,omitempty"`
	DataSetArn         *string `json:"DataSetArn,omitempty"`
}

func (v *DataSetReference) Validate() error {
	c := constraint.New("DataSetReference")
	c.String("DataSetPlaceholder", v.DataSetPlaceholder, 0, constraint.Unbounded, constraint.NonBlank)
	c.Required("DataSetArn", v.DataSetArn != nil)
	return c.Err()
}

func checkDataSetReferences(c *constraint.Checker, refs []DataSetReference) {
	if c.Required("DataSetReferences", refs != nil) {
		c.Items("DataSetReferences", len(refs), 1, constraint.Unbounded)
		c.Each("DataSetReferences", len(refs), func(i int) error { return refs[i].Validate() })
	}
}

// SourceAnalysis is an analysis a template is created from.
type SourceAnalysis struct {
	Arn               *string            `json:"Arn,omitempty"`
	DataSetReferences []DataSetReference `json:"DataSetReferences,omitempty"`
}

func (v *SourceAnalysis) Validate() error {
	c := constraint.New("SourceAnalysis")
	c.Required("Arn", v.Arn != nil)
	checkDataSetReferences(c, v.DataSetReferences)
	return c.Err()
}

// SourceTemplate is another template a template is created from.
type SourceTemplate struct {
	Arn *string `json:"Arn,omitempty"`
}

// TemplateSourceEntity is the entity a template version is created from.
//
// The following types satisfy this interface:
//
//	TemplateSourceEntityMemberSourceAnalysis
//	TemplateSourceEntityMemberSourceTemplate
type TemplateSourceEntity interface {
	isTemplateSourceEntity()
}

type TemplateSourceEntityMemberSourceAnalysis struct {
	Value SourceAnalysis
}

func (*TemplateSourceEntityMemberSourceAnalysis) isTemplateSourceEntity() {}

func (m TemplateSourceEntityMemberSourceAnalysis) MarshalJSON() ([]byte, error) {
	return encodeUnion("SourceAnalysis", m.Value)
}

type TemplateSourceEntityMemberSourceTemplate struct {
	Value SourceTemplate
}

func (*TemplateSourceEntityMemberSourceTemplate) isTemplateSourceEntity() {}

func (m TemplateSourceEntityMemberSourceTemplate) MarshalJSON() ([]byte, error) {
	return encodeUnion("SourceTemplate", m.Value)
}

// UnmarshalTemplateSourceEntity decodes a TemplateSourceEntity union object.
func UnmarshalTemplateSourceEntity(data []byte) (TemplateSourceEntity, error) {
	tag, raw, err := decodeUnion("TemplateSourceEntity", data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "SourceAnalysis":
		var m TemplateSourceEntityMemberSourceAnalysis
		if err := json.Unmarshal(raw, &m.Value); err != nil {
			return nil, fmt.Errorf("TemplateSourceEntity.%s: %w", tag, err)
		}
		return &m, nil
	case "SourceTemplate":
		var m TemplateSourceEntityMemberSourceTemplate
		if err := json.Unmarshal(raw, &m.Value); err != nil {
			return nil, fmt.Errorf("TemplateSourceEntity.%s: %w", tag, err)
		}
		return &m, nil
	}
	return unknownMember(tag, raw), nil
}

// ValidateTemplateSourceEntity checks the selected source entity member.
func ValidateTemplateSourceEntity(v TemplateSourceEntity) error {
	c := constraint.New("TemplateSourceEntity")
	switch m := v.(type) {
	case *TemplateSourceEntityMemberSourceAnalysis:
		c.Nested("SourceAnalysis", m.Value.Validate())
	case *TemplateSourceEntityMemberSourceTemplate:
		st := constraint.New("SourceTemplate")
		st.Required("Arn", m.Value.Arn != nil)
		c.Nested("SourceTemplate", st.Err())
	case *UnknownUnionMember:
		checkUnknown(c, "TemplateSourceEntity", m)
	}
	return c.Err()
}

// SourceArn is the ARN of the entity a template version was created from.
func SourceArn(v TemplateSourceEntity) *string {
	switch m := v.(type) {
	case *TemplateSourceEntityMemberSourceAnalysis:
		return m.Value.Arn
	case *TemplateSourceEntityMemberSourceTemplate:
		return m.Value.Arn
	}
	return nil
}

// TemplateError is a problem found while creating a template version.
type TemplateError struct {
	Type    TemplateErrorType `json:"Type,omitempty"`
	Message *string           `json:"Message,omitempty"`
}

type ColumnSchema struct {
	Name           *string `json:"Name,omitempty"`
	DataType       *string `json:"DataType,omitempty"`
	GeographicRole *string `json:"GeographicRole,omitempty"`
}

type DataSetSchema struct {
	ColumnSchemaList []ColumnSchema `json:"ColumnSchemaList,omitempty"`
}

type ColumnGroupColumnSchema struct {
	Name *string `json:"Name,omitempty"`
}

type ColumnGroupSchema struct {
	Name                        *string                   `json:"Name,omitempty"`
	ColumnGroupColumnSchemaList []ColumnGroupColumnSchema `json:"ColumnGroupColumnSchemaList,omitempty"`
}

// DataSetConfiguration is the schema a template expects behind one placeholder.
type DataSetConfiguration struct {
	Placeholder           *string             `json:"Placeholder,omitempty"`
	DataSetSchema         *DataSetSchema      `json:"DataSetSchema,omitempty"`
	ColumnGroupSchemaList []ColumnGroupSchema `json:"ColumnGroupSchemaList,omitempty"`
}

// TemplateVersion is one immutable version of a template.
type TemplateVersion struct {
	CreatedTime           *Timestamp             `json:"CreatedTime,omitempty"`
	Errors                []TemplateError        `json:"Errors,omitempty"`
	VersionNumber         *int64                 `json:"VersionNumber,omitempty"`
	Status                ResourceStatus         `json:"Status,omitempty"`
	DataSetConfigurations []DataSetConfiguration `json:"DataSetConfigurations,omitempty"`
	Description           *string                `json:"Description,omitempty"`
	SourceEntityArn       *string                `json:"SourceEntityArn,omitempty"`
}

// Template is a reusable analysis layout with data set placeholders.
type Template struct {
	Arn             *string          `json:"Arn,omitempty"`
	Name            *string          `json:"Name,omitempty"`
	Version         *TemplateVersion `json:"Version,omitempty"`
	TemplateId      *string          `json:"TemplateId,omitempty"`
	LastUpdatedTime *Timestamp       `json:"LastUpdatedTime,omitempty"`
	CreatedTime     *Timestamp       `json:"CreatedTime,omitempty"`
}

type TemplateSummary struct {
	Arn                 *string    `json:"Arn,omitempty"`
	TemplateId          *string    `json:"TemplateId,omitempty"`
	Name                *string    `json:"Name,omitempty"`
	LatestVersionNumber *int64     `json:"LatestVersionNumber,omitempty"`
	CreatedTime         *Timestamp `json:"CreatedTime,omitempty"`
	LastUpdatedTime     *Timestamp `json:"LastUpdatedTime,omitempty"`
}

type TemplateVersionSummary struct {
	Arn           *string        `json:"Arn,omitempty"`
	VersionNumber *int64         `json:"VersionNumber,omitempty"`
	CreatedTime   *Timestamp     `json:"CreatedTime,omitempty"`
	Status        ResourceStatus `json:"Status,omitempty"`
	Description   *string        `json:"Description,omitempty"`
}

// TemplateAlias points a name at one version of a template.
type TemplateAlias struct {
	AliasName             *string `json:"AliasName,omitempty"`
	Arn                   *string `json:"Arn,omitempty"`
	TemplateVersionNumber *int64  `json:"TemplateVersionNumber,omitempty"`
}

// Reserved alias names. They resolve to a version without being stored.
const (
	AliasLatest    = "$LATEST"
	AliasPublished = "$PUBLISHED"
)
