package types

import (
	"github.com/acksell/qsight/quicksight/internal/constraint"
)

// DashboardSourceTemplate is the template a dashboard version is created from,
// with the data sets that fill its placeholders.
type DashboardSourceTemplate struct {
	DataSetReferences []DataSetReference `json:"DataSetReferences,omitempty"`
	Arn               *string            `json:"Arn,omitempty"`
}

// DashboardSourceEntity is the entity a dashboard version is created from.
type DashboardSourceEntity struct {
	SourceTemplate *DashboardSourceTemplate `json:"SourceTemplate,omitempty"`
}

func (v *DashboardSourceEntity) Validate() error {
	c := constraint.New("DashboardSourceEntity")
	if v.SourceTemplate != nil {
		st := constraint.New("SourceTemplate")
		checkDataSetReferences(st, v.SourceTemplate.DataSetReferences)
		st.Required("Arn", v.SourceTemplate.Arn != nil)
		c.Nested("SourceTemplate", st.Err())
	}
	return c.Err()
}

type DashboardError struct {
	Type    DashboardErrorType `json:"Type,omitempty"`
	Message *string            `json:"Message,omitempty"`
}

// DashboardVersion is one immutable version of a dashboard.
type DashboardVersion struct {
	CreatedTime     *Timestamp       `json:"CreatedTime,omitempty"`
	Errors          []DashboardError `json:"Errors,omitempty"`
	VersionNumber   *int64           `json:"VersionNumber,omitempty"`
	Status          ResourceStatus   `json:"Status,omitempty"`
	Arn             *string          `json:"Arn,omitempty"`
	SourceEntityArn *string          `json:"SourceEntityArn,omitempty"`
	Description     *string          `json:"Description,omitempty"`
}

// Dashboard is a published, read-only view of an analysis.
type Dashboard struct {
	DashboardId       *string           `json:"DashboardId,omitempty"`
	Arn               *string           `json:"Arn,omitempty"`
	Name              *string           `json:"Name,omitempty"`
	Version           *DashboardVersion `json:"Version,omitempty"`
	CreatedTime       *Timestamp        `json:"CreatedTime,omitempty"`
	LastPublishedTime *Timestamp        `json:"LastPublishedTime,omitempty"`
	LastUpdatedTime   *Timestamp        `json:"LastUpdatedTime,omitempty"`
}

type DashboardSummary struct {
	Arn                    *string    `json:"Arn,omitempty"`
	DashboardId            *string    `json:"DashboardId,omitempty"`
	Name                   *string    `json:"Name,omitempty"`
	CreatedTime            *Timestamp `json:"CreatedTime,omitempty"`
	LastUpdatedTime        *Timestamp `json:"LastUpdatedTime,omitempty"`
	PublishedVersionNumber *int64     `json:"PublishedVersionNumber,omitempty"`
	LastPublishedTime      *Timestamp `json:"LastPublishedTime,omitempty"`
}

type DashboardVersionSummary struct {
	Arn             *string        `json:"Arn,omitempty"`
	CreatedTime     *Timestamp     `json:"CreatedTime,omitempty"`
	VersionNumber   *int64         `json:"VersionNumber,omitempty"`
	Status          ResourceStatus `json:"Status,omitempty"`
	SourceEntityArn *string        `json:"SourceEntityArn,omitempty"`
	Description     *string        `json:"Description,omitempty"`
}

type AdHocFilteringOption struct {
	AvailabilityStatus DashboardBehavior `json:"AvailabilityStatus,omitempty"`
}

type ExportToCSVOption struct {
	AvailabilityStatus DashboardBehavior `json:"AvailabilityStatus,omitempty"`
}

type SheetControlsOption struct {
	VisibilityState DashboardUIState `json:"VisibilityState,omitempty"`
}

// DashboardPublishOptions controls what viewers of a dashboard may do.
type DashboardPublishOptions struct {
	AdHocFilteringOption *AdHocFilteringOption `json:"AdHocFilteringOption,omitempty"`
	ExportToCSVOption    *ExportToCSVOption    `json:"ExportToCSVOption,omitempty"`
	SheetControlsOption  *SheetControlsOption  `json:"SheetControlsOption,omitempty"`
}

type StringParameter struct {
	Name   *string  `json:"Name,omitempty"`
	Values []string `json:"Values,omitempty"`
}

type IntegerParameter struct {
	Name   *string `json:"Name,omitempty"`
	Values []int64 `json:"Values,omitempty"`
}

type DecimalParameter struct {
	Name   *string   `json:"Name,omitempty"`
	Values []float64 `json:"Values,omitempty"`
}

type DateTimeParameter struct {
	Name   *string     `json:"Name,omitempty"`
	Values []Timestamp `json:"Values,omitempty"`
}

// Parameters are the values of a dashboard's parameters at creation.
type Parameters struct {
	StringParameters   []StringParameter   `json:"StringParameters,omitempty"`
	IntegerParameters  []IntegerParameter  `json:"IntegerParameters,omitempty"`
	DecimalParameters  []DecimalParameter  `json:"DecimalParameters,omitempty"`
	DateTimeParameters []DateTimeParameter `json:"DateTimeParameters,omitempty"`
}

func (v *Parameters) Validate() error {
	c := constraint.New("Parameters")
	checkParameters(c, "StringParameters", len(v.StringParameters), func(i int) (*string, bool) {
		return v.StringParameters[i].Name, v.StringParameters[i].Values != nil
	})
	checkParameters(c, "IntegerParameters", len(v.IntegerParameters), func(i int) (*string, bool) {
		return v.IntegerParameters[i].Name, v.IntegerParameters[i].Values != nil
	})
	checkParameters(c, "DecimalParameters", len(v.DecimalParameters), func(i int) (*string, bool) {
		return v.DecimalParameters[i].Name, v.DecimalParameters[i].Values != nil
	})
	checkParameters(c, "DateTimeParameters", len(v.DateTimeParameters), func(i int) (*string, bool) {
		return v.DateTimeParameters[i].Name, v.DateTimeParameters[i].Values != nil
	})
	return c.Err()
}

func checkParameters(c *constraint.Checker, field string, n int, param func(i int) (*string, bool)) {
	c.Items(field, n, 0, 100)
	c.Each(field, n, func(i int) error {
		name, hasValues := param(i)
		p := constraint.New(field)
		p.String("Name", name, 0, constraint.Unbounded, constraint.NonBlank)
		p.Required("Values", hasValues)
		return p.Err()
	})
}

// DashboardSearchFilter is one condition of a dashboard search.
type DashboardSearchFilter struct {
	Operator FilterOperator           `json:"Operator,omitempty"`
	Name     DashboardFilterAttribute `json:"Name,omitempty"`
	Value    *string                  `json:"Value,omitempty"`
}

func (v *DashboardSearchFilter) Validate() error {
	c := constraint.New("DashboardSearchFilter")
	c.Required("Operator", v.Operator != "")
	return c.Err()
}
