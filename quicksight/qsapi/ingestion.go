package qsapi

import (
	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

// checkIngestionKey checks the AwsAccountId/DataSetId/IngestionId triple that addresses one
// ingestion.
func checkIngestionKey(c *constraint.Checker, account, dataSet, ingestion *string) {
	c.AwsAccountID("AwsAccountId", account)
	c.ID("DataSetId", dataSet)
	c.String("IngestionId", ingestion, 1, 128, constraint.IngestionID)
}

type CancelIngestionInput struct {
	// The ID of the AWS account. This member is required.
	AwsAccountId *string `json:"-" location:"uri"`

	// The ID of the dataset used in the ingestion. This member is required.
	DataSetId *string `json:"-" location:"uri"`

	// An ID for the ingestion. This member is required.
	IngestionId *string `json:"-" location:"uri"`
}

func (v *CancelIngestionInput) Validate() error {
	c := constraint.New("CancelIngestionInput")
	checkIngestionKey(c, v.AwsAccountId, v.DataSetId, v.IngestionId)
	return c.Err()
}

type CancelIngestionOutput struct {
	ResultMetadata

	Arn         *string `json:"Arn,omitempty"`
	IngestionId *string `json:"IngestionId,omitempty"`
}

// CreateIngestionInput starts a SPICE ingestion of a data set. The caller chooses
// the ingestion id.
type CreateIngestionInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSetId    *string `json:"-" location:"uri"`
	IngestionId  *string `json:"-" location:"uri"`
}

func (v *CreateIngestionInput) Validate() error {
	c := constraint.New("CreateIngestionInput")
	checkIngestionKey(c, v.AwsAccountId, v.DataSetId, v.IngestionId)
	return c.Err()
}

type CreateIngestionOutput struct {
	ResultMetadata

	Arn             *string               `json:"Arn,omitempty"`
	IngestionId     *string               `json:"IngestionId,omitempty"`
	IngestionStatus types.IngestionStatus `json:"IngestionStatus,omitempty"`
}

type DescribeIngestionInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSetId    *string `json:"-" location:"uri"`
	IngestionId  *string `json:"-" location:"uri"`
}

func (v *DescribeIngestionInput) Validate() error {
	c := constraint.New("DescribeIngestionInput")
	checkIngestionKey(c, v.AwsAccountId, v.DataSetId, v.IngestionId)
	return c.Err()
}

type DescribeIngestionOutput struct {
	ResultMetadata

	Ingestion *types.Ingestion `json:"Ingestion,omitempty"`
}

type ListIngestionsInput struct {
	AwsAccountId *string `json:"-" location:"uri"`
	DataSetId    *string `json:"-" location:"uri"`

	// The token for the next set of results, or nil to start from the beginning.
	NextToken  *string `json:"-" location:"querystring" name:"next-token"`
	MaxResults *int32  `json:"-" location:"querystring" name:"max-results"`
}

func (v *ListIngestionsInput) Validate() error {
	c := constraint.New("ListIngestionsInput")
	c.AwsAccountID("AwsAccountId", v.AwsAccountId)
	c.ID("DataSetId", v.DataSetId)
	checkMaxResults(c, v.MaxResults)
	return c.Err()
}

type ListIngestionsOutput struct {
	ResultMetadata

	Ingestions []types.Ingestion `json:"Ingestions,omitempty"`

	// Nil on the last page.
	NextToken *string `json:"NextToken,omitempty"`
}
