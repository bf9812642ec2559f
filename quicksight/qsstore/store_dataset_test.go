package qsstore

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

func createAthenaSource(t *testing.T, store *Store, id string) *qsapi.CreateDataSourceOutput {
	t.Helper()
	out, err := store.CreateDataSource(context.Background(), &qsapi.CreateDataSourceInput{
		AwsAccountId: aws.String(testAccount),
		DataSourceId: aws.String(id),
		Name:         aws.String("Athena " + id),
		Type:         types.DataSourceTypeAthena,
		DataSourceParameters: &types.DataSourceParametersMemberAthenaParameters{
			Value: types.AthenaParameters{WorkGroup: aws.String("primary")},
		},
		Tags: []types.Tag{{Key: aws.String("team"), Value: aws.String("bi")}},
	})
	require.NoError(t, err)
	return out
}

func salesTables(dataSourceArn string) map[string]types.PhysicalTable {
	return map[string]types.PhysicalTable{
		"sales": &types.PhysicalTableMemberRelationalTable{Value: types.RelationalTable{
			DataSourceArn: aws.String(dataSourceArn),
			Schema:        aws.String("public"),
			Name:          aws.String("sales"),
			InputColumns: []types.InputColumn{
				{Name: aws.String("region"), Type: types.InputColumnDataTypeString},
				{Name: aws.String("units"), Type: types.InputColumnDataTypeInteger},
				{Name: aws.String("price"), Type: types.InputColumnDataTypeDecimal},
				{Name: aws.String("sold_at"), Type: types.InputColumnDataTypeDatetime},
				{Name: aws.String("returned"), Type: types.InputColumnDataTypeBit},
				{Name: aws.String("meta"), Type: types.InputColumnDataTypeJson},
			},
		}},
	}
}

func createDataSet(t *testing.T, store *Store, id string, mode types.DataSetImportMode) *qsapi.CreateDataSetOutput {
	t.Helper()
	source := createAthenaSource(t, store, id+"-source")
	out, err := store.CreateDataSet(context.Background(), &qsapi.CreateDataSetInput{
		AwsAccountId:     aws.String(testAccount),
		DataSetId:        aws.String(id),
		Name:             aws.String("Sales " + id),
		PhysicalTableMap: salesTables(*source.Arn),
		ImportMode:       mode,
	})
	require.NoError(t, err)
	return out
}

// =============================================================================
// Data sources
// =============================================================================

func TestStore_DataSources(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := createAthenaSource(t, store, "athena")
	assert.Equal(t, "arn:aws:quicksight:eu-west-1:111122223333:datasource/athena", *created.Arn)
	assert.Equal(t, types.ResourceStatusCreationSuccessful, created.CreationStatus)

	t.Run("parameters survive storage", func(t *testing.T) {
		out, err := store.DescribeDataSource(ctx, &qsapi.DescribeDataSourceInput{
			AwsAccountId: aws.String(testAccount),
			DataSourceId: aws.String("athena"),
		})
		require.NoError(t, err)
		params, ok := out.DataSource.DataSourceParameters.(*types.DataSourceParametersMemberAthenaParameters)
		require.True(t, ok, "got %T", out.DataSource.DataSourceParameters)
		assert.Equal(t, "primary", *params.Value.WorkGroup)
		assert.True(t, testNow.Equal(out.DataSource.CreatedTime.Time))
	})

	t.Run("update keeps parameters when unset", func(t *testing.T) {
		out, err := store.UpdateDataSource(ctx, &qsapi.UpdateDataSourceInput{
			AwsAccountId: aws.String(testAccount),
			DataSourceId: aws.String("athena"),
			Name:         aws.String("Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, types.ResourceStatusUpdateSuccessful, out.UpdateStatus)

		got, err := store.DescribeDataSource(ctx, &qsapi.DescribeDataSourceInput{
			AwsAccountId: aws.String(testAccount),
			DataSourceId: aws.String("athena"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", *got.DataSource.Name)
		assert.IsType(t, &types.DataSourceParametersMemberAthenaParameters{}, got.DataSource.DataSourceParameters)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := store.CreateDataSource(ctx, &qsapi.CreateDataSourceInput{
			AwsAccountId: aws.String(testAccount),
			DataSourceId: aws.String("athena"),
			Name:         aws.String("again"),
			Type:         types.DataSourceTypeAthena,
		})
		var exists *types.ResourceExistsException
		require.ErrorAs(t, err, &exists)
		assert.Equal(t, types.ExceptionResourceTypeDataSource, exists.ResourceType)
	})

	t.Run("permissions", func(t *testing.T) {
		principal := "arn:aws:quicksight:eu-west-1:111122223333:user/default/ann"
		_, err := store.UpdateDataSourcePermissions(ctx, &qsapi.UpdateDataSourcePermissionsInput{
			AwsAccountId: aws.String(testAccount),
			DataSourceId: aws.String("athena"),
			GrantPermissions: []types.ResourcePermission{
				{Principal: aws.String(principal), Actions: []string{"quicksight:DescribeDataSource"}},
			},
		})
		require.NoError(t, err)

		out, err := store.DescribeDataSourcePermissions(ctx, &qsapi.DescribeDataSourcePermissionsInput{
			AwsAccountId: aws.String(testAccount),
			DataSourceId: aws.String("athena"),
		})
		require.NoError(t, err)
		assert.Equal(t, created.Arn, out.DataSourceArn)
		require.Len(t, out.Permissions, 1)
		assert.Equal(t, principal, *out.Permissions[0].Principal)
	})

	t.Run("delete drops tags", func(t *testing.T) {
		_, err := store.DeleteDataSource(ctx, &qsapi.DeleteDataSourceInput{
			AwsAccountId: aws.String(testAccount),
			DataSourceId: aws.String("athena"),
		})
		require.NoError(t, err)

		list, err := store.ListDataSources(ctx, &qsapi.ListDataSourcesInput{AwsAccountId: aws.String(testAccount)})
		require.NoError(t, err)
		assert.Empty(t, list.DataSources)

		_, err = store.ListTagsForResource(ctx, &qsapi.ListTagsForResourceInput{ResourceArn: created.Arn})
		var nf *types.ResourceNotFoundException
		require.ErrorAs(t, err, &nf)
	})
}

// =============================================================================
// Data sets
// =============================================================================

func TestOutputColumns(t *testing.T) {
	cols := outputColumns(salesTables("arn:aws:quicksight:eu-west-1:111122223333:datasource/x"))
	var got []types.ColumnDataType
	for _, c := range cols {
		got = append(got, c.Type)
	}
	assert.Equal(t, []types.ColumnDataType{
		types.ColumnDataTypeString,
		types.ColumnDataTypeInteger,
		types.ColumnDataTypeDecimal,
		types.ColumnDataTypeDatetime,
		types.ColumnDataTypeInteger,
		types.ColumnDataTypeString,
	}, got)
}

func TestStore_DataSets(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("spice data set starts an initial ingestion", func(t *testing.T) {
		out := createDataSet(t, store, "spice", types.DataSetImportModeSpice)
		require.NotNil(t, out.IngestionId)
		assert.Equal(t, "arn:aws:quicksight:eu-west-1:111122223333:dataset/spice/ingestion/"+*out.IngestionId, *out.IngestionArn)

		ing, err := store.DescribeIngestion(ctx, &qsapi.DescribeIngestionInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("spice"),
			IngestionId:  out.IngestionId,
		})
		require.NoError(t, err)
		assert.Equal(t, types.IngestionStatusQueued, ing.Ingestion.IngestionStatus)
		assert.Equal(t, types.IngestionRequestTypeInitialIngestion, ing.Ingestion.RequestType)
	})

	t.Run("direct query data set has no ingestion", func(t *testing.T) {
		out := createDataSet(t, store, "direct", types.DataSetImportModeDirectQuery)
		assert.Nil(t, out.IngestionId)
		assert.Nil(t, out.IngestionArn)
	})

	t.Run("describe derives output columns", func(t *testing.T) {
		out, err := store.DescribeDataSet(ctx, &qsapi.DescribeDataSetInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("direct"),
		})
		require.NoError(t, err)
		assert.Len(t, out.DataSet.OutputColumns, 6)
		assert.IsType(t, &types.PhysicalTableMemberRelationalTable{}, out.DataSet.PhysicalTableMap["sales"])
	})

	t.Run("update of a spice data set queues an edit", func(t *testing.T) {
		describe, err := store.DescribeDataSet(ctx, &qsapi.DescribeDataSetInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("spice"),
		})
		require.NoError(t, err)

		out, err := store.UpdateDataSet(ctx, &qsapi.UpdateDataSetInput{
			AwsAccountId:     aws.String(testAccount),
			DataSetId:        aws.String("spice"),
			Name:             aws.String("Sales v2"),
			PhysicalTableMap: describe.DataSet.PhysicalTableMap,
			ImportMode:       types.DataSetImportModeSpice,
		})
		require.NoError(t, err)
		require.NotNil(t, out.IngestionId)

		ings, err := store.ListIngestions(ctx, &qsapi.ListIngestionsInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("spice"),
		})
		require.NoError(t, err)
		require.Len(t, ings.Ingestions, 2)
		var requestTypes []types.IngestionRequestType
		for _, ing := range ings.Ingestions {
			requestTypes = append(requestTypes, ing.RequestType)
		}
		assert.ElementsMatch(t, []types.IngestionRequestType{
			types.IngestionRequestTypeInitialIngestion,
			types.IngestionRequestTypeEdit,
		}, requestTypes)
	})

	t.Run("list returns summaries", func(t *testing.T) {
		out, err := store.ListDataSets(ctx, &qsapi.ListDataSetsInput{AwsAccountId: aws.String(testAccount)})
		require.NoError(t, err)
		require.Len(t, out.DataSetSummaries, 2)
		assert.Equal(t, "direct", *out.DataSetSummaries[0].DataSetId)
		assert.Equal(t, "Sales v2", *out.DataSetSummaries[1].Name)
	})

	t.Run("delete removes ingestions", func(t *testing.T) {
		_, err := store.DeleteDataSet(ctx, &qsapi.DeleteDataSetInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("spice"),
		})
		require.NoError(t, err)

		var nf *types.ResourceNotFoundException
		_, err = store.ListIngestions(ctx, &qsapi.ListIngestionsInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("spice"),
		})
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, types.ExceptionResourceTypeDataSet, nf.ResourceType)
	})
}

// =============================================================================
// Ingestions
// =============================================================================

func TestStore_Ingestions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	createDataSet(t, store, "spice", types.DataSetImportModeSpice)
	createDataSet(t, store, "direct", types.DataSetImportModeDirectQuery)

	ingest := func(dataSet, id string) (*qsapi.CreateIngestionOutput, error) {
		return store.CreateIngestion(ctx, &qsapi.CreateIngestionInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String(dataSet),
			IngestionId:  aws.String(id),
		})
	}

	out, err := ingest("spice", "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, types.IngestionStatusQueued, out.IngestionStatus)

	t.Run("duplicate id", func(t *testing.T) {
		_, err := ingest("spice", "refresh-1")
		var exists *types.ResourceExistsException
		require.ErrorAs(t, err, &exists)
		assert.Equal(t, types.ExceptionResourceTypeIngestion, exists.ResourceType)
	})

	t.Run("direct query cannot ingest", func(t *testing.T) {
		_, err := ingest("direct", "refresh-1")
		var invalid *types.InvalidParameterValueException
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown data set", func(t *testing.T) {
		_, err := ingest("missing", "refresh-1")
		var nf *types.ResourceNotFoundException
		require.ErrorAs(t, err, &nf)
	})

	t.Run("cancel", func(t *testing.T) {
		cancel := &qsapi.CancelIngestionInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("spice"),
			IngestionId:  aws.String("refresh-1"),
		}
		res, err := store.CancelIngestion(ctx, cancel)
		require.NoError(t, err)
		assert.Equal(t, out.Arn, res.Arn)

		got, err := store.DescribeIngestion(ctx, &qsapi.DescribeIngestionInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("spice"),
			IngestionId:  aws.String("refresh-1"),
		})
		require.NoError(t, err)
		assert.Equal(t, types.IngestionStatusCancelled, got.Ingestion.IngestionStatus)
		require.NotNil(t, got.Ingestion.ErrorInfo)
		assert.Equal(t, types.IngestionErrorTypeIngestionCanceled, got.Ingestion.ErrorInfo.Type)
		assert.Equal(t, int64(0), *got.Ingestion.IngestionTimeInSeconds)

		_, err = store.CancelIngestion(ctx, cancel)
		require.NoError(t, err, "cancelling twice succeeds")
	})

	t.Run("finished ingestions cannot be cancelled", func(t *testing.T) {
		require.NoError(t, store.db.Update(func(txn *badger.Txn) error {
			ing, err := store.getIngestion(txn, testAccount, "spice", "refresh-1")
			if err != nil {
				return err
			}
			ing.IngestionStatus = types.IngestionStatusCompleted
			ing.ErrorInfo = nil
			return putDoc(txn, ingestionKey(testAccount, "spice", "refresh-1"), ing)
		}))

		_, err := store.CancelIngestion(ctx, &qsapi.CancelIngestionInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("spice"),
			IngestionId:  aws.String("refresh-1"),
		})
		var conflictErr *types.ConflictException
		require.ErrorAs(t, err, &conflictErr)
	})

	t.Run("unknown ingestion", func(t *testing.T) {
		_, err := store.DescribeIngestion(ctx, &qsapi.DescribeIngestionInput{
			AwsAccountId: aws.String(testAccount),
			DataSetId:    aws.String("spice"),
			IngestionId:  aws.String("nope"),
		})
		var nf *types.ResourceNotFoundException
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, types.ExceptionResourceTypeIngestion, nf.ResourceType)
	})
}
