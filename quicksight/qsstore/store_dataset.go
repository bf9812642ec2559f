package qsstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

func dataSetKey(account, id *string) []byte {
	return encodeKey(kindDataSet, *account, *id)
}

func (s *Store) getDataSet(txn *badger.Txn, account, id *string) (*types.DataSet, error) {
	var ds types.DataSet
	if err := getDoc(txn, dataSetKey(account, id), &ds); err != nil {
		if err == errNotFound {
			return nil, notFound(types.ExceptionResourceTypeDataSet, "data set %s not found", *id)
		}
		return nil, err
	}
	return &ds, nil
}

// outputColumns lists the input columns of every physical table, in table id
// order. Column types without an output counterpart are reported as strings.
func outputColumns(tables map[string]types.PhysicalTable) []types.OutputColumn {
	var out []types.OutputColumn
	for _, id := range sortedKeys(tables) {
		var cols []types.InputColumn
		switch t := tables[id].(type) {
		case *types.PhysicalTableMemberRelationalTable:
			cols = t.Value.InputColumns
		case *types.PhysicalTableMemberCustomSql:
			cols = t.Value.Columns
		case *types.PhysicalTableMemberS3Source:
			cols = t.Value.InputColumns
		}
		for _, c := range cols {
			out = append(out, types.OutputColumn{Name: c.Name, Type: outputType(c.Type)})
		}
	}
	return out
}

func outputType(t types.InputColumnDataType) types.ColumnDataType {
	switch t {
	case types.InputColumnDataTypeInteger, types.InputColumnDataTypeBit:
		return types.ColumnDataTypeInteger
	case types.InputColumnDataTypeDecimal:
		return types.ColumnDataTypeDecimal
	case types.InputColumnDataTypeDatetime:
		return types.ColumnDataTypeDatetime
	}
	return types.ColumnDataTypeString
}

func dataSetSummary(ds *types.DataSet) types.DataSetSummary {
	return types.DataSetSummary{
		Arn:                       ds.Arn,
		DataSetId:                 ds.DataSetId,
		Name:                      ds.Name,
		CreatedTime:               ds.CreatedTime,
		LastUpdatedTime:           ds.LastUpdatedTime,
		ImportMode:                ds.ImportMode,
		RowLevelPermissionDataSet: ds.RowLevelPermissionDataSet,
	}
}

// CreateDataSet stores a data set. SPICE data sets get an initial ingestion
// whose id and ARN are returned.
func (s *Store) CreateDataSet(ctx context.Context, params *qsapi.CreateDataSetInput) (*qsapi.CreateDataSetOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := types.NewTimestamp(s.now())
	ds := types.DataSet{
		Arn:                       aws.String(s.arn(*params.AwsAccountId, "dataset/"+*params.DataSetId)),
		DataSetId:                 params.DataSetId,
		Name:                      params.Name,
		CreatedTime:               now,
		LastUpdatedTime:           now,
		PhysicalTableMap:          params.PhysicalTableMap,
		LogicalTableMap:           params.LogicalTableMap,
		OutputColumns:             outputColumns(params.PhysicalTableMap),
		ImportMode:                params.ImportMode,
		ColumnGroups:              params.ColumnGroups,
		RowLevelPermissionDataSet: params.RowLevelPermissionDataSet,
	}
	out := &qsapi.CreateDataSetOutput{
		ResultMetadata: metadata("CreateDataSet"),
		Arn:            ds.Arn,
		DataSetId:      ds.DataSetId,
	}
	key := dataSetKey(params.AwsAccountId, params.DataSetId)
	err := s.db.Update(func(txn *badger.Txn) error {
		exists, err := hasKey(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return alreadyExists(types.ExceptionResourceTypeDataSet, "data set %s already exists", *params.DataSetId)
		}
		if err := putDoc(txn, key, ds); err != nil {
			return err
		}
		if err := addResource(txn, *ds.Arn, params.Tags, params.Permissions); err != nil {
			return err
		}
		if ds.ImportMode != types.DataSetImportModeSpice {
			return nil
		}
		ing, err := s.queueIngestion(txn, *params.AwsAccountId, *params.DataSetId, uuid.NewString(),
			types.IngestionRequestTypeInitialIngestion)
		if err != nil {
			return err
		}
		out.IngestionArn, out.IngestionId = ing.Arn, ing.IngestionId
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DescribeDataSet(ctx context.Context, params *qsapi.DescribeDataSetInput) (*qsapi.DescribeDataSetOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var ds *types.DataSet
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		ds, err = s.getDataSet(txn, params.AwsAccountId, params.DataSetId)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DescribeDataSetOutput{ResultMetadata: metadata("DescribeDataSet"), DataSet: ds}, nil
}

// UpdateDataSet replaces the definition of a data set. A SPICE data set is
// re-ingested after every update.
func (s *Store) UpdateDataSet(ctx context.Context, params *qsapi.UpdateDataSetInput) (*qsapi.UpdateDataSetOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.UpdateDataSetOutput{ResultMetadata: metadata("UpdateDataSet"), DataSetId: params.DataSetId}
	err := s.db.Update(func(txn *badger.Txn) error {
		ds, err := s.getDataSet(txn, params.AwsAccountId, params.DataSetId)
		if err != nil {
			return err
		}
		ds.Name = params.Name
		ds.PhysicalTableMap = params.PhysicalTableMap
		ds.LogicalTableMap = params.LogicalTableMap
		ds.OutputColumns = outputColumns(params.PhysicalTableMap)
		ds.ImportMode = params.ImportMode
		ds.ColumnGroups = params.ColumnGroups
		ds.RowLevelPermissionDataSet = params.RowLevelPermissionDataSet
		ds.LastUpdatedTime = types.NewTimestamp(s.now())
		if err := putDoc(txn, dataSetKey(params.AwsAccountId, params.DataSetId), ds); err != nil {
			return err
		}
		out.Arn = ds.Arn
		if ds.ImportMode != types.DataSetImportModeSpice {
			return nil
		}
		ing, err := s.queueIngestion(txn, *params.AwsAccountId, *params.DataSetId, uuid.NewString(),
			types.IngestionRequestTypeEdit)
		if err != nil {
			return err
		}
		out.IngestionArn, out.IngestionId = ing.Arn, ing.IngestionId
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteDataSet deletes a data set and its ingestion history.
func (s *Store) DeleteDataSet(ctx context.Context, params *qsapi.DeleteDataSetInput) (*qsapi.DeleteDataSetOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var arn *string
	err := s.db.Update(func(txn *badger.Txn) error {
		ds, err := s.getDataSet(txn, params.AwsAccountId, params.DataSetId)
		if err != nil {
			return err
		}
		arn = ds.Arn
		if err := deletePrefix(txn, keyPrefix(kindIngestion, *params.AwsAccountId, *params.DataSetId)); err != nil {
			return err
		}
		if err := removeResource(txn, *ds.Arn); err != nil {
			return err
		}
		return deleteKey(txn, dataSetKey(params.AwsAccountId, params.DataSetId))
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteDataSetOutput{ResultMetadata: metadata("DeleteDataSet"), Arn: arn, DataSetId: params.DataSetId}, nil
}

func (s *Store) ListDataSets(ctx context.Context, params *qsapi.ListDataSetsInput) (*qsapi.ListDataSetsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListDataSetsOutput{ResultMetadata: metadata("ListDataSets")}
	err := s.db.View(func(txn *badger.Txn) error {
		dataSets, next, err := listDocs[types.DataSet](txn,
			keyPrefix(kindDataSet, *params.AwsAccountId), params.NextToken, params.MaxResults, nil)
		if err != nil {
			return err
		}
		for i := range dataSets {
			out.DataSetSummaries = append(out.DataSetSummaries, dataSetSummary(&dataSets[i]))
		}
		out.NextToken = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DescribeDataSetPermissions(ctx context.Context, params *qsapi.DescribeDataSetPermissionsInput) (*qsapi.DescribeDataSetPermissionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.DescribeDataSetPermissionsOutput{
		ResultMetadata: metadata("DescribeDataSetPermissions"),
		DataSetId:      params.DataSetId,
	}
	err := s.db.View(func(txn *badger.Txn) error {
		ds, err := s.getDataSet(txn, params.AwsAccountId, params.DataSetId)
		if err != nil {
			return err
		}
		out.DataSetArn = ds.Arn
		out.Permissions, err = getPermissions(txn, *ds.Arn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateDataSetPermissions(ctx context.Context, params *qsapi.UpdateDataSetPermissionsInput) (*qsapi.UpdateDataSetPermissionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.UpdateDataSetPermissionsOutput{
		ResultMetadata: metadata("UpdateDataSetPermissions"),
		DataSetId:      params.DataSetId,
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		ds, err := s.getDataSet(txn, params.AwsAccountId, params.DataSetId)
		if err != nil {
			return err
		}
		out.DataSetArn = ds.Arn
		_, err = updatePermissions(txn, *ds.Arn, params.GrantPermissions, params.RevokePermissions)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
