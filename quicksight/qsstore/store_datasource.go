package qsstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

func dataSourceKey(account, id *string) []byte {
	return encodeKey(kindDataSource, *account, *id)
}

func (s *Store) getDataSource(txn *badger.Txn, account, id *string) (*types.DataSource, error) {
	var ds types.DataSource
	if err := getDoc(txn, dataSourceKey(account, id), &ds); err != nil {
		if err == errNotFound {
			return nil, notFound(types.ExceptionResourceTypeDataSource, "data source %s not found", *id)
		}
		return nil, err
	}
	return &ds, nil
}

// CreateDataSource stores a data source. Credentials are accepted but never
// stored, so they cannot be read back.
func (s *Store) CreateDataSource(ctx context.Context, params *qsapi.CreateDataSourceInput) (*qsapi.CreateDataSourceOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := types.NewTimestamp(s.now())
	ds := types.DataSource{
		Arn:                     aws.String(s.arn(*params.AwsAccountId, "datasource/"+*params.DataSourceId)),
		DataSourceId:            params.DataSourceId,
		Name:                    params.Name,
		Type:                    params.Type,
		Status:                  types.ResourceStatusCreationSuccessful,
		CreatedTime:             now,
		LastUpdatedTime:         now,
		DataSourceParameters:    params.DataSourceParameters,
		VpcConnectionProperties: params.VpcConnectionProperties,
		SslProperties:           params.SslProperties,
	}
	key := dataSourceKey(params.AwsAccountId, params.DataSourceId)
	err := s.db.Update(func(txn *badger.Txn) error {
		exists, err := hasKey(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return alreadyExists(types.ExceptionResourceTypeDataSource, "data source %s already exists", *params.DataSourceId)
		}
		if err := putDoc(txn, key, ds); err != nil {
			return err
		}
		return addResource(txn, *ds.Arn, params.Tags, params.Permissions)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.CreateDataSourceOutput{
		ResultMetadata: metadata("CreateDataSource"),
		Arn:            ds.Arn,
		DataSourceId:   ds.DataSourceId,
		CreationStatus: ds.Status,
	}, nil
}

func (s *Store) DescribeDataSource(ctx context.Context, params *qsapi.DescribeDataSourceInput) (*qsapi.DescribeDataSourceOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var ds *types.DataSource
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		ds, err = s.getDataSource(txn, params.AwsAccountId, params.DataSourceId)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DescribeDataSourceOutput{ResultMetadata: metadata("DescribeDataSource"), DataSource: ds}, nil
}

// UpdateDataSource replaces the name and connection settings of a data source.
// The engine type cannot change.
func (s *Store) UpdateDataSource(ctx context.Context, params *qsapi.UpdateDataSourceInput) (*qsapi.UpdateDataSourceOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var ds *types.DataSource
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		ds, err = s.getDataSource(txn, params.AwsAccountId, params.DataSourceId)
		if err != nil {
			return err
		}
		ds.Name = params.Name
		if params.DataSourceParameters != nil {
			ds.DataSourceParameters = params.DataSourceParameters
		}
		ds.VpcConnectionProperties = params.VpcConnectionProperties
		ds.SslProperties = params.SslProperties
		ds.Status = types.ResourceStatusUpdateSuccessful
		ds.LastUpdatedTime = types.NewTimestamp(s.now())
		return putDoc(txn, dataSourceKey(params.AwsAccountId, params.DataSourceId), ds)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.UpdateDataSourceOutput{
		ResultMetadata: metadata("UpdateDataSource"),
		Arn:            ds.Arn,
		DataSourceId:   ds.DataSourceId,
		UpdateStatus:   ds.Status,
	}, nil
}

func (s *Store) DeleteDataSource(ctx context.Context, params *qsapi.DeleteDataSourceInput) (*qsapi.DeleteDataSourceOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var arn *string
	err := s.db.Update(func(txn *badger.Txn) error {
		ds, err := s.getDataSource(txn, params.AwsAccountId, params.DataSourceId)
		if err != nil {
			return err
		}
		arn = ds.Arn
		if err := removeResource(txn, *ds.Arn); err != nil {
			return err
		}
		return deleteKey(txn, dataSourceKey(params.AwsAccountId, params.DataSourceId))
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteDataSourceOutput{
		ResultMetadata: metadata("DeleteDataSource"),
		Arn:            arn,
		DataSourceId:   params.DataSourceId,
	}, nil
}

func (s *Store) ListDataSources(ctx context.Context, params *qsapi.ListDataSourcesInput) (*qsapi.ListDataSourcesOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListDataSourcesOutput{ResultMetadata: metadata("ListDataSources")}
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		out.DataSources, out.NextToken, err = listDocs[types.DataSource](txn,
			keyPrefix(kindDataSource, *params.AwsAccountId), params.NextToken, params.MaxResults, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DescribeDataSourcePermissions(ctx context.Context, params *qsapi.DescribeDataSourcePermissionsInput) (*qsapi.DescribeDataSourcePermissionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.DescribeDataSourcePermissionsOutput{
		ResultMetadata: metadata("DescribeDataSourcePermissions"),
		DataSourceId:   params.DataSourceId,
	}
	err := s.db.View(func(txn *badger.Txn) error {
		ds, err := s.getDataSource(txn, params.AwsAccountId, params.DataSourceId)
		if err != nil {
			return err
		}
		out.DataSourceArn = ds.Arn
		out.Permissions, err = getPermissions(txn, *ds.Arn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateDataSourcePermissions(ctx context.Context, params *qsapi.UpdateDataSourcePermissionsInput) (*qsapi.UpdateDataSourcePermissionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.UpdateDataSourcePermissionsOutput{
		ResultMetadata: metadata("UpdateDataSourcePermissions"),
		DataSourceId:   params.DataSourceId,
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		ds, err := s.getDataSource(txn, params.AwsAccountId, params.DataSourceId)
		if err != nil {
			return err
		}
		out.DataSourceArn = ds.Arn
		_, err = updatePermissions(txn, *ds.Arn, params.GrantPermissions, params.RevokePermissions)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
