package qsstore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

func ingestionKey(account, dataSet, id string) []byte {
	return encodeKey(kindIngestion, account, dataSet, id)
}

func (s *Store) getIngestion(txn *badger.Txn, account, dataSet, id string) (*types.Ingestion, error) {
	var ing types.Ingestion
	if err := getDoc(txn, ingestionKey(account, dataSet, id), &ing); err != nil {
		if err == errNotFound {
			return nil, notFound(types.ExceptionResourceTypeIngestion, "ingestion %s not found for data set %s", id, dataSet)
		}
		return nil, err
	}
	return &ing, nil
}

// queueIngestion stores a new QUEUED ingestion of a data set.
func (s *Store) queueIngestion(txn *badger.Txn, account, dataSet, id string, requestType types.IngestionRequestType) (*types.Ingestion, error) {
	key := ingestionKey(account, dataSet, id)
	exists, err := hasKey(txn, key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, alreadyExists(types.ExceptionResourceTypeIngestion, "ingestion %s already exists", id)
	}
	ing := &types.Ingestion{
		Arn:             aws.String(s.arn(account, "dataset/"+dataSet+"/ingestion/"+id)),
		IngestionId:     aws.String(id),
		IngestionStatus: types.IngestionStatusQueued,
		CreatedTime:     types.NewTimestamp(s.now()),
		RequestSource:   types.IngestionRequestSourceManual,
		RequestType:     requestType,
	}
	return ing, putDoc(txn, key, ing)
}

// CreateIngestion queues a full refresh of a SPICE data set.
func (s *Store) CreateIngestion(ctx context.Context, params *qsapi.CreateIngestionInput) (*qsapi.CreateIngestionOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var ing *types.Ingestion
	err := s.db.Update(func(txn *badger.Txn) error {
		ds, err := s.getDataSet(txn, params.AwsAccountId, params.DataSetId)
		if err != nil {
			return err
		}
		if ds.ImportMode != types.DataSetImportModeSpice {
			return invalidParameter("data set %s is not imported into SPICE", *params.DataSetId)
		}
		ing, err = s.queueIngestion(txn, *params.AwsAccountId, *params.DataSetId, *params.IngestionId,
			types.IngestionRequestTypeFullRefresh)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.CreateIngestionOutput{
		ResultMetadata:  metadata("CreateIngestion"),
		Arn:             ing.Arn,
		IngestionId:     ing.IngestionId,
		IngestionStatus: ing.IngestionStatus,
	}, nil
}

// CancelIngestion stops an ingestion that has not finished. Cancelling a
// cancelled ingestion succeeds; a finished one is a conflict.
func (s *Store) CancelIngestion(ctx context.Context, params *qsapi.CancelIngestionInput) (*qsapi.CancelIngestionOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var ing *types.Ingestion
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		ing, err = s.getIngestion(txn, *params.AwsAccountId, *params.DataSetId, *params.IngestionId)
		if err != nil {
			return err
		}
		switch ing.IngestionStatus {
		case types.IngestionStatusCancelled:
			return nil
		case types.IngestionStatusCompleted, types.IngestionStatusFailed:
			return conflict("ingestion %s is %s and cannot be cancelled", *params.IngestionId, ing.IngestionStatus)
		}
		ing.IngestionStatus = types.IngestionStatusCancelled
		ing.ErrorInfo = &types.ErrorInfo{
			Type:    types.IngestionErrorTypeIngestionCanceled,
			Message: aws.String("Ingestion is canceled"),
		}
		ing.IngestionTimeInSeconds = aws.Int64(int64(s.now().Sub(ing.CreatedTime.Time).Seconds()))
		return putDoc(txn, ingestionKey(*params.AwsAccountId, *params.DataSetId, *params.IngestionId), ing)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.CancelIngestionOutput{
		ResultMetadata: metadata("CancelIngestion"),
		Arn:            ing.Arn,
		IngestionId:    ing.IngestionId,
	}, nil
}

func (s *Store) DescribeIngestion(ctx context.Context, params *qsapi.DescribeIngestionInput) (*qsapi.DescribeIngestionOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var ing *types.Ingestion
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		ing, err = s.getIngestion(txn, *params.AwsAccountId, *params.DataSetId, *params.IngestionId)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DescribeIngestionOutput{ResultMetadata: metadata("DescribeIngestion"), Ingestion: ing}, nil
}

func (s *Store) ListIngestions(ctx context.Context, params *qsapi.ListIngestionsInput) (*qsapi.ListIngestionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListIngestionsOutput{ResultMetadata: metadata("ListIngestions")}
	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := s.getDataSet(txn, params.AwsAccountId, params.DataSetId); err != nil {
			return err
		}
		var err error
		out.Ingestions, out.NextToken, err = listDocs[types.Ingestion](txn,
			keyPrefix(kindIngestion, *params.AwsAccountId, *params.DataSetId), params.NextToken, params.MaxResults, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
