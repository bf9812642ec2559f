package qsstore

import (
	"context"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

// getTags returns the tags of a taggable resource.
func getTags(txn *badger.Txn, arn string) ([]types.Tag, error) {
	exists, err := hasKey(txn, encodeKey(kindArn, arn))
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("", "resource %s not found", arn)
	}
	var tags []types.Tag
	err = getDoc(txn, encodeKey(kindTags, arn), &tags)
	if err == errNotFound {
		return nil, nil
	}
	return tags, err
}

func putTags(txn *badger.Txn, arn string, tags []types.Tag) error {
	if len(tags) == 0 {
		return deleteKey(txn, encodeKey(kindTags, arn))
	}
	return putDoc(txn, encodeKey(kindTags, arn), tags)
}

func (s *Store) TagResource(ctx context.Context, params *qsapi.TagResourceInput) (*qsapi.TagResourceOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		tags, err := getTags(txn, *params.ResourceArn)
		if err != nil {
			return err
		}
		return putTags(txn, *params.ResourceArn, mergeTags(tags, params.Tags))
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.TagResourceOutput{ResultMetadata: metadata("TagResource")}, nil
}

// UntagResource removes tags by key. Keys that are not set are ignored.
func (s *Store) UntagResource(ctx context.Context, params *qsapi.UntagResourceInput) (*qsapi.UntagResourceOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		tags, err := getTags(txn, *params.ResourceArn)
		if err != nil {
			return err
		}
		tags = slices.DeleteFunc(tags, func(t types.Tag) bool {
			return slices.Contains(params.TagKeys, aws.ToString(t.Key))
		})
		return putTags(txn, *params.ResourceArn, tags)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.UntagResourceOutput{ResultMetadata: metadata("UntagResource")}, nil
}

func (s *Store) ListTagsForResource(ctx context.Context, params *qsapi.ListTagsForResourceInput) (*qsapi.ListTagsForResourceOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListTagsForResourceOutput{ResultMetadata: metadata("ListTagsForResource")}
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		out.Tags, err = getTags(txn, *params.ResourceArn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
