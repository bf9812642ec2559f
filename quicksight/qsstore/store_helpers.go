package qsstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/qsrest"
	"github.com/acksell/qsight/quicksight/types"
)

var errNotFound = fmt.Errorf("not found")

// errParamsRequired is returned for a nil input.
var errParamsRequired = fmt.Errorf("params is required")

const defaultPageSize = 100

func getDoc(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func putDoc(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}
	return txn.Set(key, data)
}

func hasKey(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

func deleteKey(txn *badger.Txn, key []byte) error {
	return txn.Delete(key)
}

// deletePrefix deletes every key starting with prefix.
func deletePrefix(txn *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false

	var keys [][]byte
	it := txn.NewIterator(opts)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, k := range keys {
		if err := txn.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// scanPage visits the documents under prefix in key order, starting after the
// key encoded in token. visit reports whether the document matches and, when add
// is true, adds it to the page. Once max documents are added visit is only asked
// to match: the token is returned only if a further document matches, so it is
// nil on the last page.
func scanPage(txn *badger.Txn, prefix []byte, token *string, max *int32, visit func(val []byte, add bool) (bool, error)) (*string, error) {
	limit := defaultPageSize
	if max != nil {
		limit = int(*max)
	}
	start := prefix
	if token != nil {
		last, err := decodeToken(*token, prefix)
		if err != nil {
			return nil, err
		}
		start = last
	}

	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	it.Seek(start)
	if token != nil && it.ValidForPrefix(prefix) && bytes.Equal(it.Item().Key(), start) {
		it.Next() // exclusive start
	}

	kept := 0
	var lastKey []byte
	for ; it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		full := kept == limit
		var ok bool
		if err := item.Value(func(val []byte) error {
			var err error
			ok, err = visit(val, !full)
			return err
		}); err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if full {
			return encodeToken(lastKey), nil
		}
		kept++
		lastKey = item.KeyCopy(nil)
	}
	return nil, nil
}

// listDocs decodes one page of documents of type T. keep may be nil.
func listDocs[T any](txn *badger.Txn, prefix []byte, token *string, max *int32, keep func(*T) bool) ([]T, *string, error) {
	var out []T
	next, err := scanPage(txn, prefix, token, max, func(val []byte, add bool) (bool, error) {
		var v T
		if err := json.Unmarshal(val, &v); err != nil {
			return false, err
		}
		if keep != nil && !keep(&v) {
			return false, nil
		}
		if add {
			out = append(out, v)
		}
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return out, next, nil
}

// allDocs decodes every document under prefix that keep accepts.
func allDocs[T any](txn *badger.Txn, prefix []byte, keep func(*T) bool) ([]T, error) {
	var out []T
	var token *string
	for {
		page, next, err := listDocs(txn, prefix, token, nil, keep)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if next == nil {
			return out, nil
		}
		token = next
	}
}

// metadata is the result metadata of a successful operation.
func metadata(operation string) qsapi.ResultMetadata {
	status := 200
	if r, ok := qsrest.Lookup(operation); ok {
		status = r.Status
	}
	return qsapi.ResultMetadata{
		Status:    int32(status),
		RequestId: aws.String(uuid.NewString()),
	}
}

// =============================================================================
// Exceptions
// =============================================================================

func notFound(rt types.ExceptionResourceType, format string, args ...any) error {
	return &types.ResourceNotFoundException{Message: aws.String(fmt.Sprintf(format, args...)), ResourceType: rt}
}

func alreadyExists(rt types.ExceptionResourceType, format string, args ...any) error {
	return &types.ResourceExistsException{Message: aws.String(fmt.Sprintf(format, args...)), ResourceType: rt}
}

func invalidParameter(format string, args ...any) error {
	return &types.InvalidParameterValueException{Message: aws.String(fmt.Sprintf(format, args...))}
}

func conflict(format string, args ...any) error {
	return &types.ConflictException{Message: aws.String(fmt.Sprintf(format, args...))}
}

func invalidNextToken(token string) error {
	return &types.InvalidNextTokenException{Message: aws.String(fmt.Sprintf("invalid next token %q", token))}
}

// =============================================================================
// Tags and permissions, stored per resource ARN
// =============================================================================

// addResource registers arn as taggable and shareable with its initial tags and
// permissions.
func addResource(txn *badger.Txn, arn string, tags []types.Tag, perms []types.ResourcePermission) error {
	if err := txn.Set(encodeKey(kindArn, arn), []byte{}); err != nil {
		return err
	}
	if len(tags) > 0 {
		if err := putDoc(txn, encodeKey(kindTags, arn), mergeTags(nil, tags)); err != nil {
			return err
		}
	}
	if len(perms) > 0 {
		if err := putDoc(txn, encodeKey(kindPermissions, arn), applyGrants(nil, perms, nil)); err != nil {
			return err
		}
	}
	return nil
}

func removeResource(txn *badger.Txn, arn string) error {
	for _, kind := range []string{kindArn, kindTags, kindPermissions} {
		if err := deleteKey(txn, encodeKey(kind, arn)); err != nil {
			return err
		}
	}
	return nil
}

func getPermissions(txn *badger.Txn, arn string) ([]types.ResourcePermission, error) {
	var perms []types.ResourcePermission
	err := getDoc(txn, encodeKey(kindPermissions, arn), &perms)
	if err == errNotFound {
		return nil, nil
	}
	return perms, err
}

func updatePermissions(txn *badger.Txn, arn string, grant, revoke []types.ResourcePermission) ([]types.ResourcePermission, error) {
	perms, err := getPermissions(txn, arn)
	if err != nil {
		return nil, err
	}
	perms = applyGrants(perms, grant, revoke)
	if len(perms) == 0 {
		return nil, deleteKey(txn, encodeKey(kindPermissions, arn))
	}
	return perms, putDoc(txn, encodeKey(kindPermissions, arn), perms)
}

// applyGrants adds the actions of grant and removes those of revoke. Principals
// left without actions are dropped. The result is sorted by principal and action.
func applyGrants(perms, grant, revoke []types.ResourcePermission) []types.ResourcePermission {
	actions := map[string]map[string]bool{}
	add := func(p types.ResourcePermission) {
		principal := aws.ToString(p.Principal)
		if actions[principal] == nil {
			actions[principal] = map[string]bool{}
		}
		for _, a := range p.Actions {
			actions[principal][a] = true
		}
	}
	for _, p := range perms {
		add(p)
	}
	for _, p := range grant {
		add(p)
	}
	for _, p := range revoke {
		for _, a := range p.Actions {
			delete(actions[aws.ToString(p.Principal)], a)
		}
	}

	var out []types.ResourcePermission
	for _, principal := range sortedKeys(actions) {
		if len(actions[principal]) == 0 {
			continue
		}
		out = append(out, types.ResourcePermission{
			Principal: aws.String(principal),
			Actions:   sortedKeys(actions[principal]),
		})
	}
	return out
}

func hasPrincipal(perms []types.ResourcePermission, principal string) bool {
	for _, p := range perms {
		if aws.ToString(p.Principal) == principal && len(p.Actions) > 0 {
			return true
		}
	}
	return false
}

// mergeTags sets every tag of add on tags, replacing values of existing keys.
func mergeTags(tags, add []types.Tag) []types.Tag {
	values := map[string]*string{}
	for _, t := range tags {
		values[aws.ToString(t.Key)] = t.Value
	}
	for _, t := range add {
		values[aws.ToString(t.Key)] = t.Value
	}
	out := make([]types.Tag, 0, len(values))
	for _, k := range sortedKeys(values) {
		out = append(out, types.Tag{Key: aws.String(k), Value: values[k]})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
