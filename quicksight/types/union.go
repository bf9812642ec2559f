package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/acksell/qsight/quicksight/internal/constraint"
)

// UnknownUnionMember is returned when a union member carries a tag this client does
// not know. The raw member value is preserved so it can be inspected or passed on.
// It satisfies every union interface in this package.
type UnknownUnionMember struct {
	Tag   string
	Value []byte
}

func (m UnknownUnionMember) MarshalJSON() ([]byte, error) {
	return encodeUnion(m.Tag, json.RawMessage(m.Value))
}

func (*UnknownUnionMember) isPhysicalTable()         {}
func (*UnknownUnionMember) isLogicalTableSource()    {}
func (*UnknownUnionMember) isTransformOperation()    {}
func (*UnknownUnionMember) isColumnTag()             {}
func (*UnknownUnionMember) isColumnGroup()           {}
func (*UnknownUnionMember) isDataSourceParameters()  {}
func (*UnknownUnionMember) isDataSourceCredentials() {}
func (*UnknownUnionMember) isTemplateSourceEntity()  {}

// UnionMemberCountError is returned when a union object on the wire does not carry
// exactly one non-null member.
type UnionMemberCountError struct {
	Union string
	Tags  []string
}

func (e *UnionMemberCountError) Error() string {
	if len(e.Tags) == 0 {
		return fmt.Sprintf("%s: union has no member set", e.Union)
	}
	return fmt.Sprintf("%s: only one union member may be set, got %v", e.Union, e.Tags)
}

func encodeUnion(tag string, v any) ([]byte, error) {
	return json.Marshal(map[string]any{tag: v})
}

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

// decodeUnion splits a union object into its single tag and raw value.
// Members explicitly set to null count as absent.
func decodeUnion(union string, data []byte) (string, json.RawMessage, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return "", nil, fmt.Errorf("%s: %w", union, err)
	}
	var tags []string
	for tag, raw := range members {
		if !isNull(raw) {
			tags = append(tags, tag)
		}
	}
	if len(tags) != 1 {
		sort.Strings(tags)
		return "", nil, &UnionMemberCountError{Union: union, Tags: tags}
	}
	return tags[0], members[tags[0]], nil
}

func unknownMember(tag string, raw json.RawMessage) *UnknownUnionMember {
	return &UnknownUnionMember{Tag: tag, Value: append([]byte(nil), raw...)}
}

// decodeUnionList decodes a JSON array of union objects with decode.
func decodeUnionList[T any](raw []json.RawMessage, decode func([]byte) (T, error)) ([]T, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]T, 0, len(raw))
	for i, r := range raw {
		v, err := decode(r)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeUnionMap decodes a JSON object of union objects with decode.
func decodeUnionMap[T any](raw map[string]json.RawMessage, decode func([]byte) (T, error)) (map[string]T, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[string]T, len(raw))
	for k, r := range raw {
		v, err := decode(r)
		if err != nil {
			return nil, fmt.Errorf("[%s]: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// decodeOptionalUnion decodes raw with decode unless it is absent or null.
func decodeOptionalUnion[T any](raw json.RawMessage, decode func([]byte) (T, error)) (T, error) {
	var zero T
	if isNull(raw) {
		return zero, nil
	}
	return decode(raw)
}

func checkUnknown(c *constraint.Checker, field string, m *UnknownUnionMember) {
	c.Add(constraint.NewErrParamUnion(field, m.Tag))
}
