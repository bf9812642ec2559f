package constraint

import (
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

// paramError carries the field path bookkeeping shared by every constraint error.
// It mirrors the context handling of smithy's own ParamRequiredError so that
// nested errors render the same way ("CreateDataSetInput.PhysicalTableMap[t1].CustomSql.Name").
type paramError struct {
	context       string
	nestedContext string
	field         string
	reason        string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s, %s.", e.reason, e.Field())
}

// Field returns the full path of the offending field.
func (e *paramError) Field() string {
	sb := &strings.Builder{}
	sb.WriteString(e.context)
	if sb.Len() > 0 {
		if len(e.nestedContext) == 0 || e.nestedContext[:1] != "[" {
			sb.WriteRune('.')
		}
	}
	if len(e.nestedContext) > 0 {
		sb.WriteString(e.nestedContext)
		sb.WriteRune('.')
	}
	sb.WriteString(e.field)
	return sb.String()
}

func (e *paramError) SetContext(ctx string) {
	e.context = ctx
}

func (e *paramError) AddNestedContext(ctx string) {
	if len(e.nestedContext) == 0 {
		e.nestedContext = ctx
		return
	}
	if e.nestedContext[:1] != "[" {
		e.nestedContext = ctx + "." + e.nestedContext
		return
	}
	e.nestedContext = ctx + e.nestedContext
}

// ParamLengthError is returned when a string, list or map falls outside its
// declared length bounds. Max is -1 when the field has no upper bound.
type ParamLengthError struct {
	paramError
	Min, Max int
	Actual   int
}

func NewErrParamLength(field string, min, max, actual int) *ParamLengthError {
	reason := fmt.Sprintf("length %d outside [%d, %d]", actual, min, max)
	if max < 0 {
		reason = fmt.Sprintf("length %d below minimum %d", actual, min)
	}
	return &ParamLengthError{
		paramError: paramError{field: field, reason: reason},
		Min:        min,
		Max:        max,
		Actual:     actual,
	}
}

// ParamPatternError is returned when a string does not match its declared pattern.
type ParamPatternError struct {
	paramError
	Pattern string
}

func NewErrParamPattern(field, pattern string) *ParamPatternError {
	return &ParamPatternError{
		paramError: paramError{field: field, reason: fmt.Sprintf("value does not match pattern %s", pattern)},
		Pattern:    pattern,
	}
}

// ParamRangeError is returned when a number falls outside its declared range.
type ParamRangeError struct {
	paramError
	Min, Max string
}

func NewErrParamRange(field string, min, max, actual any) *ParamRangeError {
	return &ParamRangeError{
		paramError: paramError{field: field, reason: fmt.Sprintf("value %v outside [%v, %v]", actual, min, max)},
		Min:        fmt.Sprint(min),
		Max:        fmt.Sprint(max),
	}
}

// ParamUnionError is returned when a union value is an unknown member on the
// request path. Unknown members are only expected in responses.
type ParamUnionError struct {
	paramError
	Tag string
}

func NewErrParamUnion(field, tag string) *ParamUnionError {
	return &ParamUnionError{
		paramError: paramError{field: field, reason: fmt.Sprintf("unknown union member %q", tag)},
		Tag:        tag,
	}
}

var (
	_ smithy.InvalidParamError = (*ParamLengthError)(nil)
	_ smithy.InvalidParamError = (*ParamPatternError)(nil)
	_ smithy.InvalidParamError = (*ParamRangeError)(nil)
	_ smithy.InvalidParamError = (*ParamUnionError)(nil)
)
