// Package constraint checks the declarative member constraints of request shapes
// (required members, length bounds, patterns, numeric ranges) and reports every
// violation as a smithy.InvalidParamsError naming the field and the constraint.
//
// Checks run at one explicit boundary: the Validate method of each operation input.
// Assigning a field never validates.
package constraint

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/aws/smithy-go"
	"golang.org/x/exp/constraints"
)

var (
	// AwsAccountID is exactly twelve ASCII digits.
	AwsAccountID = regexp.MustCompile(`^[0-9]{12}$`)
	// Namespace is the namespace charset. The pattern admits the empty string; the
	// Namespace check's minimum length of 1 rejects it.
	Namespace = regexp.MustCompile(`^[a-zA-Z0-9._-]*$`)
	// ResourceID covers template, dashboard and IAM policy assignment identifiers.
	ResourceID = regexp.MustCompile(`^[\w\-]+$`)
	// AliasName is a resource identifier or one of the reserved aliases.
	AliasName = regexp.MustCompile(`^(?:[\w\-]+|\$LATEST|\$PUBLISHED)$`)
	// IngestionID is the charset of caller-chosen ingestion identifiers.
	IngestionID = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
	// TableID covers physical and logical table map keys and join operands.
	TableID = regexp.MustCompile(`^[0-9a-zA-Z-]*$`)
	// PrincipalName covers user, group and group member names.
	PrincipalName = regexp.MustCompile(`^[\x{0020}-\x{00FF}]+$`)
	// NonBlank requires at least one non-whitespace character.
	NonBlank = regexp.MustCompile(`.*\S.*`)
	// AssignmentName is the IAM policy assignment name charset; no whitespace.
	AssignmentName = regexp.MustCompile(`^[0-9a-zA-Z\-_.:=+@]*$`)
	// SessionName is the charset of an IAM role session name.
	SessionName = regexp.MustCompile(`^[\w+=.@-]*$`)
)

// Unbounded is passed as max when a member has only a lower bound.
const Unbounded = -1

// DefaultNamespace is the namespace used when a caller has no other.
const DefaultNamespace = "default"

// Number is any member type a range constraint applies to.
type Number interface {
	constraints.Integer | constraints.Float
}

// Checker accumulates violations for one shape.
type Checker struct {
	errs smithy.InvalidParamsError
}

// New returns a checker whose errors are reported under context, usually the
// shape name ("CancelIngestionInput").
func New(context string) *Checker {
	return &Checker{errs: smithy.InvalidParamsError{Context: context}}
}

// Add records a violation.
func (c *Checker) Add(err smithy.InvalidParamError) {
	c.errs.Add(err)
}

// Required records a ParamRequiredError when present is false and reports present.
func (c *Checker) Required(field string, present bool) bool {
	if !present {
		c.errs.Add(smithy.NewErrParamRequired(field))
	}
	return present
}

// Length checks the rune length of an optional string. A nil value is not checked.
func (c *Checker) Length(field string, v *string, min, max int) {
	if v == nil {
		return
	}
	n := utf8.RuneCountInString(*v)
	if n < min || (max != Unbounded && n > max) {
		c.errs.Add(NewErrParamLength(field, min, max, n))
	}
}

// Pattern checks an optional string against re. A nil value is not checked.
func (c *Checker) Pattern(field string, v *string, re *regexp.Regexp) {
	if v == nil {
		return
	}
	if !re.MatchString(*v) {
		c.errs.Add(NewErrParamPattern(field, re.String()))
	}
}

// Items checks the number of elements of a list or map member.
func (c *Checker) Items(field string, n, min, max int) {
	if n < min || (max != Unbounded && n > max) {
		c.errs.Add(NewErrParamLength(field, min, max, n))
	}
}

// Nested folds the violations of a member shape into this checker under field.
// Errors that are not invalid-parameter collections are ignored; member
// validators only ever return smithy.InvalidParamsError.
func (c *Checker) Nested(field string, err error) {
	if err == nil {
		return
	}
	var nested smithy.InvalidParamsError
	if errors.As(err, &nested) {
		c.errs.AddNested(field, nested)
	}
}

// Each validates every element of a list member, reporting element violations
// under field[i].
func (c *Checker) Each(field string, n int, validate func(i int) error) {
	for i := 0; i < n; i++ {
		c.Nested(fmt.Sprintf("%s[%d]", field, i), validate(i))
	}
}

// EachKey validates every entry of a map member in key order, reporting entry
// violations under field[key].
func EachKey[V any](c *Checker, field string, m map[string]V, validate func(k string, v V) error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.Nested(fmt.Sprintf("%s[%s]", field, k), validate(k, m[k]))
	}
}

// Err returns the accumulated violations, or nil when there are none.
func (c *Checker) Err() error {
	if c.errs.Len() > 0 {
		return c.errs
	}
	return nil
}

// Range checks an optional number against the inclusive range [min, max].
func Range[T Number](c *Checker, field string, v *T, min, max T) {
	if v == nil {
		return
	}
	if *v < min || *v > max {
		c.errs.Add(NewErrParamRange(field, min, max, *v))
	}
}

// Min checks an optional number against an inclusive lower bound.
func Min[T Number](c *Checker, field string, v *T, min T) {
	if v == nil {
		return
	}
	if *v < min {
		c.errs.Add(NewErrParamRange(field, min, "+inf", *v))
	}
}

// AwsAccountID checks the required account scoping member.
func (c *Checker) AwsAccountID(field string, v *string) {
	if c.Required(field, v != nil) {
		c.Length(field, v, 12, 12)
		c.Pattern(field, v, AwsAccountID)
	}
}

// Namespace checks the required namespace scoping member.
func (c *Checker) Namespace(field string, v *string) {
	if c.Required(field, v != nil) {
		c.Length(field, v, 1, 64)
		c.Pattern(field, v, Namespace)
	}
}

// ID checks a required identifier whose only constraint is being non-empty.
// Identifiers travel in the request path, where an empty segment is not a value.
func (c *Checker) ID(field string, v *string) {
	c.String(field, v, 1, Unbounded, nil)
}

// String checks a string member that must be present, within [min, max] and,
// when re is non-nil, match re.
func (c *Checker) String(field string, v *string, min, max int, re *regexp.Regexp) {
	if !c.Required(field, v != nil) {
		return
	}
	c.OptionalString(field, v, min, max, re)
}

// OptionalString is String for a member that may be absent.
func (c *Checker) OptionalString(field string, v *string, min, max int, re *regexp.Regexp) {
	c.Length(field, v, min, max)
	if re != nil {
		c.Pattern(field, v, re)
	}
}
