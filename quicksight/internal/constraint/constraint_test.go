package constraint

import (
	"errors"
	"strings"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestChecker_NoViolations(t *testing.T) {
	c := New("Shape")
	c.AwsAccountID("AwsAccountId", ptr("123456789012"))
	c.Namespace("Namespace", ptr("default"))
	c.String("Name", ptr("abc"), 1, 3, nil)
	require.NoError(t, c.Err())
}

func TestChecker_AwsAccountID(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		wantErr bool
	}{
		{"valid", ptr("123456789012"), false},
		{"too short", ptr("12345"), true},
		{"too long", ptr("1234567890123"), true},
		{"letter", ptr("12345678901a"), true},
		{"missing", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("Input")
			c.AwsAccountID("AwsAccountId", tt.value)
			err := c.Err()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ip smithy.InvalidParamsError
			require.True(t, errors.As(err, &ip))
			for _, e := range ip.Errs() {
				var pe smithy.InvalidParamError
				require.True(t, errors.As(e, &pe))
				assert.Equal(t, "Input.AwsAccountId", pe.Field())
			}
		})
	}
}

func TestChecker_EmptyPathSegments(t *testing.T) {
	tests := []struct {
		field string
		check func(c *Checker, field string, v *string)
	}{
		{"Namespace", (*Checker).Namespace},
		{"DataSetId", (*Checker).ID},
		{"DataSourceId", (*Checker).ID},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			c := New("Input")
			tt.check(c, tt.field, ptr(""))
			err := c.Err()
			var ip smithy.InvalidParamsError
			require.ErrorAs(t, err, &ip)
			require.Len(t, ip.Errs(), 1)
			var pe smithy.InvalidParamError
			require.True(t, errors.As(ip.Errs()[0], &pe))
			assert.Equal(t, "Input."+tt.field, pe.Field())

			c = New("Input")
			tt.check(c, tt.field, ptr("a"))
			assert.NoError(t, c.Err())
		})
	}
}

func TestChecker_LengthCountsRunes(t *testing.T) {
	c := New("Shape")
	c.Length("Name", ptr("ééé"), 1, 3)
	require.NoError(t, c.Err())

	c = New("Shape")
	c.Length("Name", ptr("éééé"), 1, 3)
	err := c.Err()
	require.Error(t, err)
	var le *ParamLengthError
	require.True(t, errors.As(err.(smithy.InvalidParamsError).Errs()[0], &le))
	assert.Equal(t, 4, le.Actual)
	assert.Equal(t, 3, le.Max)
}

func TestChecker_LengthBounds(t *testing.T) {
	for _, tc := range []struct {
		v  string
		ok bool
	}{
		{"", false},
		{"a", true},
		{strings.Repeat("a", 128), true},
		{strings.Repeat("a", 129), false},
	} {
		c := New("Shape")
		c.Length("IngestionId", &tc.v, 1, 128)
		if tc.ok {
			assert.NoError(t, c.Err(), "len %d", len(tc.v))
		} else {
			assert.Error(t, c.Err(), "len %d", len(tc.v))
		}
	}
}

func TestChecker_Unbounded(t *testing.T) {
	c := New("Shape")
	c.Length("Email", ptr(strings.Repeat("x", 10000)), 1, Unbounded)
	require.NoError(t, c.Err())
}

func TestPatterns(t *testing.T) {
	assert.True(t, AliasName.MatchString("$LATEST"))
	assert.True(t, AliasName.MatchString("$PUBLISHED"))
	assert.True(t, AliasName.MatchString("prod-1"))
	assert.False(t, AliasName.MatchString("$OTHER"))
	assert.False(t, AliasName.MatchString("a b"))

	assert.True(t, IngestionID.MatchString("ing_1"))
	assert.False(t, IngestionID.MatchString("ing.1"))

	assert.True(t, Namespace.MatchString("my.name_space-1"))
	assert.False(t, Namespace.MatchString("bad/ns"))

	assert.True(t, ResourceID.MatchString("dash_board-1"))
	assert.False(t, ResourceID.MatchString("dash board"))

	assert.True(t, PrincipalName.MatchString("Jane Doe"))
	assert.False(t, PrincipalName.MatchString("名前"))
}

func TestRange(t *testing.T) {
	c := New("ListGroupsInput")
	Range(c, "MaxResults", ptr(int32(0)), 1, 100)
	Range(c, "Port", ptr(int32(65535)), 1, 65535)
	Min(c, "StartFromRow", ptr(int32(0)), 1)
	err := c.Err()
	require.Error(t, err)
	ip := err.(smithy.InvalidParamsError)
	require.Equal(t, 2, ip.Len())

	var re *ParamRangeError
	require.True(t, errors.As(ip.Errs()[0], &re))
	assert.Equal(t, "ListGroupsInput.MaxResults", re.Field())
	assert.Equal(t, "1", re.Min)
	assert.Equal(t, "100", re.Max)
}

func TestNested(t *testing.T) {
	inner := New("RelationalTable")
	inner.Required("Name", false)

	mapLevel := New("PhysicalTableMap")
	mapLevel.Nested("[t1]", func() error {
		c := New("PhysicalTable")
		c.Nested("RelationalTable", inner.Err())
		return c.Err()
	}())

	outer := New("CreateDataSetInput")
	outer.Nested("PhysicalTableMap", mapLevel.Err())

	err := outer.Err()
	require.Error(t, err)
	ip := err.(smithy.InvalidParamsError)
	require.Equal(t, 1, ip.Len())
	var pe smithy.InvalidParamError
	require.True(t, errors.As(ip.Errs()[0], &pe))
	assert.Equal(t, "CreateDataSetInput.PhysicalTableMap[t1].RelationalTable.Name", pe.Field())
	assert.Contains(t, err.Error(), "1 validation error(s) found.")
}

func TestNested_IgnoresNil(t *testing.T) {
	c := New("Shape")
	c.Nested("Child", nil)
	assert.NoError(t, c.Err())
}
