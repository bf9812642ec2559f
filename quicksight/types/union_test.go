package types

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Encoding
// =============================================================================

func TestPhysicalTable_EncodesOneMember(t *testing.T) {
	var v PhysicalTable = &PhysicalTableMemberS3Source{Value: S3Source{
		DataSourceArn: aws.String("arn:aws:quicksight:us-east-1:123456789012:datasource/ds1"),
		InputColumns: []InputColumn{
			{Name: aws.String("id"), Type: InputColumnDataTypeInteger},
		},
	}}

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"S3Source":{
		"DataSourceArn":"arn:aws:quicksight:us-east-1:123456789012:datasource/ds1",
		"InputColumns":[{"Name":"id","Type":"INTEGER"}]}}`, string(b))

	got, err := UnmarshalPhysicalTable(b)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestDataSet_RoundTrip(t *testing.T) {
	ds := DataSet{
		DataSetId: aws.String("sales"),
		Name:      aws.String("Sales"),
		PhysicalTableMap: map[string]PhysicalTable{
			"t1": &PhysicalTableMemberRelationalTable{Value: RelationalTable{
				DataSourceArn: aws.String("arn:ds"),
				Name:          aws.String("orders"),
				InputColumns:  []InputColumn{{Name: aws.String("total"), Type: InputColumnDataTypeDecimal}},
			}},
		},
		LogicalTableMap: map[string]LogicalTable{
			"l1": {
				Alias:  aws.String("orders"),
				Source: &LogicalTableSourceMemberPhysicalTableId{Value: "t1"},
				DataTransforms: []TransformOperation{
					&TransformOperationMemberFilterOperation{Value: FilterOperation{ConditionExpression: aws.String("total > 0")}},
					&TransformOperationMemberTagColumnOperation{Value: TagColumnOperation{
						ColumnName: aws.String("country"),
						Tags:       []ColumnTag{&ColumnTagMemberColumnGeographicRole{Value: GeoSpatialDataRoleCountry}},
					}},
				},
			},
		},
		ColumnGroups: []ColumnGroup{
			&ColumnGroupMemberGeoSpatialColumnGroup{Value: GeoSpatialColumnGroup{
				Name:        aws.String("geo"),
				CountryCode: GeoSpatialCountryCodeUs,
				Columns:     []string{"country"},
			}},
		},
		ImportMode:      DataSetImportModeSpice,
		CreatedTime:     NewTimestamp(time1()),
		LastUpdatedTime: NewTimestamp(time1()),
	}

	b, err := json.Marshal(ds)
	require.NoError(t, err)

	var got DataSet
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, ds, got)
}

func TestDataSource_RoundTrip(t *testing.T) {
	src := DataSource{
		DataSourceId: aws.String("pg"),
		Type:         DataSourceTypePostgresql,
		DataSourceParameters: &DataSourceParametersMemberPostgreSqlParameters{Value: PostgreSqlParameters{
			Host:     aws.String("db.internal"),
			Port:     aws.Int32(5432),
			Database: aws.String("sales"),
		}},
	}

	b, err := json.Marshal(src)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"DataSourceParameters":{"PostgreSqlParameters":{`)

	var got DataSource
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, src, got)
}

// =============================================================================
// Decoding discipline
// =============================================================================

func TestUnmarshalPhysicalTable_MemberCount(t *testing.T) {
	t.Run("two members", func(t *testing.T) {
		_, err := UnmarshalPhysicalTable([]byte(`{"RelationalTable":{},"S3Source":{}}`))
		var countErr *UnionMemberCountError
		require.ErrorAs(t, err, &countErr)
		assert.Equal(t, "PhysicalTable", countErr.Union)
		assert.Equal(t, []string{"RelationalTable", "S3Source"}, countErr.Tags)
	})

	t.Run("no members", func(t *testing.T) {
		_, err := UnmarshalPhysicalTable([]byte(`{}`))
		var countErr *UnionMemberCountError
		require.ErrorAs(t, err, &countErr)
		assert.Empty(t, countErr.Tags)
	})

	t.Run("null members do not count", func(t *testing.T) {
		v, err := UnmarshalPhysicalTable([]byte(`{"RelationalTable":null,"CustomSql":{"Name":"q"}}`))
		require.NoError(t, err)
		require.IsType(t, &PhysicalTableMemberCustomSql{}, v)
		assert.Equal(t, "q", *v.(*PhysicalTableMemberCustomSql).Value.Name)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := UnmarshalPhysicalTable([]byte(`["RelationalTable"]`))
		require.Error(t, err)
	})
}

func TestUnmarshal_UnknownMemberPreserved(t *testing.T) {
	v, err := UnmarshalDataSourceParameters([]byte(`{"DatabricksParameters":{"Host":"h"}}`))
	require.NoError(t, err)

	unknown, ok := v.(*UnknownUnionMember)
	require.True(t, ok)
	assert.Equal(t, "DatabricksParameters", unknown.Tag)
	assert.JSONEq(t, `{"Host":"h"}`, string(unknown.Value))

	b, err := json.Marshal(unknown)
	require.NoError(t, err)
	assert.JSONEq(t, `{"DatabricksParameters":{"Host":"h"}}`, string(b))

	err = ValidateDataSourceParameters(v)
	require.Error(t, err)
}

func TestDataSet_UnmarshalRejectsAmbiguousTable(t *testing.T) {
	var ds DataSet
	err := json.Unmarshal([]byte(`{"PhysicalTableMap":{"t1":{"CustomSql":{},"S3Source":{}}}}`), &ds)
	var countErr *UnionMemberCountError
	require.ErrorAs(t, err, &countErr)
	assert.Contains(t, err.Error(), "PhysicalTableMap[t1]")
}

func TestSourceArn(t *testing.T) {
	assert.Equal(t, "arn:a", *SourceArn(&TemplateSourceEntityMemberSourceAnalysis{Value: SourceAnalysis{Arn: aws.String("arn:a")}}))
	assert.Equal(t, "arn:t", *SourceArn(&TemplateSourceEntityMemberSourceTemplate{Value: SourceTemplate{Arn: aws.String("arn:t")}}))
	assert.Nil(t, SourceArn(&UnknownUnionMember{Tag: "SourceDashboard"}))
}
