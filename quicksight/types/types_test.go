package types

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func time1() time.Time {
	return time.Date(2020, 4, 1, 12, 30, 15, 123456789, time.UTC)
}

func fields(t *testing.T, err error) []string {
	t.Helper()
	var invalid smithy.InvalidParamsError
	require.True(t, errors.As(err, &invalid), "expected InvalidParamsError, got %v", err)
	var out []string
	for _, e := range invalid.Errs() {
		var pe smithy.InvalidParamError
		require.True(t, errors.As(e, &pe))
		out = append(out, pe.Field())
	}
	return out
}

// =============================================================================
// Field-validated records
// =============================================================================

func TestCredentialPair_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v := CredentialPair{Username: aws.String("admin"), Password: aws.String("s3cret")}
		assert.NoError(t, v.Validate())
	})

	t.Run("username too long", func(t *testing.T) {
		v := CredentialPair{Username: aws.String(strings.Repeat("u", 65)), Password: aws.String("p")}
		assert.Equal(t, []string{"CredentialPair.Username"}, fields(t, v.Validate()))
	})

	t.Run("both missing", func(t *testing.T) {
		v := CredentialPair{}
		assert.Equal(t, []string{"CredentialPair.Username", "CredentialPair.Password"}, fields(t, v.Validate()))
	})

	t.Run("setting a field does not validate", func(t *testing.T) {
		v := CredentialPair{}
		v.Username = aws.String("")
		assert.Equal(t, "", *v.Username)
		assert.Error(t, v.Validate())
	})
}

func TestCredentialPair_StringRedactsPassword(t *testing.T) {
	v := CredentialPair{Username: aws.String("admin"), Password: aws.String("hunter2")}
	s := v.String()
	assert.Contains(t, s, "Username: admin")
	assert.NotContains(t, s, "hunter2")
	assert.Contains(t, s, "Sensitive Data Redacted")
}

func TestCredentialPair_Equality(t *testing.T) {
	a := CredentialPair{Username: aws.String("u"), Password: aws.String("p")}
	b := CredentialPair{Username: aws.String("u"), Password: aws.String("p")}
	assert.Equal(t, a, b)

	b.Password = nil
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, CredentialPair{Username: aws.String("u"), Password: aws.String("")})
}

func TestS3Source_Validate(t *testing.T) {
	t.Run("input columns required", func(t *testing.T) {
		v := S3Source{DataSourceArn: aws.String("arn:ds")}
		assert.Equal(t, []string{"S3Source.InputColumns"}, fields(t, v.Validate()))
	})

	t.Run("input column paths", func(t *testing.T) {
		v := S3Source{
			DataSourceArn:  aws.String("arn:ds"),
			UploadSettings: &UploadSettings{StartFromRow: aws.Int32(0), Delimiter: aws.String(";;")},
			InputColumns:   []InputColumn{{Name: aws.String("ok"), Type: InputColumnDataTypeString}, {Name: aws.String("")}},
		}
		assert.ElementsMatch(t, []string{
			"S3Source.UploadSettings.StartFromRow",
			"S3Source.UploadSettings.Delimiter",
			"S3Source.InputColumns[1].Name",
			"S3Source.InputColumns[1].Type",
		}, fields(t, v.Validate()))
	})
}

func TestCheckDataSetTables_NestedPaths(t *testing.T) {
	err := ValidatePhysicalTable(&PhysicalTableMemberRelationalTable{Value: RelationalTable{
		DataSourceArn: aws.String("arn:ds"),
		Name:          aws.String(""),
		InputColumns:  []InputColumn{{Name: aws.String("c"), Type: InputColumnDataTypeString}},
	}})
	assert.Equal(t, []string{"PhysicalTable.RelationalTable.Name"}, fields(t, err))

	var nilTable PhysicalTable
	assert.Error(t, ValidatePhysicalTable(nilTable))
}

func TestLogicalTable_Validate(t *testing.T) {
	v := LogicalTable{
		Alias: aws.String("joined"),
		Source: &LogicalTableSourceMemberJoinInstruction{Value: JoinInstruction{
			LeftOperand:  aws.String("left"),
			RightOperand: aws.String("right_table"),
			Type:         JoinTypeInner,
			OnClause:     aws.String("a = b"),
		}},
		DataTransforms: []TransformOperation{
			&TransformOperationMemberProjectOperation{Value: ProjectOperation{}},
		},
	}
	assert.ElementsMatch(t, []string{
		"LogicalTable.Source.JoinInstruction.RightOperand",
		"LogicalTable.DataTransforms[0].ProjectOperation.ProjectedColumns",
	}, fields(t, v.Validate()))
}

func TestDataSourceParameters_Validate(t *testing.T) {
	tests := []struct {
		name   string
		params DataSourceParameters
		want   []string
	}{
		{
			name: "valid mysql",
			params: &DataSourceParametersMemberMySqlParameters{Value: MySqlParameters{
				Host: aws.String("h"), Port: aws.Int32(3306), Database: aws.String("d"),
			}},
		},
		{
			name: "port out of range",
			params: &DataSourceParametersMemberMySqlParameters{Value: MySqlParameters{
				Host: aws.String("h"), Port: aws.Int32(70000), Database: aws.String("d"),
			}},
			want: []string{"DataSourceParameters.MySqlParameters.Port"},
		},
		{
			name: "redshift allows port zero",
			params: &DataSourceParametersMemberRedshiftParameters{Value: RedshiftParameters{
				Port: aws.Int32(0), Database: aws.String("d"), ClusterId: aws.String("c1"),
			}},
		},
		{
			name:   "s3 manifest required",
			params: &DataSourceParametersMemberS3Parameters{},
			want:   []string{"DataSourceParameters.S3Parameters.ManifestFileLocation"},
		},
		{
			name:   "twitter rows",
			params: &DataSourceParametersMemberTwitterParameters{Value: TwitterParameters{Query: aws.String("q"), MaxRows: aws.Int32(0)}},
			want:   []string{"DataSourceParameters.TwitterParameters.MaxRows"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDataSourceParameters(tt.params)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, fields(t, err))
		})
	}
}

func TestParameters_Validate(t *testing.T) {
	v := Parameters{
		StringParameters:  []StringParameter{{Name: aws.String("region"), Values: []string{"eu"}}},
		IntegerParameters: []IntegerParameter{{Name: aws.String("   ")}},
	}
	assert.ElementsMatch(t, []string{
		"Parameters.IntegerParameters[0].Name",
		"Parameters.IntegerParameters[0].Values",
	}, fields(t, v.Validate()))
}

// =============================================================================
// Exceptions
// =============================================================================

func TestDecodeException(t *testing.T) {
	t.Run("modelled", func(t *testing.T) {
		err := DecodeException("ResourceNotFoundException", "",
			[]byte(`{"Message":"data set sales not found","ResourceType":"DATA_SET","RequestId":"r-1"}`))

		var notFound *ResourceNotFoundException
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, ExceptionResourceTypeDataSet, notFound.ResourceType)
		assert.Equal(t, "r-1", *notFound.RequestId)
		assert.EqualError(t, err, "ResourceNotFoundException: data set sales not found")

		var apiErr smithy.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, smithy.FaultClient, apiErr.ErrorFault())
	})

	t.Run("server fault", func(t *testing.T) {
		err := DecodeException("InternalFailureException", "", nil)
		var apiErr smithy.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, smithy.FaultServer, apiErr.ErrorFault())
	})

	t.Run("unmodelled", func(t *testing.T) {
		err := DecodeException("BrandNewException", "something", nil)
		var generic *smithy.GenericAPIError
		require.ErrorAs(t, err, &generic)
		assert.Equal(t, "BrandNewException", generic.Code)
		assert.Equal(t, "something", generic.Message)
	})

	t.Run("bad body", func(t *testing.T) {
		err := DecodeException("ThrottlingException", "", []byte(`{"Message":`))
		var derr *smithy.DeserializationError
		require.ErrorAs(t, err, &derr)
	})
}

func TestExceptionStatus(t *testing.T) {
	assert.Equal(t, 404, ExceptionStatus("ResourceNotFoundException"))
	assert.Equal(t, 409, ExceptionStatus("ResourceExistsException"))
	assert.Equal(t, 429, ExceptionStatus("ThrottlingException"))
	assert.Equal(t, 500, ExceptionStatus("Unknown"))
}

// =============================================================================
// Ingestion
// =============================================================================

func TestIngestion_Err(t *testing.T) {
	var nilIngestion *Ingestion
	assert.NoError(t, nilIngestion.Err())
	assert.NoError(t, (&Ingestion{IngestionStatus: IngestionStatusCompleted}).Err())

	ing := Ingestion{
		IngestionId:     aws.String("i-1"),
		IngestionStatus: IngestionStatusFailed,
		ErrorInfo: &ErrorInfo{
			Type:    IngestionErrorTypeRowSizeLimitExceeded,
			Message: aws.String("row 12 too large"),
		},
	}
	err := ing.Err()
	var failed *IngestionFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, IngestionErrorTypeRowSizeLimitExceeded, failed.Type)
	assert.EqualError(t, err, "ingestion i-1 failed: ROW_SIZE_LIMIT_EXCEEDED: row 12 too large")
}

func TestTimestamp_EpochSeconds(t *testing.T) {
	ts := NewTimestamp(time1())
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1585744215.123", string(b))

	var got Timestamp
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, ts.Equal(got.Time))

	require.Error(t, json.Unmarshal([]byte(`"2020-04-01"`), &got))
}
