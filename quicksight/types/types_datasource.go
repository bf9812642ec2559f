package types

import (
	"encoding/json"
	"fmt"

	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/internal/describe"
)

// CredentialPair is a user name and password for a data source.
// Both members are required together.
type CredentialPair struct {
	Username *string `json:"Username,omitempty"`
	Password *string `json:"Password,omitempty" sensitive:"true"`
}

func (v *CredentialPair) Validate() error {
	c := constraint.New("CredentialPair")
	c.String("Username", v.Username, 1, 64, nil)
	c.String("Password", v.Password, 1, 1024, nil)
	return c.Err()
}

// String lists the set members with the password redacted.
func (v CredentialPair) String() string {
	return describe.String(v)
}

// DataSourceCredentials is the credential source of a data source.
//
// The following types satisfy this interface:
//
//	DataSourceCredentialsMemberCredentialPair
//	DataSourceCredentialsMemberCopySourceArn
type DataSourceCredentials interface {
	isDataSourceCredentials()
}

// Credentials given inline.
type DataSourceCredentialsMemberCredentialPair struct {
	Value CredentialPair
}

func (*DataSourceCredentialsMemberCredentialPair) isDataSourceCredentials() {}

func (m DataSourceCredentialsMemberCredentialPair) MarshalJSON() ([]byte, error) {
	return encodeUnion("CredentialPair", m.Value)
}

// Reuse the credentials of an existing data source, by ARN.
type DataSourceCredentialsMemberCopySourceArn struct {
	Value string
}

func (*DataSourceCredentialsMemberCopySourceArn) isDataSourceCredentials() {}

func (m DataSourceCredentialsMemberCopySourceArn) MarshalJSON() ([]byte, error) {
	return encodeUnion("CopySourceArn", m.Value)
}

// UnmarshalDataSourceCredentials decodes a DataSourceCredentials union object.
func UnmarshalDataSourceCredentials(data []byte) (DataSourceCredentials, error) {
	tag, raw, err := decodeUnion("DataSourceCredentials", data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "CredentialPair":
		var m DataSourceCredentialsMemberCredentialPair
		err = json.Unmarshal(raw, &m.Value)
		return &m, err
	case "CopySourceArn":
		var m DataSourceCredentialsMemberCopySourceArn
		err = json.Unmarshal(raw, &m.Value)
		return &m, err
	default:
		return unknownMember(tag, raw), nil
	}
}

// ValidateDataSourceCredentials checks the selected credential member.
func ValidateDataSourceCredentials(v DataSourceCredentials) error {
	c := constraint.New("DataSourceCredentials")
	switch m := v.(type) {
	case *DataSourceCredentialsMemberCredentialPair:
		c.Nested("CredentialPair", m.Value.Validate())
	case *DataSourceCredentialsMemberCopySourceArn:
		c.String("CopySourceArn", &m.Value, 0, constraint.Unbounded, nil)
	case *UnknownUnionMember:
		checkUnknown(c, "DataSourceCredentials", m)
	}
	return c.Err()
}

// AmazonElasticsearchParameters connects to an Elasticsearch domain.
type AmazonElasticsearchParameters struct {
	Domain *string `json:"Domain,omitempty"`
}

// AthenaParameters connects to an Athena work group.
type AthenaParameters struct {
	WorkGroup *string `json:"WorkGroup,omitempty"`
}

// HostParameters are the host, port and database shared by the relational engines.
type HostParameters struct {
	Host     *string `json:"Host,omitempty"`
	Port     *int32  `json:"Port,omitempty"`
	Database *string `json:"Database,omitempty"`
}

func (v *HostParameters) check(c *constraint.Checker) {
	c.String("Host", v.Host, 1, 256, nil)
	if c.Required("Port", v.Port != nil) {
		constraint.Range(c, "Port", v.Port, 1, 65535)
	}
	c.String("Database", v.Database, 1, 128, nil)
}

type AuroraParameters HostParameters
type AuroraPostgreSqlParameters HostParameters
type MariaDbParameters HostParameters
type MySqlParameters HostParameters
type PostgreSqlParameters HostParameters
type SqlServerParameters HostParameters
type TeradataParameters HostParameters

// AwsIotAnalyticsParameters connects to an IoT Analytics data set.
type AwsIotAnalyticsParameters struct {
	DataSetName *string `json:"DataSetName,omitempty"`
}

// JiraParameters connects to a Jira site.
type JiraParameters struct {
	SiteBaseUrl *string `json:"SiteBaseUrl,omitempty"`
}

// PrestoParameters connects to a Presto catalog.
type PrestoParameters struct {
	Host    *string `json:"Host,omitempty"`
	Port    *int32  `json:"Port,omitempty"`
	Catalog *string `json:"Catalog,omitempty"`
}

// RdsParameters connects to an RDS instance.
type RdsParameters struct {
	InstanceId *string `json:"InstanceId,omitempty"`
	Database   *string `json:"Database,omitempty"`
}

// RedshiftParameters connects to a Redshift cluster, either by host and port or by
// cluster id.
type RedshiftParameters struct {
	Host      *string `json:"Host,omitempty"`
	Port      *int32  `json:"Port,omitempty"`
	Database  *string `json:"Database,omitempty"`
	ClusterId *string `json:"ClusterId,omitempty"`
}

// ManifestFileLocation is the S3 location of a manifest file.
type ManifestFileLocation struct {
	Bucket *string `json:"Bucket,omitempty"`
	Key    *string `json:"Key,omitempty"`
}

func (v *ManifestFileLocation) Validate() error {
	c := constraint.New("ManifestFileLocation")
	c.String("Bucket", v.Bucket, 1, 1024, nil)
	c.String("Key", v.Key, 1, 1024, nil)
	return c.Err()
}

// S3Parameters reads the files named by a manifest.
type S3Parameters struct {
	ManifestFileLocation *ManifestFileLocation `json:"ManifestFileLocation,omitempty"`
}

// ServiceNowParameters connects to a ServiceNow site.
type ServiceNowParameters struct {
	SiteBaseUrl *string `json:"SiteBaseUrl,omitempty"`
}

// SnowflakeParameters connects to a Snowflake warehouse.
type SnowflakeParameters struct {
	Host      *string `json:"Host,omitempty"`
	Database  *string `json:"Database,omitempty"`
	Warehouse *string `json:"Warehouse,omitempty"`
}

// SparkParameters connects to a Spark server.
type SparkParameters struct {
	Host *string `json:"Host,omitempty"`
	Port *int32  `json:"Port,omitempty"`
}

// TwitterParameters runs a Twitter search.
type TwitterParameters struct {
	Query   *string `json:"Query,omitempty"`
	MaxRows *int32  `json:"MaxRows,omitempty"`
}

// DataSourceParameters holds the connection parameters of exactly one data source
// engine.
//
// The following types satisfy this interface:
//
//	DataSourceParametersMemberAmazonElasticsearchParameters
//	DataSourceParametersMemberAthenaParameters
//	DataSourceParametersMemberAuroraParameters
//	DataSourceParametersMemberAuroraPostgreSqlParameters
//	DataSourceParametersMemberAwsIotAnalyticsParameters
//	DataSourceParametersMemberJiraParameters
//	DataSourceParametersMemberMariaDbParameters
//	DataSourceParametersMemberMySqlParameters
//	DataSourceParametersMemberPostgreSqlParameters
//	DataSourceParametersMemberPrestoParameters
//	DataSourceParametersMemberRdsParameters
//	DataSourceParametersMemberRedshiftParameters
//	DataSourceParametersMemberS3Parameters
//	DataSourceParametersMemberServiceNowParameters
//	DataSourceParametersMemberSnowflakeParameters
//	DataSourceParametersMemberSparkParameters
//	DataSourceParametersMemberSqlServerParameters
//	DataSourceParametersMemberTeradataParameters
//	DataSourceParametersMemberTwitterParameters
type DataSourceParameters interface {
	isDataSourceParameters()
}

type DataSourceParametersMemberAmazonElasticsearchParameters struct {
	Value AmazonElasticsearchParameters
}

type DataSourceParametersMemberAthenaParameters struct {
	Value AthenaParameters
}

type DataSourceParametersMemberAuroraParameters struct {
	Value AuroraParameters
}

type DataSourceParametersMemberAuroraPostgreSqlParameters struct {
	Value AuroraPostgreSqlParameters
}

type DataSourceParametersMemberAwsIotAnalyticsParameters struct {
	Value AwsIotAnalyticsParameters
}

type DataSourceParametersMemberJiraParameters struct {
	Value JiraParameters
}

type DataSourceParametersMemberMariaDbParameters struct {
	Value MariaDbParameters
}

type DataSourceParametersMemberMySqlParameters struct {
	Value MySqlParameters
}

type DataSourceParametersMemberPostgreSqlParameters struct {
	Value PostgreSqlParameters
}

type DataSourceParametersMemberPrestoParameters struct {
	Value PrestoParameters
}

type DataSourceParametersMemberRdsParameters struct {
	Value RdsParameters
}

type DataSourceParametersMemberRedshiftParameters struct {
	Value RedshiftParameters
}

type DataSourceParametersMemberS3Parameters struct {
	Value S3Parameters
}

type DataSourceParametersMemberServiceNowParameters struct {
	Value ServiceNowParameters
}

type DataSourceParametersMemberSnowflakeParameters struct {
	Value SnowflakeParameters
}

type DataSourceParametersMemberSparkParameters struct {
	Value SparkParameters
}

type DataSourceParametersMemberSqlServerParameters struct {
	Value SqlServerParameters
}

type DataSourceParametersMemberTeradataParameters struct {
	Value TeradataParameters
}

type DataSourceParametersMemberTwitterParameters struct {
	Value TwitterParameters
}

func (*DataSourceParametersMemberAmazonElasticsearchParameters) isDataSourceParameters() {}
func (*DataSourceParametersMemberAthenaParameters) isDataSourceParameters()              {}
func (*DataSourceParametersMemberAuroraParameters) isDataSourceParameters()              {}
func (*DataSourceParametersMemberAuroraPostgreSqlParameters) isDataSourceParameters()    {}
func (*DataSourceParametersMemberAwsIotAnalyticsParameters) isDataSourceParameters()     {}
func (*DataSourceParametersMemberJiraParameters) isDataSourceParameters()                {}
func (*DataSourceParametersMemberMariaDbParameters) isDataSourceParameters()             {}
func (*DataSourceParametersMemberMySqlParameters) isDataSourceParameters()               {}
func (*DataSourceParametersMemberPostgreSqlParameters) isDataSourceParameters()          {}
func (*DataSourceParametersMemberPrestoParameters) isDataSourceParameters()              {}
func (*DataSourceParametersMemberRdsParameters) isDataSourceParameters()                 {}
func (*DataSourceParametersMemberRedshiftParameters) isDataSourceParameters()            {}
func (*DataSourceParametersMemberS3Parameters) isDataSourceParameters()                  {}
func (*DataSourceParametersMemberServiceNowParameters) isDataSourceParameters()          {}
func (*DataSourceParametersMemberSnowflakeParameters) isDataSourceParameters()           {}
func (*DataSourceParametersMemberSparkParameters) isDataSourceParameters()               {}
func (*DataSourceParametersMemberSqlServerParameters) isDataSourceParameters()           {}
func (*DataSourceParametersMemberTeradataParameters) isDataSourceParameters()            {}
func (*DataSourceParametersMemberTwitterParameters) isDataSourceParameters()             {}

func (m DataSourceParametersMemberAmazonElasticsearchParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("AmazonElasticsearchParameters", m.Value)
}

func (m DataSourceParametersMemberAthenaParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("AthenaParameters", m.Value)
}

func (m DataSourceParametersMemberAuroraParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("AuroraParameters", m.Value)
}

func (m DataSourceParametersMemberAuroraPostgreSqlParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("AuroraPostgreSqlParameters", m.Value)
}

func (m DataSourceParametersMemberAwsIotAnalyticsParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("AwsIotAnalyticsParameters", m.Value)
}

func (m DataSourceParametersMemberJiraParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("JiraParameters", m.Value)
}

func (m DataSourceParametersMemberMariaDbParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("MariaDbParameters", m.Value)
}

func (m DataSourceParametersMemberMySqlParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("MySqlParameters", m.Value)
}

func (m DataSourceParametersMemberPostgreSqlParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("PostgreSqlParameters", m.Value)
}

func (m DataSourceParametersMemberPrestoParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("PrestoParameters", m.Value)
}

func (m DataSourceParametersMemberRdsParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("RdsParameters", m.Value)
}

func (m DataSourceParametersMemberRedshiftParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("RedshiftParameters", m.Value)
}

func (m DataSourceParametersMemberS3Parameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("S3Parameters", m.Value)
}

func (m DataSourceParametersMemberServiceNowParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("ServiceNowParameters", m.Value)
}

func (m DataSourceParametersMemberSnowflakeParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("SnowflakeParameters", m.Value)
}

func (m DataSourceParametersMemberSparkParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("SparkParameters", m.Value)
}

func (m DataSourceParametersMemberSqlServerParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("SqlServerParameters", m.Value)
}

func (m DataSourceParametersMemberTeradataParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("TeradataParameters", m.Value)
}

func (m DataSourceParametersMemberTwitterParameters) MarshalJSON() ([]byte, error) {
	return encodeUnion("TwitterParameters", m.Value)
}

// dataSourceParametersTag names the wire member of each variant.
func dataSourceParametersTag(v DataSourceParameters) (string, any) {
	switch m := v.(type) {
	case *DataSourceParametersMemberAmazonElasticsearchParameters:
		return "AmazonElasticsearchParameters", m.Value
	case *DataSourceParametersMemberAthenaParameters:
		return "AthenaParameters", m.Value
	case *DataSourceParametersMemberAuroraParameters:
		return "AuroraParameters", m.Value
	case *DataSourceParametersMemberAuroraPostgreSqlParameters:
		return "AuroraPostgreSqlParameters", m.Value
	case *DataSourceParametersMemberAwsIotAnalyticsParameters:
		return "AwsIotAnalyticsParameters", m.Value
	case *DataSourceParametersMemberJiraParameters:
		return "JiraParameters", m.Value
	case *DataSourceParametersMemberMariaDbParameters:
		return "MariaDbParameters", m.Value
	case *DataSourceParametersMemberMySqlParameters:
		return "MySqlParameters", m.Value
	case *DataSourceParametersMemberPostgreSqlParameters:
		return "PostgreSqlParameters", m.Value
	case *DataSourceParametersMemberPrestoParameters:
		return "PrestoParameters", m.Value
	case *DataSourceParametersMemberRdsParameters:
		return "RdsParameters", m.Value
	case *DataSourceParametersMemberRedshiftParameters:
		return "RedshiftParameters", m.Value
	case *DataSourceParametersMemberS3Parameters:
		return "S3Parameters", m.Value
	case *DataSourceParametersMemberServiceNowParameters:
		return "ServiceNowParameters", m.Value
	case *DataSourceParametersMemberSnowflakeParameters:
		return "SnowflakeParameters", m.Value
	case *DataSourceParametersMemberSparkParameters:
		return "SparkParameters", m.Value
	case *DataSourceParametersMemberSqlServerParameters:
		return "SqlServerParameters", m.Value
	case *DataSourceParametersMemberTeradataParameters:
		return "TeradataParameters", m.Value
	case *DataSourceParametersMemberTwitterParameters:
		return "TwitterParameters", m.Value
	case *UnknownUnionMember:
		return m.Tag, json.RawMessage(m.Value)
	}
	return "", nil
}

// UnmarshalDataSourceParameters decodes a DataSourceParameters union object.
func UnmarshalDataSourceParameters(data []byte) (DataSourceParameters, error) {
	tag, raw, err := decodeUnion("DataSourceParameters", data)
	if err != nil {
		return nil, err
	}
	var (
		v   DataSourceParameters
		dst any
	)
	switch tag {
	case "AmazonElasticsearchParameters":
		m := &DataSourceParametersMemberAmazonElasticsearchParameters{}
		v, dst = m, &m.Value
	case "AthenaParameters":
		m := &DataSourceParametersMemberAthenaParameters{}
		v, dst = m, &m.Value
	case "AuroraParameters":
		m := &DataSourceParametersMemberAuroraParameters{}
		v, dst = m, &m.Value
	case "AuroraPostgreSqlParameters":
		m := &DataSourceParametersMemberAuroraPostgreSqlParameters{}
		v, dst = m, &m.Value
	case "AwsIotAnalyticsParameters":
		m := &DataSourceParametersMemberAwsIotAnalyticsParameters{}
		v, dst = m, &m.Value
	case "JiraParameters":
		m := &DataSourceParametersMemberJiraParameters{}
		v, dst = m, &m.Value
	case "MariaDbParameters":
		m := &DataSourceParametersMemberMariaDbParameters{}
		v, dst = m, &m.Value
	case "MySqlParameters":
		m := &DataSourceParametersMemberMySqlParameters{}
		v, dst = m, &m.Value
	case "PostgreSqlParameters":
		m := &DataSourceParametersMemberPostgreSqlParameters{}
		v, dst = m, &m.Value
	case "PrestoParameters":
		m := &DataSourceParametersMemberPrestoParameters{}
		v, dst = m, &m.Value
	case "RdsParameters":
		m := &DataSourceParametersMemberRdsParameters{}
		v, dst = m, &m.Value
	case "RedshiftParameters":
		m := &DataSourceParametersMemberRedshiftParameters{}
		v, dst = m, &m.Value
	case "S3Parameters":
		m := &DataSourceParametersMemberS3Parameters{}
		v, dst = m, &m.Value
	case "ServiceNowParameters":
		m := &DataSourceParametersMemberServiceNowParameters{}
		v, dst = m, &m.Value
	case "SnowflakeParameters":
		m := &DataSourceParametersMemberSnowflakeParameters{}
		v, dst = m, &m.Value
	case "SparkParameters":
		m := &DataSourceParametersMemberSparkParameters{}
		v, dst = m, &m.Value
	case "SqlServerParameters":
		m := &DataSourceParametersMemberSqlServerParameters{}
		v, dst = m, &m.Value
	case "TeradataParameters":
		m := &DataSourceParametersMemberTeradataParameters{}
		v, dst = m, &m.Value
	case "TwitterParameters":
		m := &DataSourceParametersMemberTwitterParameters{}
		v, dst = m, &m.Value
	default:
		return unknownMember(tag, raw), nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, fmt.Errorf("DataSourceParameters.%s: %w", tag, err)
	}
	return v, nil
}

// ValidateDataSourceParameters checks the members of the selected engine.
func ValidateDataSourceParameters(v DataSourceParameters) error {
	c := constraint.New("DataSourceParameters")
	tag, _ := dataSourceParametersTag(v)
	inner := constraint.New(tag)
	switch m := v.(type) {
	case *DataSourceParametersMemberAmazonElasticsearchParameters:
		inner.String("Domain", m.Value.Domain, 1, 64, nil)
	case *DataSourceParametersMemberAthenaParameters:
		inner.OptionalString("WorkGroup", m.Value.WorkGroup, 1, 128, nil)
	case *DataSourceParametersMemberAuroraParameters:
		(*HostParameters)(&m.Value).check(inner)
	case *DataSourceParametersMemberAuroraPostgreSqlParameters:
		(*HostParameters)(&m.Value).check(inner)
	case *DataSourceParametersMemberMariaDbParameters:
		(*HostParameters)(&m.Value).check(inner)
	case *DataSourceParametersMemberMySqlParameters:
		(*HostParameters)(&m.Value).check(inner)
	case *DataSourceParametersMemberPostgreSqlParameters:
		(*HostParameters)(&m.Value).check(inner)
	case *DataSourceParametersMemberSqlServerParameters:
		(*HostParameters)(&m.Value).check(inner)
	case *DataSourceParametersMemberTeradataParameters:
		(*HostParameters)(&m.Value).check(inner)
	case *DataSourceParametersMemberAwsIotAnalyticsParameters:
		inner.String("DataSetName", m.Value.DataSetName, 1, 128, nil)
	case *DataSourceParametersMemberJiraParameters:
		inner.String("SiteBaseUrl", m.Value.SiteBaseUrl, 1, 1024, nil)
	case *DataSourceParametersMemberServiceNowParameters:
		inner.String("SiteBaseUrl", m.Value.SiteBaseUrl, 1, 1024, nil)
	case *DataSourceParametersMemberPrestoParameters:
		inner.String("Host", m.Value.Host, 1, 256, nil)
		if inner.Required("Port", m.Value.Port != nil) {
			constraint.Range(inner, "Port", m.Value.Port, 1, 65535)
		}
		inner.String("Catalog", m.Value.Catalog, 0, 128, nil)
	case *DataSourceParametersMemberRdsParameters:
		inner.String("InstanceId", m.Value.InstanceId, 1, 64, nil)
		inner.String("Database", m.Value.Database, 1, 128, nil)
	case *DataSourceParametersMemberRedshiftParameters:
		inner.OptionalString("Host", m.Value.Host, 1, 256, nil)
		constraint.Range(inner, "Port", m.Value.Port, 0, 65535)
		inner.String("Database", m.Value.Database, 1, 128, nil)
		inner.OptionalString("ClusterId", m.Value.ClusterId, 1, 64, nil)
	case *DataSourceParametersMemberS3Parameters:
		if inner.Required("ManifestFileLocation", m.Value.ManifestFileLocation != nil) {
			inner.Nested("ManifestFileLocation", m.Value.ManifestFileLocation.Validate())
		}
	case *DataSourceParametersMemberSnowflakeParameters:
		inner.String("Host", m.Value.Host, 1, 256, nil)
		inner.String("Database", m.Value.Database, 1, 128, nil)
		inner.String("Warehouse", m.Value.Warehouse, 0, 128, nil)
	case *DataSourceParametersMemberSparkParameters:
		inner.String("Host", m.Value.Host, 1, 256, nil)
		if inner.Required("Port", m.Value.Port != nil) {
			constraint.Range(inner, "Port", m.Value.Port, 1, 65535)
		}
	case *DataSourceParametersMemberTwitterParameters:
		inner.String("Query", m.Value.Query, 1, 1000, nil)
		if inner.Required("MaxRows", m.Value.MaxRows != nil) {
			constraint.Min(inner, "MaxRows", m.Value.MaxRows, 1)
		}
	case *UnknownUnionMember:
		checkUnknown(c, "DataSourceParameters", m)
	}
	c.Nested(tag, inner.Err())
	return c.Err()
}

// SslProperties controls the SSL connection to a data source.
type SslProperties struct {
	DisableSsl bool `json:"DisableSsl,omitempty"`
}

// VpcConnectionProperties routes data source traffic through a VPC connection.
type VpcConnectionProperties struct {
	VpcConnectionArn *string `json:"VpcConnectionArn,omitempty"`
}

func (v *VpcConnectionProperties) Validate() error {
	c := constraint.New("VpcConnectionProperties")
	c.Required("VpcConnectionArn", v.VpcConnectionArn != nil)
	return c.Err()
}

// DataSourceErrorInfo describes why a data source failed to create or update.
type DataSourceErrorInfo struct {
	Type    DataSourceErrorInfoType `json:"Type,omitempty"`
	Message *string                 `json:"Message,omitempty"`
}

// DataSource is a connection to a source of data.
type DataSource struct {
	Arn                     *string                  `json:"Arn,omitempty"`
	DataSourceId            *string                  `json:"DataSourceId,omitempty"`
	Name                    *string                  `json:"Name,omitempty"`
	Type                    DataSourceType           `json:"Type,omitempty"`
	Status                  ResourceStatus           `json:"Status,omitempty"`
	CreatedTime             *Timestamp               `json:"CreatedTime,omitempty"`
	LastUpdatedTime         *Timestamp               `json:"LastUpdatedTime,omitempty"`
	DataSourceParameters    DataSourceParameters     `json:"DataSourceParameters,omitempty"`
	VpcConnectionProperties *VpcConnectionProperties `json:"VpcConnectionProperties,omitempty"`
	SslProperties           *SslProperties           `json:"SslProperties,omitempty"`
	ErrorInfo               *DataSourceErrorInfo     `json:"ErrorInfo,omitempty"`
}

func (v *DataSource) UnmarshalJSON(b []byte) error {
	type plain DataSource
	aux := struct {
		*plain
		DataSourceParameters json.RawMessage `json:"DataSourceParameters,omitempty"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	params, err := decodeOptionalUnion(aux.DataSourceParameters, UnmarshalDataSourceParameters)
	if err != nil {
		return err
	}
	v.DataSourceParameters = params
	return nil
}
