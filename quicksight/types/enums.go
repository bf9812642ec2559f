package types

// AssignmentStatus is the state of an IAM policy assignment.
type AssignmentStatus string

const (
	AssignmentStatusEnabled  AssignmentStatus = "ENABLED"
	AssignmentStatusDraft    AssignmentStatus = "DRAFT"
	AssignmentStatusDisabled AssignmentStatus = "DISABLED"
)

// Values returns the values of AssignmentStatus known to this client.
func (AssignmentStatus) Values() []AssignmentStatus {
	return []AssignmentStatus{
		"ENABLED",
		"DRAFT",
		"DISABLED",
	}
}

func (v AssignmentStatus) IsKnown() bool { return isKnown(v) }

// ParseAssignmentStatus strictly decodes raw; empty and unknown strings fail.
func ParseAssignmentStatus(raw string) (AssignmentStatus, error) {
	return parseEnum[AssignmentStatus]("AssignmentStatus", raw)
}

type ColumnDataType string

const (
	ColumnDataTypeString   ColumnDataType = "STRING"
	ColumnDataTypeInteger  ColumnDataType = "INTEGER"
	ColumnDataTypeDecimal  ColumnDataType = "DECIMAL"
	ColumnDataTypeDatetime ColumnDataType = "DATETIME"
)

// Values returns the values of ColumnDataType known to this client.
func (ColumnDataType) Values() []ColumnDataType {
	return []ColumnDataType{
		"STRING",
		"INTEGER",
		"DECIMAL",
		"DATETIME",
	}
}

func (v ColumnDataType) IsKnown() bool { return isKnown(v) }

// ParseColumnDataType strictly decodes raw; empty and unknown strings fail.
func ParseColumnDataType(raw string) (ColumnDataType, error) {
	return parseEnum[ColumnDataType]("ColumnDataType", raw)
}

type DashboardBehavior string

const (
	DashboardBehaviorEnabled  DashboardBehavior = "ENABLED"
	DashboardBehaviorDisabled DashboardBehavior = "DISABLED"
)

// Values returns the values of DashboardBehavior known to this client.
func (DashboardBehavior) Values() []DashboardBehavior {
	return []DashboardBehavior{
		"ENABLED",
		"DISABLED",
	}
}

func (v DashboardBehavior) IsKnown() bool { return isKnown(v) }

// ParseDashboardBehavior strictly decodes raw; empty and unknown strings fail.
func ParseDashboardBehavior(raw string) (DashboardBehavior, error) {
	return parseEnum[DashboardBehavior]("DashboardBehavior", raw)
}

type DashboardErrorType string

const (
	DashboardErrorTypeAccessDenied                 DashboardErrorType = "ACCESS_DENIED"
	DashboardErrorTypeSourceNotFound               DashboardErrorType = "SOURCE_NOT_FOUND"
	DashboardErrorTypeDataSetNotFound              DashboardErrorType = "DATA_SET_NOT_FOUND"
	DashboardErrorTypeInternalFailure              DashboardErrorType = "INTERNAL_FAILURE"
	DashboardErrorTypeParameterValueIncompatible   DashboardErrorType = "PARAMETER_VALUE_INCOMPATIBLE"
	DashboardErrorTypeParameterTypeInvalid         DashboardErrorType = "PARAMETER_TYPE_INVALID"
	DashboardErrorTypeParameterNotFound            DashboardErrorType = "PARAMETER_NOT_FOUND"
	DashboardErrorTypeColumnTypeMismatch           DashboardErrorType = "COLUMN_TYPE_MISMATCH"
	DashboardErrorTypeColumnGeographicRoleMismatch DashboardErrorType = "COLUMN_GEOGRAPHIC_ROLE_MISMATCH"
	DashboardErrorTypeColumnReplacementMissing     DashboardErrorType = "COLUMN_REPLACEMENT_MISSING"
)

// Values returns the values of DashboardErrorType known to this client.
func (DashboardErrorType) Values() []DashboardErrorType {
	return []DashboardErrorType{
		"ACCESS_DENIED",
		"SOURCE_NOT_FOUND",
		"DATA_SET_NOT_FOUND",
		"INTERNAL_FAILURE",
		"PARAMETER_VALUE_INCOMPATIBLE",
		"PARAMETER_TYPE_INVALID",
		"PARAMETER_NOT_FOUND",
		"COLUMN_TYPE_MISMATCH",
		"COLUMN_GEOGRAPHIC_ROLE_MISMATCH",
		"COLUMN_REPLACEMENT_MISSING",
	}
}

func (v DashboardErrorType) IsKnown() bool { return isKnown(v) }

// ParseDashboardErrorType strictly decodes raw; empty and unknown strings fail.
func ParseDashboardErrorType(raw string) (DashboardErrorType, error) {
	return parseEnum[DashboardErrorType]("DashboardErrorType", raw)
}

type DashboardFilterAttribute string

const (
	DashboardFilterAttributeQuicksightUser DashboardFilterAttribute = "QUICKSIGHT_USER"
)

// Values returns the values of DashboardFilterAttribute known to this client.
func (DashboardFilterAttribute) Values() []DashboardFilterAttribute {
	return []DashboardFilterAttribute{
		"QUICKSIGHT_USER",
	}
}

func (v DashboardFilterAttribute) IsKnown() bool { return isKnown(v) }

// ParseDashboardFilterAttribute strictly decodes raw; empty and unknown strings fail.
func ParseDashboardFilterAttribute(raw string) (DashboardFilterAttribute, error) {
	return parseEnum[DashboardFilterAttribute]("DashboardFilterAttribute", raw)
}

type DashboardUIState string

const (
	DashboardUIStateExpanded  DashboardUIState = "EXPANDED"
	DashboardUIStateCollapsed DashboardUIState = "COLLAPSED"
)

// Values returns the values of DashboardUIState known to this client.
func (DashboardUIState) Values() []DashboardUIState {
	return []DashboardUIState{
		"EXPANDED",
		"COLLAPSED",
	}
}

func (v DashboardUIState) IsKnown() bool { return isKnown(v) }

// ParseDashboardUIState strictly decodes raw; empty and unknown strings fail.
func ParseDashboardUIState(raw string) (DashboardUIState, error) {
	return parseEnum[DashboardUIState]("DashboardUIState", raw)
}

type DataSetImportMode string

const (
	DataSetImportModeSpice       DataSetImportMode = "SPICE"
	DataSetImportModeDirectQuery DataSetImportMode = "DIRECT_QUERY"
)

// Values returns the values of DataSetImportMode known to this client.
func (DataSetImportMode) Values() []DataSetImportMode {
	return []DataSetImportMode{
		"SPICE",
		"DIRECT_QUERY",
	}
}

func (v DataSetImportMode) IsKnown() bool { return isKnown(v) }

// ParseDataSetImportMode strictly decodes raw; empty and unknown strings fail.
func ParseDataSetImportMode(raw string) (DataSetImportMode, error) {
	return parseEnum[DataSetImportMode]("DataSetImportMode", raw)
}

type DataSourceErrorInfoType string

const (
	DataSourceErrorInfoTypeTimeout                   DataSourceErrorInfoType = "TIMEOUT"
	DataSourceErrorInfoTypeEngineVersionNotSupported DataSourceErrorInfoType = "ENGINE_VERSION_NOT_SUPPORTED"
	DataSourceErrorInfoTypeUnknownHost               DataSourceErrorInfoType = "UNKNOWN_HOST"
	DataSourceErrorInfoTypeGenericSqlFailure         DataSourceErrorInfoType = "GENERIC_SQL_FAILURE"
	DataSourceErrorInfoTypeConflict                  DataSourceErrorInfoType = "CONFLICT"
	DataSourceErrorInfoTypeUnknown                   DataSourceErrorInfoType = "UNKNOWN"
)

// Values returns the values of DataSourceErrorInfoType known to this client.
func (DataSourceErrorInfoType) Values() []DataSourceErrorInfoType {
	return []DataSourceErrorInfoType{
		"TIMEOUT",
		"ENGINE_VERSION_NOT_SUPPORTED",
		"UNKNOWN_HOST",
		"GENERIC_SQL_FAILURE",
		"CONFLICT",
		"UNKNOWN",
	}
}

func (v DataSourceErrorInfoType) IsKnown() bool { return isKnown(v) }

// ParseDataSourceErrorInfoType strictly decodes raw; empty and unknown strings fail.
func ParseDataSourceErrorInfoType(raw string) (DataSourceErrorInfoType, error) {
	return parseEnum[DataSourceErrorInfoType]("DataSourceErrorInfoType", raw)
}

type DataSourceType string

const (
	DataSourceTypeAdobeAnalytics      DataSourceType = "ADOBE_ANALYTICS"
	DataSourceTypeAmazonElasticsearch DataSourceType = "AMAZON_ELASTICSEARCH"
	DataSourceTypeAthena              DataSourceType = "ATHENA"
	DataSourceTypeAurora              DataSourceType = "AURORA"
	DataSourceTypeAuroraPostgresql    DataSourceType = "AURORA_POSTGRESQL"
	DataSourceTypeAwsIotAnalytics     DataSourceType = "AWS_IOT_ANALYTICS"
	DataSourceTypeGithub              DataSourceType = "GITHUB"
	DataSourceTypeJira                DataSourceType = "JIRA"
	DataSourceTypeMariadb             DataSourceType = "MARIADB"
	DataSourceTypeMysql               DataSourceType = "MYSQL"
	DataSourceTypePostgresql          DataSourceType = "POSTGRESQL"
	DataSourceTypePresto              DataSourceType = "PRESTO"
	DataSourceTypeRedshift            DataSourceType = "REDSHIFT"
	DataSourceTypeS3                  DataSourceType = "S3"
	DataSourceTypeSalesforce          DataSourceType = "SALESFORCE"
	DataSourceTypeServicenow          DataSourceType = "SERVICENOW"
	DataSourceTypeSnowflake           DataSourceType = "SNOWFLAKE"
	DataSourceTypeSpark               DataSourceType = "SPARK"
	DataSourceTypeSqlserver           DataSourceType = "SQLSERVER"
	DataSourceTypeTeradata            DataSourceType = "TERADATA"
	DataSourceTypeTwitter             DataSourceType = "TWITTER"
)

// Values returns the values of DataSourceType known to this client.
func (DataSourceType) Values() []DataSourceType {
	return []DataSourceType{
		"ADOBE_ANALYTICS",
		"AMAZON_ELASTICSEARCH",
		"ATHENA",
		"AURORA",
		"AURORA_POSTGRESQL",
		"AWS_IOT_ANALYTICS",
		"GITHUB",
		"JIRA",
		"MARIADB",
		"MYSQL",
		"POSTGRESQL",
		"PRESTO",
		"REDSHIFT",
		"S3",
		"SALESFORCE",
		"SERVICENOW",
		"SNOWFLAKE",
		"SPARK",
		"SQLSERVER",
		"TERADATA",
		"TWITTER",
	}
}

func (v DataSourceType) IsKnown() bool { return isKnown(v) }

// ParseDataSourceType strictly decodes raw; empty and unknown strings fail.
func ParseDataSourceType(raw string) (DataSourceType, error) {
	return parseEnum[DataSourceType]("DataSourceType", raw)
}

type Edition string

const (
	EditionStandard   Edition = "STANDARD"
	EditionEnterprise Edition = "ENTERPRISE"
)

// Values returns the values of Edition known to this client.
func (Edition) Values() []Edition {
	return []Edition{
		"STANDARD",
		"ENTERPRISE",
	}
}

func (v Edition) IsKnown() bool { return isKnown(v) }

// ParseEdition strictly decodes raw; empty and unknown strings fail.
func ParseEdition(raw string) (Edition, error) {
	return parseEnum[Edition]("Edition", raw)
}

type EmbeddingIdentityType string

const (
	EmbeddingIdentityTypeIam        EmbeddingIdentityType = "IAM"
	EmbeddingIdentityTypeQuicksight EmbeddingIdentityType = "QUICKSIGHT"
)

// Values returns the values of EmbeddingIdentityType known to this client.
func (EmbeddingIdentityType) Values() []EmbeddingIdentityType {
	return []EmbeddingIdentityType{
		"IAM",
		"QUICKSIGHT",
	}
}

func (v EmbeddingIdentityType) IsKnown() bool { return isKnown(v) }

// ParseEmbeddingIdentityType strictly decodes raw; empty and unknown strings fail.
func ParseEmbeddingIdentityType(raw string) (EmbeddingIdentityType, error) {
	return parseEnum[EmbeddingIdentityType]("EmbeddingIdentityType", raw)
}

type ExceptionResourceType string

const (
	ExceptionResourceTypeUser                ExceptionResourceType = "USER"
	ExceptionResourceTypeGroup               ExceptionResourceType = "GROUP"
	ExceptionResourceTypeNamespace           ExceptionResourceType = "NAMESPACE"
	ExceptionResourceTypeAccountSettings     ExceptionResourceType = "ACCOUNT_SETTINGS"
	ExceptionResourceTypeIampolicyAssignment ExceptionResourceType = "IAMPOLICY_ASSIGNMENT"
	ExceptionResourceTypeDataSource          ExceptionResourceType = "DATA_SOURCE"
	ExceptionResourceTypeDataSet             ExceptionResourceType = "DATA_SET"
	ExceptionResourceTypeVpcConnection       ExceptionResourceType = "VPC_CONNECTION"
	ExceptionResourceTypeIngestion           ExceptionResourceType = "INGESTION"
)

// Values returns the values of ExceptionResourceType known to this client.
func (ExceptionResourceType) Values() []ExceptionResourceType {
	return []ExceptionResourceType{
		"USER",
		"GROUP",
		"NAMESPACE",
		"ACCOUNT_SETTINGS",
		"IAMPOLICY_ASSIGNMENT",
		"DATA_SOURCE",
		"DATA_SET",
		"VPC_CONNECTION",
		"INGESTION",
	}
}

func (v ExceptionResourceType) IsKnown() bool { return isKnown(v) }

// ParseExceptionResourceType strictly decodes raw; empty and unknown strings fail.
func ParseExceptionResourceType(raw string) (ExceptionResourceType, error) {
	return parseEnum[ExceptionResourceType]("ExceptionResourceType", raw)
}

type FileFormat string

const (
	FileFormatCsv  FileFormat = "CSV"
	FileFormatTsv  FileFormat = "TSV"
	FileFormatClf  FileFormat = "CLF"
	FileFormatElf  FileFormat = "ELF"
	FileFormatXlsx FileFormat = "XLSX"
	FileFormatJson FileFormat = "JSON"
)

// Values returns the values of FileFormat known to this client.
func (FileFormat) Values() []FileFormat {
	return []FileFormat{
		"CSV",
		"TSV",
		"CLF",
		"ELF",
		"XLSX",
		"JSON",
	}
}

func (v FileFormat) IsKnown() bool { return isKnown(v) }

// ParseFileFormat strictly decodes raw; empty and unknown strings fail.
func ParseFileFormat(raw string) (FileFormat, error) {
	return parseEnum[FileFormat]("FileFormat", raw)
}

type FilterOperator string

const (
	FilterOperatorStringEquals FilterOperator = "StringEquals"
)

// Values returns the values of FilterOperator known to this client.
func (FilterOperator) Values() []FilterOperator {
	return []FilterOperator{
		"StringEquals",
	}
}

func (v FilterOperator) IsKnown() bool { return isKnown(v) }

// ParseFilterOperator strictly decodes raw; empty and unknown strings fail.
func ParseFilterOperator(raw string) (FilterOperator, error) {
	return parseEnum[FilterOperator]("FilterOperator", raw)
}

type GeoSpatialCountryCode string

const (
	GeoSpatialCountryCodeUs GeoSpatialCountryCode = "US"
)

// Values returns the values of GeoSpatialCountryCode known to this client.
func (GeoSpatialCountryCode) Values() []GeoSpatialCountryCode {
	return []GeoSpatialCountryCode{
		"US",
	}
}

func (v GeoSpatialCountryCode) IsKnown() bool { return isKnown(v) }

// ParseGeoSpatialCountryCode strictly decodes raw; empty and unknown strings fail.
func ParseGeoSpatialCountryCode(raw string) (GeoSpatialCountryCode, error) {
	return parseEnum[GeoSpatialCountryCode]("GeoSpatialCountryCode", raw)
}

type GeoSpatialDataRole string

const (
	GeoSpatialDataRoleCountry   GeoSpatialDataRole = "COUNTRY"
	GeoSpatialDataRoleState     GeoSpatialDataRole = "STATE"
	GeoSpatialDataRoleCounty    GeoSpatialDataRole = "COUNTY"
	GeoSpatialDataRoleCity      GeoSpatialDataRole = "CITY"
	GeoSpatialDataRolePostcode  GeoSpatialDataRole = "POSTCODE"
	GeoSpatialDataRoleLongitude GeoSpatialDataRole = "LONGITUDE"
	GeoSpatialDataRoleLatitude  GeoSpatialDataRole = "LATITUDE"
)

// Values returns the values of GeoSpatialDataRole known to this client.
func (GeoSpatialDataRole) Values() []GeoSpatialDataRole {
	return []GeoSpatialDataRole{
		"COUNTRY",
		"STATE",
		"COUNTY",
		"CITY",
		"POSTCODE",
		"LONGITUDE",
		"LATITUDE",
	}
}

func (v GeoSpatialDataRole) IsKnown() bool { return isKnown(v) }

// ParseGeoSpatialDataRole strictly decodes raw; empty and unknown strings fail.
func ParseGeoSpatialDataRole(raw string) (GeoSpatialDataRole, error) {
	return parseEnum[GeoSpatialDataRole]("GeoSpatialDataRole", raw)
}

type IdentityType string

const (
	IdentityTypeIam        IdentityType = "IAM"
	IdentityTypeQuicksight IdentityType = "QUICKSIGHT"
)

// Values returns the values of IdentityType known to this client.
func (IdentityType) Values() []IdentityType {
	return []IdentityType{
		"IAM",
		"QUICKSIGHT",
	}
}

func (v IdentityType) IsKnown() bool { return isKnown(v) }

// ParseIdentityType strictly decodes raw; empty and unknown strings fail.
func ParseIdentityType(raw string) (IdentityType, error) {
	return parseEnum[IdentityType]("IdentityType", raw)
}

// IngestionErrorType is the kind of failure reported for a FAILED ingestion.
type IngestionErrorType string

const (
	IngestionErrorTypeFailureToAssumeRole             IngestionErrorType = "FAILURE_TO_ASSUME_ROLE"
	IngestionErrorTypeIngestionSuperseded             IngestionErrorType = "INGESTION_SUPERSEDED"
	IngestionErrorTypeIngestionCanceled               IngestionErrorType = "INGESTION_CANCELED"
	IngestionErrorTypeDataSetDeleted                  IngestionErrorType = "DATA_SET_DELETED"
	IngestionErrorTypeDataSetNotSpice                 IngestionErrorType = "DATA_SET_NOT_SPICE"
	IngestionErrorTypeS3UploadedFileDeleted           IngestionErrorType = "S3_UPLOADED_FILE_DELETED"
	IngestionErrorTypeS3ManifestError                 IngestionErrorType = "S3_MANIFEST_ERROR"
	IngestionErrorTypeDataToleranceException          IngestionErrorType = "DATA_TOLERANCE_EXCEPTION"
	IngestionErrorTypeSpiceTableNotFound              IngestionErrorType = "SPICE_TABLE_NOT_FOUND"
	IngestionErrorTypeDataSetSizeLimitExceeded        IngestionErrorType = "DATA_SET_SIZE_LIMIT_EXCEEDED"
	IngestionErrorTypeRowSizeLimitExceeded            IngestionErrorType = "ROW_SIZE_LIMIT_EXCEEDED"
	IngestionErrorTypeAccountCapacityLimitExceeded    IngestionErrorType = "ACCOUNT_CAPACITY_LIMIT_EXCEEDED"
	IngestionErrorTypeCustomerError                   IngestionErrorType = "CUSTOMER_ERROR"
	IngestionErrorTypeDataSourceNotFound              IngestionErrorType = "DATA_SOURCE_NOT_FOUND"
	IngestionErrorTypeIamRoleNotAvailable             IngestionErrorType = "IAM_ROLE_NOT_AVAILABLE"
	IngestionErrorTypeConnectionFailure               IngestionErrorType = "CONNECTION_FAILURE"
	IngestionErrorTypeSqlTableNotFound                IngestionErrorType = "SQL_TABLE_NOT_FOUND"
	IngestionErrorTypePermissionDenied                IngestionErrorType = "PERMISSION_DENIED"
	IngestionErrorTypeSslCertificateValidationFailure IngestionErrorType = "SSL_CERTIFICATE_VALIDATION_FAILURE"
	IngestionErrorTypeOauthTokenFailure               IngestionErrorType = "OAUTH_TOKEN_FAILURE"
	IngestionErrorTypeSourceApiLimitExceededFailure   IngestionErrorType = "SOURCE_API_LIMIT_EXCEEDED_FAILURE"
	IngestionErrorTypePasswordAuthenticationFailure   IngestionErrorType = "PASSWORD_AUTHENTICATION_FAILURE"
	IngestionErrorTypeSqlSchemaMismatchError          IngestionErrorType = "SQL_SCHEMA_MISMATCH_ERROR"
	IngestionErrorTypeInvalidDateFormat               IngestionErrorType = "INVALID_DATE_FORMAT"
	IngestionErrorTypeInvalidDataprepSyntax           IngestionErrorType = "INVALID_DATAPREP_SYNTAX"
	IngestionErrorTypeSourceResourceLimitExceeded     IngestionErrorType = "SOURCE_RESOURCE_LIMIT_EXCEEDED"
	IngestionErrorTypeSqlInvalidParameterValue        IngestionErrorType = "SQL_INVALID_PARAMETER_VALUE"
	IngestionErrorTypeQueryTimeout                    IngestionErrorType = "QUERY_TIMEOUT"
	IngestionErrorTypeSqlNumericOverflow              IngestionErrorType = "SQL_NUMERIC_OVERFLOW"
	IngestionErrorTypeUnresolvableHost                IngestionErrorType = "UNRESOLVABLE_HOST"
	IngestionErrorTypeUnroutableHost                  IngestionErrorType = "UNROUTABLE_HOST"
	IngestionErrorTypeSqlException                    IngestionErrorType = "SQL_EXCEPTION"
	IngestionErrorTypeS3FileInaccessible              IngestionErrorType = "S3_FILE_INACCESSIBLE"
	IngestionErrorTypeIotFileNotFound                 IngestionErrorType = "IOT_FILE_NOT_FOUND"
	IngestionErrorTypeIotDataSetFileEmpty             IngestionErrorType = "IOT_DATA_SET_FILE_EMPTY"
	IngestionErrorTypeInvalidDataSourceConfig         IngestionErrorType = "INVALID_DATA_SOURCE_CONFIG"
	IngestionErrorTypeDataSourceAuthFailed            IngestionErrorType = "DATA_SOURCE_AUTH_FAILED"
	IngestionErrorTypeDataSourceConnectionFailed      IngestionErrorType = "DATA_SOURCE_CONNECTION_FAILED"
	IngestionErrorTypeFailureToProcessJsonFile        IngestionErrorType = "FAILURE_TO_PROCESS_JSON_FILE"
	IngestionErrorTypeInternalServiceError            IngestionErrorType = "INTERNAL_SERVICE_ERROR"
)

// Values returns the values of IngestionErrorType known to this client.
func (IngestionErrorType) Values() []IngestionErrorType {
	return []IngestionErrorType{
		"FAILURE_TO_ASSUME_ROLE",
		"INGESTION_SUPERSEDED",
		"INGESTION_CANCELED",
		"DATA_SET_DELETED",
		"DATA_SET_NOT_SPICE",
		"S3_UPLOADED_FILE_DELETED",
		"S3_MANIFEST_ERROR",
		"DATA_TOLERANCE_EXCEPTION",
		"SPICE_TABLE_NOT_FOUND",
		"DATA_SET_SIZE_LIMIT_EXCEEDED",
		"ROW_SIZE_LIMIT_EXCEEDED",
		"ACCOUNT_CAPACITY_LIMIT_EXCEEDED",
		"CUSTOMER_ERROR",
		"DATA_SOURCE_NOT_FOUND",
		"IAM_ROLE_NOT_AVAILABLE",
		"CONNECTION_FAILURE",
		"SQL_TABLE_NOT_FOUND",
		"PERMISSION_DENIED",
		"SSL_CERTIFICATE_VALIDATION_FAILURE",
		"OAUTH_TOKEN_FAILURE",
		"SOURCE_API_LIMIT_EXCEEDED_FAILURE",
		"PASSWORD_AUTHENTICATION_FAILURE",
		"SQL_SCHEMA_MISMATCH_ERROR",
		"INVALID_DATE_FORMAT",
		"INVALID_DATAPREP_SYNTAX",
		"SOURCE_RESOURCE_LIMIT_EXCEEDED",
		"SQL_INVALID_PARAMETER_VALUE",
		"QUERY_TIMEOUT",
		"SQL_NUMERIC_OVERFLOW",
		"UNRESOLVABLE_HOST",
		"UNROUTABLE_HOST",
		"SQL_EXCEPTION",
		"S3_FILE_INACCESSIBLE",
		"IOT_FILE_NOT_FOUND",
		"IOT_DATA_SET_FILE_EMPTY",
		"INVALID_DATA_SOURCE_CONFIG",
		"DATA_SOURCE_AUTH_FAILED",
		"DATA_SOURCE_CONNECTION_FAILED",
		"FAILURE_TO_PROCESS_JSON_FILE",
		"INTERNAL_SERVICE_ERROR",
	}
}

func (v IngestionErrorType) IsKnown() bool { return isKnown(v) }

// ParseIngestionErrorType strictly decodes raw; empty and unknown strings fail.
func ParseIngestionErrorType(raw string) (IngestionErrorType, error) {
	return parseEnum[IngestionErrorType]("IngestionErrorType", raw)
}

type IngestionRequestSource string

const (
	IngestionRequestSourceManual    IngestionRequestSource = "MANUAL"
	IngestionRequestSourceScheduled IngestionRequestSource = "SCHEDULED"
)

// Values returns the values of IngestionRequestSource known to this client.
func (IngestionRequestSource) Values() []IngestionRequestSource {
	return []IngestionRequestSource{
		"MANUAL",
		"SCHEDULED",
	}
}

func (v IngestionRequestSource) IsKnown() bool { return isKnown(v) }

// ParseIngestionRequestSource strictly decodes raw; empty and unknown strings fail.
func ParseIngestionRequestSource(raw string) (IngestionRequestSource, error) {
	return parseEnum[IngestionRequestSource]("IngestionRequestSource", raw)
}

type IngestionRequestType string

const (
	IngestionRequestTypeInitialIngestion   IngestionRequestType = "INITIAL_INGESTION"
	IngestionRequestTypeEdit               IngestionRequestType = "EDIT"
	IngestionRequestTypeIncrementalRefresh IngestionRequestType = "INCREMENTAL_REFRESH"
	IngestionRequestTypeFullRefresh        IngestionRequestType = "FULL_REFRESH"
)

// Values returns the values of IngestionRequestType known to this client.
func (IngestionRequestType) Values() []IngestionRequestType {
	return []IngestionRequestType{
		"INITIAL_INGESTION",
		"EDIT",
		"INCREMENTAL_REFRESH",
		"FULL_REFRESH",
	}
}

func (v IngestionRequestType) IsKnown() bool { return isKnown(v) }

// ParseIngestionRequestType strictly decodes raw; empty and unknown strings fail.
func ParseIngestionRequestType(raw string) (IngestionRequestType, error) {
	return parseEnum[IngestionRequestType]("IngestionRequestType", raw)
}

type IngestionStatus string

const (
	IngestionStatusInitialized IngestionStatus = "INITIALIZED"
	IngestionStatusQueued      IngestionStatus = "QUEUED"
	IngestionStatusRunning     IngestionStatus = "RUNNING"
	IngestionStatusFailed      IngestionStatus = "FAILED"
	IngestionStatusCompleted   IngestionStatus = "COMPLETED"
	IngestionStatusCancelled   IngestionStatus = "CANCELLED"
)

// Values returns the values of IngestionStatus known to this client.
func (IngestionStatus) Values() []IngestionStatus {
	return []IngestionStatus{
		"INITIALIZED",
		"QUEUED",
		"RUNNING",
		"FAILED",
		"COMPLETED",
		"CANCELLED",
	}
}

func (v IngestionStatus) IsKnown() bool { return isKnown(v) }

// ParseIngestionStatus strictly decodes raw; empty and unknown strings fail.
func ParseIngestionStatus(raw string) (IngestionStatus, error) {
	return parseEnum[IngestionStatus]("IngestionStatus", raw)
}

type InputColumnDataType string

const (
	InputColumnDataTypeString   InputColumnDataType = "STRING"
	InputColumnDataTypeInteger  InputColumnDataType = "INTEGER"
	InputColumnDataTypeDecimal  InputColumnDataType = "DECIMAL"
	InputColumnDataTypeDatetime InputColumnDataType = "DATETIME"
	InputColumnDataTypeBit      InputColumnDataType = "BIT"
	InputColumnDataTypeBoolean  InputColumnDataType = "BOOLEAN"
	InputColumnDataTypeJson     InputColumnDataType = "JSON"
)

// Values returns the values of InputColumnDataType known to this client.
func (InputColumnDataType) Values() []InputColumnDataType {
	return []InputColumnDataType{
		"STRING",
		"INTEGER",
		"DECIMAL",
		"DATETIME",
		"BIT",
		"BOOLEAN",
		"JSON",
	}
}

func (v InputColumnDataType) IsKnown() bool { return isKnown(v) }

// ParseInputColumnDataType strictly decodes raw; empty and unknown strings fail.
func ParseInputColumnDataType(raw string) (InputColumnDataType, error) {
	return parseEnum[InputColumnDataType]("InputColumnDataType", raw)
}

type JoinType string

const (
	JoinTypeInner JoinType = "INNER"
	JoinTypeOuter JoinType = "OUTER"
	JoinTypeLeft  JoinType = "LEFT"
	JoinTypeRight JoinType = "RIGHT"
)

// Values returns the values of JoinType known to this client.
func (JoinType) Values() []JoinType {
	return []JoinType{
		"INNER",
		"OUTER",
		"LEFT",
		"RIGHT",
	}
}

func (v JoinType) IsKnown() bool { return isKnown(v) }

// ParseJoinType strictly decodes raw; empty and unknown strings fail.
func ParseJoinType(raw string) (JoinType, error) {
	return parseEnum[JoinType]("JoinType", raw)
}

// ResourceStatus is the asynchronous creation or update state of a resource.
type ResourceStatus string

const (
	ResourceStatusCreationInProgress ResourceStatus = "CREATION_IN_PROGRESS"
	ResourceStatusCreationSuccessful ResourceStatus = "CREATION_SUCCESSFUL"
	ResourceStatusCreationFailed     ResourceStatus = "CREATION_FAILED"
	ResourceStatusUpdateInProgress   ResourceStatus = "UPDATE_IN_PROGRESS"
	ResourceStatusUpdateSuccessful   ResourceStatus = "UPDATE_SUCCESSFUL"
	ResourceStatusUpdateFailed       ResourceStatus = "UPDATE_FAILED"
)

// Values returns the values of ResourceStatus known to this client.
func (ResourceStatus) Values() []ResourceStatus {
	return []ResourceStatus{
		"CREATION_IN_PROGRESS",
		"CREATION_SUCCESSFUL",
		"CREATION_FAILED",
		"UPDATE_IN_PROGRESS",
		"UPDATE_SUCCESSFUL",
		"UPDATE_FAILED",
	}
}

func (v ResourceStatus) IsKnown() bool { return isKnown(v) }

// ParseResourceStatus strictly decodes raw; empty and unknown strings fail.
func ParseResourceStatus(raw string) (ResourceStatus, error) {
	return parseEnum[ResourceStatus]("ResourceStatus", raw)
}

type RowLevelPermissionPolicy string

const (
	RowLevelPermissionPolicyGrantAccess RowLevelPermissionPolicy = "GRANT_ACCESS"
	RowLevelPermissionPolicyDenyAccess  RowLevelPermissionPolicy = "DENY_ACCESS"
)

// Values returns the values of RowLevelPermissionPolicy known to this client.
func (RowLevelPermissionPolicy) Values() []RowLevelPermissionPolicy {
	return []RowLevelPermissionPolicy{
		"GRANT_ACCESS",
		"DENY_ACCESS",
	}
}

func (v RowLevelPermissionPolicy) IsKnown() bool { return isKnown(v) }

// ParseRowLevelPermissionPolicy strictly decodes raw; empty and unknown strings fail.
func ParseRowLevelPermissionPolicy(raw string) (RowLevelPermissionPolicy, error) {
	return parseEnum[RowLevelPermissionPolicy]("RowLevelPermissionPolicy", raw)
}

type TemplateErrorType string

const (
	TemplateErrorTypeSourceNotFound  TemplateErrorType = "SOURCE_NOT_FOUND"
	TemplateErrorTypeDataSetNotFound TemplateErrorType = "DATA_SET_NOT_FOUND"
	TemplateErrorTypeInternalFailure TemplateErrorType = "INTERNAL_FAILURE"
)

// Values returns the values of TemplateErrorType known to this client.
func (TemplateErrorType) Values() []TemplateErrorType {
	return []TemplateErrorType{
		"SOURCE_NOT_FOUND",
		"DATA_SET_NOT_FOUND",
		"INTERNAL_FAILURE",
	}
}

func (v TemplateErrorType) IsKnown() bool { return isKnown(v) }

// ParseTemplateErrorType strictly decodes raw; empty and unknown strings fail.
func ParseTemplateErrorType(raw string) (TemplateErrorType, error) {
	return parseEnum[TemplateErrorType]("TemplateErrorType", raw)
}

type TextQualifier string

const (
	TextQualifierDoubleQuote TextQualifier = "DOUBLE_QUOTE"
	TextQualifierSingleQuote TextQualifier = "SINGLE_QUOTE"
)

// Values returns the values of TextQualifier known to this client.
func (TextQualifier) Values() []TextQualifier {
	return []TextQualifier{
		"DOUBLE_QUOTE",
		"SINGLE_QUOTE",
	}
}

func (v TextQualifier) IsKnown() bool { return isKnown(v) }

// ParseTextQualifier strictly decodes raw; empty and unknown strings fail.
func ParseTextQualifier(raw string) (TextQualifier, error) {
	return parseEnum[TextQualifier]("TextQualifier", raw)
}

type UserRole string

const (
	UserRoleAdmin            UserRole = "ADMIN"
	UserRoleAuthor           UserRole = "AUTHOR"
	UserRoleReader           UserRole = "READER"
	UserRoleRestrictedAuthor UserRole = "RESTRICTED_AUTHOR"
	UserRoleRestrictedReader UserRole = "RESTRICTED_READER"
)

// Values returns the values of UserRole known to this client.
func (UserRole) Values() []UserRole {
	return []UserRole{
		"ADMIN",
		"AUTHOR",
		"READER",
		"RESTRICTED_AUTHOR",
		"RESTRICTED_READER",
	}
}

func (v UserRole) IsKnown() bool { return isKnown(v) }

// ParseUserRole strictly decodes raw; empty and unknown strings fail.
func ParseUserRole(raw string) (UserRole, error) {
	return parseEnum[UserRole]("UserRole", raw)
}
