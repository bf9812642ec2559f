package qsrest

import (
	"net/http"

	"github.com/acksell/qsight/quicksight/qsapi"
)

// Routes lists every operation. The order is alphabetical by operation name.
var Routes = []Route{
	{
		Name:      "CancelIngestion",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/data-sets/{DataSetId}/ingestions/{IngestionId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.CancelIngestionInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CancelIngestionOutput{} },
	},
	{
		Name:      "CreateDashboard",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/dashboards/{DashboardId}",
		Status:    http.StatusAccepted,
		NewInput:  func() qsapi.Input { return &qsapi.CreateDashboardInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CreateDashboardOutput{} },
	},
	{
		Name:      "CreateDataSet",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/data-sets",
		Status:    http.StatusCreated,
		NewInput:  func() qsapi.Input { return &qsapi.CreateDataSetInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CreateDataSetOutput{} },
	},
	{
		Name:      "CreateDataSource",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/data-sources",
		Status:    http.StatusAccepted,
		NewInput:  func() qsapi.Input { return &qsapi.CreateDataSourceInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CreateDataSourceOutput{} },
	},
	{
		Name:      "CreateGroup",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/groups",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.CreateGroupInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CreateGroupOutput{} },
	},
	{
		Name:      "CreateGroupMembership",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/groups/{GroupName}/members/{MemberName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.CreateGroupMembershipInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CreateGroupMembershipOutput{} },
	},
	{
		Name:      "CreateIAMPolicyAssignment",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/iam-policy-assignments/",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.CreateIAMPolicyAssignmentInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CreateIAMPolicyAssignmentOutput{} },
	},
	{
		Name:      "CreateIngestion",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/data-sets/{DataSetId}/ingestions/{IngestionId}",
		Status:    http.StatusCreated,
		NewInput:  func() qsapi.Input { return &qsapi.CreateIngestionInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CreateIngestionOutput{} },
	},
	{
		Name:      "CreateTemplate",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}",
		Status:    http.StatusAccepted,
		NewInput:  func() qsapi.Input { return &qsapi.CreateTemplateInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CreateTemplateOutput{} },
	},
	{
		Name:      "CreateTemplateAlias",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}/aliases/{AliasName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.CreateTemplateAliasInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.CreateTemplateAliasOutput{} },
	},
	{
		Name:      "DeleteDashboard",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/dashboards/{DashboardId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteDashboardInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteDashboardOutput{} },
	},
	{
		Name:      "DeleteDataSet",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/data-sets/{DataSetId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteDataSetInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteDataSetOutput{} },
	},
	{
		Name:      "DeleteDataSource",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/data-sources/{DataSourceId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteDataSourceInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteDataSourceOutput{} },
	},
	{
		Name:      "DeleteGroup",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/groups/{GroupName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteGroupInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteGroupOutput{} },
	},
	{
		Name:      "DeleteGroupMembership",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/groups/{GroupName}/members/{MemberName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteGroupMembershipInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteGroupMembershipOutput{} },
	},
	{
		Name:      "DeleteIAMPolicyAssignment",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/namespace/{Namespace}/iam-policy-assignments/{AssignmentName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteIAMPolicyAssignmentInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteIAMPolicyAssignmentOutput{} },
	},
	{
		Name:      "DeleteTemplate",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteTemplateInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteTemplateOutput{} },
	},
	{
		Name:      "DeleteTemplateAlias",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}/aliases/{AliasName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteTemplateAliasInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteTemplateAliasOutput{} },
	},
	{
		Name:      "DeleteUser",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/users/{UserName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteUserInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteUserOutput{} },
	},
	{
		Name:      "DeleteUserByPrincipalId",
		Method:    http.MethodDelete,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/user-principals/{PrincipalId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DeleteUserByPrincipalIdInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DeleteUserByPrincipalIdOutput{} },
	},
	{
		Name:      "DescribeDashboard",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/dashboards/{DashboardId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeDashboardInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeDashboardOutput{} },
	},
	{
		Name:      "DescribeDashboardPermissions",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/dashboards/{DashboardId}/permissions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeDashboardPermissionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeDashboardPermissionsOutput{} },
	},
	{
		Name:      "DescribeDataSet",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/data-sets/{DataSetId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeDataSetInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeDataSetOutput{} },
	},
	{
		Name:      "DescribeDataSetPermissions",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/data-sets/{DataSetId}/permissions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeDataSetPermissionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeDataSetPermissionsOutput{} },
	},
	{
		Name:      "DescribeDataSource",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/data-sources/{DataSourceId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeDataSourceInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeDataSourceOutput{} },
	},
	{
		Name:      "DescribeDataSourcePermissions",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/data-sources/{DataSourceId}/permissions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeDataSourcePermissionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeDataSourcePermissionsOutput{} },
	},
	{
		Name:      "DescribeGroup",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/groups/{GroupName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeGroupInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeGroupOutput{} },
	},
	{
		Name:      "DescribeIAMPolicyAssignment",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/iam-policy-assignments/{AssignmentName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeIAMPolicyAssignmentInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeIAMPolicyAssignmentOutput{} },
	},
	{
		Name:      "DescribeIngestion",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/data-sets/{DataSetId}/ingestions/{IngestionId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeIngestionInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeIngestionOutput{} },
	},
	{
		Name:      "DescribeTemplate",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeTemplateInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeTemplateOutput{} },
	},
	{
		Name:      "DescribeTemplateAlias",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}/aliases/{AliasName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeTemplateAliasInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeTemplateAliasOutput{} },
	},
	{
		Name:      "DescribeTemplatePermissions",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}/permissions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeTemplatePermissionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeTemplatePermissionsOutput{} },
	},
	{
		Name:      "DescribeUser",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/users/{UserName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.DescribeUserInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.DescribeUserOutput{} },
	},
	{
		Name:      "GetDashboardEmbedUrl",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/dashboards/{DashboardId}/embed-url",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.GetDashboardEmbedUrlInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.GetDashboardEmbedUrlOutput{} },
	},
	{
		Name:      "ListDashboardVersions",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/dashboards/{DashboardId}/versions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListDashboardVersionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListDashboardVersionsOutput{} },
	},
	{
		Name:      "ListDashboards",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/dashboards",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListDashboardsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListDashboardsOutput{} },
	},
	{
		Name:      "ListDataSets",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/data-sets",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListDataSetsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListDataSetsOutput{} },
	},
	{
		Name:      "ListDataSources",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/data-sources",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListDataSourcesInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListDataSourcesOutput{} },
	},
	{
		Name:      "ListGroupMemberships",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/groups/{GroupName}/members",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListGroupMembershipsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListGroupMembershipsOutput{} },
	},
	{
		Name:      "ListGroups",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/groups",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListGroupsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListGroupsOutput{} },
	},
	{
		Name:      "ListIAMPolicyAssignments",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/iam-policy-assignments",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListIAMPolicyAssignmentsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListIAMPolicyAssignmentsOutput{} },
	},
	{
		Name:      "ListIAMPolicyAssignmentsForUser",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/users/{UserName}/iam-policy-assignments",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListIAMPolicyAssignmentsForUserInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListIAMPolicyAssignmentsForUserOutput{} },
	},
	{
		Name:      "ListIngestions",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/data-sets/{DataSetId}/ingestions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListIngestionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListIngestionsOutput{} },
	},
	{
		Name:      "ListTagsForResource",
		Method:    http.MethodGet,
		Path:      "/resources/{ResourceArn}/tags",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListTagsForResourceInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListTagsForResourceOutput{} },
	},
	{
		Name:      "ListTemplateAliases",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}/aliases",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListTemplateAliasesInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListTemplateAliasesOutput{} },
	},
	{
		Name:      "ListTemplateVersions",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}/versions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListTemplateVersionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListTemplateVersionsOutput{} },
	},
	{
		Name:      "ListTemplates",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/templates",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListTemplatesInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListTemplatesOutput{} },
	},
	{
		Name:      "ListUserGroups",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/users/{UserName}/groups",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListUserGroupsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListUserGroupsOutput{} },
	},
	{
		Name:      "ListUsers",
		Method:    http.MethodGet,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/users",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.ListUsersInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.ListUsersOutput{} },
	},
	{
		Name:      "RegisterUser",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/users",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.RegisterUserInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.RegisterUserOutput{} },
	},
	{
		Name:      "SearchDashboards",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/search/dashboards",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.SearchDashboardsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.SearchDashboardsOutput{} },
	},
	{
		Name:      "TagResource",
		Method:    http.MethodPost,
		Path:      "/resources/{ResourceArn}/tags",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.TagResourceInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.TagResourceOutput{} },
	},
	{
		Name:      "UntagResource",
		Method:    http.MethodDelete,
		Path:      "/resources/{ResourceArn}/tags",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UntagResourceInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UntagResourceOutput{} },
	},
	{
		Name:      "UpdateDashboard",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/dashboards/{DashboardId}",
		Status:    http.StatusAccepted,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateDashboardInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateDashboardOutput{} },
	},
	{
		Name:      "UpdateDashboardPermissions",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/dashboards/{DashboardId}/permissions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateDashboardPermissionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateDashboardPermissionsOutput{} },
	},
	{
		Name:      "UpdateDashboardPublishedVersion",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/dashboards/{DashboardId}/versions/{VersionNumber}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateDashboardPublishedVersionInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateDashboardPublishedVersionOutput{} },
	},
	{
		Name:      "UpdateDataSet",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/data-sets/{DataSetId}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateDataSetInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateDataSetOutput{} },
	},
	{
		Name:      "UpdateDataSetPermissions",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/data-sets/{DataSetId}/permissions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateDataSetPermissionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateDataSetPermissionsOutput{} },
	},
	{
		Name:      "UpdateDataSource",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/data-sources/{DataSourceId}",
		Status:    http.StatusAccepted,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateDataSourceInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateDataSourceOutput{} },
	},
	{
		Name:      "UpdateDataSourcePermissions",
		Method:    http.MethodPost,
		Path:      "/accounts/{AwsAccountId}/data-sources/{DataSourceId}/permissions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateDataSourcePermissionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateDataSourcePermissionsOutput{} },
	},
	{
		Name:      "UpdateGroup",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/groups/{GroupName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateGroupInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateGroupOutput{} },
	},
	{
		Name:      "UpdateIAMPolicyAssignment",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/iam-policy-assignments/{AssignmentName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateIAMPolicyAssignmentInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateIAMPolicyAssignmentOutput{} },
	},
	{
		Name:      "UpdateTemplate",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}",
		Status:    http.StatusAccepted,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateTemplateInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateTemplateOutput{} },
	},
	{
		Name:      "UpdateTemplateAlias",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}/aliases/{AliasName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateTemplateAliasInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateTemplateAliasOutput{} },
	},
	{
		Name:      "UpdateTemplatePermissions",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/templates/{TemplateId}/permissions",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateTemplatePermissionsInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateTemplatePermissionsOutput{} },
	},
	{
		Name:      "UpdateUser",
		Method:    http.MethodPut,
		Path:      "/accounts/{AwsAccountId}/namespaces/{Namespace}/users/{UserName}",
		Status:    http.StatusOK,
		NewInput:  func() qsapi.Input { return &qsapi.UpdateUserInput{} },
		NewOutput: func() qsapi.Output { return &qsapi.UpdateUserOutput{} },
	},
}
