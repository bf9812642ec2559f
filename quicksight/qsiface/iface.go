// Package qsiface provides the interface for QuickSight control plane operations.
// It is satisfied both by qssdk.Client, which calls the service over HTTP, and by
// qsstore.Store, which serves the same operations from local BadgerDB storage.
package qsiface

import (
	"context"

	"github.com/acksell/qsight/quicksight/qsapi"
)

// API has one method per operation. Implementations validate the input before
// doing any work and report constraint violations as a smithy.InvalidParamsError.
type API interface {
	CancelIngestion(ctx context.Context, params *qsapi.CancelIngestionInput) (*qsapi.CancelIngestionOutput, error)
	CreateDashboard(ctx context.Context, params *qsapi.CreateDashboardInput) (*qsapi.CreateDashboardOutput, error)
	CreateDataSet(ctx context.Context, params *qsapi.CreateDataSetInput) (*qsapi.CreateDataSetOutput, error)
	CreateDataSource(ctx context.Context, params *qsapi.CreateDataSourceInput) (*qsapi.CreateDataSourceOutput, error)
	CreateGroup(ctx context.Context, params *qsapi.CreateGroupInput) (*qsapi.CreateGroupOutput, error)
	CreateGroupMembership(ctx context.Context, params *qsapi.CreateGroupMembershipInput) (*qsapi.CreateGroupMembershipOutput, error)
	CreateIAMPolicyAssignment(ctx context.Context, params *qsapi.CreateIAMPolicyAssignmentInput) (*qsapi.CreateIAMPolicyAssignmentOutput, error)
	CreateIngestion(ctx context.Context, params *qsapi.CreateIngestionInput) (*qsapi.CreateIngestionOutput, error)
	CreateTemplate(ctx context.Context, params *qsapi.CreateTemplateInput) (*qsapi.CreateTemplateOutput, error)
	CreateTemplateAlias(ctx context.Context, params *qsapi.CreateTemplateAliasInput) (*qsapi.CreateTemplateAliasOutput, error)
	DeleteDashboard(ctx context.Context, params *qsapi.DeleteDashboardInput) (*qsapi.DeleteDashboardOutput, error)
	DeleteDataSet(ctx context.Context, params *qsapi.DeleteDataSetInput) (*qsapi.DeleteDataSetOutput, error)
	DeleteDataSource(ctx context.Context, params *qsapi.DeleteDataSourceInput) (*qsapi.DeleteDataSourceOutput, error)
	DeleteGroup(ctx context.Context, params *qsapi.DeleteGroupInput) (*qsapi.DeleteGroupOutput, error)
	DeleteGroupMembership(ctx context.Context, params *qsapi.DeleteGroupMembershipInput) (*qsapi.DeleteGroupMembershipOutput, error)
	DeleteIAMPolicyAssignment(ctx context.Context, params *qsapi.DeleteIAMPolicyAssignmentInput) (*qsapi.DeleteIAMPolicyAssignmentOutput, error)
	DeleteTemplate(ctx context.Context, params *qsapi.DeleteTemplateInput) (*qsapi.DeleteTemplateOutput, error)
	DeleteTemplateAlias(ctx context.Context, params *qsapi.DeleteTemplateAliasInput) (*qsapi.DeleteTemplateAliasOutput, error)
	DeleteUser(ctx context.Context, params *qsapi.DeleteUserInput) (*qsapi.DeleteUserOutput, error)
	DeleteUserByPrincipalId(ctx context.Context, params *qsapi.DeleteUserByPrincipalIdInput) (*qsapi.DeleteUserByPrincipalIdOutput, error)
	DescribeDashboard(ctx context.Context, params *qsapi.DescribeDashboardInput) (*qsapi.DescribeDashboardOutput, error)
	DescribeDashboardPermissions(ctx context.Context, params *qsapi.DescribeDashboardPermissionsInput) (*qsapi.DescribeDashboardPermissionsOutput, error)
	DescribeDataSet(ctx context.Context, params *qsapi.DescribeDataSetInput) (*qsapi.DescribeDataSetOutput, error)
	DescribeDataSetPermissions(ctx context.Context, params *qsapi.DescribeDataSetPermissionsInput) (*qsapi.DescribeDataSetPermissionsOutput, error)
	DescribeDataSource(ctx context.Context, params *qsapi.DescribeDataSourceInput) (*qsapi.DescribeDataSourceOutput, error)
	DescribeDataSourcePermissions(ctx context.Context, params *qsapi.DescribeDataSourcePermissionsInput) (*qsapi.DescribeDataSourcePermissionsOutput, error)
	DescribeGroup(ctx context.Context, params *qsapi.DescribeGroupInput) (*qsapi.DescribeGroupOutput, error)
	DescribeIAMPolicyAssignment(ctx context.Context, params *qsapi.DescribeIAMPolicyAssignmentInput) (*qsapi.DescribeIAMPolicyAssignmentOutput, error)
	DescribeIngestion(ctx context.Context, params *qsapi.DescribeIngestionInput) (*qsapi.DescribeIngestionOutput, error)
	DescribeTemplate(ctx context.Context, params *qsapi.DescribeTemplateInput) (*qsapi.DescribeTemplateOutput, error)
	DescribeTemplateAlias(ctx context.Context, params *qsapi.DescribeTemplateAliasInput) (*qsapi.DescribeTemplateAliasOutput, error)
	DescribeTemplatePermissions(ctx context.Context, params *qsapi.DescribeTemplatePermissionsInput) (*qsapi.DescribeTemplatePermissionsOutput, error)
	DescribeUser(ctx context.Context, params *qsapi.DescribeUserInput) (*qsapi.DescribeUserOutput, error)
	GetDashboardEmbedUrl(ctx context.Context, params *qsapi.GetDashboardEmbedUrlInput) (*qsapi.GetDashboardEmbedUrlOutput, error)
	ListDashboardVersions(ctx context.Context, params *qsapi.ListDashboardVersionsInput) (*qsapi.ListDashboardVersionsOutput, error)
	ListDashboards(ctx context.Context, params *qsapi.ListDashboardsInput) (*qsapi.ListDashboardsOutput, error)
	ListDataSets(ctx context.Context, params *qsapi.ListDataSetsInput) (*qsapi.ListDataSetsOutput, error)
	ListDataSources(ctx context.Context, params *qsapi.ListDataSourcesInput) (*qsapi.ListDataSourcesOutput, error)
	ListGroupMemberships(ctx context.Context, params *qsapi.ListGroupMembershipsInput) (*qsapi.ListGroupMembershipsOutput, error)
	ListGroups(ctx context.Context, params *qsapi.ListGroupsInput) (*qsapi.ListGroupsOutput, error)
	ListIAMPolicyAssignments(ctx context.Context, params *qsapi.ListIAMPolicyAssignmentsInput) (*qsapi.ListIAMPolicyAssignmentsOutput, error)
	ListIAMPolicyAssignmentsForUser(ctx context.Context, params *qsapi.ListIAMPolicyAssignmentsForUserInput) (*qsapi.ListIAMPolicyAssignmentsForUserOutput, error)
	ListIngestions(ctx context.Context, params *qsapi.ListIngestionsInput) (*qsapi.ListIngestionsOutput, error)
	ListTagsForResource(ctx context.Context, params *qsapi.ListTagsForResourceInput) (*qsapi.ListTagsForResourceOutput, error)
	ListTemplateAliases(ctx context.Context, params *qsapi.ListTemplateAliasesInput) (*qsapi.ListTemplateAliasesOutput, error)
	ListTemplateVersions(ctx context.Context, params *qsapi.ListTemplateVersionsInput) (*qsapi.ListTemplateVersionsOutput, error)
	ListTemplates(ctx context.Context, params *qsapi.ListTemplatesInput) (*qsapi.ListTemplatesOutput, error)
	ListUserGroups(ctx context.Context, params *qsapi.ListUserGroupsInput) (*qsapi.ListUserGroupsOutput, error)
	ListUsers(ctx context.Context, params *qsapi.ListUsersInput) (*qsapi.ListUsersOutput, error)
	RegisterUser(ctx context.Context, params *qsapi.RegisterUserInput) (*qsapi.RegisterUserOutput, error)
	SearchDashboards(ctx context.Context, params *qsapi.SearchDashboardsInput) (*qsapi.SearchDashboardsOutput, error)
	TagResource(ctx context.Context, params *qsapi.TagResourceInput) (*qsapi.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *qsapi.UntagResourceInput) (*qsapi.UntagResourceOutput, error)
	UpdateDashboard(ctx context.Context, params *qsapi.UpdateDashboardInput) (*qsapi.UpdateDashboardOutput, error)
	UpdateDashboardPermissions(ctx context.Context, params *qsapi.UpdateDashboardPermissionsInput) (*qsapi.UpdateDashboardPermissionsOutput, error)
	UpdateDashboardPublishedVersion(ctx context.Context, params *qsapi.UpdateDashboardPublishedVersionInput) (*qsapi.UpdateDashboardPublishedVersionOutput, error)
	UpdateDataSet(ctx context.Context, params *qsapi.UpdateDataSetInput) (*qsapi.UpdateDataSetOutput, error)
	UpdateDataSetPermissions(ctx context.Context, params *qsapi.UpdateDataSetPermissionsInput) (*qsapi.UpdateDataSetPermissionsOutput, error)
	UpdateDataSource(ctx context.Context, params *qsapi.UpdateDataSourceInput) (*qsapi.UpdateDataSourceOutput, error)
	UpdateDataSourcePermissions(ctx context.Context, params *qsapi.UpdateDataSourcePermissionsInput) (*qsapi.UpdateDataSourcePermissionsOutput, error)
	UpdateGroup(ctx context.Context, params *qsapi.UpdateGroupInput) (*qsapi.UpdateGroupOutput, error)
	UpdateIAMPolicyAssignment(ctx context.Context, params *qsapi.UpdateIAMPolicyAssignmentInput) (*qsapi.UpdateIAMPolicyAssignmentOutput, error)
	UpdateTemplate(ctx context.Context, params *qsapi.UpdateTemplateInput) (*qsapi.UpdateTemplateOutput, error)
	UpdateTemplateAlias(ctx context.Context, params *qsapi.UpdateTemplateAliasInput) (*qsapi.UpdateTemplateAliasOutput, error)
	UpdateTemplatePermissions(ctx context.Context, params *qsapi.UpdateTemplatePermissionsInput) (*qsapi.UpdateTemplatePermissionsOutput, error)
	UpdateUser(ctx context.Context, params *qsapi.UpdateUserInput) (*qsapi.UpdateUserOutput, error)
}
