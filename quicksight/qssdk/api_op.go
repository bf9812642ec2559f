package qssdk

import (
	"context"

	"github.com/acksell/qsight/quicksight/qsapi"
)

func (c *Client) CancelIngestion(ctx context.Context, params *qsapi.CancelIngestionInput) (*qsapi.CancelIngestionOutput, error) {
	if params == nil {
		params = &qsapi.CancelIngestionInput{}
	}
	out := &qsapi.CancelIngestionOutput{}
	if err := c.invoke(ctx, "CancelIngestion", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDashboard(ctx context.Context, params *qsapi.CreateDashboardInput) (*qsapi.CreateDashboardOutput, error) {
	if params == nil {
		params = &qsapi.CreateDashboardInput{}
	}
	out := &qsapi.CreateDashboardOutput{}
	if err := c.invoke(ctx, "CreateDashboard", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDataSet(ctx context.Context, params *qsapi.CreateDataSetInput) (*qsapi.CreateDataSetOutput, error) {
	if params == nil {
		params = &qsapi.CreateDataSetInput{}
	}
	out := &qsapi.CreateDataSetOutput{}
	if err := c.invoke(ctx, "CreateDataSet", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDataSource(ctx context.Context, params *qsapi.CreateDataSourceInput) (*qsapi.CreateDataSourceOutput, error) {
	if params == nil {
		params = &qsapi.CreateDataSourceInput{}
	}
	out := &qsapi.CreateDataSourceOutput{}
	if err := c.invoke(ctx, "CreateDataSource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateGroup(ctx context.Context, params *qsapi.CreateGroupInput) (*qsapi.CreateGroupOutput, error) {
	if params == nil {
		params = &qsapi.CreateGroupInput{}
	}
	out := &qsapi.CreateGroupOutput{}
	if err := c.invoke(ctx, "CreateGroup", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateGroupMembership(ctx context.Context, params *qsapi.CreateGroupMembershipInput) (*qsapi.CreateGroupMembershipOutput, error) {
	if params == nil {
		params = &qsapi.CreateGroupMembershipInput{}
	}
	out := &qsapi.CreateGroupMembershipOutput{}
	if err := c.invoke(ctx, "CreateGroupMembership", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateIAMPolicyAssignment(ctx context.Context, params *qsapi.CreateIAMPolicyAssignmentInput) (*qsapi.CreateIAMPolicyAssignmentOutput, error) {
	if params == nil {
		params = &qsapi.CreateIAMPolicyAssignmentInput{}
	}
	out := &qsapi.CreateIAMPolicyAssignmentOutput{}
	if err := c.invoke(ctx, "CreateIAMPolicyAssignment", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateIngestion(ctx context.Context, params *qsapi.CreateIngestionInput) (*qsapi.CreateIngestionOutput, error) {
	if params == nil {
		params = &qsapi.CreateIngestionInput{}
	}
	out := &qsapi.CreateIngestionOutput{}
	if err := c.invoke(ctx, "CreateIngestion", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTemplate(ctx context.Context, params *qsapi.CreateTemplateInput) (*qsapi.CreateTemplateOutput, error) {
	if params == nil {
		params = &qsapi.CreateTemplateInput{}
	}
	out := &qsapi.CreateTemplateOutput{}
	if err := c.invoke(ctx, "CreateTemplate", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTemplateAlias(ctx context.Context, params *qsapi.CreateTemplateAliasInput) (*qsapi.CreateTemplateAliasOutput, error) {
	if params == nil {
		params = &qsapi.CreateTemplateAliasInput{}
	}
	out := &qsapi.CreateTemplateAliasOutput{}
	if err := c.invoke(ctx, "CreateTemplateAlias", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteDashboard(ctx context.Context, params *qsapi.DeleteDashboardInput) (*qsapi.DeleteDashboardOutput, error) {
	if params == nil {
		params = &qsapi.DeleteDashboardInput{}
	}
	out := &qsapi.DeleteDashboardOutput{}
	if err := c.invoke(ctx, "DeleteDashboard", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteDataSet(ctx context.Context, params *qsapi.DeleteDataSetInput) (*qsapi.DeleteDataSetOutput, error) {
	if params == nil {
		params = &qsapi.DeleteDataSetInput{}
	}
	out := &qsapi.DeleteDataSetOutput{}
	if err := c.invoke(ctx, "DeleteDataSet", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteDataSource(ctx context.Context, params *qsapi.DeleteDataSourceInput) (*qsapi.DeleteDataSourceOutput, error) {
	if params == nil {
		params = &qsapi.DeleteDataSourceInput{}
	}
	out := &qsapi.DeleteDataSourceOutput{}
	if err := c.invoke(ctx, "DeleteDataSource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteGroup(ctx context.Context, params *qsapi.DeleteGroupInput) (*qsapi.DeleteGroupOutput, error) {
	if params == nil {
		params = &qsapi.DeleteGroupInput{}
	}
	out := &qsapi.DeleteGroupOutput{}
	if err := c.invoke(ctx, "DeleteGroup", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteGroupMembership(ctx context.Context, params *qsapi.DeleteGroupMembershipInput) (*qsapi.DeleteGroupMembershipOutput, error) {
	if params == nil {
		params = &qsapi.DeleteGroupMembershipInput{}
	}
	out := &qsapi.DeleteGroupMembershipOutput{}
	if err := c.invoke(ctx, "DeleteGroupMembership", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteIAMPolicyAssignment(ctx context.Context, params *qsapi.DeleteIAMPolicyAssignmentInput) (*qsapi.DeleteIAMPolicyAssignmentOutput, error) {
	if params == nil {
		params = &qsapi.DeleteIAMPolicyAssignmentInput{}
	}
	out := &qsapi.DeleteIAMPolicyAssignmentOutput{}
	if err := c.invoke(ctx, "DeleteIAMPolicyAssignment", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteTemplate(ctx context.Context, params *qsapi.DeleteTemplateInput) (*qsapi.DeleteTemplateOutput, error) {
	if params == nil {
		params = &qsapi.DeleteTemplateInput{}
	}
	out := &qsapi.DeleteTemplateOutput{}
	if err := c.invoke(ctx, "DeleteTemplate", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteTemplateAlias(ctx context.Context, params *qsapi.DeleteTemplateAliasInput) (*qsapi.DeleteTemplateAliasOutput, error) {
	if params == nil {
		params = &qsapi.DeleteTemplateAliasInput{}
	}
	out := &qsapi.DeleteTemplateAliasOutput{}
	if err := c.invoke(ctx, "DeleteTemplateAlias", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, params *qsapi.DeleteUserInput) (*qsapi.DeleteUserOutput, error) {
	if params == nil {
		params = &qsapi.DeleteUserInput{}
	}
	out := &qsapi.DeleteUserOutput{}
	if err := c.invoke(ctx, "DeleteUser", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteUserByPrincipalId(ctx context.Context, params *qsapi.DeleteUserByPrincipalIdInput) (*qsapi.DeleteUserByPrincipalIdOutput, error) {
	if params == nil {
		params = &qsapi.DeleteUserByPrincipalIdInput{}
	}
	out := &qsapi.DeleteUserByPrincipalIdOutput{}
	if err := c.invoke(ctx, "DeleteUserByPrincipalId", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeDashboard(ctx context.Context, params *qsapi.DescribeDashboardInput) (*qsapi.DescribeDashboardOutput, error) {
	if params == nil {
		params = &qsapi.DescribeDashboardInput{}
	}
	out := &qsapi.DescribeDashboardOutput{}
	if err := c.invoke(ctx, "DescribeDashboard", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeDashboardPermissions(ctx context.Context, params *qsapi.DescribeDashboardPermissionsInput) (*qsapi.DescribeDashboardPermissionsOutput, error) {
	if params == nil {
		params = &qsapi.DescribeDashboardPermissionsInput{}
	}
	out := &qsapi.DescribeDashboardPermissionsOutput{}
	if err := c.invoke(ctx, "DescribeDashboardPermissions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeDataSet(ctx context.Context, params *qsapi.DescribeDataSetInput) (*qsapi.DescribeDataSetOutput, error) {
	if params == nil {
		params = &qsapi.DescribeDataSetInput{}
	}
	out := &qsapi.DescribeDataSetOutput{}
	if err := c.invoke(ctx, "DescribeDataSet", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeDataSetPermissions(ctx context.Context, params *qsapi.DescribeDataSetPermissionsInput) (*qsapi.DescribeDataSetPermissionsOutput, error) {
	if params == nil {
		params = &qsapi.DescribeDataSetPermissionsInput{}
	}
	out := &qsapi.DescribeDataSetPermissionsOutput{}
	if err := c.invoke(ctx, "DescribeDataSetPermissions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeDataSource(ctx context.Context, params *qsapi.DescribeDataSourceInput) (*qsapi.DescribeDataSourceOutput, error) {
	if params == nil {
		params = &qsapi.DescribeDataSourceInput{}
	}
	out := &qsapi.DescribeDataSourceOutput{}
	if err := c.invoke(ctx, "DescribeDataSource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeDataSourcePermissions(ctx context.Context, params *qsapi.DescribeDataSourcePermissionsInput) (*qsapi.DescribeDataSourcePermissionsOutput, error) {
	if params == nil {
		params = &qsapi.DescribeDataSourcePermissionsInput{}
	}
	out := &qsapi.DescribeDataSourcePermissionsOutput{}
	if err := c.invoke(ctx, "DescribeDataSourcePermissions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeGroup(ctx context.Context, params *qsapi.DescribeGroupInput) (*qsapi.DescribeGroupOutput, error) {
	if params == nil {
		params = &qsapi.DescribeGroupInput{}
	}
	out := &qsapi.DescribeGroupOutput{}
	if err := c.invoke(ctx, "DescribeGroup", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeIAMPolicyAssignment(ctx context.Context, params *qsapi.DescribeIAMPolicyAssignmentInput) (*qsapi.DescribeIAMPolicyAssignmentOutput, error) {
	if params == nil {
		params = &qsapi.DescribeIAMPolicyAssignmentInput{}
	}
	out := &qsapi.DescribeIAMPolicyAssignmentOutput{}
	if err := c.invoke(ctx, "DescribeIAMPolicyAssignment", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeIngestion(ctx context.Context, params *qsapi.DescribeIngestionInput) (*qsapi.DescribeIngestionOutput, error) {
	if params == nil {
		params = &qsapi.DescribeIngestionInput{}
	}
	out := &qsapi.DescribeIngestionOutput{}
	if err := c.invoke(ctx, "DescribeIngestion", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeTemplate(ctx context.Context, params *qsapi.DescribeTemplateInput) (*qsapi.DescribeTemplateOutput, error) {
	if params == nil {
		params = &qsapi.DescribeTemplateInput{}
	}
	out := &qsapi.DescribeTemplateOutput{}
	if err := c.invoke(ctx, "DescribeTemplate", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeTemplateAlias(ctx context.Context, params *qsapi.DescribeTemplateAliasInput) (*qsapi.DescribeTemplateAliasOutput, error) {
	if params == nil {
		params = &qsapi.DescribeTemplateAliasInput{}
	}
	out := &qsapi.DescribeTemplateAliasOutput{}
	if err := c.invoke(ctx, "DescribeTemplateAlias", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeTemplatePermissions(ctx context.Context, params *qsapi.DescribeTemplatePermissionsInput) (*qsapi.DescribeTemplatePermissionsOutput, error) {
	if params == nil {
		params = &qsapi.DescribeTemplatePermissionsInput{}
	}
	out := &qsapi.DescribeTemplatePermissionsOutput{}
	if err := c.invoke(ctx, "DescribeTemplatePermissions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DescribeUser(ctx context.Context, params *qsapi.DescribeUserInput) (*qsapi.DescribeUserOutput, error) {
	if params == nil {
		params = &qsapi.DescribeUserInput{}
	}
	out := &qsapi.DescribeUserOutput{}
	if err := c.invoke(ctx, "DescribeUser", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDashboardEmbedUrl(ctx context.Context, params *qsapi.GetDashboardEmbedUrlInput) (*qsapi.GetDashboardEmbedUrlOutput, error) {
	if params == nil {
		params = &qsapi.GetDashboardEmbedUrlInput{}
	}
	out := &qsapi.GetDashboardEmbedUrlOutput{}
	if err := c.invoke(ctx, "GetDashboardEmbedUrl", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListDashboardVersions(ctx context.Context, params *qsapi.ListDashboardVersionsInput) (*qsapi.ListDashboardVersionsOutput, error) {
	if params == nil {
		params = &qsapi.ListDashboardVersionsInput{}
	}
	out := &qsapi.ListDashboardVersionsOutput{}
	if err := c.invoke(ctx, "ListDashboardVersions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListDashboards(ctx context.Context, params *qsapi.ListDashboardsInput) (*qsapi.ListDashboardsOutput, error) {
	if params == nil {
		params = &qsapi.ListDashboardsInput{}
	}
	out := &qsapi.ListDashboardsOutput{}
	if err := c.invoke(ctx, "ListDashboards", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListDataSets(ctx context.Context, params *qsapi.ListDataSetsInput) (*qsapi.ListDataSetsOutput, error) {
	if params == nil {
		params = &qsapi.ListDataSetsInput{}
	}
	out := &qsapi.ListDataSetsOutput{}
	if err := c.invoke(ctx, "ListDataSets", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListDataSources(ctx context.Context, params *qsapi.ListDataSourcesInput) (*qsapi.ListDataSourcesOutput, error) {
	if params == nil {
		params = &qsapi.ListDataSourcesInput{}
	}
	out := &qsapi.ListDataSourcesOutput{}
	if err := c.invoke(ctx, "ListDataSources", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListGroupMemberships(ctx context.Context, params *qsapi.ListGroupMembershipsInput) (*qsapi.ListGroupMembershipsOutput, error) {
	if params == nil {
		params = &qsapi.ListGroupMembershipsInput{}
	}
	out := &qsapi.ListGroupMembershipsOutput{}
	if err := c.invoke(ctx, "ListGroupMemberships", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListGroups(ctx context.Context, params *qsapi.ListGroupsInput) (*qsapi.ListGroupsOutput, error) {
	if params == nil {
		params = &qsapi.ListGroupsInput{}
	}
	out := &qsapi.ListGroupsOutput{}
	if err := c.invoke(ctx, "ListGroups", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListIAMPolicyAssignments(ctx context.Context, params *qsapi.ListIAMPolicyAssignmentsInput) (*qsapi.ListIAMPolicyAssignmentsOutput, error) {
	if params == nil {
		params = &qsapi.ListIAMPolicyAssignmentsInput{}
	}
	out := &qsapi.ListIAMPolicyAssignmentsOutput{}
	if err := c.invoke(ctx, "ListIAMPolicyAssignments", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListIAMPolicyAssignmentsForUser(ctx context.Context, params *qsapi.ListIAMPolicyAssignmentsForUserInput) (*qsapi.ListIAMPolicyAssignmentsForUserOutput, error) {
	if params == nil {
		params = &qsapi.ListIAMPolicyAssignmentsForUserInput{}
	}
	out := &qsapi.ListIAMPolicyAssignmentsForUserOutput{}
	if err := c.invoke(ctx, "ListIAMPolicyAssignmentsForUser", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListIngestions(ctx context.Context, params *qsapi.ListIngestionsInput) (*qsapi.ListIngestionsOutput, error) {
	if params == nil {
		params = &qsapi.ListIngestionsInput{}
	}
	out := &qsapi.ListIngestionsOutput{}
	if err := c.invoke(ctx, "ListIngestions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTagsForResource(ctx context.Context, params *qsapi.ListTagsForResourceInput) (*qsapi.ListTagsForResourceOutput, error) {
	if params == nil {
		params = &qsapi.ListTagsForResourceInput{}
	}
	out := &qsapi.ListTagsForResourceOutput{}
	if err := c.invoke(ctx, "ListTagsForResource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTemplateAliases(ctx context.Context, params *qsapi.ListTemplateAliasesInput) (*qsapi.ListTemplateAliasesOutput, error) {
	if params == nil {
		params = &qsapi.ListTemplateAliasesInput{}
	}
	out := &qsapi.ListTemplateAliasesOutput{}
	if err := c.invoke(ctx, "ListTemplateAliases", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTemplateVersions(ctx context.Context, params *qsapi.ListTemplateVersionsInput) (*qsapi.ListTemplateVersionsOutput, error) {
	if params == nil {
		params = &qsapi.ListTemplateVersionsInput{}
	}
	out := &qsapi.ListTemplateVersionsOutput{}
	if err := c.invoke(ctx, "ListTemplateVersions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTemplates(ctx context.Context, params *qsapi.ListTemplatesInput) (*qsapi.ListTemplatesOutput, error) {
	if params == nil {
		params = &qsapi.ListTemplatesInput{}
	}
	out := &qsapi.ListTemplatesOutput{}
	if err := c.invoke(ctx, "ListTemplates", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUserGroups(ctx context.Context, params *qsapi.ListUserGroupsInput) (*qsapi.ListUserGroupsOutput, error) {
	if params == nil {
		params = &qsapi.ListUserGroupsInput{}
	}
	out := &qsapi.ListUserGroupsOutput{}
	if err := c.invoke(ctx, "ListUserGroups", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUsers(ctx context.Context, params *qsapi.ListUsersInput) (*qsapi.ListUsersOutput, error) {
	if params == nil {
		params = &qsapi.ListUsersInput{}
	}
	out := &qsapi.ListUsersOutput{}
	if err := c.invoke(ctx, "ListUsers", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegisterUser(ctx context.Context, params *qsapi.RegisterUserInput) (*qsapi.RegisterUserOutput, error) {
	if params == nil {
		params = &qsapi.RegisterUserInput{}
	}
	out := &qsapi.RegisterUserOutput{}
	if err := c.invoke(ctx, "RegisterUser", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchDashboards(ctx context.Context, params *qsapi.SearchDashboardsInput) (*qsapi.SearchDashboardsOutput, error) {
	if params == nil {
		params = &qsapi.SearchDashboardsInput{}
	}
	out := &qsapi.SearchDashboardsOutput{}
	if err := c.invoke(ctx, "SearchDashboards", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TagResource(ctx context.Context, params *qsapi.TagResourceInput) (*qsapi.TagResourceOutput, error) {
	if params == nil {
		params = &qsapi.TagResourceInput{}
	}
	out := &qsapi.TagResourceOutput{}
	if err := c.invoke(ctx, "TagResource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UntagResource(ctx context.Context, params *qsapi.UntagResourceInput) (*qsapi.UntagResourceOutput, error) {
	if params == nil {
		params = &qsapi.UntagResourceInput{}
	}
	out := &qsapi.UntagResourceOutput{}
	if err := c.invoke(ctx, "UntagResource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateDashboard(ctx context.Context, params *qsapi.UpdateDashboardInput) (*qsapi.UpdateDashboardOutput, error) {
	if params == nil {
		params = &qsapi.UpdateDashboardInput{}
	}
	out := &qsapi.UpdateDashboardOutput{}
	if err := c.invoke(ctx, "UpdateDashboard", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateDashboardPermissions(ctx context.Context, params *qsapi.UpdateDashboardPermissionsInput) (*qsapi.UpdateDashboardPermissionsOutput, error) {
	if params == nil {
		params = &qsapi.UpdateDashboardPermissionsInput{}
	}
	out := &qsapi.UpdateDashboardPermissionsOutput{}
	if err := c.invoke(ctx, "UpdateDashboardPermissions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateDashboardPublishedVersion(ctx context.Context, params *qsapi.UpdateDashboardPublishedVersionInput) (*qsapi.UpdateDashboardPublishedVersionOutput, error) {
	if params == nil {
		params = &qsapi.UpdateDashboardPublishedVersionInput{}
	}
	out := &qsapi.UpdateDashboardPublishedVersionOutput{}
	if err := c.invoke(ctx, "UpdateDashboardPublishedVersion", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateDataSet(ctx context.Context, params *qsapi.UpdateDataSetInput) (*qsapi.UpdateDataSetOutput, error) {
	if params == nil {
		params = &qsapi.UpdateDataSetInput{}
	}
	out := &qsapi.UpdateDataSetOutput{}
	if err := c.invoke(ctx, "UpdateDataSet", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateDataSetPermissions(ctx context.Context, params *qsapi.UpdateDataSetPermissionsInput) (*qsapi.UpdateDataSetPermissionsOutput, error) {
	if params == nil {
		params = &qsapi.UpdateDataSetPermissionsInput{}
	}
	out := &qsapi.UpdateDataSetPermissionsOutput{}
	if err := c.invoke(ctx, "UpdateDataSetPermissions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateDataSource(ctx context.Context, params *qsapi.UpdateDataSourceInput) (*qsapi.UpdateDataSourceOutput, error) {
	if params == nil {
		params = &qsapi.UpdateDataSourceInput{}
	}
	out := &qsapi.UpdateDataSourceOutput{}
	if err := c.invoke(ctx, "UpdateDataSource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateDataSourcePermissions(ctx context.Context, params *qsapi.UpdateDataSourcePermissionsInput) (*qsapi.UpdateDataSourcePermissionsOutput, error) {
	if params == nil {
		params = &qsapi.UpdateDataSourcePermissionsInput{}
	}
	out := &qsapi.UpdateDataSourcePermissionsOutput{}
	if err := c.invoke(ctx, "UpdateDataSourcePermissions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateGroup(ctx context.Context, params *qsapi.UpdateGroupInput) (*qsapi.UpdateGroupOutput, error) {
	if params == nil {
		params = &qsapi.UpdateGroupInput{}
	}
	out := &qsapi.UpdateGroupOutput{}
	if err := c.invoke(ctx, "UpdateGroup", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateIAMPolicyAssignment(ctx context.Context, params *qsapi.UpdateIAMPolicyAssignmentInput) (*qsapi.UpdateIAMPolicyAssignmentOutput, error) {
	if params == nil {
		params = &qsapi.UpdateIAMPolicyAssignmentInput{}
	}
	out := &qsapi.UpdateIAMPolicyAssignmentOutput{}
	if err := c.invoke(ctx, "UpdateIAMPolicyAssignment", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateTemplate(ctx context.Context, params *qsapi.UpdateTemplateInput) (*qsapi.UpdateTemplateOutput, error) {
	if params == nil {
		params = &qsapi.UpdateTemplateInput{}
	}
	out := &qsapi.UpdateTemplateOutput{}
	if err := c.invoke(ctx, "UpdateTemplate", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateTemplateAlias(ctx context.Context, params *qsapi.UpdateTemplateAliasInput) (*qsapi.UpdateTemplateAliasOutput, error) {
	if params == nil {
		params = &qsapi.UpdateTemplateAliasInput{}
	}
	out := &qsapi.UpdateTemplateAliasOutput{}
	if err := c.invoke(ctx, "UpdateTemplateAlias", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateTemplatePermissions(ctx context.Context, params *qsapi.UpdateTemplatePermissionsInput) (*qsapi.UpdateTemplatePermissionsOutput, error) {
	if params == nil {
		params = &qsapi.UpdateTemplatePermissionsInput{}
	}
	out := &qsapi.UpdateTemplatePermissionsOutput{}
	if err := c.invoke(ctx, "UpdateTemplatePermissions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, params *qsapi.UpdateUserInput) (*qsapi.UpdateUserOutput, error) {
	if params == nil {
		params = &qsapi.UpdateUserInput{}
	}
	out := &qsapi.UpdateUserOutput{}
	if err := c.invoke(ctx, "UpdateUser", params, out); err != nil {
		return nil, err
	}
	return out, nil
}
