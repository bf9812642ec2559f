package qsserve

import (
	"context"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/qsiface"
)

// operation calls one API method with a decoded input.
type operation func(ctx context.Context, in qsapi.Input) (qsapi.Output, error)

func op[In qsapi.Input, Out qsapi.Output](call func(context.Context, In) (Out, error)) operation {
	return func(ctx context.Context, in qsapi.Input) (qsapi.Output, error) {
		out, err := call(ctx, in.(In))
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// operations maps every operation name to the method of api serving it.
func operations(api qsiface.API) map[string]operation {
	return map[string]operation{
		"CancelIngestion":                 op(api.CancelIngestion),
		"CreateDashboard":                 op(api.CreateDashboard),
		"CreateDataSet":                   op(api.CreateDataSet),
		"CreateDataSource":                op(api.CreateDataSource),
		"CreateGroup":                     op(api.CreateGroup),
		"CreateGroupMembership":           op(api.CreateGroupMembership),
		"CreateIAMPolicyAssignment":       op(api.CreateIAMPolicyAssignment),
		"CreateIngestion":                 op(api.CreateIngestion),
		"CreateTemplate":                  op(api.CreateTemplate),
		"CreateTemplateAlias":             op(api.CreateTemplateAlias),
		"DeleteDashboard":                 op(api.DeleteDashboard),
		"DeleteDataSet":                   op(api.DeleteDataSet),
		"DeleteDataSource":                op(api.DeleteDataSource),
		"DeleteGroup":                     op(api.DeleteGroup),
		"DeleteGroupMembership":           op(api.DeleteGroupMembership),
		"DeleteIAMPolicyAssignment":       op(api.DeleteIAMPolicyAssignment),
		"DeleteTemplate":                  op(api.DeleteTemplate),
		"DeleteTemplateAlias":             op(api.DeleteTemplateAlias),
		"DeleteUser":                      op(api.DeleteUser),
		"DeleteUserByPrincipalId":         op(api.DeleteUserByPrincipalId),
		"DescribeDashboard":               op(api.DescribeDashboard),
		"DescribeDashboardPermissions":    op(api.DescribeDashboardPermissions),
		"DescribeDataSet":                 op(api.DescribeDataSet),
		"DescribeDataSetPermissions":      op(api.DescribeDataSetPermissions),
		"DescribeDataSource":              op(api.DescribeDataSource),
		"DescribeDataSourcePermissions":   op(api.DescribeDataSourcePermissions),
		"DescribeGroup":                   op(api.DescribeGroup),
		"DescribeIAMPolicyAssignment":     op(api.DescribeIAMPolicyAssignment),
		"DescribeIngestion":               op(api.DescribeIngestion),
		"DescribeTemplate":                op(api.DescribeTemplate),
		"DescribeTemplateAlias":           op(api.DescribeTemplateAlias),
		"DescribeTemplatePermissions":     op(api.DescribeTemplatePermissions),
		"DescribeUser":                    op(api.DescribeUser),
		"GetDashboardEmbedUrl":            op(api.GetDashboardEmbedUrl),
		"ListDashboardVersions":           op(api.ListDashboardVersions),
		"ListDashboards":                  op(api.ListDashboards),
		"ListDataSets":                    op(api.ListDataSets),
		"ListDataSources":                 op(api.ListDataSources),
		"ListGroupMemberships":            op(api.ListGroupMemberships),
		"ListGroups":                      op(api.ListGroups),
		"ListIAMPolicyAssignments":        op(api.ListIAMPolicyAssignments),
		"ListIAMPolicyAssignmentsForUser": op(api.ListIAMPolicyAssignmentsForUser),
		"ListIngestions":                  op(api.ListIngestions),
		"ListTagsForResource":             op(api.ListTagsForResource),
		"ListTemplateAliases":             op(api.ListTemplateAliases),
		"ListTemplateVersions":            op(api.ListTemplateVersions),
		"ListTemplates":                   op(api.ListTemplates),
		"ListUserGroups":                  op(api.ListUserGroups),
		"ListUsers":                       op(api.ListUsers),
		"RegisterUser":                    op(api.RegisterUser),
		"SearchDashboards":                op(api.SearchDashboards),
		"TagResource":                     op(api.TagResource),
		"UntagResource":                   op(api.UntagResource),
		"UpdateDashboard":                 op(api.UpdateDashboard),
		"UpdateDashboardPermissions":      op(api.UpdateDashboardPermissions),
		"UpdateDashboardPublishedVersion": op(api.UpdateDashboardPublishedVersion),
		"UpdateDataSet":                   op(api.UpdateDataSet),
		"UpdateDataSetPermissions":        op(api.UpdateDataSetPermissions),
		"UpdateDataSource":                op(api.UpdateDataSource),
		"UpdateDataSourcePermissions":     op(api.UpdateDataSourcePermissions),
		"UpdateGroup":                     op(api.UpdateGroup),
		"UpdateIAMPolicyAssignment":       op(api.UpdateIAMPolicyAssignment),
		"UpdateTemplate":                  op(api.UpdateTemplate),
		"UpdateTemplateAlias":             op(api.UpdateTemplateAlias),
		"UpdateTemplatePermissions":       op(api.UpdateTemplatePermissions),
		"UpdateUser":                      op(api.UpdateUser),
	}
}
