package main

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

var dataSetsCmd = &cobra.Command{
	Use:     "datasets",
	Aliases: []string{"data-sets"},
	Short:   "Inspect data sets",
}

var listDataSetsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the data sets of the account",
	Args:  cobra.NoArgs,
	RunE:  withSession(listDataSets),
}

var dashboardsCmd = &cobra.Command{
	Use:   "dashboards",
	Short: "Inspect dashboards",
}

var listDashboardsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the dashboards of the account",
	Args:  cobra.NoArgs,
	RunE:  withSession(listDashboards),
}

func init() {
	dataSetsCmd.AddCommand(listDataSetsCmd)
	dashboardsCmd.AddCommand(listDashboardsCmd)
}

func listDataSets(ctx context.Context, out io.Writer, s *session, _ []string) error {
	dataSets, err := paginate(func(token *string) ([]types.DataSetSummary, *string, error) {
		page, err := s.api.ListDataSets(ctx, &qsapi.ListDataSetsInput{
			AwsAccountId: aws.String(s.account),
			NextToken:    token,
		})
		if err != nil {
			return nil, nil, err
		}
		return page.DataSetSummaries, page.NextToken, nil
	})
	if err != nil {
		return err
	}

	t := newTable(out, "ID", "NAME", "MODE", "UPDATED")
	for _, ds := range dataSets {
		t.row(str(ds.DataSetId), str(ds.Name), string(ds.ImportMode), formatTime(ds.LastUpdatedTime))
	}
	return t.flush()
}

func listDashboards(ctx context.Context, out io.Writer, s *session, _ []string) error {
	dashboards, err := paginate(func(token *string) ([]types.DashboardSummary, *string, error) {
		page, err := s.api.ListDashboards(ctx, &qsapi.ListDashboardsInput{
			AwsAccountId: aws.String(s.account),
			NextToken:    token,
		})
		if err != nil {
			return nil, nil, err
		}
		return page.DashboardSummaryList, page.NextToken, nil
	})
	if err != nil {
		return err
	}

	t := newTable(out, "ID", "NAME", "PUBLISHED", "UPDATED")
	for _, d := range dashboards {
		t.row(str(d.DashboardId), str(d.Name), formatInt(d.PublishedVersionNumber), formatTime(d.LastUpdatedTime))
	}
	return t.flush()
}
