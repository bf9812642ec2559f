package main

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

var ingestionID string

var ingestionsCmd = &cobra.Command{
	Use:   "ingestions",
	Short: "Manage SPICE ingestions of a data set",
}

var createIngestionCmd = &cobra.Command{
	Use:   "create [data-set-id]",
	Short: "Start an ingestion",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, out io.Writer, s *session, args []string) error {
		id := ingestionID
		if id == "" {
			id = uuid.NewString()
		}
		return createIngestion(ctx, out, s, args[0], id)
	}),
}

var cancelIngestionCmd = &cobra.Command{
	Use:   "cancel [data-set-id] [ingestion-id]",
	Short: "Cancel an ingestion",
	Args:  cobra.ExactArgs(2),
	RunE:  withSession(cancelIngestion),
}

var describeIngestionCmd = &cobra.Command{
	Use:   "describe [data-set-id] [ingestion-id]",
	Short: "Show an ingestion",
	Args:  cobra.ExactArgs(2),
	RunE:  withSession(describeIngestion),
}

var listIngestionsCmd = &cobra.Command{
	Use:   "list [data-set-id]",
	Short: "List the ingestions of a data set",
	Args:  cobra.ExactArgs(1),
	RunE:  withSession(listIngestions),
}

func init() {
	createIngestionCmd.Flags().StringVar(&ingestionID, "id", "", "ingestion id (default: a random UUID)")

	ingestionsCmd.AddCommand(createIngestionCmd)
	ingestionsCmd.AddCommand(cancelIngestionCmd)
	ingestionsCmd.AddCommand(describeIngestionCmd)
	ingestionsCmd.AddCommand(listIngestionsCmd)
}

func createIngestion(ctx context.Context, out io.Writer, s *session, dataSetID, id string) error {
	created, err := s.api.CreateIngestion(ctx, &qsapi.CreateIngestionInput{
		AwsAccountId: aws.String(s.account),
		DataSetId:    aws.String(dataSetID),
		IngestionId:  aws.String(id),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Ingestion %s: %s\n", str(created.IngestionId), created.IngestionStatus)
	return nil
}

func cancelIngestion(ctx context.Context, out io.Writer, s *session, args []string) error {
	_, err := s.api.CancelIngestion(ctx, &qsapi.CancelIngestionInput{
		AwsAccountId: aws.String(s.account),
		DataSetId:    aws.String(args[0]),
		IngestionId:  aws.String(args[1]),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Cancelled ingestion %s\n", args[1])
	return nil
}

func describeIngestion(ctx context.Context, out io.Writer, s *session, args []string) error {
	described, err := s.api.DescribeIngestion(ctx, &qsapi.DescribeIngestionInput{
		AwsAccountId: aws.String(s.account),
		DataSetId:    aws.String(args[0]),
		IngestionId:  aws.String(args[1]),
	})
	if err != nil {
		return err
	}
	ing := described.Ingestion
	fmt.Fprintf(out, "Id:       %s\n", str(ing.IngestionId))
	fmt.Fprintf(out, "Arn:      %s\n", str(ing.Arn))
	fmt.Fprintf(out, "Status:   %s\n", ing.IngestionStatus)
	fmt.Fprintf(out, "Created:  %s\n", formatTime(ing.CreatedTime))
	fmt.Fprintf(out, "Request:  %s %s\n", ing.RequestSource, ing.RequestType)
	if ing.RowInfo != nil {
		fmt.Fprintf(out, "Rows:     %s ingested, %s dropped\n", formatInt(ing.RowInfo.RowsIngested), formatInt(ing.RowInfo.RowsDropped))
	}
	if err := ing.Err(); err != nil {
		fmt.Fprintf(out, "Error:    %v\n", err)
	}
	return nil
}

func listIngestions(ctx context.Context, out io.Writer, s *session, args []string) error {
	ingestions, err := paginate(func(token *string) ([]types.Ingestion, *string, error) {
		page, err := s.api.ListIngestions(ctx, &qsapi.ListIngestionsInput{
			AwsAccountId: aws.String(s.account),
			DataSetId:    aws.String(args[0]),
			NextToken:    token,
		})
		if err != nil {
			return nil, nil, err
		}
		return page.Ingestions, page.NextToken, nil
	})
	if err != nil {
		return err
	}

	t := newTable(out, "ID", "STATUS", "CREATED", "REQUEST")
	for _, ing := range ingestions {
		t.row(str(ing.IngestionId), string(ing.IngestionStatus), formatTime(ing.CreatedTime), string(ing.RequestType))
	}
	return t.flush()
}
