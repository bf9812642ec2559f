package main

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

// runFunc is the body of a command that talks to the service.
type runFunc func(ctx context.Context, out io.Writer, s *session, args []string) error

// withSession opens a session from the flags and qs.yaml and runs fn with it.
func withSession(fn runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		return fn(cmd.Context(), cmd.OutOrStdout(), s, args)
	}
}

var groupDescription string

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage groups",
}

var listGroupsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the groups of the namespace",
	Args:  cobra.NoArgs,
	RunE:  withSession(listGroups),
}

var createGroupCmd = &cobra.Command{
	Use:   "create [group-name]",
	Short: "Create a group",
	Args:  cobra.ExactArgs(1),
	RunE: withSession(func(ctx context.Context, out io.Writer, s *session, args []string) error {
		return createGroup(ctx, out, s, args[0], groupDescription)
	}),
}

var deleteGroupCmd = &cobra.Command{
	Use:   "delete [group-name]",
	Short: "Delete a group",
	Args:  cobra.ExactArgs(1),
	RunE:  withSession(deleteGroup),
}

func init() {
	createGroupCmd.Flags().StringVar(&groupDescription, "description", "", "group description")

	groupsCmd.AddCommand(listGroupsCmd)
	groupsCmd.AddCommand(createGroupCmd)
	groupsCmd.AddCommand(deleteGroupCmd)
}

func listGroups(ctx context.Context, out io.Writer, s *session, _ []string) error {
	groups, err := paginate(func(token *string) ([]types.Group, *string, error) {
		page, err := s.api.ListGroups(ctx, &qsapi.ListGroupsInput{
			AwsAccountId: aws.String(s.account),
			Namespace:    aws.String(s.namespace),
			NextToken:    token,
		})
		if err != nil {
			return nil, nil, err
		}
		return page.GroupList, page.NextToken, nil
	})
	if err != nil {
		return err
	}

	t := newTable(out, "NAME", "DESCRIPTION", "PRINCIPAL ID")
	for _, g := range groups {
		t.row(str(g.GroupName), str(g.Description), str(g.PrincipalId))
	}
	return t.flush()
}

func createGroup(ctx context.Context, out io.Writer, s *session, name, description string) error {
	in := &qsapi.CreateGroupInput{
		AwsAccountId: aws.String(s.account),
		Namespace:    aws.String(s.namespace),
		GroupName:    aws.String(name),
	}
	if description != "" {
		in.Description = aws.String(description)
	}
	created, err := s.api.CreateGroup(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Created group %s\n", str(created.Group.Arn))
	return nil
}

func deleteGroup(ctx context.Context, out io.Writer, s *session, args []string) error {
	_, err := s.api.DeleteGroup(ctx, &qsapi.DeleteGroupInput{
		AwsAccountId: aws.String(s.account),
		Namespace:    aws.String(s.namespace),
		GroupName:    aws.String(args[0]),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted group %s\n", args[0])
	return nil
}
