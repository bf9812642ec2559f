package main

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/spf13/cobra"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

type registerOptions struct {
	email       string
	role        string
	userName    string
	iamUser     string
	iamArn      string
	sessionName string
}

var registerFlags registerOptions

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users",
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List the users of the namespace",
	Args:  cobra.NoArgs,
	RunE:  withSession(listUsers),
}

var registerUserCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a user",
	Long: `Register an IAM identity or a QuickSight-only user.

With --iam-user the ARN of the named IAM user is looked up with IAM. With
--iam-arn the ARN is used as given; roles also need --session-name. Without
either a QuickSight user named --user-name is invited by email.`,
	Example: `  qs users register --email ana@example.com --iam-user ana --role AUTHOR
  qs users register --email bo@example.com --user-name bo`,
	Args: cobra.NoArgs,
	RunE: withSession(func(ctx context.Context, out io.Writer, s *session, _ []string) error {
		var lookup iamUserAPI
		if registerFlags.iamUser != "" {
			lookup = iam.NewFromConfig(s.awsCfg)
		}
		return registerUser(ctx, out, s, registerFlags, lookup)
	}),
}

func init() {
	f := registerUserCmd.Flags()
	f.StringVar(&registerFlags.email, "email", "", "email address of the user (required)")
	f.StringVar(&registerFlags.role, "role", string(types.UserRoleReader), "ADMIN, AUTHOR or READER")
	f.StringVar(&registerFlags.userName, "user-name", "", "name of a QuickSight user")
	f.StringVar(&registerFlags.iamUser, "iam-user", "", "name of the IAM user to register")
	f.StringVar(&registerFlags.iamArn, "iam-arn", "", "ARN of the IAM user or role to register")
	f.StringVar(&registerFlags.sessionName, "session-name", "", "session name, for IAM roles")
	_ = registerUserCmd.MarkFlagRequired("email")
	registerUserCmd.MarkFlagsMutuallyExclusive("iam-user", "iam-arn")

	usersCmd.AddCommand(listUsersCmd)
	usersCmd.AddCommand(registerUserCmd)
}

func listUsers(ctx context.Context, out io.Writer, s *session, _ []string) error {
	users, err := paginate(func(token *string) ([]types.User, *string, error) {
		page, err := s.api.ListUsers(ctx, &qsapi.ListUsersInput{
			AwsAccountId: aws.String(s.account),
			Namespace:    aws.String(s.namespace),
			NextToken:    token,
		})
		if err != nil {
			return nil, nil, err
		}
		return page.UserList, page.NextToken, nil
	})
	if err != nil {
		return err
	}

	t := newTable(out, "NAME", "EMAIL", "ROLE", "IDENTITY", "ACTIVE")
	for _, u := range users {
		t.row(str(u.UserName), str(u.Email), string(u.Role), string(u.IdentityType), fmt.Sprint(u.Active))
	}
	return t.flush()
}

// registerUser registers the user described by opts. lookup resolves
// opts.iamUser and may be nil when it is empty.
func registerUser(ctx context.Context, out io.Writer, s *session, opts registerOptions, lookup iamUserAPI) error {
	role, err := types.ParseUserRole(opts.role)
	if err != nil {
		return err
	}
	in := &qsapi.RegisterUserInput{
		AwsAccountId: aws.String(s.account),
		Namespace:    aws.String(s.namespace),
		IdentityType: types.IdentityTypeQuicksight,
		Email:        aws.String(opts.email),
		UserRole:     role,
	}

	iamArn := opts.iamArn
	if opts.iamUser != "" {
		if iamArn, err = iamUserArn(ctx, lookup, opts.iamUser); err != nil {
			return err
		}
	}
	if iamArn != "" {
		in.IdentityType = types.IdentityTypeIam
		in.IamArn = aws.String(iamArn)
	}
	if opts.sessionName != "" {
		in.SessionName = aws.String(opts.sessionName)
	}
	if opts.userName != "" {
		in.UserName = aws.String(opts.userName)
	}

	registered, err := s.api.RegisterUser(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Registered user %s\n", str(registered.User.Arn))
	if registered.UserInvitationUrl != nil {
		fmt.Fprintf(out, "Invitation URL: %s\n", *registered.UserInvitationUrl)
	}
	return nil
}
