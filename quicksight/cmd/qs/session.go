package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go/logging"

	"github.com/acksell/qsight/quicksight/qsiface"
	"github.com/acksell/qsight/quicksight/qssdk"
)

// session is what a service command needs: a client and the account and
// namespace to address.
type session struct {
	api       qsiface.API
	awsCfg    aws.Config
	account   string
	namespace string
}

func newSession(ctx context.Context) (*session, error) {
	fileCfg, err := loadWorkingConfig()
	if err != nil {
		return nil, err
	}
	cfg := fileCfg.withFlags(flags)

	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if flags.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(flags.profile))
	}
	if flags.verbose {
		loadOpts = append(loadOpts,
			config.WithLogger(logging.NewStandardLogger(os.Stderr)),
			config.WithClientLogMode(aws.LogRequest|aws.LogResponse),
		)
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var optFns []func(*qssdk.Options)
	if cfg.Endpoint != "" {
		optFns = append(optFns, qssdk.WithEndpoint(cfg.Endpoint))
	}

	account := cfg.AccountID
	if account == "" {
		account, err = callerAccount(ctx, sts.NewFromConfig(awsCfg))
		if err != nil {
			return nil, err
		}
	}

	return &session{
		api:       qssdk.NewFromConfig(awsCfg, optFns...),
		awsCfg:    awsCfg,
		account:   account,
		namespace: cfg.Namespace,
	}, nil
}

type callerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// callerAccount returns the account of the credentials in use.
func callerAccount(ctx context.Context, api callerIdentityAPI) (string, error) {
	out, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("%w (caller identity: %v)", errNoAccount, err)
	}
	if aws.ToString(out.Account) == "" {
		return "", errNoAccount
	}
	return *out.Account, nil
}

type iamUserAPI interface {
	GetUser(ctx context.Context, params *iam.GetUserInput, optFns ...func(*iam.Options)) (*iam.GetUserOutput, error)
}

// iamUserArn resolves the ARN of an IAM user by name.
func iamUserArn(ctx context.Context, api iamUserAPI, userName string) (string, error) {
	out, err := api.GetUser(ctx, &iam.GetUserInput{UserName: aws.String(userName)})
	if err != nil {
		return "", fmt.Errorf("get IAM user %s: %w", userName, err)
	}
	if out.User == nil || out.User.Arn == nil {
		return "", fmt.Errorf("get IAM user %s: no ARN returned", userName)
	}
	return *out.User.Arn, nil
}
