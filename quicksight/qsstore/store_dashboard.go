package qsstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

// dashboardRecord is the stored form of a dashboard. Versions are stored
// separately; the record tracks the latest and the published one.
type dashboardRecord struct {
	types.DashboardSummary
	LatestVersionNumber int64
}

func dashboardKey(account, id *string) []byte {
	return encodeKey(kindDashboard, *account, *id)
}

func dashboardVersionKey(account, id string, version int64) []byte {
	return encodeKey(kindDashboardVersion, account, id, versionPart(version))
}

func (s *Store) getDashboard(txn *badger.Txn, account, id *string) (*dashboardRecord, error) {
	var d dashboardRecord
	if err := getDoc(txn, dashboardKey(account, id), &d); err != nil {
		if err == errNotFound {
			return nil, notFound("", "dashboard %s not found", *id)
		}
		return nil, err
	}
	return &d, nil
}

func (s *Store) getDashboardVersion(txn *badger.Txn, account, id string, version int64) (*types.DashboardVersion, error) {
	var v types.DashboardVersion
	if err := getDoc(txn, dashboardVersionKey(account, id, version), &v); err != nil {
		if err == errNotFound {
			return nil, notFound("", "version %d of dashboard %s not found", version, id)
		}
		return nil, err
	}
	return &v, nil
}

// addDashboardVersion stores the next version of d.
func (s *Store) addDashboardVersion(txn *badger.Txn, d *dashboardRecord, account string, source *types.DashboardSourceEntity, description *string) (*types.DashboardVersion, error) {
	var sourceArn *string
	if source.SourceTemplate != nil {
		sourceArn = source.SourceTemplate.Arn
		if id, ok := arnResourceID(aws.ToString(sourceArn), "template"); ok {
			exists, err := hasKey(txn, encodeKey(kindTemplate, account, id))
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, invalidParameter("source template %s not found", id)
			}
		}
	}

	number := d.LatestVersionNumber + 1
	now := types.NewTimestamp(s.now())
	v := &types.DashboardVersion{
		CreatedTime:     now,
		VersionNumber:   aws.Int64(number),
		Status:          types.ResourceStatusCreationSuccessful,
		Arn:             aws.String(fmt.Sprintf("%s/version/%d", aws.ToString(d.Arn), number)),
		SourceEntityArn: sourceArn,
		Description:     description,
	}
	if err := putDoc(txn, dashboardVersionKey(account, aws.ToString(d.DashboardId), number), v); err != nil {
		return nil, err
	}
	d.LatestVersionNumber = number
	d.LastUpdatedTime = now
	return v, nil
}

// CreateDashboard creates a dashboard and publishes its first version.
func (s *Store) CreateDashboard(ctx context.Context, params *qsapi.CreateDashboardInput) (*qsapi.CreateDashboardOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := types.NewTimestamp(s.now())
	d := &dashboardRecord{DashboardSummary: types.DashboardSummary{
		Arn:             aws.String(s.arn(*params.AwsAccountId, "dashboard/"+*params.DashboardId)),
		DashboardId:     params.DashboardId,
		Name:            params.Name,
		CreatedTime:     now,
		LastUpdatedTime: now,
	}}
	var v *types.DashboardVersion
	key := dashboardKey(params.AwsAccountId, params.DashboardId)
	err := s.db.Update(func(txn *badger.Txn) error {
		exists, err := hasKey(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return alreadyExists("", "dashboard %s already exists", *params.DashboardId)
		}
		v, err = s.addDashboardVersion(txn, d, *params.AwsAccountId, params.SourceEntity, params.VersionDescription)
		if err != nil {
			return err
		}
		d.PublishedVersionNumber = v.VersionNumber
		d.LastPublishedTime = now
		if err := putDoc(txn, key, d); err != nil {
			return err
		}
		return addResource(txn, *d.Arn, params.Tags, params.Permissions)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.CreateDashboardOutput{
		ResultMetadata: metadata("CreateDashboard"),
		Arn:            d.Arn,
		VersionArn:     v.Arn,
		DashboardId:    d.DashboardId,
		CreationStatus: v.Status,
	}, nil
}

// UpdateDashboard adds a version to a dashboard without publishing it.
func (s *Store) UpdateDashboard(ctx context.Context, params *qsapi.UpdateDashboardInput) (*qsapi.UpdateDashboardOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		d *dashboardRecord
		v *types.DashboardVersion
	)
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		d, err = s.getDashboard(txn, params.AwsAccountId, params.DashboardId)
		if err != nil {
			return err
		}
		d.Name = params.Name
		v, err = s.addDashboardVersion(txn, d, *params.AwsAccountId, params.SourceEntity, params.VersionDescription)
		if err != nil {
			return err
		}
		return putDoc(txn, dashboardKey(params.AwsAccountId, params.DashboardId), d)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.UpdateDashboardOutput{
		ResultMetadata: metadata("UpdateDashboard"),
		Arn:            d.Arn,
		VersionArn:     v.Arn,
		DashboardId:    d.DashboardId,
		CreationStatus: v.Status,
	}, nil
}

func (s *Store) UpdateDashboardPublishedVersion(ctx context.Context, params *qsapi.UpdateDashboardPublishedVersionInput) (*qsapi.UpdateDashboardPublishedVersionOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var d *dashboardRecord
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		d, err = s.getDashboard(txn, params.AwsAccountId, params.DashboardId)
		if err != nil {
			return err
		}
		if _, err := s.getDashboardVersion(txn, *params.AwsAccountId, *params.DashboardId, *params.VersionNumber); err != nil {
			return err
		}
		d.PublishedVersionNumber = params.VersionNumber
		d.LastPublishedTime = types.NewTimestamp(s.now())
		return putDoc(txn, dashboardKey(params.AwsAccountId, params.DashboardId), d)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.UpdateDashboardPublishedVersionOutput{
		ResultMetadata: metadata("UpdateDashboardPublishedVersion"),
		DashboardId:    d.DashboardId,
		DashboardArn:   d.Arn,
	}, nil
}

// resolveDashboardVersion maps the version selectors of DescribeDashboard to a
// version number. With neither selector the published version is used.
func resolveDashboardVersion(d *dashboardRecord, version *int64, alias *string) (int64, error) {
	switch {
	case version != nil && alias != nil:
		return 0, invalidParameter("VersionNumber and AliasName cannot both be set")
	case version != nil:
		return *version, nil
	case alias == nil || *alias == types.AliasPublished:
		return aws.ToInt64(d.PublishedVersionNumber), nil
	case *alias == types.AliasLatest:
		return d.LatestVersionNumber, nil
	}
	return 0, invalidParameter("dashboards have no alias %s", *alias)
}

func (s *Store) DescribeDashboard(ctx context.Context, params *qsapi.DescribeDashboardInput) (*qsapi.DescribeDashboardOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var dashboard *types.Dashboard
	err := s.db.View(func(txn *badger.Txn) error {
		d, err := s.getDashboard(txn, params.AwsAccountId, params.DashboardId)
		if err != nil {
			return err
		}
		number, err := resolveDashboardVersion(d, params.VersionNumber, params.AliasName)
		if err != nil {
			return err
		}
		v, err := s.getDashboardVersion(txn, *params.AwsAccountId, *params.DashboardId, number)
		if err != nil {
			return err
		}
		dashboard = &types.Dashboard{
			DashboardId:       d.DashboardId,
			Arn:               d.Arn,
			Name:              d.Name,
			Version:           v,
			CreatedTime:       d.CreatedTime,
			LastPublishedTime: d.LastPublishedTime,
			LastUpdatedTime:   d.LastUpdatedTime,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DescribeDashboardOutput{ResultMetadata: metadata("DescribeDashboard"), Dashboard: dashboard}, nil
}

// DeleteDashboard deletes one version, or the whole dashboard when no version
// is given. The published version cannot be deleted on its own.
func (s *Store) DeleteDashboard(ctx context.Context, params *qsapi.DeleteDashboardInput) (*qsapi.DeleteDashboardOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	account, id := *params.AwsAccountId, *params.DashboardId
	var arn *string
	err := s.db.Update(func(txn *badger.Txn) error {
		d, err := s.getDashboard(txn, params.AwsAccountId, params.DashboardId)
		if err != nil {
			return err
		}
		arn = d.Arn
		if params.VersionNumber == nil {
			if err := deletePrefix(txn, keyPrefix(kindDashboardVersion, account, id)); err != nil {
				return err
			}
			if err := removeResource(txn, *d.Arn); err != nil {
				return err
			}
			return deleteKey(txn, dashboardKey(params.AwsAccountId, params.DashboardId))
		}

		if *params.VersionNumber == aws.ToInt64(d.PublishedVersionNumber) {
			return conflict("version %d of dashboard %s is published", *params.VersionNumber, id)
		}
		if _, err := s.getDashboardVersion(txn, account, id, *params.VersionNumber); err != nil {
			return err
		}
		if err := deleteKey(txn, dashboardVersionKey(account, id, *params.VersionNumber)); err != nil {
			return err
		}
		if *params.VersionNumber != d.LatestVersionNumber {
			return nil
		}
		versions, err := allDocs[types.DashboardVersion](txn, keyPrefix(kindDashboardVersion, account, id), nil)
		if err != nil {
			return err
		}
		// the published version remains, so versions is never empty
		d.LatestVersionNumber = aws.ToInt64(versions[len(versions)-1].VersionNumber)
		return putDoc(txn, dashboardKey(params.AwsAccountId, params.DashboardId), d)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteDashboardOutput{ResultMetadata: metadata("DeleteDashboard"), Arn: arn, DashboardId: params.DashboardId}, nil
}

func (s *Store) ListDashboards(ctx context.Context, params *qsapi.ListDashboardsInput) (*qsapi.ListDashboardsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListDashboardsOutput{ResultMetadata: metadata("ListDashboards")}
	err := s.db.View(func(txn *badger.Txn) error {
		records, next, err := listDocs[dashboardRecord](txn,
			keyPrefix(kindDashboard, *params.AwsAccountId), params.NextToken, params.MaxResults, nil)
		if err != nil {
			return err
		}
		for _, d := range records {
			out.DashboardSummaryList = append(out.DashboardSummaryList, d.DashboardSummary)
		}
		out.NextToken = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ListDashboardVersions(ctx context.Context, params *qsapi.ListDashboardVersionsInput) (*qsapi.ListDashboardVersionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListDashboardVersionsOutput{ResultMetadata: metadata("ListDashboardVersions")}
	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := s.getDashboard(txn, params.AwsAccountId, params.DashboardId); err != nil {
			return err
		}
		versions, next, err := listDocs[types.DashboardVersion](txn,
			keyPrefix(kindDashboardVersion, *params.AwsAccountId, *params.DashboardId), params.NextToken, params.MaxResults, nil)
		if err != nil {
			return err
		}
		for _, v := range versions {
			out.DashboardVersionSummaryList = append(out.DashboardVersionSummaryList, types.DashboardVersionSummary{
				Arn:             v.Arn,
				CreatedTime:     v.CreatedTime,
				VersionNumber:   v.VersionNumber,
				Status:          v.Status,
				SourceEntityArn: v.SourceEntityArn,
				Description:     v.Description,
			})
		}
		out.NextToken = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SearchDashboards finds the dashboards shared with a user. The only supported
// filter is QUICKSIGHT_USER StringEquals <user ARN>.
func (s *Store) SearchDashboards(ctx context.Context, params *qsapi.SearchDashboardsInput) (*qsapi.SearchDashboardsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	filter := params.Filters[0]
	if filter.Name != types.DashboardFilterAttributeQuicksightUser || filter.Operator != types.FilterOperatorStringEquals {
		return nil, invalidParameter("unsupported filter %s %s", filter.Name, filter.Operator)
	}
	principal := aws.ToString(filter.Value)

	out := &qsapi.SearchDashboardsOutput{ResultMetadata: metadata("SearchDashboards")}
	err := s.db.View(func(txn *badger.Txn) error {
		var permErr error
		shared := func(d *dashboardRecord) bool {
			perms, err := getPermissions(txn, aws.ToString(d.Arn))
			if err != nil {
				permErr = err
				return false
			}
			return hasPrincipal(perms, principal)
		}
		records, next, err := listDocs(txn, keyPrefix(kindDashboard, *params.AwsAccountId), params.NextToken, params.MaxResults, shared)
		if err != nil {
			return err
		}
		if permErr != nil {
			return permErr
		}
		for _, d := range records {
			out.DashboardSummaryList = append(out.DashboardSummaryList, d.DashboardSummary)
		}
		out.NextToken = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// userFromArn splits a QuickSight user ARN into namespace and user name.
func userFromArn(arn string) (namespace, name string, ok bool) {
	parts := strings.SplitN(arn, ":", 6)
	if len(parts) != 6 || parts[2] != "quicksight" {
		return "", "", false
	}
	rest, ok := strings.CutPrefix(parts[5], "user/")
	if !ok {
		return "", "", false
	}
	namespace, name, ok = strings.Cut(rest, "/")
	return namespace, name, ok && namespace != "" && name != ""
}

// GetDashboardEmbedUrl issues a URL for the dashboard. QUICKSIGHT identities
// must name a registered user.
func (s *Store) GetDashboardEmbedUrl(ctx context.Context, params *qsapi.GetDashboardEmbedUrlInput) (*qsapi.GetDashboardEmbedUrlOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.IdentityType == types.EmbeddingIdentityTypeQuicksight && params.UserArn == nil {
		return nil, invalidParameter("UserArn is required for %s identities", params.IdentityType)
	}

	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := s.getDashboard(txn, params.AwsAccountId, params.DashboardId); err != nil {
			return err
		}
		if params.IdentityType != types.EmbeddingIdentityTypeQuicksight {
			return nil
		}
		namespace, name, ok := userFromArn(*params.UserArn)
		if !ok {
			return invalidParameter("%s is not a QuickSight user ARN", *params.UserArn)
		}
		exists, err := hasKey(txn, encodeKey(kindUser, *params.AwsAccountId, namespace, name))
		if err != nil {
			return err
		}
		if !exists {
			return &types.QuickSightUserNotFoundException{Message: aws.String(fmt.Sprintf("user %s not found", *params.UserArn))}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://%s.quicksight.aws.amazon.com/embed/%s/dashboards/%s?code=%s&identityprovider=quicksight&isauthcode=true",
		s.region, strings.ReplaceAll(uuid.NewString(), "-", ""), *params.DashboardId, uuid.NewString())
	return &qsapi.GetDashboardEmbedUrlOutput{ResultMetadata: metadata("GetDashboardEmbedUrl"), EmbedUrl: aws.String(url)}, nil
}

func (s *Store) DescribeDashboardPermissions(ctx context.Context, params *qsapi.DescribeDashboardPermissionsInput) (*qsapi.DescribeDashboardPermissionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.DescribeDashboardPermissionsOutput{
		ResultMetadata: metadata("DescribeDashboardPermissions"),
		DashboardId:    params.DashboardId,
	}
	err := s.db.View(func(txn *badger.Txn) error {
		d, err := s.getDashboard(txn, params.AwsAccountId, params.DashboardId)
		if err != nil {
			return err
		}
		out.DashboardArn = d.Arn
		out.Permissions, err = getPermissions(txn, *d.Arn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateDashboardPermissions(ctx context.Context, params *qsapi.UpdateDashboardPermissionsInput) (*qsapi.UpdateDashboardPermissionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.UpdateDashboardPermissionsOutput{
		ResultMetadata: metadata("UpdateDashboardPermissions"),
		DashboardId:    params.DashboardId,
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		d, err := s.getDashboard(txn, params.AwsAccountId, params.DashboardId)
		if err != nil {
			return err
		}
		out.DashboardArn = d.Arn
		out.Permissions, err = updatePermissions(txn, *d.Arn, params.GrantPermissions, params.RevokePermissions)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
