package qsstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dgraph-io/badger/v4"

	"github.com/acksell/qsight/quicksight/qsapi"
	"github.com/acksell/qsight/quicksight/types"
)

// Templates are stored as three kinds of documents: the TemplateSummary under
// the template key, one TemplateVersion per version and one TemplateAlias per
// alias. The summary tracks the latest version number.

func templateKey(account, id *string) []byte {
	return encodeKey(kindTemplate, *account, *id)
}

func templateVersionKey(account, id string, version int64) []byte {
	return encodeKey(kindTemplateVersion, account, id, versionPart(version))
}

func templateAliasKey(account, id, alias string) []byte {
	return encodeKey(kindTemplateAlias, account, id, alias)
}

func (s *Store) getTemplate(txn *badger.Txn, account, id *string) (*types.TemplateSummary, error) {
	var t types.TemplateSummary
	if err := getDoc(txn, templateKey(account, id), &t); err != nil {
		if err == errNotFound {
			return nil, notFound("", "template %s not found", *id)
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) getTemplateVersion(txn *badger.Txn, account, id string, version int64) (*types.TemplateVersion, error) {
	var v types.TemplateVersion
	if err := getDoc(txn, templateVersionKey(account, id, version), &v); err != nil {
		if err == errNotFound {
			return nil, notFound("", "version %d of template %s not found", version, id)
		}
		return nil, err
	}
	return &v, nil
}

func (s *Store) getTemplateAlias(txn *badger.Txn, account, id, alias string) (*types.TemplateAlias, error) {
	var a types.TemplateAlias
	if err := getDoc(txn, templateAliasKey(account, id, alias), &a); err != nil {
		if err == errNotFound {
			return nil, notFound("", "alias %s of template %s not found", alias, id)
		}
		return nil, err
	}
	return &a, nil
}

// resolveTemplateVersion maps the version selectors of DescribeTemplate to a
// version number. With neither selector the latest version is used.
func (s *Store) resolveTemplateVersion(txn *badger.Txn, t *types.TemplateSummary, account string, version *int64, alias *string) (int64, error) {
	switch {
	case version != nil && alias != nil:
		return 0, invalidParameter("VersionNumber and AliasName cannot both be set")
	case version != nil:
		return *version, nil
	case alias == nil || *alias == types.AliasLatest:
		return aws.ToInt64(t.LatestVersionNumber), nil
	case *alias == types.AliasPublished:
		return 0, invalidParameter("templates have no %s version", types.AliasPublished)
	}
	a, err := s.getTemplateAlias(txn, account, aws.ToString(t.TemplateId), *alias)
	if err != nil {
		return 0, err
	}
	return aws.ToInt64(a.TemplateVersionNumber), nil
}

// addTemplateVersion stores the next version of t built from source.
func (s *Store) addTemplateVersion(txn *badger.Txn, t *types.TemplateSummary, account string, source types.TemplateSourceEntity, description *string) (*types.TemplateVersion, error) {
	configs, err := s.dataSetConfigurations(txn, account, source)
	if err != nil {
		return nil, err
	}
	number := aws.ToInt64(t.LatestVersionNumber) + 1
	now := types.NewTimestamp(s.now())
	v := &types.TemplateVersion{
		CreatedTime:           now,
		VersionNumber:         aws.Int64(number),
		Status:                types.ResourceStatusCreationSuccessful,
		DataSetConfigurations: configs,
		Description:           description,
		SourceEntityArn:       types.SourceArn(source),
	}
	if err := putDoc(txn, templateVersionKey(account, aws.ToString(t.TemplateId), number), v); err != nil {
		return nil, err
	}
	t.LatestVersionNumber = v.VersionNumber
	t.LastUpdatedTime = now
	return v, nil
}

// dataSetConfigurations describes the data set placeholders of a new template
// version. An analysis source contributes one placeholder per data set
// reference; a template source carries over the placeholders of its latest
// version when that template is stored here.
func (s *Store) dataSetConfigurations(txn *badger.Txn, account string, source types.TemplateSourceEntity) ([]types.DataSetConfiguration, error) {
	switch m := source.(type) {
	case *types.TemplateSourceEntityMemberSourceAnalysis:
		var configs []types.DataSetConfiguration
		for _, ref := range m.Value.DataSetReferences {
			config := types.DataSetConfiguration{Placeholder: ref.DataSetPlaceholder}
			if id, ok := arnResourceID(aws.ToString(ref.DataSetArn), "dataset"); ok {
				var ds types.DataSet
				err := getDoc(txn, encodeKey(kindDataSet, account, id), &ds)
				if err != nil && err != errNotFound {
					return nil, err
				}
				if err == nil {
					config.DataSetSchema = dataSetSchema(&ds)
				}
			}
			configs = append(configs, config)
		}
		return configs, nil
	case *types.TemplateSourceEntityMemberSourceTemplate:
		id, ok := arnResourceID(aws.ToString(m.Value.Arn), "template")
		if !ok {
			return nil, nil
		}
		var t types.TemplateSummary
		if err := getDoc(txn, encodeKey(kindTemplate, account, id), &t); err != nil {
			if err == errNotFound {
				return nil, invalidParameter("source template %s not found", id)
			}
			return nil, err
		}
		v, err := s.getTemplateVersion(txn, account, id, aws.ToInt64(t.LatestVersionNumber))
		if err != nil {
			return nil, err
		}
		return v.DataSetConfigurations, nil
	}
	return nil, nil
}

func dataSetSchema(ds *types.DataSet) *types.DataSetSchema {
	schema := &types.DataSetSchema{}
	for _, c := range ds.OutputColumns {
		schema.ColumnSchemaList = append(schema.ColumnSchemaList, types.ColumnSchema{
			Name:     c.Name,
			DataType: aws.String(string(c.Type)),
		})
	}
	return schema
}

// arnResourceID returns the id following "<kind>/" in a QuickSight ARN.
func arnResourceID(arn, kind string) (string, bool) {
	parts := strings.SplitN(arn, ":", 6)
	if len(parts) != 6 || parts[2] != "quicksight" {
		return "", false
	}
	rest, ok := strings.CutPrefix(parts[5], kind+"/")
	if !ok || rest == "" {
		return "", false
	}
	id, _, _ := strings.Cut(rest, "/")
	return id, true
}

func (s *Store) templateVersionArn(t *types.TemplateSummary, version int64) *string {
	return aws.String(fmt.Sprintf("%s/version/%d", aws.ToString(t.Arn), version))
}

// CreateTemplate creates a template with its first version.
func (s *Store) CreateTemplate(ctx context.Context, params *qsapi.CreateTemplateInput) (*qsapi.CreateTemplateOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	now := types.NewTimestamp(s.now())
	t := &types.TemplateSummary{
		Arn:             aws.String(s.arn(*params.AwsAccountId, "template/"+*params.TemplateId)),
		TemplateId:      params.TemplateId,
		Name:            params.Name,
		CreatedTime:     now,
		LastUpdatedTime: now,
	}
	var v *types.TemplateVersion
	key := templateKey(params.AwsAccountId, params.TemplateId)
	err := s.db.Update(func(txn *badger.Txn) error {
		exists, err := hasKey(txn, key)
		if err != nil {
			return err
		}
		if exists {
			return alreadyExists("", "template %s already exists", *params.TemplateId)
		}
		v, err = s.addTemplateVersion(txn, t, *params.AwsAccountId, params.SourceEntity, params.VersionDescription)
		if err != nil {
			return err
		}
		if err := putDoc(txn, key, t); err != nil {
			return err
		}
		return addResource(txn, *t.Arn, params.Tags, params.Permissions)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.CreateTemplateOutput{
		ResultMetadata: metadata("CreateTemplate"),
		Arn:            t.Arn,
		VersionArn:     s.templateVersionArn(t, *v.VersionNumber),
		TemplateId:     t.TemplateId,
		CreationStatus: v.Status,
	}, nil
}

// UpdateTemplate adds a version to a template.
func (s *Store) UpdateTemplate(ctx context.Context, params *qsapi.UpdateTemplateInput) (*qsapi.UpdateTemplateOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		t *types.TemplateSummary
		v *types.TemplateVersion
	)
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		t, err = s.getTemplate(txn, params.AwsAccountId, params.TemplateId)
		if err != nil {
			return err
		}
		if params.Name != nil {
			t.Name = params.Name
		}
		v, err = s.addTemplateVersion(txn, t, *params.AwsAccountId, params.SourceEntity, params.VersionDescription)
		if err != nil {
			return err
		}
		return putDoc(txn, templateKey(params.AwsAccountId, params.TemplateId), t)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.UpdateTemplateOutput{
		ResultMetadata: metadata("UpdateTemplate"),
		TemplateId:     t.TemplateId,
		Arn:            t.Arn,
		VersionArn:     s.templateVersionArn(t, *v.VersionNumber),
		CreationStatus: v.Status,
	}, nil
}

func (s *Store) DescribeTemplate(ctx context.Context, params *qsapi.DescribeTemplateInput) (*qsapi.DescribeTemplateOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var template *types.Template
	err := s.db.View(func(txn *badger.Txn) error {
		t, err := s.getTemplate(txn, params.AwsAccountId, params.TemplateId)
		if err != nil {
			return err
		}
		number, err := s.resolveTemplateVersion(txn, t, *params.AwsAccountId, params.VersionNumber, params.AliasName)
		if err != nil {
			return err
		}
		v, err := s.getTemplateVersion(txn, *params.AwsAccountId, *params.TemplateId, number)
		if err != nil {
			return err
		}
		template = &types.Template{
			Arn:             t.Arn,
			Name:            t.Name,
			Version:         v,
			TemplateId:      t.TemplateId,
			LastUpdatedTime: t.LastUpdatedTime,
			CreatedTime:     t.CreatedTime,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DescribeTemplateOutput{ResultMetadata: metadata("DescribeTemplate"), Template: template}, nil
}

// DeleteTemplate deletes one version, or the whole template when no version
// is given. Aliases of a deleted version are deleted with it, and deleting the
// last remaining version deletes the template.
func (s *Store) DeleteTemplate(ctx context.Context, params *qsapi.DeleteTemplateInput) (*qsapi.DeleteTemplateOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	account, id := *params.AwsAccountId, *params.TemplateId
	var arn *string
	err := s.db.Update(func(txn *badger.Txn) error {
		t, err := s.getTemplate(txn, params.AwsAccountId, params.TemplateId)
		if err != nil {
			return err
		}
		arn = t.Arn
		if params.VersionNumber == nil {
			return s.deleteTemplate(txn, t, account)
		}

		if _, err := s.getTemplateVersion(txn, account, id, *params.VersionNumber); err != nil {
			return err
		}
		if err := deleteKey(txn, templateVersionKey(account, id, *params.VersionNumber)); err != nil {
			return err
		}
		aliases, err := allDocs(txn, keyPrefix(kindTemplateAlias, account, id),
			func(a *types.TemplateAlias) bool { return aws.ToInt64(a.TemplateVersionNumber) == *params.VersionNumber })
		if err != nil {
			return err
		}
		for _, a := range aliases {
			if err := deleteKey(txn, templateAliasKey(account, id, aws.ToString(a.AliasName))); err != nil {
				return err
			}
		}

		versions, err := allDocs[types.TemplateVersion](txn, keyPrefix(kindTemplateVersion, account, id), nil)
		if err != nil {
			return err
		}
		if len(versions) == 0 {
			return s.deleteTemplate(txn, t, account)
		}
		// versions are in ascending order
		t.LatestVersionNumber = versions[len(versions)-1].VersionNumber
		t.LastUpdatedTime = types.NewTimestamp(s.now())
		return putDoc(txn, templateKey(params.AwsAccountId, params.TemplateId), t)
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteTemplateOutput{ResultMetadata: metadata("DeleteTemplate"), Arn: arn, TemplateId: params.TemplateId}, nil
}

func (s *Store) deleteTemplate(txn *badger.Txn, t *types.TemplateSummary, account string) error {
	id := aws.ToString(t.TemplateId)
	for _, prefix := range [][]byte{
		keyPrefix(kindTemplateVersion, account, id),
		keyPrefix(kindTemplateAlias, account, id),
	} {
		if err := deletePrefix(txn, prefix); err != nil {
			return err
		}
	}
	if err := removeResource(txn, aws.ToString(t.Arn)); err != nil {
		return err
	}
	return deleteKey(txn, encodeKey(kindTemplate, account, id))
}

func (s *Store) ListTemplates(ctx context.Context, params *qsapi.ListTemplatesInput) (*qsapi.ListTemplatesOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListTemplatesOutput{ResultMetadata: metadata("ListTemplates")}
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		out.TemplateSummaryList, out.NextToken, err = listDocs[types.TemplateSummary](txn,
			keyPrefix(kindTemplate, *params.AwsAccountId), params.NextToken, params.MaxResults, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ListTemplateVersions(ctx context.Context, params *qsapi.ListTemplateVersionsInput) (*qsapi.ListTemplateVersionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListTemplateVersionsOutput{ResultMetadata: metadata("ListTemplateVersions")}
	err := s.db.View(func(txn *badger.Txn) error {
		t, err := s.getTemplate(txn, params.AwsAccountId, params.TemplateId)
		if err != nil {
			return err
		}
		versions, next, err := listDocs[types.TemplateVersion](txn,
			keyPrefix(kindTemplateVersion, *params.AwsAccountId, *params.TemplateId), params.NextToken, params.MaxResults, nil)
		if err != nil {
			return err
		}
		for _, v := range versions {
			out.TemplateVersionSummaryList = append(out.TemplateVersionSummaryList, types.TemplateVersionSummary{
				Arn:           s.templateVersionArn(t, aws.ToInt64(v.VersionNumber)),
				VersionNumber: v.VersionNumber,
				CreatedTime:   v.CreatedTime,
				Status:        v.Status,
				Description:   v.Description,
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

func (s *Store) DescribeTemplatePermissions(ctx context.Context, params *qsapi.DescribeTemplatePermissionsInput) (*qsapi.DescribeTemplatePermissionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.DescribeTemplatePermissionsOutput{
		ResultMetadata: metadata("DescribeTemplatePermissions"),
		TemplateId:     params.TemplateId,
	}
	err := s.db.View(func(txn *badger.Txn) error {
		t, err := s.getTemplate(txn, params.AwsAccountId, params.TemplateId)
		if err != nil {
			return err
		}
		out.TemplateArn = t.Arn
		out.Permissions, err = getPermissions(txn, *t.Arn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateTemplatePermissions(ctx context.Context, params *qsapi.UpdateTemplatePermissionsInput) (*qsapi.UpdateTemplatePermissionsOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.UpdateTemplatePermissionsOutput{
		ResultMetadata: metadata("UpdateTemplatePermissions"),
		TemplateId:     params.TemplateId,
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		t, err := s.getTemplate(txn, params.AwsAccountId, params.TemplateId)
		if err != nil {
			return err
		}
		out.TemplateArn = t.Arn
		out.Permissions, err = updatePermissions(txn, *t.Arn, params.GrantPermissions, params.RevokePermissions)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// =============================================================================
// Aliases
// =============================================================================

func checkAliasWritable(name string) error {
	if strings.HasPrefix(name, "$") {
		return invalidParameter("alias %s is reserved", name)
	}
	return nil
}

// putTemplateAlias points alias at an existing version of the template.
func (s *Store) putTemplateAlias(txn *badger.Txn, account, id *string, alias string, version int64) (*types.TemplateAlias, error) {
	t, err := s.getTemplate(txn, account, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.getTemplateVersion(txn, *account, *id, version); err != nil {
		return nil, err
	}
	a := &types.TemplateAlias{
		AliasName:             aws.String(alias),
		Arn:                   aws.String(aws.ToString(t.Arn) + "/alias/" + alias),
		TemplateVersionNumber: aws.Int64(version),
	}
	return a, putDoc(txn, templateAliasKey(*account, *id, alias), a)
}

func (s *Store) CreateTemplateAlias(ctx context.Context, params *qsapi.CreateTemplateAliasInput) (*qsapi.CreateTemplateAliasOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := checkAliasWritable(*params.AliasName); err != nil {
		return nil, err
	}

	var alias *types.TemplateAlias
	err := s.db.Update(func(txn *badger.Txn) error {
		exists, err := hasKey(txn, templateAliasKey(*params.AwsAccountId, *params.TemplateId, *params.AliasName))
		if err != nil {
			return err
		}
		if exists {
			return alreadyExists("", "alias %s of template %s already exists", *params.AliasName, *params.TemplateId)
		}
		alias, err = s.putTemplateAlias(txn, params.AwsAccountId, params.TemplateId, *params.AliasName, *params.TemplateVersionNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.CreateTemplateAliasOutput{ResultMetadata: metadata("CreateTemplateAlias"), TemplateAlias: alias}, nil
}

func (s *Store) UpdateTemplateAlias(ctx context.Context, params *qsapi.UpdateTemplateAliasInput) (*qsapi.UpdateTemplateAliasOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := checkAliasWritable(*params.AliasName); err != nil {
		return nil, err
	}

	var alias *types.TemplateAlias
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := s.getTemplateAlias(txn, *params.AwsAccountId, *params.TemplateId, *params.AliasName); err != nil {
			return err
		}
		var err error
		alias, err = s.putTemplateAlias(txn, params.AwsAccountId, params.TemplateId, *params.AliasName, *params.TemplateVersionNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.UpdateTemplateAliasOutput{ResultMetadata: metadata("UpdateTemplateAlias"), TemplateAlias: alias}, nil
}

// DescribeTemplateAlias also answers for the implicit $LATEST alias.
func (s *Store) DescribeTemplateAlias(ctx context.Context, params *qsapi.DescribeTemplateAliasInput) (*qsapi.DescribeTemplateAliasOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var alias *types.TemplateAlias
	err := s.db.View(func(txn *badger.Txn) error {
		if *params.AliasName == types.AliasLatest {
			t, err := s.getTemplate(txn, params.AwsAccountId, params.TemplateId)
			if err != nil {
				return err
			}
			alias = &types.TemplateAlias{
				AliasName:             params.AliasName,
				Arn:                   aws.String(aws.ToString(t.Arn) + "/alias/" + types.AliasLatest),
				TemplateVersionNumber: t.LatestVersionNumber,
			}
			return nil
		}
		var err error
		alias, err = s.getTemplateAlias(txn, *params.AwsAccountId, *params.TemplateId, *params.AliasName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DescribeTemplateAliasOutput{ResultMetadata: metadata("DescribeTemplateAlias"), TemplateAlias: alias}, nil
}

func (s *Store) DeleteTemplateAlias(ctx context.Context, params *qsapi.DeleteTemplateAliasInput) (*qsapi.DeleteTemplateAliasOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := checkAliasWritable(*params.AliasName); err != nil {
		return nil, err
	}

	var alias *types.TemplateAlias
	err := s.db.Update(func(txn *badger.Txn) error {
		var err error
		alias, err = s.getTemplateAlias(txn, *params.AwsAccountId, *params.TemplateId, *params.AliasName)
		if err != nil {
			return err
		}
		return deleteKey(txn, templateAliasKey(*params.AwsAccountId, *params.TemplateId, *params.AliasName))
	})
	if err != nil {
		return nil, err
	}
	return &qsapi.DeleteTemplateAliasOutput{
		ResultMetadata: metadata("DeleteTemplateAlias"),
		TemplateId:     params.TemplateId,
		AliasName:      params.AliasName,
		Arn:            alias.Arn,
	}, nil
}

func (s *Store) ListTemplateAliases(ctx context.Context, params *qsapi.ListTemplateAliasesInput) (*qsapi.ListTemplateAliasesOutput, error) {
	if params == nil {
		return nil, errParamsRequired
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := &qsapi.ListTemplateAliasesOutput{ResultMetadata: metadata("ListTemplateAliases")}
	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := s.getTemplate(txn, params.AwsAccountId, params.TemplateId); err != nil {
			return err
		}
		var err error
		out.TemplateAliasList, out.NextToken, err = listDocs[types.TemplateAlias](txn,
			keyPrefix(kindTemplateAlias, *params.AwsAccountId, *params.TemplateId), params.NextToken, params.MaxResults, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
