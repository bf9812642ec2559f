package qsapi

import (
	"fmt"

	"github.com/acksell/qsight/quicksight/internal/constraint"
	"github.com/acksell/qsight/quicksight/types"
)

type ListTagsForResourceInput struct {
	// The ARN of the resource whose tags are listed. This member is required.
	ResourceArn *string `json:"-" location:"uri"`
}

func (v *ListTagsForResourceInput) Validate() error {
	c := constraint.New("ListTagsForResourceInput")
	c.ID("ResourceArn", v.ResourceArn)
	return c.Err()
}

type ListTagsForResourceOutput struct {
	ResultMetadata

	Tags []types.Tag `json:"Tags,omitempty"`
}

// TagResourceInput adds tags to a resource, replacing the value of any key that
// is already present.
type TagResourceInput struct {
	ResourceArn *string     `json:"-" location:"uri"`
	Tags        []types.Tag `json:"Tags,omitempty"`
}

func (v *TagResourceInput) Validate() error {
	c := constraint.New("TagResourceInput")
	c.ID("ResourceArn", v.ResourceArn)
	if c.Required("Tags", v.Tags != nil) {
		types.CheckTags(c, "Tags", v.Tags, 1, 200)
	}
	return c.Err()
}

type TagResourceOutput struct {
	ResultMetadata
}

type UntagResourceInput struct {
	ResourceArn *string  `json:"-" location:"uri"`
	TagKeys     []string `json:"-" location:"querystring" name:"keys"`
}

func (v *UntagResourceInput) Validate() error {
	c := constraint.New("UntagResourceInput")
	c.ID("ResourceArn", v.ResourceArn)
	if c.Required("TagKeys", v.TagKeys != nil) {
		c.Items("TagKeys", len(v.TagKeys), 1, 200)
		for i := range v.TagKeys {
			c.Length(fmt.Sprintf("TagKeys[%d]", i), &v.TagKeys[i], 1, 128)
		}
	}
	return c.Err()
}

type UntagResourceOutput struct {
	ResultMetadata
}
