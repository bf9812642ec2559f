package types

import (
	"github.com/acksell/qsight/quicksight/internal/constraint"
)

// Tag is a key-value pair attached to a resource.
type Tag struct {
	Key   *string `json:"Key,omitempty"`
	Value *string `json:"Value,omitempty"`
}

func (v *Tag) Validate() error {
	c := constraint.New("Tag")
	c.String("Key", v.Key, 1, 128, nil)
	c.String("Value", v.Value, 1, 256, nil)
	return c.Err()
}

// ResourcePermission grants a principal a set of actions on a resource.
type ResourcePermission struct {
	Principal *string  `json:"Principal,omitempty"`
	Actions   []string `json:"Actions,omitempty"`
}

func (v *ResourcePermission) Validate() error {
	c := constraint.New("ResourcePermission")
	c.String("Principal", v.Principal, 1, 256, nil)
	if c.Required("Actions", v.Actions != nil) {
		c.Items("Actions", len(v.Actions), 1, 16)
	}
	return c.Err()
}

// CheckTags checks a tag list member against its bounds and every tag in it.
func CheckTags(c *constraint.Checker, field string, tags []Tag, min, max int) {
	c.Items(field, len(tags), min, max)
	c.Each(field, len(tags), func(i int) error { return tags[i].Validate() })
}

// CheckPermissions checks a permission list member against its bounds and every
// permission in it.
func CheckPermissions(c *constraint.Checker, field string, perms []ResourcePermission, min, max int) {
	c.Items(field, len(perms), min, max)
	c.Each(field, len(perms), func(i int) error { return perms[i].Validate() })
}
