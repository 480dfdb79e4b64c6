package seed

import (
	"fmt"
	"slices"

	"github.com/SyedTasneemKousar/asana/internal/timegen"
)

// Custom field types.
const (
	FieldTypeText   = "text"
	FieldTypeNumber = "number"
	FieldTypeEnum   = "enum"
	FieldTypeDate   = "date"
)

// FieldContent is the typed value of a custom field. Exactly one of the
// four storage columns is populated per variant.
type FieldContent interface {
	// Columns projects the content onto the sparse value columns.
	Columns() (text *string, number *int, enum *string, date *timegen.Date)
}

// TextContent is a free-text field value.
type TextContent string

func (c TextContent) Columns() (*string, *int, *string, *timegen.Date) {
	s := string(c)
	return &s, nil, nil, nil
}

// NumberContent is a numeric field value.
type NumberContent int

func (c NumberContent) Columns() (*string, *int, *string, *timegen.Date) {
	n := int(c)
	return nil, &n, nil, nil
}

// EnumContent is a field value constrained to the field's option set.
// Construct it with NewEnumContent so the constraint holds.
type EnumContent struct {
	option string
}

// NewEnumContent validates option against the field's declared options.
func NewEnumContent(option string, allowed []string) (EnumContent, error) {
	if !slices.Contains(allowed, option) {
		return EnumContent{}, fmt.Errorf("enum option %q not in %v", option, allowed)
	}
	return EnumContent{option: option}, nil
}

// Option returns the selected enum option.
func (c EnumContent) Option() string { return c.option }

func (c EnumContent) Columns() (*string, *int, *string, *timegen.Date) {
	o := c.option
	return nil, nil, &o, nil
}

// DateContent is a calendar-date field value.
type DateContent timegen.Date

func (c DateContent) Columns() (*string, *int, *string, *timegen.Date) {
	d := timegen.Date(c)
	return nil, nil, nil, &d
}
