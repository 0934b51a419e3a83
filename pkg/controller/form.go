package controller

import (
	"strings"

	"github.com/sitedesk/sitedesk/pkg/entity"
	"github.com/sitedesk/sitedesk/pkg/fieldmap"
)

// Form returns the entity's declared form config, or derives one from its
// schema: every schema field becomes an input in declaration order.
func (c *Controller) Form() entity.FormConfig {
	if c.def.Form != nil {
		return *c.def.Form
	}
	form := entity.FormConfig{Fields: make([]entity.FormField, 0, len(c.def.Fields))}
	for _, f := range c.def.Fields {
		label := f.Label
		if label == "" {
			label = titleize(f.Name)
		}
		form.Fields = append(form.Fields, entity.FormField{
			Key:         f.Name,
			Type:        f.Type,
			Label:       label,
			Required:    f.Required,
			Options:     f.Options,
			MinValue:    f.Min,
			Default:     fieldmap.Default(f.FieldSpec),
			Placeholder: f.Placeholder,
		})
	}
	return form
}

// EditValues returns the selected record's field values formatted as form
// input strings, keyed by field name.
func (c *Controller) EditValues() map[string]string {
	out := make(map[string]string, len(c.def.Fields))
	for _, f := range c.def.Fields {
		v, ok := c.selected[f.Name]
		if !ok {
			continue
		}
		out[f.Name] = fieldmap.Format(f.FieldSpec, v)
	}
	return out
}

// titleize turns a snake_case field name into a label, so "due_date" renders
// as "Due Date".
func titleize(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
