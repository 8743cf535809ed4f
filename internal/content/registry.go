package content

import (
	"errors"
	"fmt"
)

// ErrSchemaNotFound is returned when a section key has no descriptor list.
// Callers must treat it as "not editable through the generic form path" and
// fall back to a dedicated handler instead of crashing.
var ErrSchemaNotFound = errors.New("content: schema not found")

// Registry holds the static schema for every content section. It is read-only
// at runtime: new sections are added here, never in the renderer.
type Registry struct {
	order   []string
	schemas map[string]Schema
}

// NewRegistry returns the registry preloaded with the portfolio sections.
func NewRegistry() *Registry {
	return &Registry{order: sectionOrder, schemas: sectionSchemas}
}

// Get returns the schema for a section key or ErrSchemaNotFound.
func (r *Registry) Get(section string) (Schema, error) {
	schema, ok := r.schemas[section]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, section)
	}
	return schema, nil
}

// Lookup is the comma-ok variant of Get.
func (r *Registry) Lookup(section string) (Schema, bool) {
	schema, ok := r.schemas[section]
	return schema, ok
}

// Sections returns the section keys in declaration order.
func (r *Registry) Sections() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Check validates the structural invariants of every registered descriptor.
func (r *Registry) Check() error {
	for _, key := range r.order {
		for _, field := range r.schemas[key].Fields {
			if err := field.Check(); err != nil {
				return fmt.Errorf("section %q: %w", key, err)
			}
		}
	}
	return nil
}

// localized builds the conventional bilingual wrapper: an object field whose
// children are the en/id pair, each carrying the same leaf kind.
func localized(name, label string, kind Kind) Field {
	return Field{
		Name:  name,
		Label: label,
		Kind:  KindObject,
		Children: []Field{
			{Name: "en", Label: "English", Kind: kind},
			{Name: "id", Label: "Indonesian", Kind: kind},
		},
	}
}

// localizedItem builds the item schema for arrays of localized records: the
// exact [en, id] object pair the form editor recognises as a language split.
func localizedItem(children []Field) []Field {
	return []Field{
		{Name: "en", Label: "English", Kind: KindObject, Children: children},
		{Name: "id", Label: "Indonesian", Kind: KindObject, Children: children},
	}
}

var sectionOrder = []string{
	"nav",
	"hero",
	"workExperience",
	"educationAndAwards",
	"projects",
	"contact",
	"footer",
	"settings",
}

var experienceFields = []Field{
	{Name: "position", Label: "Position", Kind: KindText},
	{Name: "company", Label: "Company", Kind: KindText},
	{Name: "logo", Label: "Company Logo URL", Kind: KindImage},
	{Name: "location", Label: "Location", Kind: KindText},
	{Name: "type", Label: "Type", Kind: KindText},
	{Name: "period", Label: "Period", Kind: KindText},
	{Name: "duration", Label: "Duration", Kind: KindText},
	{Name: "description", Label: "Description", Kind: KindList},
	{Name: "skills", Label: "Skills", Kind: KindList},
}

var educationFields = []Field{
	{Name: "institution", Label: "Institution", Kind: KindText},
	{Name: "degree", Label: "Degree", Kind: KindText},
	{Name: "period", Label: "Period", Kind: KindText},
	{Name: "description", Label: "Description", Kind: KindList},
}

var awardFields = []Field{
	{Name: "title", Label: "Title", Kind: KindText},
	{Name: "issuer", Label: "Issuer", Kind: KindText},
	{Name: "date", Label: "Date", Kind: KindText},
	{Name: "associatedWith", Label: "Associated With", Kind: KindText},
	{Name: "type", Label: "Type (gold, silver, bronze, star)", Kind: KindText},
}

var organizationFields = []Field{
	{Name: "role", Label: "Role", Kind: KindText},
	{Name: "organization", Label: "Organization", Kind: KindText},
	{Name: "period", Label: "Period", Kind: KindText},
	{Name: "associatedWith", Label: "Associated With", Kind: KindText},
}

var projectFields = []Field{
	{Name: "title", Label: "Title", Kind: KindText},
	{Name: "description", Label: "Description", Kind: KindTextarea},
	{Name: "technologies", Label: "Technologies", Kind: KindList},
	{Name: "link", Label: "Link", Kind: KindText},
	{Name: "github", Label: "GitHub", Kind: KindText},
}

var sectionSchemas = map[string]Schema{
	"nav": {
		Name: "Navigation",
		Fields: []Field{
			{
				Name:  "logo",
				Label: "Logo",
				Kind:  KindObject,
				Children: []Field{
					{Name: "light", Label: "Light Mode Logo", Kind: KindImage},
					{Name: "dark", Label: "Dark Mode Logo", Kind: KindImage},
				},
			},
			localized("experience", "Experience", KindText),
			localized("education", "Education", KindText),
			localized("projects", "Projects", KindText),
			localized("contact", "Contact", KindText),
		},
	},
	"hero": {
		Name: "Hero",
		Fields: []Field{
			{Name: "image", Label: "Hero Image", Kind: KindImage},
			localized("name", "Name", KindText),
			{Name: "tags", Label: "Tags (Roles)", Kind: KindList},
			localized("description", "Description", KindTextarea),
			localized("cta", "Call to Action", KindText),
			localized("contact", "Contact Button", KindText),
			{
				Name:  "status",
				Label: "Availability Status",
				Kind:  KindObject,
				Children: []Field{
					{
						Name:  "variant",
						Label: "Status Variant",
						Kind:  KindSelect,
						Options: []Option{
							{Label: "Available (Green)", Value: "available"},
							{Label: "Open to Opportunities (Yellow)", Value: "open"},
							{Label: "Busy / Not Looking (Red)", Value: "busy"},
						},
					},
				},
			},
			{Name: "skills", Label: "Skills", Kind: KindList},
		},
	},
	"workExperience": {
		Name: "Work Experience",
		Fields: []Field{
			localized("title", "Section Title", KindText),
			{
				Name:         "experiences",
				Label:        "Experiences",
				Kind:         KindArray,
				ItemChildren: localizedItem(experienceFields),
			},
		},
	},
	"educationAndAwards": {
		Name: "Education & Awards",
		Fields: []Field{
			localized("title", "Main Title", KindText),
			localized("educationTitle", "Education Title", KindText),
			localized("awardsTitle", "Awards Title", KindText),
			localized("organizationsTitle", "Organizations Title", KindText),
			{
				Name:         "education",
				Label:        "Education List",
				Kind:         KindArray,
				ItemChildren: localizedItem(educationFields),
			},
			{
				Name:         "awards",
				Label:        "Awards List",
				Kind:         KindArray,
				ItemChildren: localizedItem(awardFields),
			},
			{
				Name:         "organizations",
				Label:        "Organizations List",
				Kind:         KindArray,
				ItemChildren: localizedItem(organizationFields),
			},
		},
	},
	"projects": {
		Name: "Projects",
		Fields: []Field{
			localized("title", "Title", KindText),
			localized("subtitle", "Subtitle", KindText),
			localized("moreComingSoon", "More Coming Soon Text", KindText),
			localized("viewProject", "View Project Text", KindText),
			localized("liveDemo", "Live Demo Text", KindText),
			{
				Name:         "items",
				Label:        "Project Items",
				Kind:         KindArray,
				ItemChildren: localizedItem(projectFields),
			},
		},
	},
	"contact": {
		Name: "Contact",
		Fields: []Field{
			localized("title", "Title", KindText),
			localized("description", "Description", KindTextarea),
			{Name: "email", Label: "Email", Kind: KindText},
			{
				Name:  "socials",
				Label: "Social Media",
				Kind:  KindArray,
				ItemChildren: []Field{
					{
						Name:  "platform",
						Label: "Platform (Icon)",
						Kind:  KindSelect,
						Options: []Option{
							{Label: "GitHub", Value: "github"},
							{Label: "LinkedIn", Value: "linkedin"},
							{Label: "Twitter", Value: "twitter"},
							{Label: "Instagram", Value: "instagram"},
							{Label: "Facebook", Value: "facebook"},
							{Label: "YouTube", Value: "youtube"},
							{Label: "GitLab", Value: "gitlab"},
							{Label: "Dribbble", Value: "dribbble"},
						},
					},
					{Name: "url", Label: "URL", Kind: KindText},
				},
			},
			localized("cta", "Call to Action", KindText),
		},
	},
	"footer": {
		Name: "Footer",
		Fields: []Field{
			localized("rights", "Rights Text", KindText),
		},
	},
	// settings has no generic descriptors; the profile handler owns it.
	"settings": {
		Name:   "Settings",
		Fields: nil,
	},
}
