package form

import (
	"fmt"
	"strings"
)

// ItemTitle derives the summary label shown on an array item card. It probes
// a fixed candidate list in priority order (title, name, platform,
// position+company, position, institution, role+organization, role), looking
// in the English branch first and the Indonesian branch second, before
// falling back to a positional "Item N" label. The probe order is part of the
// admin panel's observable behaviour; keep it stable.
func ItemTitle(item Document, index int) string {
	en := ObjectAt(item, "en")
	id := ObjectAt(item, "id")

	pick := func(name string) string {
		if v := StringAt(en, name); v != "" {
			return v
		}
		return StringAt(id, name)
	}

	title := pick("title")
	name := pick("name")
	position := pick("position")
	company := pick("company")
	institution := pick("institution")
	role := pick("role")
	organization := pick("organization")
	platform := StringAt(item, "platform")

	switch {
	case title != "":
		return title
	case name != "":
		return name
	case platform != "":
		return capitalize(platform)
	case position != "" && company != "":
		return fmt.Sprintf("%s at %s", position, company)
	case position != "":
		return position
	case institution != "":
		return institution
	case role != "" && organization != "":
		return fmt.Sprintf("%s at %s", role, organization)
	case role != "":
		return role
	}

	// Items whose title/name sit directly under the item as localized values
	// rather than inside a language branch.
	if direct := ObjectAt(item, "title"); len(direct) > 0 {
		if v := StringAt(direct, "en"); v != "" {
			return v
		}
		if v := StringAt(direct, "id"); v != "" {
			return v
		}
	}
	if direct := ObjectAt(item, "name"); len(direct) > 0 {
		if v := StringAt(direct, "en"); v != "" {
			return v
		}
	}

	return fmt.Sprintf("Item %d", index+1)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
