package validation

// Per-section rule tables. These stay aligned with the descriptor registry in
// pkg/content but are deliberately separate: descriptors drive editing,
// rules drive what a save may persist.

var awardTypes = []string{"gold", "silver", "bronze", "star"}

var socialPlatforms = []string{
	"github", "linkedin", "twitter", "instagram",
	"facebook", "youtube", "gitlab", "dribbble",
}

var experienceItem = Localized(Object{
	"position": String{Message: "Position is required"},
	"company":  String{Message: "Company is required"},
	"logo":     String{Optional: true},
	"location": String{Message: "Location is required"},
	"type":     String{Message: "Type is required"},
	"period":   String{Message: "Period is required"},
	"duration": String{Message: "Duration is required"},
	"description": StringList{
		MinItems: 1,
		Message:  "At least one description point is required",
	},
	"skills": StringList{Optional: true},
})

var educationItem = Localized(Object{
	"institution": String{Message: "Institution is required"},
	"degree":      String{Message: "Degree is required"},
	"period":      String{Message: "Period is required"},
	"description": StringList{Optional: true},
})

var awardItem = Localized(Object{
	"title":          String{Message: "Title is required"},
	"issuer":         String{Message: "Issuer is required"},
	"date":           String{Message: "Date is required"},
	"associatedWith": String{Optional: true},
	"type": Enum{
		Values:   awardTypes,
		Optional: true,
		Message:  "Type must be one of: gold, silver, bronze, star",
	},
})

var organizationItem = Localized(Object{
	"role":           String{Message: "Role is required"},
	"organization":   String{Message: "Organization is required"},
	"period":         String{Message: "Period is required"},
	"associatedWith": String{Optional: true},
})

var projectItem = Localized(Object{
	"title":       String{Message: "Title is required"},
	"description": String{Message: "Description is required"},
	"technologies": StringList{
		MinItems: 1,
		Message:  "At least one technology is required",
	},
	"link":   URL{Optional: true, Message: "Invalid project URL"},
	"github": URL{Optional: true, Message: "Invalid GitHub URL"},
})

var sectionRules = map[string]Rule{
	"nav": Object{
		"logo": Object{
			"light": String{Optional: true},
			"dark":  String{Optional: true},
		},
		"experience": Localized(String{Message: "Experience text is required"}),
		"education":  Localized(String{Message: "Education text is required"}),
		"projects":   Localized(String{Message: "Projects text is required"}),
		"contact":    Localized(String{Message: "Contact text is required"}),
	},
	"hero": Object{
		"image":       String{Optional: true},
		"name":        Localized(String{Message: "Name is required"}),
		"tags":        StringList{Optional: true},
		"description": Localized(String{Message: "Description is required"}),
		"cta":         Localized(String{Message: "CTA is required"}),
		"contact":     Localized(String{Message: "Contact button text is required"}),
		"status": Object{
			"variant": Enum{
				Values:   []string{"available", "open", "busy"},
				Optional: true,
				Message:  "Status variant must be one of: available, open, busy",
			},
		},
		"skills": StringList{Optional: true},
	},
	"workExperience": Object{
		"title":       Localized(String{Message: "Section Title is required"}),
		"experiences": Array{Item: experienceItem},
	},
	"educationAndAwards": Object{
		"title":              Localized(String{Message: "Main Title is required"}),
		"educationTitle":     Localized(String{Message: "Education Title is required"}),
		"awardsTitle":        Localized(String{Message: "Awards Title is required"}),
		"organizationsTitle": Localized(String{Message: "Organizations Title is required"}),
		"education":          Array{Item: educationItem},
		"awards":             Array{Item: awardItem},
		"organizations":      Array{Item: organizationItem},
	},
	"projects": Object{
		"title":          Localized(String{Message: "Title is required"}),
		"subtitle":       Localized(String{Optional: true}),
		"moreComingSoon": Localized(String{Optional: true}),
		"viewProject":    Localized(String{Optional: true}),
		"liveDemo":       Localized(String{Optional: true}),
		"items":          Array{Item: projectItem},
	},
	"contact": Object{
		"title":       Localized(String{Message: "Title is required"}),
		"description": Localized(String{Message: "Description is required"}),
		"email":       Email{},
		"socials": Array{Item: Object{
			"platform": Enum{Values: socialPlatforms, Message: "Unknown platform"},
			"url":      URL{Message: "Invalid social URL"},
		}},
		"cta": Localized(String{Message: "CTA is required"}),
	},
	"footer": Object{
		"rights": Localized(String{Message: "Rights text is required"}),
	},
}

// Profile validates the admin profile update payload. It is not a content
// section; the profile service applies it before touching the user record.
var Profile = Object{
	"name":            String{Message: "Name is required"},
	"currentPassword": String{Message: "Current password is required"},
	"newPassword": String{
		Optional: true,
		MinLen:   6,
		Message:  "Password must be at least 6 characters",
	},
}

// Section returns the rule set for a content section.
func Section(section string) (Rule, bool) {
	rule, ok := sectionRules[section]
	return rule, ok
}
