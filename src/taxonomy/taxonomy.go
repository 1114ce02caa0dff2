// Package taxonomy maps the free-form group/role labels that feeds put on
// <podcast:person> tags to the canonical slugs we store on credits. The table
// is fixed at compile time; lookups never fail, they degrade to empty slugs.
package taxonomy

import "strings"

type Group struct {
	Slug  string
	Roles map[string]string // lowercase label -> slug
}

// Keyed by lowercase group label. Derived from the podcast namespace taxonomy.
var groups = map[string]Group{
	"cast": {
		Slug: "cast",
		Roles: map[string]string{
			"host":        "host",
			"co-host":     "co-host",
			"guest host":  "guest-host",
			"guest":       "guest",
			"voice actor": "voice-actor",
			"narrator":    "narrator",
			"announcer":   "announcer",
			"reporter":    "reporter",
		},
	},
	"creative direction": {
		Slug: "creative-direction",
		Roles: map[string]string{
			"director":             "director",
			"assistant director":   "assistant-director",
			"executive producer":   "executive-producer",
			"senior producer":      "senior-producer",
			"producer":             "producer",
			"associate producer":   "associate-producer",
			"development producer": "development-producer",
			"creative director":    "creative-director",
		},
	},
	"writing": {
		Slug: "writing",
		Roles: map[string]string{
			"author":             "author",
			"editorial director": "editorial-director",
			"co-writer":          "co-writer",
			"writer":             "writer",
			"songwriter":         "songwriter",
			"guest writer":       "guest-writer",
			"story editor":       "story-editor",
			"managing editor":    "managing-editor",
			"script editor":      "script-editor",
			"researcher":         "researcher",
			"editor":             "editor",
			"fact checker":       "fact-checker",
			"translator":         "translator",
			"transcriber":        "transcriber",
		},
	},
	"audio production": {
		Slug: "audio-production",
		Roles: map[string]string{
			"studio coordinator":       "studio-coordinator",
			"technical director":       "technical-director",
			"sound designer":           "sound-designer",
			"audio engineer":           "audio-engineer",
			"audio editor":             "audio-editor",
			"recording engineer":       "recording-engineer",
			"guest audio engineer":     "guest-audio-engineer",
			"post production engineer": "post-production-engineer",
		},
	},
	"administration": {
		Slug: "administration",
		Roles: map[string]string{
			"production coordinator": "production-coordinator",
			"booking coordinator":    "booking-coordinator",
			"production assistant":   "production-assistant",
			"content manager":        "content-manager",
			"marketing manager":      "marketing-manager",
			"sales representative":   "sales-representative",
			"sales manager":          "sales-manager",
		},
	},
	"visuals": {
		Slug: "visuals",
		Roles: map[string]string{
			"graphic designer":   "graphic-designer",
			"cover art designer": "cover-art-designer",
			"photographer":       "photographer",
		},
	},
	"community": {
		Slug: "community",
		Roles: map[string]string{
			"social media manager": "social-media-manager",
		},
	},
	"misc": {
		Slug: "misc",
		Roles: map[string]string{
			"consultant": "consultant",
			"intern":     "intern",
		},
	},
}

/*
Lookup resolves a feed-declared (group, role) pair to canonical slugs.

Unknown or absent values degrade to empty slugs rather than failing: an empty
or unrecognized group yields ("", ""), and a recognized group with an unknown
or absent role keeps the group slug with an empty role slug. A malformed
credit never aborts anything.
*/
func Lookup(group string, role string) (groupSlug string, roleSlug string) {
	if group == "" {
		return "", ""
	}
	g, ok := groups[strings.ToLower(strings.TrimSpace(group))]
	if !ok {
		return "", ""
	}
	if role == "" {
		return g.Slug, ""
	}
	return g.Slug, g.Roles[strings.ToLower(strings.TrimSpace(role))]
}
