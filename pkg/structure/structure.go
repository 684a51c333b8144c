// Package structure defines the canonical WoW 3.3.5a patch directory layout.
//
// The client hard-codes these paths; files outside them are invisible to it.
// The whitelist is an explicit immutable value handed to both scaffolding and
// validation so tests can substitute a smaller one.
package structure

import (
	"strings"

	"github.com/woozymasta/pathrules"

	"github.com/sogladev/mpqbuild/pkg/errors"
)

// Category groups canonical directories under a named asset category.
type Category struct {
	Name string
	Dirs []string
}

// canonicalCategories is the complete WoW 3.3.5a patch layout, organized by
// asset category. Order is significant for deterministic scaffolding output.
var canonicalCategories = []Category{
	{Name: "dbc", Dirs: []string{
		"DBFilesClient",
	}},
	{Name: "interface", Dirs: []string{
		"Interface/AddOns",
		"Interface/Buttons",
		"Interface/Cinematics",
		"Interface/Cursors",
		"Interface/DialogFrame",
		"Interface/FriendsFrame",
		"Interface/Glues",
		"Interface/GMSurveyUI",
		"Interface/GuildBankFrame",
		"Interface/Icons",
		"Interface/ItemTextFrame",
		"Interface/lfgframe",
		"Interface/MacroFrame",
		"Interface/Minimap",
		"Interface/PaperDollInfoFrame",
		"Interface/PetPaperDollFrame",
		"Interface/PVPFrame",
		"Interface/QuestFrame",
		"Interface/RaidFrame",
		"Interface/SpellBook",
		"Interface/Stationery",
		"Interface/TalentFrame",
		"Interface/TargetingFrame",
		"Interface/Tooltips",
		"Interface/TradeSkillFrame",
		"Interface/WorldMap",
		"Interface/WorldStateFrame",
	}},
	{Name: "fonts", Dirs: []string{
		"Fonts",
	}},
	{Name: "sound", Dirs: []string{
		"Sound/Ambience",
		"Sound/Creature",
		"Sound/Doodad",
		"Sound/EmotesVocal",
		"Sound/Events",
		"Sound/Interface",
		"Sound/Item",
		"Sound/Music",
		"Sound/Spells",
	}},
	{Name: "textures", Dirs: []string{
		"Textures/Minimap",
		"Textures/BakedNpcTextures",
	}},
	{Name: "models", Dirs: []string{
		"Character",
		"Creature",
		"Item",
		"Spells",
	}},
	{Name: "world", Dirs: []string{
		"World/Maps",
		"World/Minimaps",
		"World/wmo",
	}},
	{Name: "cameras", Dirs: []string{
		"Cameras",
	}},
}

// Options control matcher construction.
type Options struct {
	// MatchCase makes membership checks case-sensitive. The client's
	// filesystem semantics are case-insensitive, so the default is false.
	MatchCase bool
}

// Structure is an immutable directory whitelist with a compiled membership
// matcher. Construct with New or Canonical; do not mutate afterwards.
type Structure struct {
	categories []Category
	matcher    *pathrules.Matcher
}

// New compiles a Structure from the given category tables.
func New(categories []Category, opts Options) (*Structure, error) {
	var rules []pathrules.Rule
	for _, cat := range categories {
		for _, dir := range cat.Dirs {
			rules = append(rules,
				pathrules.Rule{Action: pathrules.ActionInclude, Pattern: dir},
				pathrules.Rule{Action: pathrules.ActionInclude, Pattern: dir + "/**"},
			)
		}
	}

	matcher, err := pathrules.NewMatcher(rules, pathrules.MatcherOptions{
		CaseInsensitive: !opts.MatchCase,
		DefaultAction:   pathrules.ActionExclude,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to compile directory whitelist")
	}

	return &Structure{categories: categories, matcher: matcher}, nil
}

// Canonical builds the full WoW 3.3.5a client structure.
func Canonical() (*Structure, error) {
	return New(canonicalCategories, Options{})
}

// Categories returns the available category names in definition order.
func (s *Structure) Categories() []string {
	names := make([]string, 0, len(s.categories))
	for _, cat := range s.categories {
		names = append(names, cat.Name)
	}
	return names
}

// Directories returns the directory paths for the named categories, in
// definition order. With no names it returns every directory.
func (s *Structure) Directories(names ...string) ([]string, error) {
	if len(names) == 0 {
		return s.AllDirectories(), nil
	}

	byName := make(map[string][]string, len(s.categories))
	for _, cat := range s.categories {
		byName[cat.Name] = cat.Dirs
	}

	var invalid []string
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"invalid categories: %s (valid: %s)",
			strings.Join(invalid, ", "), strings.Join(s.Categories(), ", ")).
			WithDetail("invalid", invalid)
	}

	var dirs []string
	for _, cat := range s.categories {
		for _, name := range names {
			if cat.Name == name {
				dirs = append(dirs, cat.Dirs...)
				break
			}
		}
	}
	return dirs, nil
}

// AllDirectories returns every canonical directory path in definition order.
func (s *Structure) AllDirectories() []string {
	var dirs []string
	for _, cat := range s.categories {
		dirs = append(dirs, cat.Dirs...)
	}
	return dirs
}

// IsValidPath reports whether an archive member path sits under a canonical
// directory. Both forward and back slashes are accepted as separators.
func (s *Structure) IsValidPath(path string) bool {
	normalized := normalizeMemberPath(path)
	if normalized == "" {
		return false
	}
	return s.matcher.Included(normalized, false)
}

// normalizeMemberPath converts an archive member path to slash-separated
// relative form for matching.
func normalizeMemberPath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, `\`, "/")
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimPrefix(path, "/")
	return strings.TrimSuffix(path, "/")
}
