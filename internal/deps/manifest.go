// Package deps parses dependency manifests into normalized records and
// derives dependency graphs and health classifications from them.
//
// Each parser is a pure function from raw file content to a
// *model.Manifest; nil means the content was unparseable or declared no
// recognized dependencies. No lockfiles are read, so only direct
// dependencies are known.
package deps

import "github.com/dlucca/gitgauge/internal/model"

// ParseFunc parses raw manifest content. A nil result is not an error:
// the caller moves on to the next manifest type.
type ParseFunc func(content string) *model.Manifest

// Parser pairs a manifest filename with its parse function.
type Parser struct {
	Filename string
	Parse    ParseFunc
}

// Parsers returns the manifest parsers in lookup priority order. The
// caller tries each filename against the repository's default branch and
// uses the first manifest that exists and parses; later entries are not
// checked once one succeeds.
func Parsers() []Parser {
	return []Parser{
		{"package.json", ParsePackageJSON},
		{"requirements.txt", ParseRequirementsTxt},
		{"pyproject.toml", ParsePyprojectTOML},
		{"Cargo.toml", ParseCargoTOML},
		{"go.mod", ParseGoMod},
		{"Gemfile", ParseGemfile},
	}
}
