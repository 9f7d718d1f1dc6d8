package deps

import (
	"testing"

	"github.com/dlucca/gitgauge/internal/model"
)

func TestParsePackageJSON(t *testing.T) {
	m := ParsePackageJSON(`{"dependencies":{"react":"^18.2.0"},"devDependencies":{}}`)
	if m == nil {
		t.Fatal("expected manifest, got nil")
	}
	if m.Ecosystem != model.EcosystemNPM {
		t.Errorf("ecosystem = %s, want npm", m.Ecosystem)
	}
	if got := m.Dependencies["react"]; got != "^18.2.0" {
		t.Errorf("react = %q, want ^18.2.0", got)
	}
	if len(m.DevDependencies) != 0 || len(m.PeerDependencies) != 0 {
		t.Errorf("expected empty dev/peer dependencies, got %v / %v", m.DevDependencies, m.PeerDependencies)
	}
}

func TestParsePackageJSONInvalid(t *testing.T) {
	if m := ParsePackageJSON(`{not json`); m != nil {
		t.Errorf("expected nil for invalid JSON, got %+v", m)
	}
}

func TestParseRequirementsTxt(t *testing.T) {
	m := ParseRequirementsTxt("flask==2.0.1\n# comment\nrequests>=2.0")
	if m == nil {
		t.Fatal("expected manifest, got nil")
	}
	if m.Ecosystem != model.EcosystemPython {
		t.Errorf("ecosystem = %s, want python", m.Ecosystem)
	}
	if got := m.Dependencies["flask"]; got != "2.0.1" {
		t.Errorf("flask = %q, want 2.0.1", got)
	}
	if got := m.Dependencies["requests"]; got != ">=2.0" {
		t.Errorf("requests = %q, want >=2.0", got)
	}
	if len(m.Dependencies) != 2 {
		t.Errorf("len(dependencies) = %d, want 2", len(m.Dependencies))
	}
}

func TestParseRequirementsTxtEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		deps    map[string]string
	}{
		{
			name:    "bare package name",
			content: "Django",
			deps:    map[string]string{"django": "unknown"},
		},
		{
			name:    "tilde constraint keeps operator",
			content: "celery~=5.3",
			deps:    map[string]string{"celery": "~=5.3"},
		},
		{
			name:    "blank lines and comments only",
			content: "\n# nothing here\n\n",
			deps:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ParseRequirementsTxt(tt.content)
			if tt.deps == nil {
				if m != nil {
					t.Fatalf("expected nil manifest, got %+v", m)
				}
				return
			}
			if m == nil {
				t.Fatal("expected manifest, got nil")
			}
			for name, want := range tt.deps {
				if got := m.Dependencies[name]; got != want {
					t.Errorf("%s = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestParsePyprojectTOML(t *testing.T) {
	content := `[project]
name = "demo"

[project.dependencies]
flask = ">=2.0"
"typing-extensions" = "4.8.0"

[tool.poetry.dev-dependencies]
pytest = "^7.0"

[build-system]
requires = ["setuptools"]
`
	m := ParsePyprojectTOML(content)
	if m == nil {
		t.Fatal("expected manifest, got nil")
	}
	if got := m.Dependencies["flask"]; got != ">=2.0" {
		t.Errorf("flask = %q, want >=2.0", got)
	}
	if got := m.Dependencies["typing-extensions"]; got != "4.8.0" {
		t.Errorf("typing-extensions = %q, want 4.8.0", got)
	}
	if got := m.DevDependencies["pytest"]; got != "^7.0" {
		t.Errorf("pytest = %q, want ^7.0", got)
	}
	// The [build-system] section must terminate dependency scanning.
	if _, ok := m.Dependencies["requires"]; ok {
		t.Error("requires from [build-system] leaked into dependencies")
	}
}

func TestParsePyprojectTOMLEmpty(t *testing.T) {
	if m := ParsePyprojectTOML("[project]\nname = \"demo\"\n"); m != nil {
		t.Errorf("expected nil for manifest without dependencies, got %+v", m)
	}
}

func TestParseCargoTOML(t *testing.T) {
	content := `[package]
name = "demo"

[dependencies]
serde = "1.0.190"
tokio = "1"

[dev-dependencies]
criterion = "0.5"
`
	m := ParseCargoTOML(content)
	if m == nil {
		t.Fatal("expected manifest, got nil")
	}
	if m.Ecosystem != model.EcosystemRust {
		t.Errorf("ecosystem = %s, want rust", m.Ecosystem)
	}
	if got := m.Dependencies["serde"]; got != "1.0.190" {
		t.Errorf("serde = %q, want 1.0.190", got)
	}
	if _, ok := m.Dependencies["criterion"]; ok {
		t.Error("dev-dependencies section leaked into dependencies")
	}
	if _, ok := m.Dependencies["name"]; ok {
		t.Error("[package] section leaked into dependencies")
	}
}

func TestParseGoMod(t *testing.T) {
	content := `module example.com/demo

go 1.22

// direct deps
require github.com/spf13/cobra v1.8.0
require golang.org/x/sync v0.6.0
`
	m := ParseGoMod(content)
	if m == nil {
		t.Fatal("expected manifest, got nil")
	}
	if m.Ecosystem != model.EcosystemGo {
		t.Errorf("ecosystem = %s, want go", m.Ecosystem)
	}
	if got := m.Dependencies["github.com/spf13/cobra"]; got != "v1.8.0" {
		t.Errorf("cobra = %q, want v1.8.0", got)
	}
	if len(m.Dependencies) != 2 {
		t.Errorf("len(dependencies) = %d, want 2", len(m.Dependencies))
	}
}

func TestParseGemfile(t *testing.T) {
	content := `source "https://rubygems.org"

# web framework
gem "rails", "7.1.2"
gem 'puma'
`
	m := ParseGemfile(content)
	if m == nil {
		t.Fatal("expected manifest, got nil")
	}
	if m.Ecosystem != model.EcosystemRuby {
		t.Errorf("ecosystem = %s, want ruby", m.Ecosystem)
	}
	if got := m.Dependencies["rails"]; got != "7.1.2" {
		t.Errorf("rails = %q, want 7.1.2", got)
	}
	if got := m.Dependencies["puma"]; got != "unknown" {
		t.Errorf("puma = %q, want unknown", got)
	}
}

func TestParsersOrder(t *testing.T) {
	want := []string{"package.json", "requirements.txt", "pyproject.toml", "Cargo.toml", "go.mod", "Gemfile"}
	parsers := Parsers()
	if len(parsers) != len(want) {
		t.Fatalf("len(parsers) = %d, want %d", len(parsers), len(want))
	}
	for i, p := range parsers {
		if p.Filename != want[i] {
			t.Errorf("parsers[%d] = %s, want %s", i, p.Filename, want[i])
		}
	}
}
