package model

// Ecosystem identifies the package management system a manifest belongs to.
type Ecosystem string

const (
	EcosystemNPM    Ecosystem = "npm"
	EcosystemPython Ecosystem = "python"
	EcosystemRust   Ecosystem = "rust"
	EcosystemGo     Ecosystem = "go"
	EcosystemRuby   Ecosystem = "ruby"
)

// Manifest is a normalized dependency manifest. Version specs are kept as
// raw strings from the source file; they are classified, never parsed as
// semver. A nil Manifest means the content was unparseable or declared no
// recognized dependencies.
type Manifest struct {
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies map[string]string `json:"peerDependencies,omitempty"`
	Ecosystem        Ecosystem         `json:"ecosystem"`
}
