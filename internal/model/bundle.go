package model

// Build modes understood by the bundler.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeNone        = "none"
)

// Build targets understood by the bundler.
const (
	TargetWeb  = "web"
	TargetNode = "node"
)

// BundlerOptions configures the transpiler. ConfigFile is optional; when it is
// empty the bundler resolves its configuration from Context alone.
type BundlerOptions struct {
	ConfigFile        string
	Context           string
	Silent            bool
	ProduceSourceMaps bool
}

// Entry is a named bundle entry point.
type Entry struct {
	Name string
	Path string
}

// BundleConfig is the resolved bundler configuration.
type BundleConfig struct {
	Context        string
	Entries        []Entry
	OutputPath     string
	OutputFilename string
	Mode           string
	Target         string
	Externals      []string
	Devtool        string
	SourceMaps     bool
	Silent         bool
}
