package cli

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	ConfigPath  string
	Debug       bool
	NoIdentity  bool
	Plain       bool
	Confirm     bool
	MetricsAddr string
	HistoryFile string
}

// TreeOptions configures the tree command.
type TreeOptions struct {
	ConfigPath string
	Format     string
}

// Tree output formats.
const (
	FormatText    = "text"
	FormatMermaid = "mermaid"
)

// Execute handles the run command.
func Execute(opts RunOptions) error {
	return RunSession(opts)
}
