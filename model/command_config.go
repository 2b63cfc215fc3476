package model

// The commands, order matches the dispatch table in the tunit binary.
const (
	RUN COMMAND = iota + 1
	LIST
	WATCH
	VERSION
)

type (
	// The tunit command type
	COMMAND int

	// The Command config for the line input
	CommandConfig struct {
		Index    COMMAND // The index
		Verbose  bool    `short:"v" long:"debug" description:"If set the logger is set to verbose"` // True if debug is active
		BasePath string  // The working directory the tool was started in
		// The run command
		Run struct {
			ManifestPath string `short:"f" long:"manifest" description:"Path to the suite manifest" required:"false"`
			Mode         string `short:"m" long:"run-mode" description:"The mode to run the suites in"`
			Function     string `long:"suite-function" description:"The suite(.case) to run"`
		} `command:"run"`
		// The list command
		List struct {
			ManifestPath string `short:"f" long:"manifest" description:"Path to the suite manifest" required:"false"`
			Mode         string `short:"m" long:"run-mode" description:"The mode to list the suites for"`
		} `command:"list"`
		// The watch command
		Watch struct {
			ManifestPath string `short:"f" long:"manifest" description:"Path to the suite manifest" required:"false"`
			Mode         string `short:"m" long:"run-mode" description:"The mode to run the suites in"`
			Function     string `long:"suite-function" description:"The suite(.case) to run"`
			Delay        int    `short:"d" long:"delay" description:"Debounce delay between a change and the re-run, in milliseconds"`
		} `command:"watch"`
		// The version command
		Version struct {
			ManifestPath string `short:"f" long:"manifest" description:"Path to a manifest to check require.version against" required:"false"`
		} `command:"version"`
	}
)
