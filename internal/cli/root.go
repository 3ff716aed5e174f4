package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion overrides the version string shown by --version. Called from
// main with a value injected via ldflags.
func SetVersion(v string) {
	version = v
}

// Execute runs the gohead CLI and returns the first command error. Logging
// goes to stderr; --verbose raises the level to debug.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:           "gohead",
		Short:         "gohead inspects HTML head metadata",
		Long:          "gohead validates the script elements of an HTML document head, from real HTML files or from YAML/JSON head definitions.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(os.Stderr)
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newVetCmd())

	return root.Execute()
}
