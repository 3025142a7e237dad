package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "jsonget",
		Short:        "jsonget",
		SilenceUsage: true,
		Long:         `CLI for navigating a JSON document without building a DOM. See jsoncursor.`,
	}

	maxDepth int
	verbose  bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth to descend while parsing (0 uses the library default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd.Execute()
}

func logger() *logrus.Logger {
	l := logrus.New()
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
