/*
Package cli provides the commands of the mailpreview tool, which renders
the form emails to disk for review.
*/
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Flags live on the returned commands
// so every invocation starts from a clean state.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		debug   bool
	)

	rootCmd := &cobra.Command{
		Use:   "mailpreview",
		Short: "Render the website form emails without sending them",
		Long: `mailpreview renders the internal notification and the client
confirmation for every form kind using sample submissions.

Branding is read from the environment (MAIL_LOGO_URL, COMPANY_EMAIL, ...)
and may be overridden, together with the sample fields, by a YAML file.

Example:
  mailpreview render                       # Write all six documents to ./preview
  mailpreview render --kind quote -o out   # Only the quote emails
  mailpreview render -c preview.yaml       # Apply branding and sample overrides`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML file with branding and sample overrides")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(newRenderCmd(&cfgFile))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
