package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "importlint",
		Short:         "Validate and fix CSV import files before they hit the importer",
		Long:          "importlint checks CSV import templates against the target system's structural rules (exact header casing, required columns per record type, encoding constraints) and can write a corrected copy with the mechanical defects removed.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newProfilesCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
