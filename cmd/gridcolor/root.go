package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. "run" is also the root's default action.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridcolor",
		Short: "gridcolor simulates greedy colour-conflict repair on a 2D grid",
		Long: `gridcolor colours the nodes of an m×n grid (randomly or in clusters),
then repeatedly recolours every node that shares a colour with a neighbour
until no conflicts remain or the iteration cap is reached.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := newRunCmd()
	rootCmd.AddCommand(runCmd, newVersionCmd())

	// Make 'run' the default if no command is provided
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE

	return rootCmd
}
