package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any
// subcommands, following the teacher's pkg/cmd/root.go shape.
var rootCmd = &cobra.Command{
	Use:   "clausecore",
	Short: "Demo CLI for the Markov Logic Network clause constructor core.",
	Long: `A small demo toolbox exercising the clausecore library: CNF
compilation of hard-coded toy formulas, and clause synthesis from a
hard-coded toy hypergraph path.`,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// GetFlag returns the value of a bool flag, matching the teacher's
// pkg/cmd/util.go accessor style.
func GetFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(err)
	}

	return v
}

// GetString returns the value of a string flag.
func GetString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(err)
	}

	return v
}
