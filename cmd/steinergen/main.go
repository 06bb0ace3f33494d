// Command steinergen batch-generates dynamic Steiner benchmark runs.
//
// An experiment file (YAML) declares run families; each family yields
// one run directory per replication containing the base instance, the
// update log, the query snapshots and a manifest:
//
//	<output_root>/<name>_<replication>/
//	    base.gr          sampled static instance
//	    updates.dus      update log
//	    instance_<k>.gr  query snapshots (k from 1)
//	    manifest.yaml    run ID + resolved parameters
//
// The replay subcommand loads a run directory back and summarizes it,
// which doubles as an integrity check of the artifacts.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "steinergen",
		Short: "Synthetic benchmark generator for dynamic Steiner-tree solvers",
		Long: `steinergen samples random Steiner instances with a planted approximate
vertex cover and synthesizes replayable update sequences over them.`,
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newReplayCmd())

	return root
}

func newGenerateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate all runs declared in an experiment file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			exp, err := loadExperiment(configPath)
			if err != nil {
				return err
			}

			for _, run := range exp.Runs {
				for rep := 1; rep <= run.Replications; rep++ {
					dir := filepath.Join(exp.OutputRoot, fmt.Sprintf("%s_%d", run.Name, rep))
					manifest, err := executeRun(run, rep, dir)
					if err != nil {
						return fmt.Errorf("run %s replication %d: %w", run.Name, rep, err)
					}
					cmd.Printf("wrote %s (run %s: %d ops, %d queries)\n",
						dir, manifest.ID, manifest.Operations, manifest.Queries)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "experiment.yaml", "experiment file")

	return cmd
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <run-dir>",
		Short: "Load a run directory and summarize its update sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := summarizeRun(args[0])
			if err != nil {
				return err
			}
			cmd.Print(summary)

			return nil
		},
	}
}
