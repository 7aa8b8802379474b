package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vue-class-migrator/internal/diagnostic"
	"vue-class-migrator/internal/extract"
	"vue-class-migrator/internal/migrate"
	"vue-class-migrator/internal/output"
	"vue-class-migrator/internal/source"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [files...]",
		Short: "Translate class components in the given files",
		Long: `Translate each file's class component to the options API.

Without --write the rewritten source is printed to stdout (dry run).
Files without a recognizable class component are skipped. A failing file
aborts that file only; remaining files are still processed and the exit
status reports whether any file failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			write := viper.GetBool("write")
			dumpModel := viper.GetBool("dump-model")

			failed := 0

			for _, path := range args {
				if err := migrateFile(cmd, path, write, dumpModel); err != nil {
					output.Error("migration failed", "file", path, "err", err)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}

			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing to stdout")
	cmd.Flags().Bool("dump-model", false, "dump the extracted component model to stderr")
	cobra.CheckErr(viper.BindPFlag("write", cmd.Flags().Lookup("write")))
	cobra.CheckErr(viper.BindPFlag("dump-model", cmd.Flags().Lookup("dump-model")))

	return cmd
}

// migrateFile runs one independent transformation. The unit is rewritten
// atomically or not at all.
func migrateFile(cmd *cobra.Command, path string, write, dumpModel bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	unit, err := source.Parse(cmd.Context(), path, content)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics

	if dumpModel {
		if model, ok := extract.Extract(unit, &diagnostic.Diagnostics{}); ok {
			spew.Fdump(os.Stderr, model)
		}
	}

	engine := migrate.New(&diags)

	changed, err := engine.Run(cmd.Context(), unit)
	if err != nil {
		return err
	}

	if !changed {
		output.Debug("no class component found, skipped", "file", path)
		return nil
	}

	for _, d := range diags.Infos {
		output.Info(d.String(), "file", path)
	}

	for _, d := range diags.Warnings {
		output.Warn(d.String(), "file", path)
	}

	if write {
		return os.WriteFile(path, unit.Text(), 0o644)
	}

	output.Print(unit.String())

	return nil
}
