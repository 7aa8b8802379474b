package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vue-class-migrator/internal/output"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// VCM_WRITE=1.
const envPrefix = "VCM"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vue-class-migrator",
		Short: "Rewrite Vue class components to the options API",
		Long: `vue-class-migrator rewrites TypeScript class components written with
vue-property-decorator into equivalent defineComponent option objects.

Decorator options pass through verbatim; @Prop fields, initialized data
fields and get/set accessors are translated; doc comments are preserved
line-by-line. Cases needing manual follow-up (missing computed return
types) are reported as warnings instead of failing the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			output.SetupLogging(viper.GetBool("verbose"))
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "increase output verbosity")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose")))

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newVersionCmd())

	return root
}
