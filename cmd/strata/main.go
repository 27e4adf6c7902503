// Command strata embeds text with a small Embedding -> LayerNorm1d -> Dropout -> Linear
// stack and reports per-stage statistics.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/born-ml/strata/internal/envconfig"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

func main() {
	cobra.CheckErr(newCLI().ExecuteContext(context.Background()))
}

func newCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "strata",
		Short:         "Embed text with a small layer stack",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "strata %s\n", version)
		},
	}

	embedCmd := newEmbedCmd(&embedOptions{})

	envVars := envconfig.AsMap()
	appendEnvDocs(embedCmd, []envconfig.EnvVar{
		envVars["STRATA_ENCODING"],
		envVars["STRATA_SEED"],
		envVars["STRATA_FUSED_LAYERNORM"],
		envVars["STRATA_NUM_WORKERS"],
	})

	rootCmd.AddCommand(versionCmd, embedCmd)
	return rootCmd
}

func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}
