package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/dataset"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

var (
	datasetExts  = []string{"json", "toml", "yaml", "yml"}
	chartKinds   = []string{string(chart.KindPie), string(chart.KindBar), string(chart.KindLine)}
	formatValues = []string{"svg", "json", "png", "pdf"}
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for chartgeom.

Besides commands and flags, the scripts complete dataset files for render
and inspect, chart types for --type, output formats for --format, and the
dataset names inside the file for --dataset:

  $ chartgeom render dashboard.json --dataset <TAB>
  orders-by-vendor  sales  signups

Bash:
  $ source <(chartgeom completion bash)
  $ chartgeom completion bash > /etc/bash_completion.d/chartgeom

Zsh:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  $ chartgeom completion zsh > "${fpath[1]}/_chartgeom"

Fish:
  $ chartgeom completion fish > ~/.config/fish/completions/chartgeom.fish

PowerShell:
  PS> chartgeom completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.New(errors.ErrCodeInvalidInput, "unsupported shell %q", args[0])
		},
	}

	return cmd
}

// registerChartCompletions wires dynamic completions for the dataset file
// argument and the chart flags of render and inspect.
func registerChartCompletions(cmd *cobra.Command) {
	cmd.ValidArgsFunction = completeDatasetFile
	_ = cmd.RegisterFlagCompletionFunc("type", fixedCompletion(chartKinds))
	_ = cmd.RegisterFlagCompletionFunc("dataset", completeDatasetNames)
	if cmd.Flags().Lookup("format") != nil {
		_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	}
}

func completeDatasetFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return datasetExts, cobra.ShellCompDirectiveFilterFileExt
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, v := range values {
			if strings.HasPrefix(v, strings.ToLower(toComplete)) {
				out = append(out, v)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeDatasetNames reads the file given as the first argument and
// offers its dataset names. Unreadable files complete to nothing.
func completeDatasetNames(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	f, err := dataset.Load(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, name := range f.Names() {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes the last element of a comma-separated format
// list, skipping formats already named.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, last = toComplete[:i+1], toComplete[i+1:]
	}
	used := make(map[string]bool)
	for _, f := range strings.Split(prefix, ",") {
		used[strings.TrimSpace(strings.ToLower(f))] = true
	}

	var out []string
	for _, f := range formatValues {
		if !used[f] && strings.HasPrefix(f, strings.ToLower(last)) {
			out = append(out, prefix+f)
		}
	}
	sort.Strings(out)
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
