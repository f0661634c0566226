package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const bash = "bash"
const zsh = "zsh"

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion SHELL",
	Short: "generate completions for the marlin command",
	Long: `Generate completions for your shell

	For bash add the following line to your ~/.bashrc

		eval "$(marlin completion bash)"

	For zsh generate a file:

		marlin completion zsh > /usr/local/share/zsh/site-functions/_marlin

	`,
	ValidArgs: []string{bash, zsh},
	Args:      cobra.OnlyValidArgs,

	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			wrapFatalln("specify a shell to generate completions for bash or zsh", nil)
			return
		}
		shell := args[0]
		var err error
		switch shell {
		case bash:
			err = rootCmd.GenBashCompletion(os.Stdout)
		case zsh:
			err = rootCmd.GenZshCompletion(os.Stdout)
		default:
			wrapFatalln("the only supported shells are bash and zsh", nil)
			return
		}
		if err != nil {
			wrapFatalln("generating completions", err)
			return
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
