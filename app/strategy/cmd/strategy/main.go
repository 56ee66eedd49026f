package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version 通过 -ldflags "-X main.Version=x.y.z" 注入
var Version = "dev"

// rootOptions 所有子命令共享的全局参数
type rootOptions struct {
	configPath string
}

// newRootCmd 每次调用都构建一棵独立的命令树，flag 状态不在包级共享
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Amazon Strategy Assistant",
		Long: `Research Amazon marketplace questions and generate strategy reports.

The question is classified into one of six categories, supporting data is
gathered with one to three web searches, and an LLM writes a markdown report
using the category's report template.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "app/strategy/configs/strategy.yaml", "config file path")
	cmd.AddCommand(newAskCmd(opts), newTemplatesCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
