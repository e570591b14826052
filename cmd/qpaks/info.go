package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdInfo)
}

var cmdInfo = &cobra.Command{
	Use:   "info <application-id>",
	Short: "Show details of an installed application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controller(cmd)
		if err != nil {
			return err
		}
		info, err := ctrl.Info(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		header := info.Name
		if info.Summary != "" {
			header += " - " + info.Summary
		}
		if header != "" {
			fmt.Fprintln(out, header)
			fmt.Fprintln(out)
		}

		keys := make([]string, 0, len(info.Fields))
		for k := range info.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "%s: %s\n", k, info.Fields[k])
		}
		return nil
	},
}
