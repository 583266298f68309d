package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hairyhenderson/go-devfs"
	"github.com/spf13/cobra"
)

func (a *app) mountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mounts",
		Short: "List the configured mount points, in resolution order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listMounts(cmd.OutOrStdout(), a.cfg.MountPoints())
		},
	}
}

func listMounts(w io.Writer, paths devfs.PathRegistry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	for _, mp := range paths.Paths() {
		fmt.Fprintf(tw, "%s\t%s\n", mp.NormalizedPublicPath(), mp.OutputPath)
	}

	return tw.Flush()
}
