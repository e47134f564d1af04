package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"docshelf/internal/registry"
)

func newRegistryCommand(ctx *commandContext) *cobra.Command {
	registryCmd := &cobra.Command{
		Use:   "registry",
		Short: "Show the document registry summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistrySummary(ctx, cmd)
		},
	}

	registryCmd.AddCommand(newRegistryShowCommand(ctx))
	registryCmd.AddCommand(newRegistryValidateCommand(ctx))

	return registryCmd
}

func newRegistryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List the registered document types",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegistrySummary(ctx, cmd)
		},
	}
}

func runRegistrySummary(ctx *commandContext, cmd *cobra.Command) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	reg, _, _, err := ctx.ensureStack()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(reg.DocumentTypes))
	for _, name := range reg.TypeNames() {
		dt := reg.DocumentTypes[name]
		rows = append(rows, []string{
			name,
			dt.Location,
			dt.NamingPattern,
			strconv.Itoa(len(dt.Detection.FilenamePatterns)),
			strconv.Itoa(len(dt.Detection.ContentMarkers)),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Registry: %s (version %s)\n", cfg.Paths.Registry, reg.Version)
	fmt.Fprintln(out, renderTable(
		[]string{"Type", "Location", "Naming", "Filename Patterns", "Content Markers"},
		rows, 4, 5))
	fmt.Fprintf(out, "Enforcement: %s (override allowed: %s)\n",
		reg.Enforcement.Level, yesNo(reg.Enforcement.AllowOverride))
	fmt.Fprintf(out, "Uncertain documents go to: %s\n", reg.UncertainHandling.DefaultLocation)
	return nil
}

func newRegistryValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the document registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			reg, err := registry.Load(cfg.Paths.Registry)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Registry path: %s\n", cfg.Paths.Registry)
			fmt.Fprintf(out, "Document types: %d\n", len(reg.DocumentTypes))
			fmt.Fprintln(out, "Registry valid")
			return nil
		},
	}
}
