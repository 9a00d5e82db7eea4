package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mission-copilot/internal/presets"
)

var presetsFile string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List and inspect mission presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(presetsFile)
		if err != nil {
			return err
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "TITLE", "ALT (KM)", "INCL", "SATS", "ORBIT")
		for _, p := range catalog.List() {
			t.Row(p.ID, p.Title,
				fmt.Sprintf("%.0f", p.AltitudeKm),
				fmt.Sprintf("%.1f", p.InclinationDeg),
				fmt.Sprintf("%d", p.Satellites),
				p.OrbitType)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.String())
		return nil
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print a preset as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(presetsFile)
		if err != nil {
			return err
		}
		p, ok := catalog.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown preset %q", args[0])
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(p)
	},
}

var presetsMatchCmd = &cobra.Command{
	Use:   "match TEXT",
	Short: "Show which preset a mission description selects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(presetsFile)
		if err != nil {
			return err
		}
		p, ok := catalog.Match(args[0])
		if !ok {
			return fmt.Errorf("no preset matches %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.ID)
		return nil
	},
}

func init() {
	presetsCmd.PersistentFlags().StringVar(&presetsFile, "file", "", "Additional presets YAML")
	presetsCmd.AddCommand(presetsListCmd, presetsShowCmd, presetsMatchCmd)
}

// loadCatalog returns the built-in presets, extended by path when set.
func loadCatalog(path string) (*presets.Catalog, error) {
	catalog := presets.Default()
	if path == "" {
		return catalog, nil
	}
	extra, err := presets.Load(path)
	if err != nil {
		return nil, err
	}
	return catalog.Merge(extra), nil
}
