package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/config"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gwucal settings",
	Long: `Manage settings stored in ~/.gwucal.json, such as the default subject
and term. Without flags this opens the interactive settings menu.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("set-subject")
		if subject != "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.DefaultSubject = strings.ToUpper(strings.TrimSpace(subject))
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("Default subject set to %s\n", cfg.DefaultSubject)
			return nil
		}

		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-subject", "", "Set the default subject code and exit")
}
