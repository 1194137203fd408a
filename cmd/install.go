package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parham-yz/secretary-in-terminal/internal/install"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Add a secretary alias to your shell rc file",
	RunE:  installAlias,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func installAlias(cmd *cobra.Command, args []string) error {
	bin, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate binary: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locate home directory: %w", err)
	}

	rc := install.RcFile(home, os.Getenv("SHELL"))
	added, err := install.Alias(rc, bin)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(cmd.OutOrStdout(), "alias added to %s; restart your shell to use it\n", rc)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "alias already present in %s\n", rc)
	}
	return nil
}
