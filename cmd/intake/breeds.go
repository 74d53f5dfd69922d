package main

import (
	"fmt"

	"pet-grooming-intake/internal/domain/breeds"

	"github.com/spf13/cobra"
)

var breedsCmd = &cobra.Command{
	Use:   "breeds",
	Short: "Mostrar la lista de razas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list, err := breeds.Load(cfg.BreedsFile)
		if err != nil {
			return err
		}
		for _, b := range list {
			fmt.Fprintln(cmd.OutOrStdout(), b)
		}
		return nil
	},
}
