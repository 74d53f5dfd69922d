package main

import (
	"fmt"
	"text/tabwriter"

	"pet-grooming-intake/internal/adapters/storage"
	"pet-grooming-intake/internal/domain/intake"

	"github.com/spf13/cobra"
)

var (
	logCustomerNo string
	logLimit      int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Mostrar filas del registro de clientes",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().StringVar(&logCustomerNo, "customer-no", "", "Filtrar por número de cliente (sólo dígitos)")
	logCmd.Flags().IntVar(&logLimit, "limit", 0, "Máximo de filas (0 = todas)")
}

func runLog(cmd *cobra.Command, _ []string) error {
	repo, closeRepo, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeRepo() }()

	rows, err := repo.List(cmd.Context(), intake.ListFilter{CustomerNo: logCustomerNo, Limit: logLimit})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "기록시각\t고객번호\t보호자\t강아지\t품종\t결제금액\t결제상태")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			intake.FormatRecordedAt(r.RecordedAt),
			r.CustomerNo,
			r.OwnerName,
			r.DogName,
			r.Breed,
			intake.FormatAmount(r.PaymentAmount),
			r.PaymentStatus,
		)
	}
	return tw.Flush()
}
