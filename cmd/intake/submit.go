package main

import (
	"fmt"

	"pet-grooming-intake/internal/adapters/imaging"
	"pet-grooming-intake/internal/adapters/storage"
	"pet-grooming-intake/internal/domain/breeds"
	"pet-grooming-intake/internal/domain/intake"

	"github.com/spf13/cobra"
)

var form intake.Form

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Registrar una sesión (fotos + datos del cliente)",
	Example: `  intake submit --before antes.jpg --after despues.png \
    --dog Mango --owner Kim --customer 010-1234-5678 --breed Poodle --amount 15000`,
	Args: cobra.NoArgs,
	RunE: runSubmit,
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&form.BeforePath, "before", "", "Foto antes del servicio (jpg/jpeg/png)")
	f.StringVar(&form.AfterPath, "after", "", "Foto después del servicio (jpg/jpeg/png)")
	f.StringVar(&form.DogName, "dog", "", "Nombre del perro")
	f.StringVar(&form.OwnerName, "owner", "", "Nombre del dueño")
	f.StringVar(&form.Customer, "customer", "", "Número de cliente, p.ej. 010-1234-5678")
	f.StringVar(&form.Style, "style", "", "Estilo de hoy")
	f.StringVar(&form.Breed, "breed", "", "Raza (de la lista; vacío = primera)")
	f.StringVar(&form.BreedOther, "breed-other", "", "Raza en texto libre cuando --breed es la opción de texto libre")
	f.StringVar(&form.PaymentAmount, "amount", "", "Monto pagado (sólo dígitos)")
	f.StringVar(&form.PaymentStatus, "status", string(intake.PaymentPaid), "paid | pending")
	f.StringVar(&form.Requirements, "requirements", "", "Pedidos del cliente")
	f.StringVar(&form.Notes, "notes", "", "Observaciones durante el servicio")
	f.StringVar(&form.Aftercare, "aftercare", "", "Cuidados posteriores")
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	list, err := breeds.Load(cfg.BreedsFile)
	if err != nil {
		return err
	}

	repo, closeRepo, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeRepo() }()

	svc := intake.NewService(repo, imaging.New(), intake.Options{
		OutputRoot: cfg.OutputRoot,
		Breeds:     list,
		Logger:     log,
	})

	res, err := svc.Submit(cmd.Context(), form)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "사진과 기록이 저장되었습니다.")
	fmt.Fprintf(out, "폴더 위치: %s\n", res.Folder)
	fmt.Fprintf(out, "  %s\n  %s\n", res.Record.BeforeFile, res.Record.AfterFile)
	fmt.Fprintf(out, "결제: %s원 (%s)\n", intake.FormatAmount(res.Record.PaymentAmount), res.Record.PaymentStatus)
	return nil
}
