package main

import (
	"errors"
	"fmt"
	"os"

	"pet-grooming-intake/internal/config"
	"pet-grooming-intake/internal/domain/intake"
	"pet-grooming-intake/internal/platform/logger"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	copyError bool

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "intake",
	Short: "Registro de sesiones de peluquería desde la terminal",
	Long: `intake guarda las fotos antes/después de una sesión en la carpeta del cliente
y agrega una fila al registro de clientes, con las mismas reglas que el formulario.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := logger.ParseLevel(cfg.LogLevel)
		if verbose {
			level = logger.Debug
		}
		// La salida normal va a stdout; los logs sólo si se piden.
		if !verbose && cfg.LogLevel == "" {
			level = logger.Warn
		}
		log = logger.New(logger.Options{
			Level:  level,
			Format: logger.ParseFormat(cfg.LogFormat),
			App:    cfg.AppName,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Logs en nivel debug")
	rootCmd.PersistentFlags().BoolVar(&copyError, "copy-error", false, "Copiar al portapapeles el detalle de un error inesperado")

	rootCmd.AddCommand(submitCmd, breedsCmd, logCmd)
}

func main() {
	os.Exit(run())
}

func run() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var ve *intake.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintf(os.Stderr, "입력 오류: %s\n", ve.Message)
		return 2
	}

	fmt.Fprintln(os.Stderr, "예상치 못한 오류가 발생했습니다.")
	fmt.Fprintln(os.Stderr, err.Error())
	if copyError {
		if cerr := clipboard.WriteAll(err.Error()); cerr != nil {
			fmt.Fprintf(os.Stderr, "(portapapeles no disponible: %v)\n", cerr)
		} else {
			fmt.Fprintln(os.Stderr, "오류 기록이 클립보드에 복사되었습니다.")
		}
	}
	return 1
}
