package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pet-grooming-intake/internal/adapters/storage/xlsx"
	"pet-grooming-intake/internal/domain/intake"
)

// setupEnv prepara lista de razas, fotos y rutas de salida en un temporal.
func setupEnv(t *testing.T) (dir string) {
	t.Helper()

	dir = t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "breeds.txt"), []byte("Poodle\nMaltese\n"), 0o644); err != nil {
		t.Fatalf("breeds: %v", err)
	}
	for _, name := range []string{"before.png", "after.png"} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		_ = png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4)))
		_ = f.Close()
	}

	t.Setenv("BREEDS_FILE", filepath.Join(dir, "breeds.txt"))
	t.Setenv("OUTPUT_ROOT", filepath.Join(dir, "photos"))
	t.Setenv("LOG_FILE", filepath.Join(dir, "customer_data.xlsx"))
	t.Setenv("LOG_BACKEND", "xlsx")
	t.Setenv("DB_DSN", "")

	form = intake.Form{}
	return dir
}

func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	code := run()
	return code, out.String()
}

func TestSubmitCommand_WritesPhotosAndRow(t *testing.T) {
	dir := setupEnv(t)

	code, out := execute(t, "submit",
		"--before", filepath.Join(dir, "before.png"),
		"--after", filepath.Join(dir, "after.png"),
		"--dog", "Mango", "--owner", "Kim", "--customer", "010-1234-5678",
		"--amount", "15000", "--status", "pending",
	)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d out=%s", code, out)
	}
	if !strings.Contains(out, "15,000") {
		t.Fatalf("expected formatted amount in output, got %q", out)
	}

	rows, err := xlsx.NewRecordsRepo(filepath.Join(dir, "customer_data.xlsx")).List(context.Background(), intake.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].Breed != "Poodle" || rows[0].PaymentStatus != "입금 전" {
		t.Fatalf("unexpected rows %+v", rows)
	}

	folder := filepath.Join(dir, "photos", "01012345678 - Kim - Mango")
	if entries, _ := os.ReadDir(folder); len(entries) != 2 {
		t.Fatalf("expected 2 photos in %s, got %d", folder, len(entries))
	}
}

func TestSubmitCommand_ValidationExitCode(t *testing.T) {
	dir := setupEnv(t)

	code, _ := execute(t, "submit",
		"--before", filepath.Join(dir, "before.png"),
		"--after", filepath.Join(dir, "after.png"),
		"--dog", "Mango", "--owner", "Kim", "--customer", "010-12a4",
	)
	if code != 2 {
		t.Fatalf("expected exit 2 for validation error, got %d", code)
	}
	rows, err := xlsx.NewRecordsRepo(filepath.Join(dir, "customer_data.xlsx")).List(context.Background(), intake.ListFilter{})
	if err != nil || len(rows) != 0 {
		t.Fatalf("rejection must not log rows, got %d (%v)", len(rows), err)
	}
	if _, err := os.Stat(filepath.Join(dir, "photos")); !os.IsNotExist(err) {
		t.Fatalf("rejection must not create the photo root")
	}
}

func TestBreedsCommand_ListsSentinel(t *testing.T) {
	setupEnv(t)

	code, out := execute(t, "breeds")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Poodle") || !strings.Contains(out, intake.BreedOther) {
		t.Fatalf("unexpected breeds output %q", out)
	}
}
