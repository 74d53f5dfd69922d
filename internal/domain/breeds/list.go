package breeds

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"pet-grooming-intake/internal/domain/intake"
)

// Load lee una raza por línea. Ignora líneas vacías y agrega la opción
// de texto libre (intake.BreedOther) si el archivo no la trae.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open breed list %s: %w", path, err)
	}
	defer f.Close()

	out, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read breed list %s: %w", path, err)
	}
	return out, nil
}

func Parse(r io.Reader) ([]string, error) {
	out := make([]string, 0)
	hasOther := false

	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if name == intake.BreedOther {
			hasOther = true
		}
		out = append(out, name)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !hasOther {
		out = append(out, intake.BreedOther)
	}
	return out, nil
}
