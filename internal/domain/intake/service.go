package intake

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pet-grooming-intake/internal/platform/logger"

	"github.com/google/uuid"
)

type Options struct {
	OutputRoot string   // raíz donde se crean las carpetas por cliente
	Breeds     []string // para DefaultForm
	Logger     logger.Logger
}

type Service struct {
	repo   Repository
	images Imager
	root   string
	breeds []string
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, images Imager, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		images: images,
		root:   opts.OutputRoot,
		breeds: opts.Breeds,
		log:    log.With(map[string]any{"component": "intake"}),
		now:    time.Now,
	}
}

// Result es lo que recibe la capa de UI tras una presentación exitosa.
type Result struct {
	Record     Record
	Folder     string // ruta absoluta de la carpeta del cliente
	BeforePath string
	AfterPath  string
	Next       Form // formulario limpio para la siguiente presentación
}

// Breeds devuelve la lista cargada al iniciar.
func (s *Service) Breeds() []string {
	out := make([]string, len(s.breeds))
	copy(out, s.breeds)
	return out
}

// DefaultForm es el estado inicial del formulario.
func (s *Service) DefaultForm() Form { return DefaultForm(s.breeds) }

// Prepare es la fase "validar": no escribe nada.
// Devuelve la fila que se registraría y el plan de nombres.
func (s *Service) Prepare(f Form) (Validated, Plan, error) {
	// Sin raza elegida vale la primera de la lista, como el formulario limpio.
	if strings.TrimSpace(f.Breed) == "" {
		f.Breed = s.DefaultForm().Breed
	}

	v, err := Validate(f)
	if err != nil {
		return Validated{}, Plan{}, err
	}

	if !s.knownBreed(f.Breed) {
		return Validated{}, Plan{}, reject(ReasonUnknownBreed)
	}

	plan, err := Derive(v, s.now())
	if err != nil {
		return Validated{}, Plan{}, err
	}

	for _, p := range []string{v.BeforePath, v.AfterPath} {
		if err := s.images.Check(p); err != nil {
			return Validated{}, Plan{}, photoRejection(err)
		}
	}

	return v, plan, nil
}

// Submit valida y, si todo está bien, escribe las dos fotos y agrega la fila.
// Las fotos se escriben primero como temporales; sólo se renombran
// después de que la fila quedó registrada.
func (s *Service) Submit(ctx context.Context, f Form) (Result, error) {
	v, plan, err := s.Prepare(f)
	if err != nil {
		s.log.Info("submission rejected", map[string]any{"error": err.Error()})
		return Result{}, err
	}

	root, err := filepath.Abs(s.root)
	if err != nil {
		return Result{}, fmt.Errorf("resolve output root: %w", err)
	}
	dir := filepath.Join(root, plan.Folder)

	// rename pisaría un par anterior del mismo minuto y la fila nueva apuntaría a él.
	for _, name := range []string{plan.BeforeName, plan.AfterName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return Result{}, Reject(ReasonPhotoExists, fmt.Errorf("%s already exists", name))
		} else if !errors.Is(err, os.ErrNotExist) {
			return Result{}, fmt.Errorf("check destination: %w", err)
		}
	}

	createdDir := false
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		createdDir = true
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create customer folder: %w", err)
	}

	var staged []string
	rollback := func() {
		for _, p := range staged {
			_ = os.Remove(p)
		}
		if createdDir {
			_ = os.Remove(dir) // sólo si quedó vacía
		}
	}

	tmpBefore, err := s.stage(dir, v.BeforePath, plan.BeforeName)
	if err != nil {
		rollback()
		return Result{}, fmt.Errorf("write before photo: %w", err)
	}
	staged = append(staged, tmpBefore)

	tmpAfter, err := s.stage(dir, v.AfterPath, plan.AfterName)
	if err != nil {
		rollback()
		return Result{}, fmt.Errorf("write after photo: %w", err)
	}
	staged = append(staged, tmpAfter)

	rec := NewRecord(v, plan)
	rec.ID = uuid.NewString()

	if err := s.repo.Append(ctx, rec); err != nil {
		rollback()
		return Result{}, fmt.Errorf("append record: %w", err)
	}

	beforePath := filepath.Join(dir, plan.BeforeName)
	afterPath := filepath.Join(dir, plan.AfterName)

	// La fila ya existe: a partir de aquí no se borra nada.
	if err := os.Rename(tmpBefore, beforePath); err != nil {
		return Result{}, fmt.Errorf("record %s written but before photo left at %s: %w", rec.ID, tmpBefore, err)
	}
	if err := os.Rename(tmpAfter, afterPath); err != nil {
		return Result{}, fmt.Errorf("record %s written but after photo left at %s: %w", rec.ID, tmpAfter, err)
	}

	s.log.Info("submission saved", map[string]any{
		"record_id":   rec.ID,
		"customer_no": rec.CustomerNo,
		"folder":      dir,
	})

	return Result{
		Record:     rec,
		Folder:     dir,
		BeforePath: beforePath,
		AfterPath:  afterPath,
		Next:       s.DefaultForm(),
	}, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	filter.CustomerNo = strings.TrimSpace(filter.CustomerNo)
	return s.repo.List(ctx, filter)
}

// knownBreed indica si la raza elegida está en la lista cargada.
// Sin lista cargada no hay contra qué comparar.
func (s *Service) knownBreed(breed string) bool {
	if len(s.breeds) == 0 {
		return true
	}
	breed = strings.TrimSpace(breed)
	if breed == BreedOther {
		return true
	}
	for _, b := range s.breeds {
		if b == breed {
			return true
		}
	}
	return false
}

// stage escribe la foto normalizada en un temporal dentro de dir.
func (s *Service) stage(dir, src, name string) (string, error) {
	tmp, err := os.CreateTemp(dir, ".staging-*")
	if err != nil {
		return "", err
	}

	if err := s.images.Encode(src, tmp, filepath.Ext(name)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func photoRejection(err error) error {
	switch {
	case errors.Is(err, ErrPhotoNotFound):
		return Reject(ReasonPhotoNotFound, err)
	case errors.Is(err, ErrUnsupportedPhoto):
		return Reject(ReasonUnsupportedPhoto, err)
	case errors.Is(err, ErrUnreadablePhoto):
		return Reject(ReasonUnreadablePhoto, err)
	default:
		return fmt.Errorf("check photo: %w", err)
	}
}
