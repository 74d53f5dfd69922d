package intake

import (
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// Previewer genera miniaturas para la vista previa de fotos.
type Previewer interface {
	Thumbnail(path string, maxW, maxH uint) (image.Image, error)
}

func RegisterRoutes(r chi.Router, svc *Service, preview Previewer, maxUpload int64) {
	r.Get("/breeds", listBreedsHandler(svc))
	r.Get("/form/defaults", defaultFormHandler(svc))
	r.Post("/photos/preview", previewHandler(svc, preview, maxUpload))

	r.Route("/submissions", func(sr chi.Router) {
		sr.Post("/", submitHandler(svc, maxUpload))
		sr.Get("/", listSubmissionsHandler(svc))
	})
}

// formResponse es el estado del formulario (sin fotos).
type formResponse struct {
	DogName       string `json:"dog_name"`
	OwnerName     string `json:"owner_name"`
	Customer      string `json:"customer"`
	Style         string `json:"style"`
	Breed         string `json:"breed"`
	BreedOther    string `json:"breed_other"`
	PaymentAmount string `json:"payment_amount"`
	PaymentStatus string `json:"payment_status" enums:"paid,pending"`
	Requirements  string `json:"requirements"`
	Notes         string `json:"notes"`
	Aftercare     string `json:"aftercare"`
}

// recordResponse es una fila del registro de clientes.
type recordResponse struct {
	ID                   string    `json:"id,omitempty"`
	RecordedAt           time.Time `json:"recorded_at"`
	CustomerNo           string    `json:"customer_no"`
	OwnerName            string    `json:"owner_name"`
	DogName              string    `json:"dog_name"`
	Breed                string    `json:"breed"`
	Style                string    `json:"style"`
	Requirements         string    `json:"requirements"`
	Notes                string    `json:"notes"`
	Aftercare            string    `json:"aftercare"`
	PaymentAmount        int64     `json:"payment_amount"`
	PaymentAmountDisplay string    `json:"payment_amount_display"`
	PaymentStatus        string    `json:"payment_status"`
	BeforeFile           string    `json:"before_file"`
	AfterFile            string    `json:"after_file"`
}

// submitResponse es la respuesta de una presentación exitosa.
type submitResponse struct {
	Record     recordResponse `json:"record"`
	Folder     string         `json:"folder"`
	BeforePath string         `json:"before_path"`
	AfterPath  string         `json:"after_path"`
	Next       formResponse   `json:"next"`
}

// rejectionResponse es un error esperado: el operador corrige y reenvía.
type rejectionResponse struct {
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

// failureResponse es un error inesperado; detail trae el texto completo para copiar.
type failureResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

const unexpectedMessage = "작업 중 예기치 못한 오류가 발생했습니다.\n아래 오류 내용을 개발자에게 전달해 주세요."

// listBreedsHandler godoc
// @Summary Listar razas
// @Description Devuelve la lista de razas cargada al iniciar, incluida la opción de texto libre.
// @Tags form
// @Produce json
// @Success 200 {array} string
// @Router /breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Breeds())
	}
}

// defaultFormHandler godoc
// @Summary Formulario inicial
// @Description Estado limpio del formulario: cliente de ejemplo, primera raza y pago completado.
// @Tags form
// @Produce json
// @Success 200 {object} formResponse
// @Router /form/defaults [get]
func defaultFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, toFormResponse(svc.DefaultForm()))
	}
}

// previewHandler godoc
// @Summary Vista previa de foto
// @Description Revisa que la foto sea JPG/JPEG/PNG y devuelve una miniatura PNG (máx. 320x220) sobre fondo blanco.
// @Tags photos
// @Accept multipart/form-data
// @Produce png
// @Param photo formData file true "Foto antes o después"
// @Success 200 {file} binary
// @Failure 400 {object} rejectionResponse
// @Failure 500 {object} failureResponse
// @Router /photos/preview [post]
func previewHandler(svc *Service, preview Previewer, maxUpload int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
		if err := r.ParseMultipartForm(maxUpload); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		tmpDir, err := os.MkdirTemp("", "grooming-preview-*")
		if err != nil {
			writeFailure(w, err)
			return
		}
		defer os.RemoveAll(tmpDir)

		path, err := saveUpload(r, "photo", tmpDir)
		if err != nil {
			writeFailure(w, err)
			return
		}
		if path == "" {
			writeJSON(w, http.StatusBadRequest, rejectionResponse{
				Reason:  ReasonMissingPhotos,
				Message: messages[ReasonMissingPhotos],
			})
			return
		}

		if err := svc.images.Check(path); err != nil {
			writeError(w, photoRejection(err), http.StatusBadRequest)
			return
		}

		thumb, err := preview.Thumbnail(path, 0, 0)
		if err != nil {
			writeError(w, photoRejection(err), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_ = png.Encode(w, thumb)
	}
}

// submitHandler godoc
// @Summary Registrar sesión de peluquería
// @Description Valida el formulario, guarda las fotos normalizadas en la carpeta del cliente y agrega una fila al registro. Un rechazo de validación devuelve 422 y no escribe nada.
// @Tags submissions
// @Accept multipart/form-data
// @Produce json
// @Param before formData file true "Foto antes del servicio (jpg/jpeg/png)"
// @Param after formData file true "Foto después del servicio (jpg/jpeg/png)"
// @Param dog_name formData string true "Nombre del perro"
// @Param owner_name formData string true "Nombre del dueño"
// @Param customer formData string true "Número de cliente (dígitos, '-' y espacios)"
// @Param style formData string false "Estilo de hoy"
// @Param breed formData string false "Raza elegida de la lista (vacío = primera de la lista)"
// @Param breed_other formData string false "Raza en texto libre (si breed es la opción de texto libre)"
// @Param payment_amount formData string false "Monto (sólo dígitos, vacío = 0)"
// @Param payment_status formData string false "paid | pending (default paid)"
// @Param requirements formData string false "Pedidos del cliente"
// @Param notes formData string false "Observaciones durante el servicio"
// @Param aftercare formData string false "Cuidados posteriores"
// @Success 201 {object} submitResponse
// @Failure 400 {string} string "invalid multipart form"
// @Failure 422 {object} rejectionResponse
// @Failure 500 {object} failureResponse
// @Router /submissions [post]
func submitHandler(svc *Service, maxUpload int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// dos fotos + campos de texto
		r.Body = http.MaxBytesReader(w, r.Body, 2*maxUpload)
		if err := r.ParseMultipartForm(maxUpload); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		tmpDir, err := os.MkdirTemp("", "grooming-upload-*")
		if err != nil {
			writeFailure(w, err)
			return
		}
		defer os.RemoveAll(tmpDir)

		before, err := saveUpload(r, "before", tmpDir)
		if err != nil {
			writeFailure(w, err)
			return
		}
		after, err := saveUpload(r, "after", tmpDir)
		if err != nil {
			writeFailure(w, err)
			return
		}

		res, err := svc.Submit(r.Context(), Form{
			BeforePath:    before,
			AfterPath:     after,
			DogName:       r.FormValue("dog_name"),
			OwnerName:     r.FormValue("owner_name"),
			Customer:      r.FormValue("customer"),
			Style:         r.FormValue("style"),
			Breed:         r.FormValue("breed"),
			BreedOther:    r.FormValue("breed_other"),
			PaymentAmount: r.FormValue("payment_amount"),
			PaymentStatus: r.FormValue("payment_status"),
			Requirements:  r.FormValue("requirements"),
			Notes:         r.FormValue("notes"),
			Aftercare:     r.FormValue("aftercare"),
		})
		if err != nil {
			writeError(w, err, http.StatusUnprocessableEntity)
			return
		}

		writeJSON(w, http.StatusCreated, submitResponse{
			Record:     toRecordResponse(res.Record),
			Folder:     res.Folder,
			BeforePath: res.BeforePath,
			AfterPath:  res.AfterPath,
			Next:       toFormResponse(res.Next),
		})
	}
}

// listSubmissionsHandler godoc
// @Summary Listar registro
// @Description Lista las filas del registro en orden de inserción. Sólo lectura.
// @Tags submissions
// @Produce json
// @Param customer_no query string false "Filtrar por número de cliente (sólo dígitos)"
// @Param limit query int false "Máximo de filas (1-500). Por defecto 50"
// @Success 200 {array} recordResponse
// @Failure 500 {object} failureResponse
// @Router /submissions [get]
func listSubmissionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}

		items, err := svc.List(r.Context(), ListFilter{
			CustomerNo: r.URL.Query().Get("customer_no"),
			Limit:      limit,
		})
		if err != nil {
			writeFailure(w, err)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// saveUpload copia el archivo del campo field a dir conservando la extensión.
// Devuelve "" si el campo no vino.
func saveUpload(r *http.Request, field, dir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	return copyUpload(file, header, field, dir)
}

func copyUpload(file multipart.File, header *multipart.FileHeader, field, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	dest := filepath.Join(dir, field+ext)

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, file); err != nil {
		_ = out.Close()
		return "", err
	}
	return dest, out.Close()
}

func writeError(w http.ResponseWriter, err error, rejectStatus int) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, rejectStatus, rejectionResponse{Reason: ve.Reason, Message: ve.Message})
		return
	}
	writeFailure(w, err)
}

func writeFailure(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, failureResponse{
		Message: unexpectedMessage,
		Detail:  err.Error(),
	})
}

func toFormResponse(f Form) formResponse {
	return formResponse{
		DogName:       f.DogName,
		OwnerName:     f.OwnerName,
		Customer:      f.Customer,
		Style:         f.Style,
		Breed:         f.Breed,
		BreedOther:    f.BreedOther,
		PaymentAmount: f.PaymentAmount,
		PaymentStatus: f.PaymentStatus,
		Requirements:  f.Requirements,
		Notes:         f.Notes,
		Aftercare:     f.Aftercare,
	}
}

func toRecordResponse(r Record) recordResponse {
	return recordResponse{
		ID:                   r.ID,
		RecordedAt:           r.RecordedAt,
		CustomerNo:           r.CustomerNo,
		OwnerName:            r.OwnerName,
		DogName:              r.DogName,
		Breed:                r.Breed,
		Style:                r.Style,
		Requirements:         r.Requirements,
		Notes:                r.Notes,
		Aftercare:            r.Aftercare,
		PaymentAmount:        r.PaymentAmount,
		PaymentAmountDisplay: FormatAmount(r.PaymentAmount),
		PaymentStatus:        r.PaymentStatus,
		BeforeFile:           r.BeforeFile,
		AfterFile:            r.AfterFile,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
