package intake

import "time"

const (
	// CustomerPlaceholder es el valor de ejemplo que muestra el formulario vacío.
	// Si llega sin modificar se trata como campo vacío.
	CustomerPlaceholder = "010-0000-0000"

	// BreedOther es la opción de "otra raza" que exige texto libre.
	BreedOther = "기타(직접입력)"

	// MaxFilenameLength en caracteres (runas), incluyendo sufijo y extensión.
	MaxFilenameLength = 100

	SuffixBefore = "미용전"
	SuffixAfter  = "미용후"
)

// PaymentStatus es el estado del pago elegido en el formulario.
// @Enum paid, pending
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// Label devuelve la etiqueta que se guarda en el registro.
func (p PaymentStatus) Label() string {
	if p == PaymentPending {
		return "입금 전"
	}
	return "결제완료"
}

// Form son los valores crudos tal como los ingresa el operador.
// Es inmutable desde el punto de vista del núcleo: Validate no lo modifica.
type Form struct {
	BeforePath string
	AfterPath  string

	DogName   string
	OwnerName string
	Customer  string // identificador tipo teléfono, p.ej. 010-1234-5678
	Style     string

	Breed      string // valor elegido de la lista
	BreedOther string // texto libre cuando Breed == BreedOther

	PaymentAmount string // opcional, sólo dígitos (se toleran separadores)
	PaymentStatus string // paid | pending

	Requirements string
	Notes        string
	Aftercare    string
}

// Validated es el resultado tipado de Validate.
type Validated struct {
	BeforePath string
	AfterPath  string

	DogName    string
	OwnerName  string
	CustomerNo string
	Style      string
	Breed      string

	PaymentAmount int64
	PaymentStatus PaymentStatus

	Requirements string
	Notes        string
	Aftercare    string
}

// Plan son los nombres derivados para una presentación concreta.
type Plan struct {
	RecordedAt time.Time
	Folder     string
	Prefix     string
	BeforeName string
	AfterName  string
}

// Record es una fila del registro de clientes.
type Record struct {
	ID         string
	RecordedAt time.Time

	CustomerNo string
	OwnerName  string
	DogName    string
	Breed      string
	Style      string

	Requirements string
	Notes        string
	Aftercare    string

	PaymentAmount int64
	PaymentStatus string // etiqueta, ver PaymentStatus.Label

	BeforeFile string
	AfterFile  string
}

// Header es la fila de encabezado fija del registro tabular (13 columnas).
var Header = []string{
	"기록시각",
	"고객번호",
	"보호자 이름",
	"강아지 이름",
	"품종",
	"오늘 미용 스타일",
	"고객 요구사항",
	"미용 중 특이사항",
	"애프터 케어",
	"결제금액",
	"결제상태",
	"미용 전 사진파일명",
	"미용 후 사진파일명",
}

// DefaultForm es el estado limpio del formulario después de una presentación exitosa.
func DefaultForm(breeds []string) Form {
	f := Form{
		Customer:      CustomerPlaceholder,
		PaymentStatus: string(PaymentPaid),
	}
	if len(breeds) > 0 {
		f.Breed = breeds[0]
	}
	return f
}
