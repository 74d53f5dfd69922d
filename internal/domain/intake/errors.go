package intake

import (
	"errors"
	"fmt"
)

// ErrValidation agrupa todos los rechazos esperados (errors.Is).
var ErrValidation = errors.New("validation failed")

// Errores que devuelve un Imager al revisar una foto.
var (
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrUnsupportedPhoto = errors.New("unsupported photo format")
	ErrUnreadablePhoto  = errors.New("photo cannot be decoded")
)

// Reason identifica de forma estable por qué se rechazó una presentación.
type Reason string

const (
	ReasonMissingPhotos        Reason = "missing_photos"
	ReasonMissingIdentity      Reason = "missing_identity"
	ReasonCustomerNoDigits     Reason = "customer_no_digits"
	ReasonCustomerInvalidChars Reason = "customer_invalid_chars"
	ReasonMissingBreedText     Reason = "missing_breed_text"
	ReasonUnknownBreed         Reason = "unknown_breed"
	ReasonInvalidPaymentAmount Reason = "invalid_payment_amount"
	ReasonInvalidPaymentStatus Reason = "invalid_payment_status"
	ReasonFilenameTooLong      Reason = "filename_too_long"
	ReasonPhotoNotFound        Reason = "photo_not_found"
	ReasonUnsupportedPhoto     Reason = "unsupported_photo"
	ReasonUnreadablePhoto      Reason = "unreadable_photo"
	ReasonPhotoExists          Reason = "photo_exists"
)

// Mensajes para el operador.
var messages = map[Reason]string{
	ReasonMissingPhotos:        "미용 전/후 사진을 모두 선택해주세요.",
	ReasonMissingIdentity:      "강아지 이름, 보호자 이름, 고객번호를 모두 입력해주세요.",
	ReasonCustomerNoDigits:     "고객번호는 숫자를 포함해야 합니다.",
	ReasonCustomerInvalidChars: "고객번호에는 숫자와 '-'만 사용해주세요.",
	ReasonMissingBreedText:     "기타 품종을 직접 입력해주세요.",
	ReasonUnknownBreed:         "품종 목록에 없는 품종입니다.",
	ReasonInvalidPaymentAmount: "결제금액은 숫자만 입력할 수 있습니다.",
	ReasonInvalidPaymentStatus: "결제상태는 paid 또는 pending 이어야 합니다.",
	ReasonFilenameTooLong:      "생성되는 파일명이 100자를 초과합니다.\n강아지 이름이나 보호자 이름, 고객번호를 줄여주세요.",
	ReasonPhotoNotFound:        "파일을 찾을 수 없습니다.",
	ReasonUnsupportedPhoto:     "JPG, JPEG, PNG 형식만 사용할 수 있습니다.",
	ReasonUnreadablePhoto:      "이미지를 불러오는 중 오류가 발생했습니다.",
	ReasonPhotoExists:          "같은 이름의 사진 파일이 이미 있습니다.\n잠시 후 다시 저장해주세요.",
}

// ValidationError es un rechazo esperado: se muestra al operador y el formulario se conserva.
type ValidationError struct {
	Reason  Reason
	Message string
	Err     error // causa opcional (p.ej. error de decodificación)
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return string(e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.Err }

func reject(r Reason) error {
	return &ValidationError{Reason: r, Message: messages[r]}
}

// Reject construye un rechazo con causa, para chequeos fuera de Validate.
func Reject(r Reason, cause error) error {
	return &ValidationError{Reason: r, Message: messages[r], Err: cause}
}

// ReasonOf devuelve la razón de rechazo si err es un ValidationError.
func ReasonOf(err error) (Reason, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}
