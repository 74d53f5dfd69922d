package intake

import (
	"strconv"
	"strings"
)

// Validate revisa los campos en orden y corta en el primer rechazo.
// Es pura: no toca disco ni registro.
func Validate(f Form) (Validated, error) {
	// 1. Fotos
	if strings.TrimSpace(f.BeforePath) == "" || strings.TrimSpace(f.AfterPath) == "" {
		return Validated{}, reject(ReasonMissingPhotos)
	}

	// 2. Identidad
	dog := strings.TrimSpace(f.DogName)
	owner := strings.TrimSpace(f.OwnerName)
	rawCustomer := strings.TrimSpace(f.Customer)
	if rawCustomer == CustomerPlaceholder {
		rawCustomer = ""
	}
	if dog == "" || owner == "" || rawCustomer == "" {
		return Validated{}, reject(ReasonMissingIdentity)
	}

	// 3. Número de cliente
	customerNo, err := CustomerNumber(rawCustomer)
	if err != nil {
		return Validated{}, err
	}

	// 4. Raza
	breed := strings.TrimSpace(f.Breed)
	if breed == BreedOther {
		breed = strings.TrimSpace(f.BreedOther)
		if breed == "" {
			return Validated{}, reject(ReasonMissingBreedText)
		}
	}

	// 5. Monto
	amount, err := ParseAmount(f.PaymentAmount)
	if err != nil {
		return Validated{}, err
	}

	status, err := parseStatus(f.PaymentStatus)
	if err != nil {
		return Validated{}, err
	}

	return Validated{
		BeforePath:    strings.TrimSpace(f.BeforePath),
		AfterPath:     strings.TrimSpace(f.AfterPath),
		DogName:       dog,
		OwnerName:     owner,
		CustomerNo:    customerNo,
		Style:         strings.TrimSpace(f.Style),
		Breed:         breed,
		PaymentAmount: amount,
		PaymentStatus: status,
		Requirements:  strings.TrimSpace(f.Requirements),
		Notes:         strings.TrimSpace(f.Notes),
		Aftercare:     strings.TrimSpace(f.Aftercare),
	}, nil
}

// CustomerNumber deja sólo los dígitos del identificador.
// Exige al menos un dígito y rechaza cualquier caracter que no sea dígito, '-' o espacio.
func CustomerNumber(raw string) (string, error) {
	digits := digitsOnly(raw)
	if digits == "" {
		return "", reject(ReasonCustomerNoDigits)
	}
	for _, r := range raw {
		if isDigit(r) || r == '-' || r == ' ' {
			continue
		}
		return "", reject(ReasonCustomerInvalidChars)
	}
	return digits, nil
}

// ParseAmount interpreta el monto de pago. Vacío => 0.
// Se descartan separadores ("15,000" => 15000) pero debe quedar al menos un dígito.
func ParseAmount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	digits := digitsOnly(raw)
	if digits == "" {
		return 0, reject(ReasonInvalidPaymentAmount)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, Reject(ReasonInvalidPaymentAmount, err)
	}
	return n, nil
}

// FormatAmount agrega separadores de miles: 15000 => "15,000".
func FormatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func parseStatus(raw string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case "", PaymentPaid:
		return PaymentPaid, nil
	case PaymentPending:
		return PaymentPending, nil
	default:
		return "", reject(ReasonInvalidPaymentStatus)
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Sólo dígitos ASCII: el número de cliente termina en nombres de archivo y de carpeta.
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
