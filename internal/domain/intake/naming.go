package intake

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	stampLayout  = "200601021504"     // resolución de minutos, va en el nombre de archivo
	recordLayout = "2006-01-02 15:04" // va en la columna de fecha del registro
)

const forbiddenPathChars = `\/:*?"<>|`

// Sanitize reemplaza los caracteres prohibidos en rutas por '_' y recorta espacios.
func Sanitize(name string) string {
	out := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenPathChars, r) {
			return '_'
		}
		return r
	}, name)
	return strings.TrimSpace(out)
}

// Derive arma carpeta y nombres de destino. No tiene efectos secundarios.
func Derive(v Validated, now time.Time) (Plan, error) {
	identity := fmt.Sprintf("%s - %s - %s", v.CustomerNo, v.OwnerName, v.DogName)
	folder := Sanitize(identity)
	prefix := Sanitize(identity + " - " + now.Format(stampLayout))

	before := fmt.Sprintf("%s - %s%s", prefix, SuffixBefore, strings.ToLower(filepath.Ext(v.BeforePath)))
	after := fmt.Sprintf("%s - %s%s", prefix, SuffixAfter, strings.ToLower(filepath.Ext(v.AfterPath)))

	if utf8.RuneCountInString(before) > MaxFilenameLength || utf8.RuneCountInString(after) > MaxFilenameLength {
		return Plan{}, reject(ReasonFilenameTooLong)
	}

	return Plan{
		RecordedAt: now,
		Folder:     folder,
		Prefix:     prefix,
		BeforeName: before,
		AfterName:  after,
	}, nil
}

// NewRecord arma la fila del registro a partir de lo validado y lo derivado.
func NewRecord(v Validated, p Plan) Record {
	return Record{
		RecordedAt:    p.RecordedAt,
		CustomerNo:    v.CustomerNo,
		OwnerName:     v.OwnerName,
		DogName:       v.DogName,
		Breed:         v.Breed,
		Style:         v.Style,
		Requirements:  v.Requirements,
		Notes:         v.Notes,
		Aftercare:     v.Aftercare,
		PaymentAmount: v.PaymentAmount,
		PaymentStatus: v.PaymentStatus.Label(),
		BeforeFile:    p.BeforeName,
		AfterFile:     p.AfterName,
	}
}

// FormatRecordedAt es el formato de la columna de fecha.
func FormatRecordedAt(t time.Time) string { return t.Format(recordLayout) }

// ParseRecordedAt es la inversa de FormatRecordedAt (hora local).
func ParseRecordedAt(s string) (time.Time, error) {
	return time.ParseInLocation(recordLayout, strings.TrimSpace(s), time.Local)
}
