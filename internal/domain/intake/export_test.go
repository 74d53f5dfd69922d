package intake

import "time"

// SetNow fija el reloj del servicio en tests externos.
func SetNow(s *Service, now func() time.Time) { s.now = now }
