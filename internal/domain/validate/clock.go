package validate

import "time"

// Bogotá no tiene horario de verano: UTC-5 fijo. El piso de fecha de entrega se
// calcula siempre contra esta zona, sin importar la zona del navegador o del
// servidor.
var bogota = time.FixedZone("America/Bogota", -5*60*60)

// Clock abstrae el "ahora de negocio" para poder fijarlo en pruebas.
type Clock interface {
	Now() time.Time
}

// BogotaClock reloj real en hora de Colombia.
type BogotaClock struct{}

func (BogotaClock) Now() time.Time { return time.Now().In(bogota) }

// FixedClock reloj congelado para pruebas.
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T.In(bogota) }

// Midnight medianoche en hora de Colombia del día calendario de t. La fecha de
// entrega es una fecha de calendario: se toman año, mes y día tal como vienen,
// sin convertir el instante de zona (una medianoche UTC no debe correrse al día
// anterior).
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, bogota)
}

// MinDeliveryDate fecha mínima de entrega: medianoche de hoy en Colombia más el
// mínimo de días de producción.
func MinDeliveryDate(now time.Time, minDays int) time.Time {
	return Midnight(now).AddDate(0, 0, minDays)
}
