package entity

// MeasureUnit unidad de medida de las dimensiones. Viaja como texto en el
// intercambio y aparece literal en el código de referencia.
type MeasureUnit string

const (
	UnitCentimeters MeasureUnit = "CM"
	UnitInches      MeasureUnit = "PULG"
)

// GussetsType tipo de fuelle de la bolsa.
type GussetsType int

const (
	GussetsNone GussetsType = iota
	GussetsLateral
	GussetsBottom
)

func (g GussetsType) String() string {
	switch g {
	case GussetsLateral:
		return "LATERAL"
	case GussetsBottom:
		return "FONDO"
	default:
		return "NINGUNO"
	}
}

// FlapType tipo de solapa.
type FlapType int

const (
	FlapNone FlapType = iota
	FlapInternal
	FlapDoubleInternal
	FlapExternal
	FlapFlying
)

func (f FlapType) String() string {
	switch f {
	case FlapInternal:
		return "INTERNA"
	case FlapDoubleInternal:
		return "INTERNA DOBLE"
	case FlapExternal:
		return "VOLADA"
	case FlapFlying:
		return "VOLADA CON CINTA"
	default:
		return "NINGUNA"
	}
}

// TapeType cinta de la solapa volada.
type TapeType int

const (
	TapeNone TapeType = iota
	TapeResellable
	TapeSecurity
)

func (t TapeType) String() string {
	switch t {
	case TapeResellable:
		return "RESELLABLE"
	case TapeSecurity:
		return "DE SEGURIDAD"
	default:
		return "NINGUNA"
	}
}

// DieCutType tipo de troquel.
type DieCutType int

const (
	DieCutNone DieCutType = iota
	DieCutRinon
	DieCutCamiseta
	DieCutPerforaciones
	DieCutBanderin
	DieCutDona
	DieCutMediaLuna
	DieCutInterno
	DieCutLateral
)

func (d DieCutType) String() string {
	switch d {
	case DieCutRinon:
		return "RIÑON"
	case DieCutCamiseta:
		return "CAMISETA"
	case DieCutPerforaciones:
		return "PERFORACIONES"
	case DieCutBanderin:
		return "BANDERÍN"
	case DieCutDona:
		return "DONA"
	case DieCutMediaLuna:
		return "MEDIA LUNA"
	case DieCutInterno:
		return "INTERNO"
	case DieCutLateral:
		return "LATERAL"
	default:
		return "NINGUNO"
	}
}

// AllowedDieCuts troqueles válidos según el fuelle: con fuelle lateral solo
// camiseta; con cualquier otro la camiseta deja de ser una opción.
func AllowedDieCuts(g GussetsType) []DieCutType {
	if g == GussetsLateral {
		return []DieCutType{DieCutCamiseta}
	}
	return []DieCutType{
		DieCutNone, DieCutRinon, DieCutPerforaciones, DieCutBanderin,
		DieCutDona, DieCutMediaLuna, DieCutInterno, DieCutLateral,
	}
}

// SealingType tipo de selle; solo aplica a bolsas.
type SealingType int

const (
	SealingNone SealingType = iota
	SealingLateral
	SealingBottom
	SealingManual
	SealingPrecut
)

func (s SealingType) String() string {
	switch s {
	case SealingLateral:
		return "LATERAL"
	case SealingBottom:
		return "DE FONDO"
	case SealingManual:
		return "MANUAL"
	case SealingPrecut:
		return "PRECORTE"
	default:
		return "NINGUNO"
	}
}

// PaymentMethod método de pago de la orden. Contado es el valor por defecto.
type PaymentMethod int

const (
	PaymentCash PaymentMethod = iota
	PaymentCredit
)

func (p PaymentMethod) String() string {
	if p == PaymentCredit {
		return "CRÉDITO"
	}
	return "CONTADO"
}
