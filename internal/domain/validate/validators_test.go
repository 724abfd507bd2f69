package validate_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/validate"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testCatalogs() entity.Catalogs {
	return entity.Catalogs{
		ProductTypes: map[int]entity.ProductType{
			1: {ID: 1, Name: "Tubular", IsActive: true},
			4: {ID: 4, Name: "Bolsa", IsActive: true},
		},
		Materials: map[int]entity.Material{
			1: {ID: 1, Name: "Alta densidad", IsActive: true},
		},
	}
}

// fixedNow "ahora" congelado: 1 de enero de 2024 en hora de Colombia.
func fixedNow() validate.Clock {
	return validate.FixedClock{T: time.Date(2024, 1, 1, 10, 30, 0, 0, time.FixedZone("America/Bogota", -5*3600))}
}

// TestDeliveryDate_Piso15Dias con "ahora" = 2024-01-01 la fecha mínima es
// 2024-01-16: el 15 se rechaza y el 16 se acepta.
func TestDeliveryDate_Piso15Dias(t *testing.T) {
	clock := fixedNow()

	msg := validate.DeliveryDate(time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC), clock)
	require.NotEmpty(t, msg)
	assert.Contains(t, msg, "16/01/2024", "el mensaje debe incluir la fecha mínima calculada")

	msg = validate.DeliveryDate(time.Date(2024, 1, 16, 0, 0, 0, 0, time.FixedZone("America/Bogota", -5*3600)), clock)
	assert.Empty(t, msg)
}

// TestDeliveryDate_FechaPisoEnUTC la fecha llega del JSON como "YYYY-MM-DD" y
// se parsea como medianoche UTC; la fecha piso exacta debe aceptarse aunque ese
// instante caiga el día anterior en hora de Colombia.
func TestDeliveryDate_FechaPisoEnUTC(t *testing.T) {
	d, err := time.Parse("2006-01-02", "2024-01-16")
	require.NoError(t, err)
	assert.Empty(t, validate.DeliveryDate(d, fixedNow()))

	d, err = time.Parse("2006-01-02", "2024-01-15")
	require.NoError(t, err)
	assert.NotEmpty(t, validate.DeliveryDate(d, fixedNow()))
}

func TestDeliveryDate_Obligatoria(t *testing.T) {
	assert.NotEmpty(t, validate.DeliveryDate(time.Time{}, fixedNow()))
}

func TestHeader_CamposObligatorios(t *testing.T) {
	errs := validate.Header(0, 0, 0)
	assert.Contains(t, errs, "customer")
	assert.Contains(t, errs, "employee")
	assert.Contains(t, errs, "orderedQuantity")

	errs = validate.Header(1, 2, 3)
	assert.False(t, errs.HasErrors())
}

// TestDetail_TubularPorKilos un tubular exige kilos y precio por kilo; no exige
// largo ni unidades.
func TestDetail_TubularPorKilos(t *testing.T) {
	d := &entity.PurchaseOrderDetail{
		Config: entity.ProductConfiguration{
			ProductTypeID: 1, MaterialID: 1,
			Width: dec("30"), Caliber: dec("2"), RollerSize: dec("10"),
			MeasureUnit: entity.UnitCentimeters,
		},
		DeliveryLocation: "Planta Medellín",
	}
	errs := validate.Detail(d, testCatalogs())
	assert.Contains(t, errs, "kilograms")
	assert.Contains(t, errs, "kilogramPrice")
	assert.NotContains(t, errs, "length")
	assert.NotContains(t, errs, "units")

	d.Kilograms = dec("10")
	d.KilogramPrice = dec("1000")
	errs = validate.Detail(d, testCatalogs())
	assert.False(t, errs.HasErrors(), "errores inesperados: %v", errs)
}

// TestDetail_BolsaPorUnidades una bolsa exige largo, unidades y precio unitario.
func TestDetail_BolsaPorUnidades(t *testing.T) {
	d := &entity.PurchaseOrderDetail{
		Config: entity.ProductConfiguration{
			ProductTypeID: 4, MaterialID: 1,
			Width: dec("20"), Caliber: dec("2"), RollerSize: dec("8"),
			MeasureUnit: entity.UnitCentimeters,
		},
		DeliveryLocation: "Bodega norte",
	}
	errs := validate.Detail(d, testCatalogs())
	assert.Contains(t, errs, "length")
	assert.Contains(t, errs, "units")
	assert.Contains(t, errs, "unitPrice")
}

// TestDetail_FuelleYSolapa el primer fuelle es obligatorio con fuelle distinto
// de ninguno; la solapa exige tamaño salvo con fuelle lateral.
func TestDetail_FuelleYSolapa(t *testing.T) {
	d := &entity.PurchaseOrderDetail{
		Config: entity.ProductConfiguration{
			ProductTypeID: 4, MaterialID: 1,
			Width: dec("20"), Length: dec("30"), Caliber: dec("2"), RollerSize: dec("8"),
			GussetsType: entity.GussetsBottom,
			FlapType:    entity.FlapInternal,
		},
		Units: dec("5"), UnitPrice: dec("2000"),
		DeliveryLocation: "Bodega norte",
	}
	errs := validate.Detail(d, testCatalogs())
	assert.Contains(t, errs, "firstGusset")
	assert.Contains(t, errs, "flapSize")

	// Con fuelle lateral la solapa no exige tamaño.
	d.Config.GussetsType = entity.GussetsLateral
	d.Config.FirstGusset = dec("5")
	errs = validate.Detail(d, testCatalogs())
	assert.NotContains(t, errs, "flapSize")
}

// TestPantoneCodes_ParcialDistintoDeVacio el vacío parcial y el vacío total
// producen mensajes distintos.
func TestPantoneCodes_ParcialDistintoDeVacio(t *testing.T) {
	todosVacios := validate.PantoneCodes([]string{"", "", ""}, 3)
	parcial := validate.PantoneCodes([]string{"485 C", "", ""}, 3)
	completos := validate.PantoneCodes([]string{"485 C", "286 C", "109 C"}, 3)

	require.NotEmpty(t, todosVacios)
	require.NotEmpty(t, parcial)
	assert.NotEqual(t, todosVacios, parcial)
	assert.Empty(t, completos)
}

func TestClosing_CreditoExigePlazo(t *testing.T) {
	clock := fixedNow()
	delivery := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	errs := validate.Closing(entity.Payment{Method: entity.PaymentCredit}, delivery, clock)
	assert.Contains(t, errs, "paymentTerm")
	assert.Contains(t, errs["paymentTerm"], "mayor que cero", "plazo cero cuenta como no diligenciado")

	errs = validate.Closing(entity.Payment{Method: entity.PaymentCredit, PaymentTerm: 30}, delivery, clock)
	assert.NotContains(t, errs, "paymentTerm")

	errs = validate.Closing(entity.Payment{Method: entity.PaymentCash}, delivery, clock)
	assert.NotContains(t, errs, "paymentTerm")
}

func TestClosing_AnticipoNoNegativo(t *testing.T) {
	clock := fixedNow()
	delivery := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	errs := validate.Closing(entity.Payment{Advance: dec("-1")}, delivery, clock)
	assert.Contains(t, errs, "advance")

	errs = validate.Closing(entity.Payment{Advance: dec("0")}, delivery, clock)
	assert.NotContains(t, errs, "advance")
}

// TestCustomer_UnicidadSinTildesNiMayusculas la razón social compara sin
// distinguir mayúsculas ni tildes, excluyendo el registro en edición.
func TestCustomer_UnicidadSinTildesNiMayusculas(t *testing.T) {
	existing := []*entity.Customer{
		{ID: 1, NIT: "900123456", CompanyName: "Plásticos Andinos", Email: "ventas@andinos.co"},
	}

	c := entity.Customer{ID: 2, NIT: "800987654", CompanyName: "PLASTICOS ANDINOS", Location: "Itagüí"}
	errs := validate.Customer(c, existing)
	assert.Contains(t, errs, "companyName")

	// El mismo registro en edición no choca consigo mismo.
	c = entity.Customer{ID: 1, NIT: "900123456", CompanyName: "Plásticos Andinos", Location: "Itagüí"}
	errs = validate.Customer(c, existing)
	assert.NotContains(t, errs, "companyName")
	assert.NotContains(t, errs, "nit")
}

func TestCustomer_FormatoNIT(t *testing.T) {
	errs := validate.Customer(entity.Customer{NIT: "12-34", CompanyName: "Empaques", Location: "Bogotá"}, nil)
	assert.Contains(t, errs, "nit")

	errs = validate.Customer(entity.Customer{NIT: "900123456-8", CompanyName: "Empaques", Location: "Bogotá"}, nil)
	assert.NotContains(t, errs, "nit")
}

func TestUniqueName(t *testing.T) {
	existing := map[int]string{1: "Operario", 2: "Supervisor"}
	assert.NotEmpty(t, validate.UniqueName("OPERARIO", existing, 0))
	assert.Empty(t, validate.UniqueName("Operario", existing, 1))
	assert.Empty(t, validate.UniqueName("Calidad", existing, 0))
}
