// Package nit reglas de formato y dígito de verificación para el NIT colombiano.
package nit

import (
	"fmt"
	"regexp"
	"unicode"
)

// Formato aceptado por la aplicación: 8 a 10 dígitos, opcionalmente con el
// dígito de verificación como sufijo "-d".
var nitPattern = regexp.MustCompile(`^[0-9]{8,10}(-[0-9])?$`)

// pesos para el dígito de verificación (Orden Administrativa 4 de 1989, DIAN),
// aplicados a los 9 primeros dígitos de izquierda a derecha.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// ValidateFormat valida el formato del NIT tal como lo digita el usuario.
func ValidateFormat(nit string) error {
	if !nitPattern.MatchString(nit) {
		return fmt.Errorf("nit: formato inválido, se esperan 8 a 10 dígitos con sufijo opcional \"-d\"")
	}
	return nil
}

// ComputeVerificationDigit calcula el dígito de verificación módulo 11 para los
// 9 primeros dígitos del NIT. Es consultivo: el formato no lo exige.
func ComputeVerificationDigit(nit string) (byte, error) {
	digits := extractDigits(nit)
	if len(digits) < 9 {
		return 0, fmt.Errorf("nit: se requieren al menos 9 dígitos para calcular el dígito de verificación, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits[:9] {
		sum += int(d-'0') * nitWeights[i]
	}
	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return byte('0' + remainder), nil
	}
	return byte('0' + (11 - remainder)), nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
