// Package rut valida el Rol Único Tributario chileno (identificador de empleados, clientes y proveedores).
package rut

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// pesos del algoritmo módulo 11, aplicados desde el dígito menos significativo y repetidos cíclicamente.
var rutWeights = [6]int{2, 3, 4, 5, 6, 7}

var rutPattern = regexp.MustCompile(`^\d{7,}-[\dkK]$`)

// minBody es el menor cuerpo numérico aceptado (RUTs bajo 1.000.000 no se emiten).
const minBody = 1_000_000

// Validate verifica formato "NNNNNNNN-D" y dígito verificador. Acepta "k" o "K".
func Validate(rut string) error {
	if !rutPattern.MatchString(rut) {
		return fmt.Errorf("rut: formato inválido %q, se espera 12345678-9", rut)
	}
	body, dv, _ := strings.Cut(rut, "-")
	expected, err := ComputeVerificationDigit(body)
	if err != nil {
		return err
	}
	if strings.ToUpper(dv) != string(expected) {
		return fmt.Errorf("rut: dígito verificador inválido: esperado %c, recibido %s", expected, dv)
	}
	return nil
}

// IsValid atajo booleano de Validate.
func IsValid(rut string) bool {
	return Validate(rut) == nil
}

// ComputeVerificationDigit calcula el dígito verificador ('0'-'9' o 'K') para el cuerpo del RUT.
func ComputeVerificationDigit(body string) (byte, error) {
	n, err := strconv.Atoi(body)
	if err != nil {
		return 0, fmt.Errorf("rut: cuerpo no numérico %q", body)
	}
	if n < minBody {
		return 0, fmt.Errorf("rut: cuerpo %d menor a %d", n, minBody)
	}
	var sum int
	for i := 0; i < len(body); i++ {
		d := int(body[len(body)-1-i] - '0')
		sum += d * rutWeights[i%len(rutWeights)]
	}
	switch v := 11 - sum%11; v {
	case 11:
		return '0', nil
	case 10:
		return 'K', nil
	default:
		return byte('0' + v), nil
	}
}
