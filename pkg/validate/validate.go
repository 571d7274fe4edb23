// Package validate holds the pure form-validation helpers used by the
// controller before anything reaches the booking API. Messages are in the
// backend's locale so field errors read the same on both sides.
package validate

import (
	"regexp"
	"strings"
)

// Result is the outcome of a single field validation.
type Result struct {
	Valid   bool
	Message string
}

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsRegex = regexp.MustCompile(`\D`)
	cvvRegex    = regexp.MustCompile(`^\d{3,4}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)
)

func Email(email string) Result {
	if email == "" {
		return Result{Valid: false, Message: "El email es requerido"}
	}
	if !emailRegex.MatchString(email) {
		return Result{Valid: false, Message: "Formato de email inválido"}
	}
	return Result{Valid: true}
}

// Password enforces the backend's bcrypt bound: 6 to 72 bytes of encoded
// length, not runes.
func Password(password string) Result {
	if password == "" {
		return Result{Valid: false, Message: "La contraseña es requerida"}
	}
	if len(password) < 6 {
		return Result{Valid: false, Message: "Mínimo 6 caracteres"}
	}
	if len(password) > 72 {
		return Result{Valid: false, Message: "Máximo 72 caracteres"}
	}
	return Result{Valid: true}
}

func Name(name string) Result {
	if name == "" {
		return Result{Valid: false, Message: "Este campo es requerido"}
	}
	if len(strings.TrimSpace(name)) < 2 {
		return Result{Valid: false, Message: "Mínimo 2 caracteres"}
	}
	return Result{Valid: true}
}

// Phone is optional: the empty string is valid.
func Phone(phone string) Result {
	if phone == "" {
		return Result{Valid: true}
	}
	digits := digitsRegex.ReplaceAllString(phone, "")
	if len(digits) < 10 {
		return Result{Valid: false, Message: "Mínimo 10 dígitos"}
	}
	return Result{Valid: true}
}

// CardNumber accepts exactly 16 digits after stripping spaces.
func CardNumber(number string) Result {
	stripped := strings.ReplaceAll(number, " ", "")
	if len(stripped) != 16 || digitsRegex.MatchString(stripped) {
		return Result{Valid: false, Message: "Número de tarjeta inválido"}
	}
	return Result{Valid: true}
}

func CardHolder(holder string) Result {
	if len(strings.TrimSpace(holder)) < 3 {
		return Result{Valid: false, Message: "Nombre del titular inválido"}
	}
	return Result{Valid: true}
}

// CardExpiry expects MM/YYYY.
func CardExpiry(expiry string) Result {
	if !expiryRegex.MatchString(expiry) {
		return Result{Valid: false, Message: "Fecha de expiración inválida (MM/AAAA)"}
	}
	return Result{Valid: true}
}

func CVV(cvv string) Result {
	if !cvvRegex.MatchString(cvv) {
		return Result{Valid: false, Message: "CVV inválido"}
	}
	return Result{Valid: true}
}
