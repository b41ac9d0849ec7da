package rop

import (
	"errors"
	"fmt"
)

// ErrContractViolation is the panic cause when a variant-specific accessor
// is used against the other variant.
var ErrContractViolation = errors.New("result: contract violation")

func violation(op string, heldErr bool, held any) {
	variant := "Ok"
	if heldErr {
		variant = "Err"
	}
	panic(fmt.Errorf("%w: %s called on %s(%v)", ErrContractViolation, op, variant, held))
}
