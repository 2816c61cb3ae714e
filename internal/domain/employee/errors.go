package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrBiometricIDExists = errors.New("biometric id already registered")
)
