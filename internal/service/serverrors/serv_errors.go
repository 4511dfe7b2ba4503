package serverrors

import "errors"

var (
	ErrInvalidRequest       = errors.New("missing required fields")
	ErrMissingPaymentProof  = errors.New("missing payment details")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidSignature     = errors.New("invalid payment signature")
	ErrGatewayFailure       = errors.New("failed to create order")
	ErrSettlementFailure    = errors.New("failed to create booking")
)
