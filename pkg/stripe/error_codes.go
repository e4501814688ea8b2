package stripe

import "encoding/json"

// ErrorType is the "type" discriminator of an API error envelope.
type ErrorType string

// Known error types.
const (
	ErrorTypeAPI            ErrorType = "api_error"
	ErrorTypeAPIConnection  ErrorType = "api_connection_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeCard           ErrorType = "card_error"
	ErrorTypeIdempotency    ErrorType = "idempotency_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
	ErrorTypeValidation     ErrorType = "validation_error"
	ErrorTypeUnknown        ErrorType = "unknown"
)

var knownErrorTypes = map[ErrorType]struct{}{
	ErrorTypeAPI:            {},
	ErrorTypeAPIConnection:  {},
	ErrorTypeAuthentication: {},
	ErrorTypeCard:           {},
	ErrorTypeIdempotency:    {},
	ErrorTypeInvalidRequest: {},
	ErrorTypeRateLimit:      {},
	ErrorTypeValidation:     {},
}

// UnmarshalJSON decodes unrecognized error types to ErrorTypeUnknown.
func (t *ErrorType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		*t = ErrorTypeUnknown

		return nil //nolint:nilerr // unknown shapes map to the default
	}

	if _, ok := knownErrorTypes[ErrorType(raw)]; !ok {
		*t = ErrorTypeUnknown

		return nil
	}

	*t = ErrorType(raw)

	return nil
}

// ErrorCode is the optional "code" of an API error envelope.
type ErrorCode string

// Known error codes.
const (
	ErrorCodeAccountAlreadyExists         ErrorCode = "account_already_exists"
	ErrorCodeAmountTooLarge               ErrorCode = "amount_too_large"
	ErrorCodeAmountTooSmall               ErrorCode = "amount_too_small"
	ErrorCodeAPIKeyExpired                ErrorCode = "api_key_expired"
	ErrorCodeBalanceInsufficient          ErrorCode = "balance_insufficient"
	ErrorCodeCardDeclined                 ErrorCode = "card_declined"
	ErrorCodeChargeAlreadyCaptured        ErrorCode = "charge_already_captured"
	ErrorCodeChargeAlreadyRefunded        ErrorCode = "charge_already_refunded"
	ErrorCodeChargeExpiredForCapture      ErrorCode = "charge_expired_for_capture"
	ErrorCodeEmailInvalid                 ErrorCode = "email_invalid"
	ErrorCodeExpiredCard                  ErrorCode = "expired_card"
	ErrorCodeIdempotencyKeyInUse          ErrorCode = "idempotency_key_in_use"
	ErrorCodeIncorrectCVC                 ErrorCode = "incorrect_cvc"
	ErrorCodeIncorrectNumber              ErrorCode = "incorrect_number"
	ErrorCodeInvalidChargeAmount          ErrorCode = "invalid_charge_amount"
	ErrorCodeInvalidCVC                   ErrorCode = "invalid_cvc"
	ErrorCodeInvalidExpiryMonth           ErrorCode = "invalid_expiry_month"
	ErrorCodeInvalidExpiryYear            ErrorCode = "invalid_expiry_year"
	ErrorCodeInvalidNumber                ErrorCode = "invalid_number"
	ErrorCodeMissing                      ErrorCode = "missing"
	ErrorCodeParameterInvalidEmpty        ErrorCode = "parameter_invalid_empty"
	ErrorCodeParameterInvalidInteger      ErrorCode = "parameter_invalid_integer"
	ErrorCodeParameterMissing             ErrorCode = "parameter_missing"
	ErrorCodeParameterUnknown             ErrorCode = "parameter_unknown"
	ErrorCodePaymentIntentUnexpectedState ErrorCode = "payment_intent_unexpected_state"
	ErrorCodeProcessingError              ErrorCode = "processing_error"
	ErrorCodeRateLimit                    ErrorCode = "rate_limit"
	ErrorCodeResourceAlreadyExists        ErrorCode = "resource_already_exists"
	ErrorCodeResourceMissing              ErrorCode = "resource_missing"
	ErrorCodeSecretKeyRequired            ErrorCode = "secret_key_required"
	ErrorCodeTestmodeChargesOnly          ErrorCode = "testmode_charges_only"
	ErrorCodeURLInvalid                   ErrorCode = "url_invalid"
	ErrorCodeUnknown                      ErrorCode = "unknown"
)

var knownErrorCodes = map[ErrorCode]struct{}{
	ErrorCodeAccountAlreadyExists:         {},
	ErrorCodeAmountTooLarge:               {},
	ErrorCodeAmountTooSmall:               {},
	ErrorCodeAPIKeyExpired:                {},
	ErrorCodeBalanceInsufficient:          {},
	ErrorCodeCardDeclined:                 {},
	ErrorCodeChargeAlreadyCaptured:        {},
	ErrorCodeChargeAlreadyRefunded:        {},
	ErrorCodeChargeExpiredForCapture:      {},
	ErrorCodeEmailInvalid:                 {},
	ErrorCodeExpiredCard:                  {},
	ErrorCodeIdempotencyKeyInUse:          {},
	ErrorCodeIncorrectCVC:                 {},
	ErrorCodeIncorrectNumber:              {},
	ErrorCodeInvalidChargeAmount:          {},
	ErrorCodeInvalidCVC:                   {},
	ErrorCodeInvalidExpiryMonth:           {},
	ErrorCodeInvalidExpiryYear:            {},
	ErrorCodeInvalidNumber:                {},
	ErrorCodeMissing:                      {},
	ErrorCodeParameterInvalidEmpty:        {},
	ErrorCodeParameterInvalidInteger:      {},
	ErrorCodeParameterMissing:             {},
	ErrorCodeParameterUnknown:             {},
	ErrorCodePaymentIntentUnexpectedState: {},
	ErrorCodeProcessingError:              {},
	ErrorCodeRateLimit:                    {},
	ErrorCodeResourceAlreadyExists:        {},
	ErrorCodeResourceMissing:              {},
	ErrorCodeSecretKeyRequired:            {},
	ErrorCodeTestmodeChargesOnly:          {},
	ErrorCodeURLInvalid:                   {},
}

// UnmarshalJSON decodes unrecognized error codes to ErrorCodeUnknown.
func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		*c = ErrorCodeUnknown

		return nil //nolint:nilerr // unknown shapes map to the default
	}

	if _, ok := knownErrorCodes[ErrorCode(raw)]; !ok {
		*c = ErrorCodeUnknown

		return nil
	}

	*c = ErrorCode(raw)

	return nil
}
