package commons

import "github.com/shopspring/decimal"

// Response is the envelope shared by the accounts endpoints. Data is only
// meaningful when Success is true.
type Response[T any] struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Data     *T               `json:"data,omitempty"`
	Errors   []string         `json:"errors,omitempty"`
	NewSaldo *decimal.Decimal `json:"newSaldo,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// WithNewSaldo attaches the post-transaction balance some endpoints report.
func (r Response[T]) WithNewSaldo(saldo decimal.Decimal) Response[T] {
	r.NewSaldo = &saldo
	return r
}

// Value returns the payload, or the zero value when the envelope is not a
// success or carries no data.
func (r Response[T]) Value() T {
	var zero T
	if !r.Success || r.Data == nil {
		return zero
	}
	return *r.Data
}

// Map converts the payload of an envelope, keeping its status fields.
func Map[T, U any](in Response[T], fn func(T) U) Response[U] {
	out := Response[U]{
		Success:  in.Success,
		Message:  in.Message,
		Errors:   in.Errors,
		NewSaldo: in.NewSaldo,
	}
	if in.Data != nil {
		mapped := fn(*in.Data)
		out.Data = &mapped
	}
	return out
}
