package invoice

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrNilForm signals a caller bug: the handler passed no form values at all.
// Ordinary user mistakes never surface as an error, they come back as FieldErrors.
var ErrNilForm = errors.New("nil form values")

const (
	MsgSelectCustomer = "Please select a customer."
	MsgAmountTooSmall = "Please enter an amount greater than $0."
	MsgSelectStatus   = "Please select an invoice status."
	MsgCreateFailed   = "Missing Fields. Failed to Create Invoice."
	MsgUpdateFailed   = "Missing Fields. Failed to Update Invoice."
)

// FormValues is the raw, untyped form submission.
type FormValues map[string]string

type Fields struct {
	CustomerID string  `validate:"required"`
	Amount     float64 `validate:"gt=0"`
	Status     string  `validate:"oneof=pending paid"`
}

// FieldErrors maps each invalid field to its ordered error messages.
type FieldErrors struct {
	Fields  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

var validate = validator.New()

// ParseForm coerces raw form values into typed fields. Exactly one of the
// first two results is non-nil unless the invocation itself was malformed.
func ParseForm(raw FormValues, failMessage string) (*Fields, *FieldErrors, error) {
	if raw == nil {
		return nil, nil, ErrNilForm
	}

	fe := &FieldErrors{Fields: map[string][]string{}, Message: failMessage}

	f := Fields{
		CustomerID: strings.TrimSpace(raw["customerId"]),
		Status:     strings.TrimSpace(raw["status"]),
	}

	if v, err := strconv.ParseFloat(strings.TrimSpace(raw["amount"]), 64); err == nil {
		f.Amount = v
	} else {
		fe.Fields["amount"] = append(fe.Fields["amount"], MsgAmountTooSmall)
	}

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, nil, err
		}
		for _, ve := range verrs {
			switch ve.StructField() {
			case "CustomerID":
				fe.Fields["customerId"] = append(fe.Fields["customerId"], MsgSelectCustomer)
			case "Amount":
				// already reported when the value did not parse
				if _, seen := fe.Fields["amount"]; !seen {
					fe.Fields["amount"] = append(fe.Fields["amount"], MsgAmountTooSmall)
				}
			case "Status":
				fe.Fields["status"] = append(fe.Fields["status"], MsgSelectStatus)
			}
		}
	}

	if len(fe.Fields) > 0 {
		return nil, fe, nil
	}
	return &f, nil, nil
}
