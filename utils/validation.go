package utils

import (
	"csrfdemo/models"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TransferInput is the presenter-facing shape of a transfer request.
// Amount 0 means "use the origin's default".
type TransferInput struct {
	Origin string `json:"origin" validate:"required,oneof=legitimate malicious"`
	Amount int64  `json:"amount" validate:"gte=0"`
}

// Request fills in the origin's default amount. Call it after ValidateStruct.
func (in TransferInput) Request() models.TransferRequest {
	req := models.TransferRequest{Origin: models.Origin(in.Origin), Amount: in.Amount}
	if req.Amount == 0 {
		req.Amount = req.Origin.DefaultAmount()
	}
	return req
}

// ModeInput is the presenter-facing shape of a mode switch
type ModeInput struct {
	Mode string `json:"mode" validate:"required,oneof=vulnerable protected"`
}

// ValidateStruct runs the struct's validate tags and returns a readable error
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}
