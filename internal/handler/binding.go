package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tms/internal/validation"
)

// bindingTags exposes catalog rules as struct tags, e.g. `binding:"required,pincode"`.
var bindingTags = map[string]validation.RuleName{
	"pan":            validation.RulePAN,
	"gstin":          validation.RuleGST,
	"ifsc":           validation.RuleIFSC,
	"pincode":        validation.RulePincode,
	"mobile":         validation.RuleMobile,
	"aadhaar":        validation.RuleAadhaar,
	"vehicle_number": validation.RuleVehicleNumber,
}

// RegisterValidators registers the catalog tags on v.
func RegisterValidators(v *validator.Validate, engine *validation.Engine) error {
	for tag, rule := range bindingTags {
		if err := v.RegisterValidation(tag, catalogFunc(engine, rule)); err != nil {
			return fmt.Errorf("registering %q validator: %w", tag, err)
		}
	}
	return nil
}

// RegisterBindingValidators registers the catalog tags on gin's validator.
func RegisterBindingValidators(engine *validation.Engine) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return RegisterValidators(v, engine)
}

func catalogFunc(engine *validation.Engine, rule validation.RuleName) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		// Emptiness is left to the required tag.
		return engine.ValidateField(fl.Field().String(), rule, false).IsValid
	}
}

// bindingMessage turns validator errors on catalog tags into the catalog's
// own message. Other errors keep their default text.
func bindingMessage(engine *validation.Engine, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if name, ok := bindingTags[fe.Tag()]; ok {
			if rule, found := engine.Catalog().GetRule(name); found {
				msgs = append(msgs, rule.Messages.Invalid)
				continue
			}
		}
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}
