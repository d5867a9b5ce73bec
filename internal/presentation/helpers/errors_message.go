package helpers

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var translator ut.Translator

func init() {
	eng := en.New()
	uni := ut.New(eng, eng)
	translator, _ = uni.GetTranslator("en")
}

// GetErrorMessages flattens validator errors into one readable string.
func GetErrorMessages(validate *validator.Validate, errs error) string {
	en_translations.RegisterDefaultTranslations(validate, translator)

	var errorMessages []string
	for _, e := range errs.(validator.ValidationErrors) {
		errorMessages = append(errorMessages, e.Translate(translator))
	}
	return strings.Join(errorMessages, ", ")
}
