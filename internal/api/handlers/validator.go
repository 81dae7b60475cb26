package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// Сообщения для тегов, которые видит пользователь формы
var customMessages = map[string]string{
	"required": "Este campo es requerido",
	"email":    "Ingrese un correo electrónico válido",
	"oneof":    "Valor no permitido",
}

// sizeMessages сообщения для ограничений размера; {0} - параметр тега
type sizeMessages struct {
	text   string // строки, длина в символах
	items  string // срезы и словари
	number string
}

var sizedMessages = map[string]sizeMessages{
	"min": {"Debe tener al menos {0} caracteres", "Debe agregar al menos {0} elemento(s)", "Debe ser mayor o igual a {0}"},
	"gte": {"Debe tener al menos {0} caracteres", "Debe agregar al menos {0} elemento(s)", "Debe ser mayor o igual a {0}"},
	"max": {"No puede exceder {0} caracteres", "No puede tener más de {0} elementos", "No puede ser mayor a {0}"},
	"lte": {"No puede exceder {0} caracteres", "No puede tener más de {0} elementos", "No puede ser mayor a {0}"},
	"gt":  {"Debe tener más de {0} caracteres", "Debe agregar más de {0} elementos", "Debe ser mayor a {0}"},
}

// Validator проверка HTTP моделей по тегам validate
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator создает валидатор с переводами сообщений
// В ошибках используются имена полей из json тегов
func NewValidator() *Validator {
	locale := en.New()
	uni := ut.New(locale, locale)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, text := range customMessages {
		registerTranslation(validate, translator, tag, text)
	}
	for tag, msgs := range sizedMessages {
		registerSizedTranslation(validate, translator, tag, msgs)
	}

	return &Validator{validate: validate, translator: translator}
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// registerSizedTranslation сообщение выбирается по виду поля: строка, коллекция или число
func registerSizedTranslation(validate *validator.Validate, translator ut.Translator, tag string, msgs sizeMessages) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error {
			for kind, text := range map[string]string{"text": msgs.text, "items": msgs.items, "number": msgs.number} {
				if err := t.Add(tag+"-"+kind, text, true); err != nil {
					return err
				}
			}
			return nil
		},
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag+"-"+sizeKind(fe.Kind()), fe.Param())
			return s
		},
	)
}

func sizeKind(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return "text"
	case reflect.Slice, reflect.Array, reflect.Map:
		return "items"
	default:
		return "number"
	}
}

// Struct проверяет модель; nil, если ошибок нет
// Ключ ошибки - путь поля без имени корневой структуры: participants[0].email
func (v *Validator) Struct(s interface{}) *domain.ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verr := domain.NewValidationError()

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		verr.Add("body", err.Error())
		return verr
	}

	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe.Namespace()), fe.Translate(v.translator))
	}
	return verr
}

func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
