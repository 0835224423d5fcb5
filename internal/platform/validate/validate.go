// Package validate wraps go-playground/validator with english messages and
// env-key field names, and maps failures to project errors
package validate

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	perr "bitextclean/internal/platform/errors"
	"bitextclean/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError aliases validator.FieldError
type FieldError = validator.FieldError

// Svc holds a singleton validator and translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *Svc
)

// ReportExts lists the report file extensions the report_ext tag accepts
var ReportExts = []string{".json", ".yaml", ".yml"}

// Init builds the singleton with english translations; field names come from
// the env tag so messages point at the variable the operator has to fix
func Init() *Svc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("env")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")
		registerShort(v, trans, "nefield", "{0} must differ from {1}")

		_ = v.RegisterValidation("report_ext", reportExt)
		registerReportExt(v, trans)

		vSvc = &Svc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the singleton, initializing on first use
func Get() *Svc { return Init() }

// Struct validates v and returns a ErrorCodeValidation error naming the first bad field
func Struct(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Named("validate").Error().Err(inv).Msg("validator internal error")
		return perr.Wrap(inv, perr.ErrorCodeUnknown, "validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, msg), field)
}

// FieldAndMessage returns the first field and its translated message
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// reportExt accepts an empty string or a path whose extension is in ReportExts
func reportExt(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	for _, e := range ReportExts {
		if ext == e {
			return true
		}
	}
	return false
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

func registerReportExt(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("report_ext", trans,
		func(ut ut.Translator) error {
			return ut.Add("report_ext", "{0} must end in .json, .yaml or .yml", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("report_ext", fe.Field())
			return msg
		},
	)
}
