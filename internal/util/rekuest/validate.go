package rekuest

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	jaTranslations "github.com/go-playground/validator/v10/translations/ja"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/visitstats/dashboard/internal/constant"
	"github.com/visitstats/dashboard/internal/pkg/apierr"
	"github.com/visitstats/dashboard/internal/util"
	"github.com/visitstats/dashboard/internal/util/i18n"
)

var Validate = util.NewValidator()

func init() {
	entr, _ := i18n.UT.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	jatr, _ := i18n.UT.GetTranslator("ja")
	if err := jaTranslations.RegisterDefaultTranslations(Validate, jatr); err != nil {
		log.Warn().Err(err).Str("locale", "ja").Msg("could not register translation")
	}

	messages := map[ut.Translator]string{
		entr: "{0} must not contain control characters or surrounding spaces",
		jatr: "{0}に制御文字や前後の空白を含めることはできません",
	}
	for tr, message := range messages {
		message := message
		err := Validate.RegisterTranslation("printabletrimmed", tr, func(ut ut.Translator) error {
			return ut.Add("printabletrimmed", message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("printabletrimmed", fe.Field())
			return t
		})
		if err != nil {
			log.Warn().Err(err).Str("locale", tr.Locale()).Msg("could not register translation for printabletrimmed")
		}
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// TranslatorFromCtx returns the translator negotiated by middlewares.InjectI18n,
// falling back to English.
func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if t, ok := ctx.Locals(constant.ContextKeyTranslator).(ut.Translator); ok && t != nil {
		return t
	}
	return i18n.UT.GetFallback()
}

// translate translates errors into ErrorResponses
func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		trans = append(trans, &ErrorResponse{
			Field:     field,
			Violation: fe.Tag(),
			Message:   fe.Translate(utt),
		})
	}
	return trans
}

func validateStruct(ctx *fiber.Ctx, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(err)
	}
	return translate(TranslatorFromCtx(ctx), errs)
}

// ValidQuery parses the query string of ctx into dest using fiber#QueryParser(),
// and validates it using the validator singleton. dest shall always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if errs := validateStruct(ctx, dest); errs != nil {
		return apierr.NewInvalidViolations(errs)
	}

	return nil
}
