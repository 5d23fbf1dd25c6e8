package i18n

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
)

// UT holds the translators for validation messages. English is the fallback.
var UT = ut.New(en.New(), en.New(), ja.New())
