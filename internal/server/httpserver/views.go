package httpserver

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
	"golang.org/x/text/language"

	"github.com/visitstats/dashboard/internal/app/appconfig"
	"github.com/visitstats/dashboard/internal/pkg/money"
)

//go:embed views/*.html
var viewsFS embed.FS

// LayoutMain wraps every page; pages are rendered into its {{embed}}.
const LayoutMain = "layout"

func newViews(conf *appconfig.Config) (*html.Engine, error) {
	formatter, err := money.NewFormatter(conf.Currency, language.English)
	if err != nil {
		return nil, err
	}

	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, err
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("money", formatter.Format)
	engine.AddFunc("currency", formatter.Code)

	return engine, nil
}
