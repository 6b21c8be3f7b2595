package main

import (
	"bytes"
	"fmt"
	"github.com/jamesungureanu/LifeTune/internal/contexthelpers"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/game"
	"github.com/jamesungureanu/LifeTune/ui"
	"github.com/shopspring/decimal"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
)

type BaseTemplateData struct {
	CurrentPath string
	Seated      bool
}

func newBaseTemplateData(r *http.Request) BaseTemplateData {
	ctx := r.Context()
	return BaseTemplateData{
		CurrentPath: contexthelpers.CurrentPath(ctx),
		Seated:      contexthelpers.TableID(ctx) != "",
	}
}

var templateFuncs = template.FuncMap{
	// These are overridden per request in render.
	"nonce": func() string {
		panic("not implemented")
	},
	"csrf": func() string {
		panic("not implemented")
	},
	"money": func(v any) string {
		switch m := v.(type) {
		case int:
			return "$" + strconv.Itoa(m)
		case decimal.Decimal:
			return "$" + m.StringFixedBank(0)
		default:
			return fmt.Sprintf("$%v", m)
		}
	},
	// dict passes several values to a nested template.
	"dict": func(pairs ...any) (map[string]any, error) {
		if len(pairs)%2 != 0 {
			return nil, errors.New("dict needs key value pairs")
		}
		m := make(map[string]any, len(pairs)/2) //nolint:mnd // pairs
		for i := 0; i < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				return nil, errors.New("dict key is not a string", slog.Any("key", pairs[i]))
			}
			m[key] = pairs[i+1]
		}
		return m, nil
	},
	"isCurrent": func(v game.View, id int) bool {
		p := v.CurrentPlayer()
		return p != nil && p.ID == id && v.State == game.StatePlaying
	},
	"can": func(v game.View, kind string) bool {
		return v.Can(game.ActionKind(kind))
	},
}

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to directory inside ui/templates/pages folder. It has to include a template named "page".
func (app *application) pageTemplate(pageName string) (*template.Template, error) {
	t, err := template.New(pageName).Funcs(templateFuncs).ParseFS(ui.Files,
		"templates/base.gohtml",
		fmt.Sprintf("templates/pages/%s/*.gohtml", pageName),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse templates", slog.String("page", pageName))
	}
	return t, nil
}

// render executes the "base" template of the page, or the named partial when one is given.
func (app *application) render(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	file string,
	partial string,
	data any,
) {
	var (
		err error
		t   *template.Template
	)

	if t, err = app.pageTemplate(file); err != nil {
		app.serverError(w, r, errors.Wrap(err, "parse template", slog.String("template", file)))
		return
	}

	buf := new(bytes.Buffer)
	ctx := r.Context()
	nonce := fmt.Sprintf("nonce=\"%s\"", contexthelpers.CSPNonce(ctx))
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", contexthelpers.CSRFToken(ctx))
	t.Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // we trust the nonce since it's not provided by user.
		},
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // we trust the csrf since it's not provided by user.
		},
	})
	name := "base"
	if partial != "" {
		name = partial
	}
	if err = t.ExecuteTemplate(buf, name, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template", slog.String("template", file)))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	_, _ = buf.WriteTo(w)
}
