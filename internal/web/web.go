package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"meetup-web/internal/view"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates 解析內嵌模板，名稱為檔名（list.tmpl、detail.tmpl、error.tmpl）
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"isSelected": func(current, option view.FilterType) bool {
			return current == option
		},
	}).ParseFS(templateFS, "templates/*.tmpl")
}

// Static 提供 /static 底下的樣式檔
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
