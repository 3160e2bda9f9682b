package ui

import (
	"embed"
	"html/template"
	"io"
)

// DefaultTitle はページのタイトル
const DefaultTitle = "Events"

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Title string
	Body  template.HTML
}

// WritePage はテーブルの現在の内容でページ全体を書き出す
// テーブル本体は Table.HTML でエスケープ済みのものを埋め込む
func WritePage(w io.Writer, title string, t *Table) error {
	body, err := t.HTML()
	if err != nil {
		return err
	}
	return pageTemplate.ExecuteTemplate(w, "index.html", pageData{
		Title: title,
		Body:  body,
	})
}
