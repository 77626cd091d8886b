package utils

import (
	"errors"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday"
)

// ErrEmptyContent 内容为空
var ErrEmptyContent = errors.New("内容不能为空")

var sanitizePolicy = bluemonday.UGCPolicy()

// RenderHTML 把Markdown正文渲染成净化后的HTML
// 一致性引擎不解析正文，这里只服务于展示层和搜索索引
func RenderHTML(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	unsafe := blackfriday.MarkdownCommon([]byte(content))
	return sanitizePolicy.Sanitize(string(unsafe)), nil
}

// ExtractText 从HTML提取纯文本，用于搜索索引
func ExtractText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", ErrEmptyContent
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script,style").Remove()
	return strings.TrimSpace(doc.Text()), nil
}

// ConvertHTMLToMarkdown 把HTML正文转回Markdown，用于文章导出
func ConvertHTMLToMarkdown(htmlContent string) (string, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return "", ErrEmptyContent
	}

	converter := md.NewConverter("", true, nil)
	return converter.ConvertString(htmlContent)
}
