package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"editorial/internal/model"
	"editorial/utils"

	"github.com/spf13/cobra"
)

var exportDir string

// exportCmd 导出文章为Markdown文件
// 正文本身是Markdown时原样落盘，是HTML时转回Markdown
var exportCmd = &cobra.Command{
	Use:   "export-markdown",
	Short: "把全部文章导出为Markdown文件",
	Run: func(cmd *cobra.Command, args []string) {
		app := mustInitialize()

		if err := os.MkdirAll(exportDir, 0o755); err != nil {
			fmt.Printf("创建导出目录失败: %v\n", err)
			os.Exit(1)
		}

		var articles []model.Article
		if err := app.db.Find(&articles).Error; err != nil {
			fmt.Printf("查询文章失败: %v\n", err)
			os.Exit(1)
		}

		var exported int
		for _, article := range articles {
			content := article.Content
			if looksLikeHTML(content) {
				converted, err := utils.ConvertHTMLToMarkdown(content)
				if err != nil {
					fmt.Printf("文章 %d 转换失败，按原文导出: %v\n", article.ID, err)
				} else {
					content = converted
				}
			}

			body := fmt.Sprintf("# %s\n\n%s\n", article.Title, content)
			path := filepath.Join(exportDir, article.Slug+".md")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				fmt.Printf("写入文件 %s 失败: %v\n", path, err)
				continue
			}
			exported++
		}
		fmt.Printf("导出完成，共%d篇文章写入 %s\n", exported, exportDir)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "./export", "导出目录")
	rootCmd.AddCommand(exportCmd)
}

// looksLikeHTML 粗略判断正文是否为HTML
func looksLikeHTML(content string) bool {
	return len(content) > 0 && content[0] == '<'
}
