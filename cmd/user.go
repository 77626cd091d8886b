package cmd

import (
	"fmt"
	"os"

	"editorial/internal/dto"

	"github.com/spf13/cobra"
)

var (
	newUsername string
	newPassword string
	newNickname string
	newRole     string
)

// createUserCmd 创建后台用户，用于系统初始化时创建管理员
var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "创建后台用户",
	Run: func(cmd *cobra.Command, args []string) {
		app := mustInitialize()

		user, err := app.users.CreateUser(&dto.UserCreateRequest{
			Username: newUsername,
			Password: newPassword,
			Nickname: newNickname,
			Role:     newRole,
		})
		if err != nil {
			fmt.Printf("创建用户失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("用户创建成功 id=%d username=%s role=%s\n", user.ID, user.Username, user.Role)
	},
}

func init() {
	createUserCmd.Flags().StringVarP(&newUsername, "username", "u", "", "用户名")
	createUserCmd.Flags().StringVarP(&newPassword, "password", "p", "", "密码")
	createUserCmd.Flags().StringVarP(&newNickname, "nickname", "n", "", "昵称")
	createUserCmd.Flags().StringVarP(&newRole, "role", "r", "admin", "角色(admin/editor)")
	createUserCmd.MarkFlagRequired("username")
	createUserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createUserCmd)
}
