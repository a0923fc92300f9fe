package cli

import (
	"fmt"

	"fitstudio/internal/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var registerRole string

var registerCmd = &cobra.Command{
	Use:   "register [username] [password]",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		user, err := app.Auth.Register(cmd.Context(), args[0], args[1], domain.Role(registerRole))
		if err != nil {
			return err
		}

		color.Green("✅ Registered %s (%s)", user.Username, user.Role)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [username] [password]",
	Short: "Log in and remember the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		user, err := app.Auth.Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if err := app.persistLogin(cmd.Context(), user.ID); err != nil {
			return err
		}

		color.Green("✅ Logged in as %s (%s)", user.Username, user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		app.Auth.Logout(cmd.Context())
		if err := app.clearLogin(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		user := app.Auth.CurrentUser()
		if user == nil {
			fmt.Println("Not logged in")
			return nil
		}
		fmt.Printf("%s (%s)\n", user.Username, user.Role)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerRole, "role", string(domain.RoleClient), "account role: trainer or client")
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
