package cli

import (
	"github.com/spf13/cobra"

	"github.com/Blessan-Alex/street-feast-rom/internal/wire"
)

// LoginCmd returns the login command.
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as the admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			return wire.AuthAdapter().Login(cmd.Context(), email, password)
		},
	}
	cmd.Flags().String("email", "", "admin email")
	cmd.Flags().String("password", "", "admin password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

// LogoutCmd returns the logout command.
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AuthAdapter().Logout(cmd.Context())
		},
	}
}

// WhoamiCmd returns the whoami command.
func WhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.AuthAdapter().WhoAmI(cmd.Context())
		},
	}
}
