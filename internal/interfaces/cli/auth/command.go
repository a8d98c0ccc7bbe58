// Package auth holds the login, logout, and password commands.
package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"deskline/internal/application/auth/usecases"
	"deskline/internal/interfaces/cli/app"
)

var (
	loginEmail    string
	loginPassword string
	loginRemember bool
)

func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the ticket service",
		Long:  `Authenticate with email and password and store the session locally.`,
		RunE:  runLogin,
	}

	cmd.Flags().StringVarP(&loginEmail, "email", "u", "", "Account email address")
	cmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when omitted)")
	cmd.Flags().BoolVar(&loginRemember, "remember", false, "Remember these credentials for prefill")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	email := loginEmail
	password := loginPassword

	// a remembered login prefills whatever was not passed on the flags
	if email == "" || password == "" {
		if storedEmail, storedPassword, ok := a.Sessions.RememberedCredentials(); ok {
			if email == "" {
				email = storedEmail
			}
			if password == "" {
				password = storedPassword
			}
		}
	}

	if email == "" {
		email, err = promptLine(cmd, "Email: ")
		if err != nil {
			return err
		}
	}
	if password == "" {
		password, err = promptPassword(cmd, "Password: ")
		if err != nil {
			return err
		}
	}

	result, err := a.Login.Execute(cmd.Context(), usecases.LoginCommand{
		Email:    email,
		Password: password,
		Remember: loginRemember,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", result.User.FullName(), result.User.Email)
	return nil
}

func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Logout.Execute(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func NewPasswordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Password management",
	}

	cmd.AddCommand(
		newPasswordChangeCommand(),
		newPasswordForgotCommand(),
		newPasswordResetCommand(),
	)

	return cmd
}

func newPasswordChangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "change",
		Short: "Change the current account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			oldPassword, err := promptPassword(cmd, "Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := promptPassword(cmd, "New password: ")
			if err != nil {
				return err
			}
			confirmation, err := promptPassword(cmd, "Confirm new password: ")
			if err != nil {
				return err
			}

			message, err := a.ChangePassword.Execute(cmd.Context(), usecases.ChangePasswordCommand{
				OldPassword:     oldPassword,
				NewPassword:     newPassword,
				ConfirmPassword: confirmation,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

func newPasswordForgotCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot",
		Short: "Request a password-reset mail",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if email == "" {
				email, err = promptLine(cmd, "Email: ")
				if err != nil {
					return err
				}
			}

			result, err := a.ForgotPassword.Execute(cmd.Context(), usecases.ForgotPasswordCommand{Email: email})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			if result.Link != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Reset link: %s\n", result.Link)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "u", "", "Account email address")
	return cmd
}

func newPasswordResetCommand() *cobra.Command {
	var resetToken string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Complete a password reset with the mailed token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if resetToken == "" {
				resetToken, err = promptLine(cmd, "Reset token: ")
				if err != nil {
					return err
				}
			}
			password, err := promptPassword(cmd, "New password: ")
			if err != nil {
				return err
			}
			confirmation, err := promptPassword(cmd, "Confirm new password: ")
			if err != nil {
				return err
			}

			message, err := a.ResetPassword.Execute(cmd.Context(), usecases.ResetPasswordCommand{
				ResetToken:      resetToken,
				Password:        password,
				ConfirmPassword: confirmation,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&resetToken, "token", "t", "", "Reset token from the mail")
	return cmd
}

func promptLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads without echo when stdin is a terminal and falls
// back to a plain line read otherwise, so piped input keeps working.
func promptPassword(cmd *cobra.Command, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptLine(cmd, label)
	}

	fmt.Fprint(cmd.OutOrStdout(), label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
