// Package profile holds the profile view and edit commands.
package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskline/internal/application/auth/usecases"
	"deskline/internal/domain/upload"
	"deskline/internal/interfaces/cli/app"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit the account profile",
	}

	cmd.AddCommand(
		newShowCommand(),
		newUpdateCommand(),
		newAvatarCommand(),
	)

	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			user, err := a.GetProfile.Execute(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:       %s\n", user.FullName())
			fmt.Fprintf(out, "Email:      %s\n", user.Email)
			fmt.Fprintf(out, "Phone:      %s\n", user.Phone)
			if user.Role != "" {
				fmt.Fprintf(out, "Role:       %s\n", user.Role)
			}
			if user.Department != "" {
				fmt.Fprintf(out, "Department: %s\n", user.Department)
			}
			if user.Division != "" {
				fmt.Fprintf(out, "Division:   %s\n", user.Division)
			}
			if user.AvatarURL != "" {
				fmt.Fprintf(out, "Avatar:     %s\n", user.AvatarURL)
			}
			return nil
		},
	}
}

func newUpdateCommand() *cobra.Command {
	var (
		firstName string
		lastName  string
		phone     string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the editable profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			// unset flags keep the current values
			current := a.Sessions.Current().User
			if firstName == "" {
				firstName = current.FirstName
			}
			if lastName == "" {
				lastName = current.LastName
			}
			if phone == "" {
				phone = current.Phone
			}

			user, err := a.UpdateProfile.Execute(cmd.Context(), usecases.UpdateProfileCommand{
				FirstName: firstName,
				LastName:  lastName,
				Phone:     phone,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated: %s (%s)\n", user.FullName(), user.Phone)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	return cmd
}

func newAvatarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a new profile photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			photo, err := upload.NewAttachment(args[0])
			if err != nil {
				return err
			}

			result, err := a.UploadAvatar.Execute(cmd.Context(), usecases.UploadAvatarCommand{Photo: photo})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Avatar updated: %s\n", result.AvatarURL)
			return nil
		},
	}
}
