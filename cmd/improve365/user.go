package improve365

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perihassanzadeh/improve365/internal/identity"
	"github.com/perihassanzadeh/improve365/internal/logger"
	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the local user profile",
}

var (
	userName   string
	userPic    string
	userWeight float64
	userHeight float64
)

var userSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		var p model.UserPatch
		flags := cmd.Flags()
		if flags.Changed("name") {
			p.Name = &userName
		}
		if flags.Changed("profile-pic") {
			p.ProfilePic = &userPic
		}
		if flags.Changed("weight") {
			p.Weight = &userWeight
		}
		if flags.Changed("height") {
			p.Height = &userHeight
		}
		if p == (model.UserPatch{}) {
			return fmt.Errorf("set at least one flag")
		}
		patch, err := service.ValidateUserPatch(p)
		if err != nil {
			return err
		}
		return withStore(cmd.Context(), func(e *env) error {
			if err := e.store.UpdateUser(cmd.Context(), patch); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated profile")
			return nil
		})
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(e *env) error {
			d := identity.ResolveCurrent(cmd.Context(), newIdentityProvider(e), logger.Named(e.logger, "identity"))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", d.Name)
			fmt.Fprintf(out, "Avatar: %s\n", d.Avatar)
			if d.Email != "" {
				fmt.Fprintf(out, "Email: %s\n", d.Email)
			}
			if d.JoinDate != "" {
				fmt.Fprintf(out, "Joined: %s\n", d.JoinDate)
			}
			if d.Weight > 0 {
				fmt.Fprintf(out, "Weight: %g kg\n", d.Weight)
			}
			if d.Height > 0 {
				fmt.Fprintf(out, "Height: %g cm\n", d.Height)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userSetCmd, userShowCmd)

	userSetCmd.Flags().StringVar(&userName, "name", "", "Display name")
	userSetCmd.Flags().StringVar(&userPic, "profile-pic", "", "Avatar URL")
	userSetCmd.Flags().Float64Var(&userWeight, "weight", 0, "Weight kg")
	userSetCmd.Flags().Float64Var(&userHeight, "height", 0, "Height cm")
}
