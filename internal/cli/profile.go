package cli

import (
	"fmt"

	"fitstudio/internal/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	profileName      string
	profileEmail     string
	profilePhone     string
	profileWaterGoal float64
	goalWeight       float64
	goalBodyFat      float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show and edit the user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the logged-in user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		user := app.Auth.CurrentUser()
		fmt.Printf("%s (%s)\n", color.CyanString(user.Username), user.Role)
		fmt.Printf("  name:  %s\n", user.Profile.FullName)
		fmt.Printf("  email: %s\n", user.Profile.Email)
		fmt.Printf("  phone: %s\n", user.Profile.Phone)
		fmt.Printf("  water goal: %.1f l/day\n", user.Profile.WaterGoalLiters)
		if program := app.Clients.AssignedProgram(cmd.Context(), user); program != nil {
			fmt.Printf("  program: %s\n", program.Name)
		} else {
			fmt.Println("  program: no program")
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields (only the flags you pass change)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		profile := domain.Profile{
			FullName:        profileName,
			Email:           profileEmail,
			Phone:           profilePhone,
			WaterGoalLiters: profileWaterGoal,
			Goals: domain.Goals{
				Weight:  goalWeight,
				BodyFat: goalBodyFat,
			},
		}
		if err := app.Clients.SaveProfile(cmd.Context(), profile); err != nil {
			return err
		}
		color.Green("✅ Profile saved")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "full name")
	profileSetCmd.Flags().StringVar(&profileEmail, "email", "", "email")
	profileSetCmd.Flags().StringVar(&profilePhone, "phone", "", "phone")
	profileSetCmd.Flags().Float64Var(&profileWaterGoal, "water-goal", 0, "daily water goal, liters")
	profileSetCmd.Flags().Float64Var(&goalWeight, "goal-weight", 0, "target body weight")
	profileSetCmd.Flags().Float64Var(&goalBodyFat, "goal-bodyfat", 0, "target body fat percent")
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
