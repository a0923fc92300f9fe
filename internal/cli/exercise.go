package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exerciseMuscleGroup string
	exerciseEquipment   string
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage the exercise library",
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		exercises, err := app.Library.ListExercises(cmd.Context())
		if err != nil {
			return err
		}
		for _, ex := range exercises {
			fmt.Printf("%s  %s (%s, %s)\n", ex.ID, color.CyanString(ex.Name), ex.MuscleGroup, ex.Equipment)
		}
		return nil
	},
}

var exerciseCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Add an exercise to the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		ex, err := app.Library.CreateExercise(cmd.Context(), args[0], exerciseMuscleGroup, exerciseEquipment)
		if err != nil {
			return err
		}
		color.Green("✅ Exercise %s created (%s)", ex.Name, ex.ID)
		return nil
	},
}

func init() {
	exerciseCreateCmd.Flags().StringVar(&exerciseMuscleGroup, "muscle", "", "muscle group")
	exerciseCreateCmd.Flags().StringVar(&exerciseEquipment, "equipment", "", "equipment tag")
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseCreateCmd)
	rootCmd.AddCommand(exerciseCmd)
}
