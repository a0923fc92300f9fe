package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var programDescription string

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Manage workout programs",
}

var programListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		programs, err := app.Trainers.ListPrograms(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range programs {
			fmt.Printf("%s  %s (%d exercises)\n", p.ID, color.CyanString(p.Name), len(p.Exercises))
			for _, ex := range p.Exercises {
				fmt.Printf("    %s  %s  %dx%d @ %.1fkg, rest %ds\n",
					ex.ID, ex.Name, ex.Sets, ex.Reps, ex.Weight, ex.RestSeconds)
			}
		}
		return nil
	},
}

var programCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		program, err := app.Trainers.AddProgram(cmd.Context(), args[0], programDescription)
		if err != nil {
			return err
		}
		color.Green("✅ Program %s created (%s)", program.Name, program.ID)
		return nil
	},
}

var programAssignCmd = &cobra.Command{
	Use:   "assign [username] [program-id]",
	Short: "Assign a program to a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		if err := app.Trainers.AssignProgram(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		color.Green("✅ Assigned program to %s", args[0])
		return nil
	},
}

var programAddExerciseCmd = &cobra.Command{
	Use:   "add-exercise [program-id] [exercise-id]",
	Short: "Add a library exercise to a program",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		if err := app.Trainers.AddExerciseToProgram(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		color.Green("✅ Exercise added")
		return nil
	},
}

var programRemoveExerciseCmd = &cobra.Command{
	Use:   "remove-exercise [program-id] [exercise-id]",
	Short: "Remove an exercise from a program",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		if err := app.Trainers.RemoveExerciseFromProgram(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		color.Green("✅ Exercise removed")
		return nil
	},
}

var programSetCmd = &cobra.Command{
	Use:   "set [program-id] [exercise-id] [field] [value]",
	Short: "Edit one field of a program exercise (sets, reps, weight, rest, notes, name, completed)",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		if err := app.Trainers.UpdateExerciseInProgram(cmd.Context(), args[0], args[1], args[2], args[3]); err != nil {
			return err
		}
		color.Green("✅ Updated %s", args[2])
		return nil
	},
}

func init() {
	programCreateCmd.Flags().StringVar(&programDescription, "desc", "", "program description")
	programCmd.AddCommand(programListCmd)
	programCmd.AddCommand(programCreateCmd)
	programCmd.AddCommand(programAssignCmd)
	programCmd.AddCommand(programAddExerciseCmd)
	programCmd.AddCommand(programRemoveExerciseCmd)
	programCmd.AddCommand(programSetCmd)
	rootCmd.AddCommand(programCmd)
}
