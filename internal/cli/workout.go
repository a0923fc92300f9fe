package cli

import (
	"fmt"

	"fitstudio/internal/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var workoutNotes string

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Track workout completion",
}

// workoutCompleteCmd snapshots the program's exercise list as the result set,
// with the prescribed sets/reps/weight recorded as performed. Nothing is
// persisted until this command runs; an abandoned workout leaves no trace.
var workoutCompleteCmd = &cobra.Command{
	Use:   "complete [program-id]",
	Short: "Record a finished workout for a program",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		program, err := app.Trainers.GetProgramByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var results []domain.ExerciseResult
		if program != nil {
			for _, ex := range program.Exercises {
				result := domain.ExerciseResult{ExerciseID: ex.ID, Name: ex.Name}
				for i := 0; i < ex.Sets; i++ {
					result.Sets = append(result.Sets, domain.SetResult{Reps: ex.Reps, Weight: ex.Weight})
				}
				results = append(results, result)
			}
		}

		entry, err := app.Clients.CompleteWorkout(cmd.Context(), args[0], results, workoutNotes)
		if err != nil {
			return err
		}
		color.Green("✅ Workout logged (%s)", entry.ID)
		return nil
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the logged-in user's workout history",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		user := app.Auth.CurrentUser()
		history, err := app.Clients.WorkoutHistory(cmd.Context(), user.ID)
		if err != nil {
			return err
		}
		for _, w := range history {
			fmt.Printf("%s  program %s  %d exercises  %s\n",
				w.PerformedAt.Format("2006-01-02 15:04"), w.ProgramID, len(w.Results), w.Notes)
		}
		return nil
	},
}

func init() {
	workoutCompleteCmd.Flags().StringVar(&workoutNotes, "notes", "", "free-text notes")
	workoutCmd.AddCommand(workoutCompleteCmd)
	workoutCmd.AddCommand(workoutHistoryCmd)
	rootCmd.AddCommand(workoutCmd)
}
