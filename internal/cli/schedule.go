package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	scheduleDate        string
	scheduleTime        string
	scheduleCapacity    string
	scheduleDescription string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage and book scheduled classes",
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scheduled classes",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		sessions, err := app.Clients.ListSessions(cmd.Context())
		if err != nil {
			return err
		}
		for _, s := range sessions {
			fmt.Printf("%s  %s  %s %s  (%d/%d booked)\n",
				s.ID, color.CyanString(s.Title), s.Date, s.Time, len(s.ParticipantIDs), s.Capacity)
		}
		return nil
	},
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Schedule a new class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		s, err := app.Trainers.CreateSession(cmd.Context(), args[0], scheduleDate, scheduleTime, scheduleCapacity, scheduleDescription)
		if err != nil {
			return err
		}
		color.Green("✅ Session %s created (%s)", s.Title, s.ID)
		return nil
	},
}

var sessionBookCmd = &cobra.Command{
	Use:   "book [session-id]",
	Short: "Book a spot in a class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		if err := app.Clients.BookSession(cmd.Context(), args[0]); err != nil {
			return err
		}
		color.Green("✅ Booked")
		return nil
	},
}

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage and join training groups",
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List training groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		groups, err := app.Clients.ListGroups(cmd.Context())
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("%s  %s  %s %s  (%d/%d members)\n",
				g.ID, color.CyanString(g.Title), g.Date, g.Time, len(g.MemberIDs), g.Capacity)
		}
		return nil
	},
}

var groupCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a training group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		g, err := app.Trainers.CreateGroup(cmd.Context(), args[0], scheduleDate, scheduleTime, scheduleCapacity, scheduleDescription)
		if err != nil {
			return err
		}
		color.Green("✅ Group %s created (%s)", g.Title, g.ID)
		return nil
	},
}

var groupJoinCmd = &cobra.Command{
	Use:   "join [group-id]",
	Short: "Join a training group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		if err := app.Clients.JoinGroup(cmd.Context(), args[0]); err != nil {
			return err
		}
		color.Green("✅ Joined")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{sessionCreateCmd, groupCreateCmd} {
		c.Flags().StringVar(&scheduleDate, "date", "", "date, e.g. 2026-09-14")
		c.Flags().StringVar(&scheduleTime, "time", "", "time of day, e.g. 18:30")
		c.Flags().StringVar(&scheduleCapacity, "capacity", "10", "maximum participants")
		c.Flags().StringVar(&scheduleDescription, "desc", "", "description")
	}
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionCreateCmd)
	sessionCmd.AddCommand(sessionBookCmd)
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupJoinCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(groupCmd)
}
