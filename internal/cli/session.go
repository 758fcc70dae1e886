package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"drover/internal/state"
)

// sessionCmd groups the session lifecycle commands
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage remote browser sessions",
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new remote browser session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}

		resp, err := client.CreateSession()
		if err != nil {
			return err
		}
		if !resp.Success || resp.SessionID == "" {
			return fmt.Errorf("service did not return a session ID")
		}

		if err := saveSession(resp.SessionID, client.baseURL); err != nil {
			return err
		}

		fmt.Printf("Created session: %s\n", resp.SessionID)
		return nil
	},
}

var sessionUseCmd = &cobra.Command{
	Use:   "use <session-id>",
	Short: "Resume an existing session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}

		sessionID := args[0]

		// Verify the session exists before saving it
		detail, err := client.SessionDetails(sessionID)
		if err != nil {
			return err
		}
		if !detail.Success {
			return fmt.Errorf("session %s is not available", sessionID)
		}

		if err := saveSession(sessionID, client.baseURL); err != nil {
			return err
		}

		fmt.Printf("Resumed session: %s (%s)\n", sessionID, detail.Session.Status)
		return nil
	},
}

var sessionStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}

		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		if err := client.StopSession(sessionID); err != nil {
			return err
		}

		if cwd, err := os.Getwd(); err == nil {
			if err := state.Remove(cwd); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}

		fmt.Printf("Stopped session: %s\n", sessionID)
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List running sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}

		resp, err := client.RunningSessions()
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(resp.Sessions)
		}

		if len(resp.Sessions) == 0 {
			fmt.Println("No running sessions")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tREGION\tCREATED")
		fmt.Fprintln(w, "--\t------\t------\t-------")
		for _, s := range resp.Sessions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Status, s.Region, s.CreatedAt)
		}
		return w.Flush()
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show details of the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClientFromConfig()
		if err != nil {
			return err
		}

		sessionID, err := resolveSession()
		if err != nil {
			return err
		}

		resp, err := client.SessionDetails(sessionID)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(resp.Session)
		}

		s := resp.Session
		fmt.Printf("Session: %s\n", s.ID)
		fmt.Printf("Status:  %s\n", s.Status)
		fmt.Printf("Region:  %s\n", s.Region)
		fmt.Printf("Created: %s\n", s.CreatedAt)
		fmt.Printf("Updated: %s\n", s.UpdatedAt)
		return nil
	},
}

// saveSession persists the active session for later commands
func saveSession(sessionID, apiURL string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	sess := &state.Session{
		SessionID: sessionID,
		APIURL:    apiURL,
		StartedAt: time.Now().UTC(),
	}
	return sess.Write(cwd)
}

func init() {
	sessionCmd.AddCommand(sessionCreateCmd)
	sessionCmd.AddCommand(sessionUseCmd)
	sessionCmd.AddCommand(sessionStopCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	rootCmd.AddCommand(sessionCmd)
}
