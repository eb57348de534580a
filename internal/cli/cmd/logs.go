package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/chatdeck/internal/cli/styles"
	"github.com/bnema/chatdeck/internal/infrastructure/config"
	"github.com/bnema/chatdeck/internal/logging"
)

const defaultLogsLines = 50

var logsLines int

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View session logs",
	Long: `Without arguments, lists the session logs written when
logging.enable_file_log is on. With a session ID, or its short suffix,
shows the last lines of that session.

Examples:
  chatdeck logs           # list sessions
  chatdeck logs a7b3      # view the session ending in a7b3
  chatdeck logs -n 200 a7b3`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		app, err := GetApp()
		if err != nil {
			return err
		}
		logDir, err := sessionLogDir(app.Config.Logging.LogDir)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			sessions, err := logging.ListSessions(logDir)
			if err != nil {
				return err
			}
			fmt.Println(renderSessions(app.Theme, sessions))
			return nil
		}

		session, err := findSession(logDir, args[0])
		if err != nil {
			return err
		}
		return showSession(os.Stdout, session.Path, logsLines)
	},
}

func init() {
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	rootCmd.AddCommand(logsCmd)
}

func sessionLogDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	return config.GetLogDir()
}

func renderSessions(theme *styles.Theme, sessions []logging.SessionLog) string {
	if len(sessions) == 0 {
		return theme.Subtle.Render("No session logs. Set logging.enable_file_log = true to record them.")
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render("Sessions (newest first):"))
	for _, s := range sessions {
		fmt.Fprintf(&b, "\n  %s  %s  %s",
			theme.Highlight.Render(logging.ShortSessionID(s.ID)),
			theme.Subtle.Render(s.ModTime.Format("2006-01-02 15:04:05")),
			theme.Subtle.Render("("+formatSize(s.Size)+")"),
		)
	}
	return b.String()
}

// findSession matches query against the short ID first, then as a substring
// of the full ID.
func findSession(logDir, query string) (*logging.SessionLog, error) {
	sessions, err := logging.ListSessions(logDir)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions found in %s", logDir)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	for i := range sessions {
		if strings.EqualFold(logging.ShortSessionID(sessions[i].ID), query) {
			return &sessions[i], nil
		}
	}

	var matches []logging.SessionLog
	for _, s := range sessions {
		if strings.Contains(strings.ToLower(s.ID), query) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, logging.ShortSessionID(m.ID))
		}
		return nil, fmt.Errorf("multiple sessions match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// showSession prints the last n records of a JSON session log in console
// form. Lines that are not JSON are printed as is.
func showSession(out io.Writer, path string, n int) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	console := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: "15:04:05"}
	for _, line := range lines {
		if strings.HasPrefix(line, "{") {
			if _, err := console.Write([]byte(line)); err == nil {
				continue
			}
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
