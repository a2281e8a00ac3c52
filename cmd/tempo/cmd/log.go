package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tempo/internal/domain/models"
	"tempo/internal/track"
)

var (
	logDate        string
	logActivity    string
	logDescription string
)

var logCmd = &cobra.Command{
	Use:   "log <module> <hours>",
	Short: "Log time against a module",
	Long: `Log time against a module without opening the dashboard. The module is
matched by name (case-insensitive) or id.

Example:
  tempo log "Linear Algebra" 1.5 --type lecture`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid hours %q: %w", args[1], err)
		}

		ctx := context.Background()
		if err := appStore.Refresh(ctx); err != nil {
			return err
		}
		derived, err := appStore.Derived()
		if err != nil {
			return err
		}

		module, err := matchModule(derived.Modules, args[0])
		if err != nil {
			return err
		}

		entry, err := appStore.CreateEntry(ctx, &models.CreateEntryRequest{
			ModuleID:      module.ID,
			ActivityType:  logActivity,
			Description:   logDescription,
			DurationHours: hours,
			Date:          logDate,
		})
		if err != nil {
			return err
		}

		fmt.Printf("logged %.2fh to %s / %s on %s\n",
			entry.DurationHours, module.Folder.Name, module.Name, entry.Date)
		return nil
	},
}

// matchModule resolves a module reference: exact id first, then
// case-insensitive unique name match.
func matchModule(modules []*track.ModuleWithRelations, ref string) (*track.ModuleWithRelations, error) {
	for _, module := range modules {
		if module.ID == ref {
			return module, nil
		}
	}

	var matches []*track.ModuleWithRelations
	for _, module := range modules {
		if strings.EqualFold(module.Name, ref) {
			matches = append(matches, module)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no module matches %q", ref)
	default:
		var names []string
		for _, m := range matches {
			names = append(names, m.Folder.Name+" / "+m.Name)
		}
		return nil, fmt.Errorf("%q is ambiguous: %s", ref, strings.Join(names, ", "))
	}
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", time.Now().Format(models.EntryDateLayout), "entry date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logActivity, "type", "work", "activity type")
	logCmd.Flags().StringVar(&logDescription, "note", "", "description")
	rootCmd.AddCommand(logCmd)
}
