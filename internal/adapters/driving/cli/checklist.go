package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/technobuff/ichecklist/internal/core/domain"
)

var (
	listJSON bool
	showJSON bool
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new checklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all checklists",
	Long:  `Prints every checklist. Order is unspecified.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a checklist and its items",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a checklist and its items",
	Long: `Deletes the checklist's items first, then the checklist itself.
A checklist with no items cannot be deleted through this command.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
}

// parseID converts a command argument into a row id.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: %w", arg, domain.ErrInvalidInput)
	}
	return id, nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	if checklistService == nil {
		return errors.New("checklist service not configured")
	}

	id, err := checklistService.CreateChecklist(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	cmd.Printf("Created checklist %d: %s\n", id, args[0])
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	if checklistService == nil {
		return errors.New("checklist service not configured")
	}

	lists, err := checklistService.ListChecklists(context.Background())
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if listJSON {
		return outputJSON(cmd, lists)
	}

	if len(lists) == 0 {
		cmd.Println("No checklists.")
		return nil
	}

	cmd.Println("Checklists:")
	for _, l := range lists {
		cmd.Printf("  [%d] %s\n", l.ID, l.Name)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	if checklistService == nil {
		return errors.New("checklist service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	list, err := checklistService.GetChecklist(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("checklist %d not found", id)
		}
		return fmt.Errorf("show failed: %w", err)
	}

	items, err := checklistService.ListItems(ctx, id)
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	if showJSON {
		return outputJSON(cmd, struct {
			Checklist domain.Checklist       `json:"checklist"`
			Items     []domain.ChecklistItem `json:"items"`
		}{*list, items})
	}

	cmd.Printf("[%d] %s\n", list.ID, list.Name)
	if len(items) == 0 {
		cmd.Println("  (no items)")
		return nil
	}
	for _, item := range items {
		cmd.Printf("  - [%d] %s\n", item.ID, item.Text)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if checklistService == nil {
		return errors.New("checklist service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := checklistService.DeleteChecklist(context.Background(), id); err != nil {
		if errors.Is(err, domain.ErrNothingDeleted) {
			return fmt.Errorf("checklist %d has no items and cannot be deleted through this command", id)
		}
		return fmt.Errorf("delete failed: %w", err)
	}

	cmd.Printf("Deleted checklist %d and its items.\n", id)
	return nil
}

// outputJSON prints v as indented JSON.
func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
