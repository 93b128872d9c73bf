package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/technobuff/ichecklist/internal/core/domain"
)

var itemListJSON bool

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage checklist items",
	Long:  `Add, list, view, or clear the items of a checklist.`,
}

var itemAddCmd = &cobra.Command{
	Use:   "add [list-id] [text]",
	Short: "Add an item to a checklist",
	Long: `Adds an item under the given checklist id. The id is not checked
against existing checklists.`,
	Args: cobra.ExactArgs(2),
	RunE: runItemAdd,
}

var itemListCmd = &cobra.Command{
	Use:   "list [list-id]",
	Short: "List items of a checklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemList,
}

var itemGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a single item",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemGet,
}

var itemClearCmd = &cobra.Command{
	Use:   "clear [list-id]",
	Short: "Delete all items of a checklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemClear,
}

func init() {
	itemListCmd.Flags().BoolVar(&itemListJSON, "json", false, "output as JSON")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemGetCmd)
	itemCmd.AddCommand(itemClearCmd)
	rootCmd.AddCommand(itemCmd)
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	if checklistService == nil {
		return errors.New("checklist service not configured")
	}

	listID, err := parseID(args[0])
	if err != nil {
		return err
	}

	id, err := checklistService.AddItem(context.Background(), listID, args[1])
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	cmd.Printf("Added item %d to checklist %d: %s\n", id, listID, args[1])
	return nil
}

func runItemList(cmd *cobra.Command, args []string) error {
	if checklistService == nil {
		return errors.New("checklist service not configured")
	}

	listID, err := parseID(args[0])
	if err != nil {
		return err
	}

	items, err := checklistService.ListItems(context.Background(), listID)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if itemListJSON {
		return outputJSON(cmd, items)
	}

	if len(items) == 0 {
		cmd.Printf("No items for checklist %d.\n", listID)
		return nil
	}

	cmd.Printf("Items for checklist %d:\n", listID)
	for _, item := range items {
		cmd.Printf("  - [%d] %s\n", item.ID, item.Text)
	}
	return nil
}

func runItemGet(cmd *cobra.Command, args []string) error {
	if checklistService == nil {
		return errors.New("checklist service not configured")
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	item, err := checklistService.GetItem(context.Background(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("item %d not found", id)
		}
		return fmt.Errorf("get failed: %w", err)
	}

	cmd.Printf("[%d] %s (checklist %d)\n", item.ID, item.Text, item.ListID)
	return nil
}

func runItemClear(cmd *cobra.Command, args []string) error {
	if checklistService == nil {
		return errors.New("checklist service not configured")
	}

	listID, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := checklistService.ClearItems(context.Background(), listID); err != nil {
		if errors.Is(err, domain.ErrNothingDeleted) {
			return fmt.Errorf("checklist %d has no items", listID)
		}
		return fmt.Errorf("clear failed: %w", err)
	}

	cmd.Printf("Cleared items for checklist %d.\n", listID)
	return nil
}
