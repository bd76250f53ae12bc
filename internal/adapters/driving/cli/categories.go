package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"category"},
	Short:   "Manage contact category rules",
	Long: `Category rules tag contacts whose position or company contains any of
the rule's keywords (case-insensitive). Rules apply to future analysis runs.`,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List category rules and post themes",
	Args:  cobra.NoArgs,
	RunE:  runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name> <keyword>...",
	Short: "Add or replace a category rule",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runCategoriesAdd,
}

var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a category rule",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesRemove,
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd, categoriesAddCmd, categoriesRemoveCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(cmd *cobra.Command, _ []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	rules, err := categoryService.List()
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	themes, err := categoryService.Themes()
	if err != nil {
		return fmt.Errorf("failed to list themes: %w", err)
	}

	cmd.Println("Categories:")
	if len(rules) == 0 {
		cmd.Println("  (none configured)")
	}
	for _, r := range rules {
		cmd.Printf("  %-16s %s\n", r.Name, strings.Join(r.Keywords, ", "))
	}

	cmd.Println()
	cmd.Println("Themes:")
	for _, th := range themes {
		cmd.Printf("  %-16s %s\n", th.Name, strings.Join(th.Keywords, ", "))
	}
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	rule := domain.CategoryRule{Name: args[0], Keywords: args[1:]}
	if err := categoryService.Add(rule); err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}
	cmd.Printf("Saved category %q (%d keywords)\n", rule.Name, len(rule.Keywords))
	return nil
}

func runCategoriesRemove(cmd *cobra.Command, args []string) error {
	if categoryService == nil {
		return errors.New("category service not configured")
	}

	if err := categoryService.Remove(args[0]); err != nil {
		return fmt.Errorf("failed to remove category: %w", err)
	}
	cmd.Printf("Removed category %q\n", args[0])
	return nil
}
