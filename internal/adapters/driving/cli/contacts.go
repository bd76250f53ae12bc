package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linkscope/internal/core/domain"
)

var (
	contactsStrength string
	contactsDormant  bool
	contactsCategory string
	contactsLimit    int
	contactsFormat   string
)

var contactsCmd = &cobra.Command{
	Use:   "contacts [id]",
	Short: "List the enriched contacts of a run",
	Long: `Lists contacts of an archived run (default latest) with their
relationship strength, message count and last contact date.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContacts,
}

func init() {
	contactsCmd.Flags().StringVarP(&contactsStrength, "strength", "s", "", "filter by strength: strong, warm, new or cold")
	contactsCmd.Flags().BoolVar(&contactsDormant, "dormant", false, "only dormant contacts")
	contactsCmd.Flags().StringVarP(&contactsCategory, "category", "c", "", "only contacts tagged with this category")
	contactsCmd.Flags().IntVarP(&contactsLimit, "limit", "n", 0, "maximum number of contacts (0 = all)")
	contactsCmd.Flags().StringVarP(&contactsFormat, "format", "f", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(contactsCmd)
}

func runContacts(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}
	if err := validateFormat(contactsFormat); err != nil {
		return err
	}

	strength, err := parseStrength(contactsStrength)
	if err != nil {
		return err
	}

	contacts, err := reportService.Contacts(cmd.Context(), optionalArg(args), domain.ContactFilter{
		Strength:    strength,
		DormantOnly: contactsDormant,
		Category:    contactsCategory,
		Limit:       contactsLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	if contactsFormat != formatText {
		return writeStructured(cmd.OutOrStdout(), contactsFormat, contacts)
	}
	writeContactsText(cmd.OutOrStdout(), contacts)
	return nil
}

func parseStrength(raw string) (domain.RelStrength, error) {
	if raw == "" {
		return "", nil
	}
	for _, s := range domain.Strengths() {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: unknown strength %q", domain.ErrInvalidInput, raw)
}
