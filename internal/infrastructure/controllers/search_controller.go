package controllers

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitmod-io/gitmod/internal/domain/commands"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
)

// SearchController handles the "search" subcommand.
type SearchController struct {
	settings *entities.Settings
	command  commands.Search
}

// NewSearchController creates a new SearchController.
func NewSearchController(
	settings *entities.Settings,
	command commands.Search,
) *SearchController {
	return &SearchController{settings: settings, command: command}
}

// GetBind returns the Cobra command metadata for the search controller.
func (it *SearchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "search <term> [language]",
		Short: "Search the configured host for repositories",
	}
}

// Execute queries the search host and prints the matches.
func (it *SearchController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("missing search term")
	}
	language := ""
	if len(args) > 1 {
		language = args[1]
	}

	ctx, cancel := operationContext(it.settings)
	defer cancel()

	results, err := it.command.Execute(ctx, args[0], language)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("no matches")
		return nil
	}

	name := color.New(color.FgCyan, color.Bold).SprintFunc()
	stars := color.New(color.FgYellow).SprintFunc()
	for _, result := range results {
		fmt.Printf("%s  %s\n", name(result.FullName), stars(fmt.Sprintf("★ %d", result.Stars)))
		if result.Description != "" {
			fmt.Printf("    %s\n", result.Description)
		}
	}
	return nil
}
