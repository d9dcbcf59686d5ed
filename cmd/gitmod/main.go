package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitmod-io/gitmod/internal"
	"github.com/gitmod-io/gitmod/internal/domain/entities"
	"github.com/gitmod-io/gitmod/internal/infrastructure/controllers"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "0.0.0-dev"

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:     "gitmod",
		Short:   "Dependency manager on top of git submodules",
		Version: version,
		Long: `gitmod installs dependencies as read-only git submodules, backed by a
machine-wide cache of clones shared across all projects.

Usage overview:
  gitmod install owner/repo [branch]   Install a module into this project
  gitmod uninstall owner/repo          Remove an installed module
  gitmod ls [cache]                    List modules, or the cache
  gitmod cache update                  Refresh every cached repository
  gitmod search term [language]        Search the configured host`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			if update, _ := command.Flags().GetBool("update"); update {
				return runSelfUpdate(command, appContext)
			}
			return command.Help()
		},
	}

	cmd.Flags().Bool("update", false,
		"Fetch the distribution repository and check for a newer version")

	return cmd
}

// runSelfUpdate dispatches the root --update flag onto the self-update
// controller.
func runSelfUpdate(command *cobra.Command, appContext *internal.AppInternal) error {
	for _, controller := range appContext.GetControllers() {
		if updater, ok := controller.(*controllers.SelfUpdateController); ok {
			return updater.Execute(command, nil)
		}
	}
	return nil
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:     bind.Use,
			Aliases: bind.Aliases,
			Short:   bind.Short,
			Long:    bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if binder, ok := ctrl.(interface{ AddFlags(*cobra.Command) }); ok {
			binder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	settings, err := entities.NewSettings(entities.FindConfigFile())
	if err != nil {
		logger.Fatalf("Error loading configuration: %s", err)
	}

	appContext := injectAppContext(settings, controllers.Version(version))
	cobraRoot := buildRootCommand(appContext)
	addSubcommands(cobraRoot, appContext)

	if execErr := cobraRoot.Execute(); execErr != nil {
		logger.Errorf("Error executing 'gitmod': %s", execErr)
		os.Exit(1)
	}
}
