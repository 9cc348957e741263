// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chigwell/codebaselister/internal/config"
	"github.com/chigwell/codebaselister/internal/lister"
	"github.com/chigwell/codebaselister/internal/output"
	"github.com/chigwell/codebaselister/internal/services/clipboard"
	"github.com/chigwell/codebaselister/internal/tokenizer"
	"github.com/chigwell/codebaselister/internal/types"
	"github.com/chigwell/codebaselister/internal/utils"
)

const (
	outputFlagName      = "output"
	outputFlagShorthand = "o"
	noGitignoreFlagName = "no-gitignore"
	exclusionFlagName   = "e"
	formatFlagName      = "format"
	copyFlagName        = "copy"
	tokensFlagName      = "tokens"
	modelFlagName       = "model"
	versionFlagName     = "version"
	configFlagName      = "config"

	versionTemplate      = "codebaselister version: %s\n"
	defaultPath          = "."
	rootUse              = "codebaselister"
	rootShortDescription = "codebaselister command line interface"
	rootLongDescription  = `codebaselister flattens a codebase into a single annotated text artifact.
It walks a directory tree, filters entries against .gitignore rules, and
concatenates every surviving file under a path header. Use --format to select
raw or json output for the run summary.`

	listUse              = "list [path]"
	listAlias            = "l"
	listShortDescription = "generate a listing artifact (" + listAlias + ")"

	// listLongDescription provides detailed help for the list command.
	listLongDescription = `Walk the provided directory (default current), skip every path excluded by
the directory's .gitignore, and write the remaining file contents into one
annotated listing file.`
	// listUsageExample demonstrates list command usage.
	listUsageExample = `  # List the current directory into a timestamp-named artifact
  codebaselister list

  # Custom output name, extra exclusions, JSON summary
  codebaselister list --output listing.txt -e 'vendor/' --format json .`

	outputFlagDescription           = "output file name (default timestamp-derived)"
	disableGitignoreFlagDescription = "do not use .gitignore"
	exclusionFlagDescription        = "additional ignore pattern in gitignore syntax"
	formatFlagDescription           = "summary output format"
	copyFlagDescription             = "copy the artifact to the system clipboard"
	tokensFlagDescription           = "include a token count of the artifact"
	modelFlagDescription            = "tokenizer model to use for token counting"
	versionFlagDescription          = "display application version"
	configFlagDescription           = "path to a configuration file"
	defaultTokenizerModelName       = "gpt-4o"

	invalidFormatMessage        = "Invalid format value '%s'"
	warningClipboardFormat      = "Warning: failed to copy artifact to clipboard: %v\n"
	warningTokenCountFormat     = "Warning: failed to count tokens for %s: %v\n"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
)

// isSupportedFormat reports whether the provided format is recognized.
func isSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON:
		return true
	default:
		return false
	}
}

// Execute runs the codebaselister application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var configurationPath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&configurationPath, configFlagName, "", configFlagDescription)
	rootCommand.AddCommand(createListCommand(&configurationPath))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// listOptions stores the raw flag values of the list command.
type listOptions struct {
	outputFilename    string
	disableGitignore  bool
	exclusionPatterns []string
	format            string
	copyEnabled       bool
	tokensEnabled     bool
	tokenModel        string
}

// listSettings is the effective configuration after merging flags with the
// application configuration files.
type listSettings struct {
	outputFilename    string
	useGitignore      bool
	exclusionPatterns []string
	format            string
	copyEnabled       bool
	tokensEnabled     bool
	tokenModel        string
}

// createListCommand returns the list subcommand.
func createListCommand(configurationPath *string) *cobra.Command {
	var options listOptions

	listCommand := &cobra.Command{
		Use:     listUse,
		Aliases: []string{listAlias},
		Short:   listShortDescription,
		Long:    listLongDescription,
		Example: listUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			basePath := defaultPath
			if len(arguments) > 0 {
				basePath = arguments[0]
			}

			workingDirectory, workingDirectoryError := os.Getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}

			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				WorkingDirectory: workingDirectory,
				ExplicitFilePath: *configurationPath,
			})
			if configurationError != nil {
				return configurationError
			}

			settings := resolveListSettings(command, options, applicationConfiguration.List)
			settings.format = strings.ToLower(settings.format)
			if !isSupportedFormat(settings.format) {
				return fmt.Errorf(invalidFormatMessage, settings.format)
			}

			return runList(basePath, settings)
		},
	}

	listCommand.Flags().StringVarP(&options.outputFilename, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	listCommand.Flags().BoolVar(&options.disableGitignore, noGitignoreFlagName, false, disableGitignoreFlagDescription)
	listCommand.Flags().StringArrayVarP(&options.exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	listCommand.Flags().StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	listCommand.Flags().BoolVar(&options.copyEnabled, copyFlagName, false, copyFlagDescription)
	listCommand.Flags().BoolVar(&options.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	listCommand.Flags().StringVar(&options.tokenModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	return listCommand
}

// resolveListSettings merges flag values with configuration file defaults.
// A flag the user set explicitly always wins over the configuration files.
func resolveListSettings(command *cobra.Command, options listOptions, configuration config.ListCommandConfiguration) listSettings {
	settings := listSettings{
		outputFilename:    options.outputFilename,
		useGitignore:      !options.disableGitignore,
		exclusionPatterns: options.exclusionPatterns,
		format:            options.format,
		copyEnabled:       options.copyEnabled,
		tokensEnabled:     options.tokensEnabled,
		tokenModel:        options.tokenModel,
	}

	flags := command.Flags()
	if !flags.Changed(outputFlagName) && configuration.Output != "" {
		settings.outputFilename = configuration.Output
	}
	if !flags.Changed(noGitignoreFlagName) && configuration.UseGitignore != nil {
		settings.useGitignore = *configuration.UseGitignore
	}
	if len(configuration.Exclude) > 0 {
		combined := append(append([]string{}, configuration.Exclude...), settings.exclusionPatterns...)
		settings.exclusionPatterns = utils.DeduplicatePatterns(combined)
	}
	if !flags.Changed(formatFlagName) && configuration.Format != "" {
		settings.format = configuration.Format
	}
	if !flags.Changed(copyFlagName) && configuration.Clipboard != nil {
		settings.copyEnabled = *configuration.Clipboard
	}
	if !flags.Changed(tokensFlagName) && configuration.Tokens.Enabled != nil {
		settings.tokensEnabled = *configuration.Tokens.Enabled
	}
	if !flags.Changed(modelFlagName) && configuration.Tokens.Model != "" {
		settings.tokenModel = configuration.Tokens.Model
	}
	return settings
}

// runList executes the listing pipeline and prints the run summary.
func runList(basePath string, settings listSettings) error {
	result, listingError := lister.GenerateListing(lister.Options{
		BasePath:          basePath,
		UseGitignore:      settings.useGitignore,
		OutputFilename:    settings.outputFilename,
		ExclusionPatterns: settings.exclusionPatterns,
	})
	if listingError != nil {
		return listingError
	}

	if settings.tokensEnabled {
		tokenCounter, selectedModel, counterError := tokenizer.NewCounter(settings.tokenModel)
		if counterError != nil {
			fmt.Fprintf(os.Stderr, warningTokenCountFormat, result.OutputFilename, counterError)
		} else {
			tokenCount, countError := tokenizer.CountFile(tokenCounter, result.OutputFilename)
			if countError != nil {
				fmt.Fprintf(os.Stderr, warningTokenCountFormat, result.OutputFilename, countError)
			} else {
				result.Tokens = tokenCount
				result.Model = selectedModel
			}
		}
	}

	switch settings.format {
	case types.FormatJSON:
		rendered, renderError := output.RenderListingResultJSON(result)
		if renderError != nil {
			return renderError
		}
		fmt.Println(rendered)
	default:
		fmt.Print(output.RenderListingResultRaw(result))
	}

	if settings.copyEnabled {
		artifactBytes, readError := os.ReadFile(result.OutputFilename)
		if readError != nil {
			fmt.Fprintf(os.Stderr, warningClipboardFormat, readError)
			return nil
		}
		if copyError := clipboard.NewService().Copy(string(artifactBytes)); copyError != nil {
			fmt.Fprintf(os.Stderr, warningClipboardFormat, copyError)
		}
	}
	return nil
}
