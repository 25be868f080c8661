package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/siampay/siampay-go/internal/constants"
	"github.com/siampay/siampay-go/pkg/siampay"
	"github.com/siampay/siampay-go/pkg/spclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrSecretKeyNotConfigured = errors.New("secret key is not configured (run 'siampay login' or set --secret-key)")
	ErrInvalidFieldFormat     = errors.New("invalid field format, expected key=value")
	ErrConfigKeyUnknown       = errors.New("unknown configuration key")
)

// createClient builds an API client from the effective viper configuration.
func createClient() (siampay.Client, error) {
	if viper.GetString("secret_key") == "" && viper.GetString("public_key") == "" {
		return nil, ErrSecretKeyNotConfigured
	}

	client, err := spclient.New(&siampay.Config{
		SecretKey:     viper.GetString("secret_key"),
		PublicKey:     viper.GetString("public_key"),
		APIEndpoint:   viper.GetString("api"),
		VaultEndpoint: viper.GetString("vault"),
		Debug:         viper.GetBool("debug"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// parseFields parses key=value arguments into an API field mapping. Values
// that look like integers or booleans are converted; everything else stays
// a string.
func parseFields(args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldFormat, arg)
		}

		fields[key] = parseFieldValue(value)
	}

	return fields, nil
}

func parseFieldValue(value string) any {
	if number, err := strconv.ParseInt(value, 10, 64); err == nil {
		return number
	}

	if boolean, err := strconv.ParseBool(value); err == nil {
		return boolean
	}

	return value
}

// renderRecord prints a single record in the configured output format.
// Table output lists scalar fields sorted by name; nested objects and
// lists are summarized by their kind.
func renderRecord(resource interface{ Fields() map[string]any }) error {
	fields := resource.Fields()

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(fields)
		if err != nil {
			return fmt.Errorf("encoding record to JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(fields)
		if err != nil {
			return fmt.Errorf("encoding record to YAML: %w", err)
		}

		return nil
	default:
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}

		sort.Strings(names)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Field", "Value")

		for _, name := range names {
			_ = table.Append(name, formatFieldValue(fields[name]))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// renderCollection prints a list result in the configured output format.
// Table output shows one row per record with the given columns.
func renderCollection(collection *siampay.Collection, columns []string) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON, OutputFormatYAML:
		return renderRecord(collection)
	default:
		if collection.Len() == 0 {
			fmt.Println("No results")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header(columns)

		for index := 0; index < collection.Len(); index++ {
			record, ok := collection.At(index).(interface{ Fields() map[string]any })
			if !ok {
				continue
			}

			fields := record.Fields()

			row := make([]string, len(columns))
			for position, column := range columns {
				row[position] = formatFieldValue(fields[column])
			}

			_ = table.Append(row)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func formatFieldValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case map[string]any:
		if kind, ok := typed["object"].(string); ok {
			return "<" + kind + ">"
		}

		return "<object>"
	case []any:
		return fmt.Sprintf("<%d items>", len(typed))
	default:
		return fmt.Sprint(typed)
	}
}

// configFilePath returns the path of the persisted CLI configuration.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".siampay", "config.yml"), nil
}

// saveConfig persists the current viper settings worth keeping to the
// config file. Keys are written, endpoints only when they deviate from
// the defaults.
func saveConfig() error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settings := map[string]any{
		"secret_key": viper.GetString("secret_key"),
		"public_key": viper.GetString("public_key"),
	}

	if api := viper.GetString("api"); api != "" {
		settings["api"] = api
	}

	if vault := viper.GetString("vault"); vault != "" {
		settings["vault"] = vault
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
