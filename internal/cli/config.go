package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ngrules/ngrules/internal/settings"
)

// configKeys are the settings exposed through "ngrules config".
var configKeys = []string{"plain", "theme", "pager", "dir", "logLevel"}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write user settings",
		Long: `Read and write ~/.ngrules/settings.json. Project-level files
(.ngrules/settings.json, .ngrules/settings.local.json) override user
settings and are edited by hand.`,
	}
	cmd.AddCommand(newConfigGetCmd(a), newConfigSetCmd(a), newConfigUnsetCmd(a))
	return cmd
}

func newConfigGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print one setting, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := map[string]string{
				"plain":    strconv.FormatBool(settings.BoolVal(a.settings.Plain, false)),
				"theme":    a.settings.Theme,
				"pager":    a.settings.Pager,
				"dir":      a.settings.Dir,
				"logLevel": a.settings.LogLevel,
			}
			if len(args) == 1 {
				v, ok := values[args[0]]
				if !ok {
					return fmt.Errorf("unknown setting %q (known: %v)", args[0], configKeys)
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}
			for _, k := range configKeys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, values[k])
			}
			return nil
		},
	}
}

func newConfigSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write one setting to the user settings file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !knownConfigKey(key) {
				return fmt.Errorf("unknown setting %q (known: %v)", key, configKeys)
			}
			if key == "plain" {
				b, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("plain takes true or false, got %q", value)
				}
				return settings.SaveUser(key, b)
			}
			return settings.SaveUser(key, value)
		},
	}
}

func newConfigUnsetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove one setting from the user settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !knownConfigKey(args[0]) {
				return fmt.Errorf("unknown setting %q (known: %v)", args[0], configKeys)
			}
			return settings.SaveUser(args[0], nil)
		},
	}
}

func knownConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}
