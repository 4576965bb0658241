package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bankctl/bankctl/cmd/account"
	"github.com/bankctl/bankctl/internal/app"
	"github.com/bankctl/bankctl/internal/auth"
	"github.com/bankctl/bankctl/internal/config"
	"github.com/bankctl/bankctl/internal/errhandler"
	"github.com/bankctl/bankctl/internal/ui/prompts"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// The config flag has to be honored before cobra parses anything, since
	// the application is wired from config ahead of command dispatch.
	cfgFile = configFlagFromArgs(os.Args[1:])

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if needsLogin(os.Args[1:]) {
		if err := loginGate(application.Auth); err != nil {
			errhandler.HandleError(err)
			os.Exit(1)
		}
	}

	rootCmd := &cobra.Command{
		Use:           "bankctl",
		Short:         "bankctl is a CLI banking ledger for personal and small-business accounts",
		Long:          `bankctl is a CLI banking ledger for personal and small-business accounts`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(NewDepositCmd(application))
	rootCmd.AddCommand(NewWithdrawCmd(application))
	rootCmd.AddCommand(NewBalanceCmd(application))
	rootCmd.AddCommand(NewHistoryCmd(application))

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

// needsLogin skips the credential gate for help and completion so the CLI
// stays explorable without an account.
func needsLogin(args []string) bool {
	if len(args) == 0 {
		return false
	}
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return false
		}
	}
	switch args[0] {
	case "help", "completion", "__complete":
		return false
	}
	return true
}

// loginGate runs the initial-admin wizard when the credential file is empty,
// then asks for a username and password until they check out or the operator
// gives up.
func loginGate(mgr *auth.Manager) error {
	if !mgr.HasUsers() {
		pterm.Info.Println("No users found. Please set up an initial admin account.")

		username, err := prompts.PromptInput("Admin username:", "", prompts.PromptRequired("username", nil))
		if err != nil {
			return err
		}
		password, err := prompts.PromptPassword("Admin password:", prompts.PromptRequired("password", nil))
		if err != nil {
			return err
		}
		if err := mgr.AddUser(username, password); err != nil {
			return err
		}
		pterm.Success.Printfln("Admin user '%s' created successfully!", username)
		return nil
	}

	for {
		username, err := prompts.PromptInput("Username:", "", nil)
		if err != nil {
			return err
		}
		password, err := prompts.PromptPassword("Password:", nil)
		if err != nil {
			return err
		}

		if mgr.Authenticate(username, password) {
			pterm.Success.Println("Login successful! Welcome!")
			return nil
		}

		pterm.Warning.Println("Invalid username or password.")
		retry, err := prompts.PromptConfirm("Would you like to try again?", true)
		if err != nil {
			return err
		}
		if !retry {
			return fmt.Errorf("login aborted")
		}
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("BANKCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func configFlagFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
