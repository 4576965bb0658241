package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/bankctl/bankctl/internal/auth"
	"github.com/bankctl/bankctl/internal/bank"
	"github.com/bankctl/bankctl/internal/config"
	"github.com/bankctl/bankctl/internal/notify"
	"github.com/bankctl/bankctl/internal/storage"
)

type App struct {
	Bank *bank.Bank
	Auth *auth.Manager
}

// NewApp resolves the data directory, wires the mailer when SMTP is
// configured, restores the account snapshot and opens the credential file.
func NewApp(cfg *config.Config) (*App, error) {
	dataDir := cfg.Storage.Dir
	if dataDir == "" {
		appDir, err := DataDir()
		if err != nil {
			return nil, err
		}
		dataDir = appDir
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	var notifier bank.Notifier
	if mailer := notify.NewMailer(cfg.SMTP); mailer.Enabled() {
		notifier = mailer
	}
	onNotifyErr := func(err error) {
		pterm.Warning.Printfln("Failed to send account details email: %v", err)
	}

	b := bank.New(filepath.Join(dataDir, "bank_data.json"), notifier, onNotifyErr)
	if err := b.Restore(); err != nil {
		if !errors.Is(err, storage.ErrCorruptSnapshot) {
			return nil, fmt.Errorf("failed to restore accounts: %w", err)
		}
		pterm.Warning.Printfln("Could not read the account snapshot, starting fresh: %v", err)
	}

	authMgr, err := auth.NewManager(filepath.Join(dataDir, "users.json"))
	if err != nil {
		return nil, err
	}

	return &App{Bank: b, Auth: authMgr}, nil
}

// DataDir is the platform app-data directory for bankctl.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bankctl"), nil
	}

	return filepath.Join(configDir, "bankctl"), nil
}
