package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agskasse/kiosk-ledger/internal/domain/usecase/ledger"
	"github.com/agskasse/kiosk-ledger/internal/infrastructure/adapter/flatfile"
	appLogger "github.com/agskasse/kiosk-ledger/internal/infrastructure/adapter/logger"
	"github.com/agskasse/kiosk-ledger/internal/infrastructure/adapter/shell"
	timeProvider "github.com/agskasse/kiosk-ledger/internal/infrastructure/adapter/time"
	"github.com/agskasse/kiosk-ledger/internal/infrastructure/config"
)

var rootCmd = &cobra.Command{
	Use:   "kiosk",
	Short: "Cash register for a self-service beverage kiosk",
	Long: `Runs the kiosk terminal: a line-oriented console that manages
user balances, beverage stock and the cash till, backed by plain
text files.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create logger; the console output belongs to the terminal, so all
	// logging goes to stderr.
	logger := appLogger.NewZapLogger(
		cfg.Environment == config.Production,
		appLogger.ParseLevel(cfg.Logger.Level),
	)
	defer func() { _ = logger.Flush() }()

	fs := afero.NewOsFs()
	if err := fs.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		logger.Error("Failed to create data directory", map[string]any{
			"dir":   cfg.Data.Dir,
			"error": err.Error(),
		})
		return err
	}

	// Initialize the flat file stores
	userStore := flatfile.NewUserStore(fs, filepath.Join(cfg.Data.Dir, cfg.Data.UserFile), logger)
	beverageStore := flatfile.NewBeverageStore(fs, filepath.Join(cfg.Data.Dir, cfg.Data.BeverageFile), logger)
	systemStore := flatfile.NewSystemStore(fs, filepath.Join(cfg.Data.Dir, cfg.Data.SystemFile), logger)
	txLog := flatfile.NewTransactionLog(fs, filepath.Join(cfg.Data.Dir, cfg.Data.TransactionLog))
	depositLog := flatfile.NewDepositLog(fs, filepath.Join(cfg.Data.Dir, cfg.Data.DepositLog))

	tp := timeProvider.NewRealTimeProvider()

	engine := ledger.NewLedger(
		userStore, beverageStore, systemStore, txLog, depositLog,
		tp, logger, cfg.Kiosk.DefaultPassphrase,
	)
	if err := engine.Load(); err != nil {
		logger.Error("Failed to load the databases", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	interpreter := shell.NewInterpreter(engine, logger)

	if engine.FirstRun() {
		fmt.Println("Welcome! The kiosk is not set up yet.")
		fmt.Println("Create at least one user ('addusr') and set a")
		fmt.Println("password ('setpw') to finish the setup.")
	} else {
		fmt.Println("Kiosk terminal locked. Enter the password to continue.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		response := interpreter.Execute(scanner.Text())
		for _, line := range response.Lines {
			fmt.Println(line)
		}
		switch response.Action {
		case shell.ActionShutdown:
			return nil
		case shell.ActionRestart:
			return restart()
		}
	}
	return scanner.Err()
}

// restart replaces the running terminal with a fresh process so a new
// session starts from the databases on disk.
func restart() error {
	child := exec.Command(os.Args[0], os.Args[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	return child.Run()
}
