package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/dirk.krummacker/contacts-assistant/internal/assistant"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/config"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/model"
)

var (
	cfg        config.Config
	log        *logger.Logger
	dispatcher *assistant.Dispatcher
)

// Execute runs the assistant command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "assistant",
		Short:        "Console assistant for contacts, phones and birthdays",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			log, err = logger.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			dispatcher = assistant.NewDispatcher(model.NewDirectory(), assistant.WithLogger(log))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd)
		},
	}
	root.AddCommand(replCmd(), serveCmd())
	return root
}
