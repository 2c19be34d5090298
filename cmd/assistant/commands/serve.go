package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/dirk.krummacker/contacts-assistant/internal/service"
)

// serve: expose the assistant over HTTP. The --port flag overrides PORT.
func serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the assistant over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if !cfg.RequestLogging() {
				log.Info("turning off HTTP request logging")
			}
			service.SetupAssistant(dispatcher, log)
			router := service.SetupHttpRouter(cfg.RequestLogging())
			log.Info("serving contacts assistant", "addr", cfg.Addr())
			if err := router.Run(cfg.Addr()); err != nil {
				return fmt.Errorf("serve http: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "listen port (default from PORT)")
	return cmd
}
