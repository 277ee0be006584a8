package cli

import (
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abdidvp/smartreview/internal/adapters/inbound/web"
)

func newWebCmd(a *app) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Start the web UI for paste-and-review",
		Long:  "Serve a page where code can be pasted and reviewed, plus the POST /review JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings(".")
			if err != nil {
				return err
			}
			svc, err := a.newService(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := net.JoinHostPort(host, strconv.Itoa(port))
			cmd.Printf("Serving on http://%s\n", addr)
			return web.NewServer(svc, a.log).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "Host to bind")
	cmd.Flags().IntVarP(&port, "port", "p", 8000, "Port to run the web UI on")

	return cmd
}
