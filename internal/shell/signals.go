package shell

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/chatdeck/internal/logging"
)

// WithSignals returns a context canceled on the first SIGINT or SIGTERM.
func WithSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	log := logging.FromContext(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
