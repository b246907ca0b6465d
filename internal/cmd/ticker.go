package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aromadata/aromadata/internal/price"
	"github.com/aromadata/aromadata/pkg/format"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	upStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	downStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	timeStyle = lipgloss.NewStyle().Faint(true)
)

// newSimulator builds a simulator over a fresh cell using the ticker section
// of the configuration.
func (a *app) newSimulator(opts ...price.Option) *price.Simulator {
	tc := a.conf.Ticker
	cell := price.NewCell(tc.InitialPrice, tc.Floor, tc.HistorySize)

	base := []price.Option{
		price.WithLogger(a.logger),
		price.WithSource(price.NewUniformSource(tc.Seed, tc.MaxDelta)),
		price.WithInterval(tc.Interval),
		price.WithInitial(tc.InitialPrice, tc.InitialDelta),
	}
	return price.NewSimulator(cell, append(base, opts...)...)
}

func renderTick(s price.Snapshot) string {
	style := upStyle
	if s.Direction == "down" {
		style = downStyle
	}
	return fmt.Sprintf("%s  %s USD/lb  %s",
		timeStyle.Render(s.UpdatedAt.Format("15:04:05")),
		format.Currency(s.Price),
		style.Render(format.Ticker(s.Delta)),
	)
}

func newTickerCmd(a *app) *cobra.Command {
	var (
		ticks    int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ticker",
		Short: "Print the simulated coffee price as it moves",
		Long: `Run the price simulator in the terminal. Each tick prints the price and
its last movement. Runs until interrupted unless --ticks is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks < 0 {
				return fmt.Errorf("--ticks must not be negative, got %d", ticks)
			}

			out := cmd.OutOrStdout()
			updates := make(chan price.Snapshot, 16)

			opts := []price.Option{
				// Drop ticks rather than stall the simulator if the terminal lags.
				price.WithObserver(func(s price.Snapshot) {
					select {
					case updates <- s:
					default:
					}
				}),
			}
			if interval > 0 {
				opts = append(opts, price.WithInterval(interval))
			}
			sim := a.newSimulator(opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := sim.Start(ctx); err != nil {
				return err
			}
			defer sim.Stop()
			fmt.Fprintln(out, renderTick(sim.Cell().Snapshot()))

			for seen := 0; ticks == 0 || seen < ticks; seen++ {
				select {
				case <-ctx.Done():
					return nil
				case s := <-updates:
					fmt.Fprintln(out, renderTick(s))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&ticks, "ticks", "n", 0, "stop after this many ticks (0 runs until interrupted)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "tick interval override")
	return cmd
}

