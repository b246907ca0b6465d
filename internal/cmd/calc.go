package cmd

import (
	"fmt"
	"strings"

	"github.com/aromadata/aromadata/internal/yield"
	"github.com/aromadata/aromadata/pkg/constants"
	"github.com/aromadata/aromadata/pkg/format"
	"github.com/spf13/cobra"
)

type fixedPrice float64

func (p fixedPrice) Price() float64 { return float64(p) }

func newCalcCmd(a *app) *cobra.Command {
	var (
		input yield.FormInput
		price float64
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate harvest yield and revenue for a plot",
		Long: `Estimate the yield of a coffee plot from its area, variety, climate
rating and altitude, priced at --price USD/lb.

Varieties: Caturra, Colombia, Castillo, Típica, Bourbon
Climates:  Óptimo, Bueno, Regular, Malo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := yield.ParseRequest(input)
			if err != nil {
				return err
			}

			result, err := yield.NewEstimator(a.logger, fixedPrice(price)).Estimate(req)
			if err != nil {
				return err
			}

			rounded := result.Rounded()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Producción total:    %s sacos\n", format.Decimal(rounded.TotalYieldSacks, 1))
			fmt.Fprintf(out, "Rendimiento:         %s sacos/ha\n", format.Decimal(rounded.YieldPerHectare, 1))
			fmt.Fprintf(out, "Ingresos estimados:  %s\n", format.WholeCurrency(rounded.EstimatedRevenueUSD))
			fmt.Fprintf(out, "Precio de referencia: %s USD/lb\n", format.Currency(result.PriceUSDPerPound))
			fmt.Fprintln(out, strings.Repeat("─", 50))
			for _, r := range result.Recommendations {
				fmt.Fprintf(out, "• %s\n", r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Area, "area", "", "plot area in hectares")
	cmd.Flags().StringVar(&input.Variety, "variety", "", "coffee variety")
	cmd.Flags().StringVar(&input.Climate, "climate", "", "climate rating")
	cmd.Flags().StringVar(&input.Altitude, "altitude", "", "altitude in meters above sea level")
	cmd.Flags().Float64Var(&price, "price", constants.InitialPrice, "price in USD/lb")
	return cmd
}
