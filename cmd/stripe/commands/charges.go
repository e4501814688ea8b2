package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

var chargeHeader = []string{"ID", "Amount", "Status", "Captured", "Refunded", "Created"}

func chargeRow(c stripe.Charge) []string {
	return []string{
		c.ID,
		formatAmount(c.Amount, c.Currency),
		string(c.Status),
		strconv.FormatBool(c.Captured),
		strconv.FormatBool(c.Refunded),
		formatUnix(c.Created),
	}
}

// NewChargesCommand creates the charges command group.
func NewChargesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "charges",
		Aliases: []string{"charge", "ch"},
		Short:   "Manage charges",
		Long:    "List, inspect and capture charges",
	}

	cmd.AddCommand(newChargesListCommand())
	cmd.AddCommand(newChargesGetCommand())
	cmd.AddCommand(newChargesCaptureCommand())

	return cmd
}

func newChargesListCommand() *cobra.Command {
	var (
		limit    int64
		all      bool
		customer string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List charges",
		Long:  "List charges, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := validateLimit(limit)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := stripe.ChargeListParams{}
			params.Limit = stripe.Int64(limit)

			if customer != "" {
				params.Customer = stripe.String(customer)
			}

			ctx := commandContext(cmd)

			paginator, err := client.Charges().ListAll(ctx, params)
			if err != nil {
				return err
			}

			charges := paginator.Page().Data
			if all {
				charges, err = paginator.GetAll(ctx, client)
				if err != nil {
					return err
				}
			}

			rows := make([][]string, 0, len(charges))
			for _, c := range charges {
				rows = append(rows, chargeRow(c))
			}

			return render(cmd.OutOrStdout(), charges, chargeHeader, rows)
		},
	}

	addListFlags(cmd, &limit, &all)
	cmd.Flags().StringVar(&customer, "customer", "", "only charges of this customer")

	return cmd
}

func newChargesGetCommand() *cobra.Command {
	var expand []string

	cmd := &cobra.Command{
		Use:   "get CHARGE_ID",
		Short: "Get charge details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			charge, err := client.Charges().Retrieve(commandContext(cmd), args[0], &stripe.Params{Expand: expand})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), charge, chargeHeader, [][]string{chargeRow(*charge)})
		},
	}

	cmd.Flags().StringSliceVar(&expand, "expand", nil, "fields to expand")

	return cmd
}

func newChargesCaptureCommand() *cobra.Command {
	var amount int64

	cmd := &cobra.Command{
		Use:   "capture CHARGE_ID",
		Short: "Capture an uncaptured charge",
		Long:  "Capture the funds of a charge created with capture=false",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &stripe.ChargeCaptureParams{}
			if amount > 0 {
				params.Amount = stripe.Int64(amount)
			}

			charge, err := client.Charges().Capture(commandContext(cmd), args[0], params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), charge, chargeHeader, [][]string{chargeRow(*charge)})
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to capture in the smallest currency unit (default: all)")

	return cmd
}
