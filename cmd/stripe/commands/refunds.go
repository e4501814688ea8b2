package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

var refundHeader = []string{"ID", "Amount", "Charge", "Status", "Reason", "Created"}

func refundRow(r stripe.Refund) []string {
	charge := constants.NotAvailable
	if r.Charge != nil {
		charge = r.Charge.ID()
	}

	return []string{r.ID, formatAmount(r.Amount, r.Currency), charge, r.Status, valueOr(r.Reason), formatUnix(r.Created)}
}

// NewRefundsCommand creates the refunds command group.
func NewRefundsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "refunds",
		Aliases: []string{"refund", "re"},
		Short:   "Manage refunds",
		Long:    "List, inspect and create refunds",
	}

	cmd.AddCommand(newRefundsListCommand())
	cmd.AddCommand(newRefundsGetCommand())
	cmd.AddCommand(newRefundsCreateCommand())

	return cmd
}

func newRefundsListCommand() *cobra.Command {
	var (
		limit  int64
		charge string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List refunds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := validateLimit(limit)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := stripe.RefundListParams{}
			params.Limit = stripe.Int64(limit)

			if charge != "" {
				params.Charge = stripe.String(charge)
			}

			page, err := client.Refunds().List(commandContext(cmd), params)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(page.Data))
			for _, r := range page.Data {
				rows = append(rows, refundRow(r))
			}

			return render(cmd.OutOrStdout(), page.Data, refundHeader, rows)
		},
	}

	cmd.Flags().Int64Var(&limit, "limit", constants.DefaultPageSize, "number of refunds (1-100)")
	cmd.Flags().StringVar(&charge, "charge", "", "only refunds of this charge")

	return cmd
}

func newRefundsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get REFUND_ID",
		Short: "Get refund details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			refund, err := client.Refunds().Retrieve(commandContext(cmd), args[0], nil)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), refund, refundHeader, [][]string{refundRow(*refund)})
		},
	}
}

func newRefundsCreateCommand() *cobra.Command {
	var (
		charge        string
		paymentIntent string
		amount        int64
		reason        string
		metadata      []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Refund a charge or payment intent",
		Long:  "Refund all or part of a charge or payment intent. Exactly one of --charge and --payment-intent is required.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &stripe.RefundParams{}

			if charge != "" {
				params.Charge = stripe.String(charge)
			}

			if paymentIntent != "" {
				params.PaymentIntent = stripe.String(paymentIntent)
			}

			if amount > 0 {
				params.Amount = stripe.Int64(amount)
			}

			if reason != "" {
				params.Reason = stripe.String(reason)
			}

			md, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			params.Metadata = md

			client, err := createClient()
			if err != nil {
				return err
			}

			refund, err := client.Refunds().Create(commandContext(cmd), params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), refund, refundHeader, [][]string{refundRow(*refund)})
		},
	}

	cmd.Flags().StringVar(&charge, "charge", "", "charge to refund")
	cmd.Flags().StringVar(&paymentIntent, "payment-intent", "", "payment intent to refund")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to refund in the smallest currency unit (default: all)")
	cmd.Flags().StringVar(&reason, "reason", "", "duplicate, fraudulent or requested_by_customer")
	cmd.Flags().StringArrayVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("charge", "payment-intent")
	cmd.MarkFlagsOneRequired("charge", "payment-intent")

	return cmd
}
