package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

var paymentIntentHeader = []string{"ID", "Amount", "Received", "Status", "Customer", "Created"}

func paymentIntentRow(p stripe.PaymentIntent) []string {
	customer := ""
	if p.Customer != nil {
		customer = p.Customer.ID()
	}

	return []string{
		p.ID,
		formatAmount(p.Amount, p.Currency),
		formatAmount(p.AmountReceived, p.Currency),
		string(p.Status),
		valueOr(customer),
		formatUnix(p.Created),
	}
}

func paymentIntentRows(intents []stripe.PaymentIntent) [][]string {
	rows := make([][]string, 0, len(intents))
	for _, p := range intents {
		rows = append(rows, paymentIntentRow(p))
	}

	return rows
}

// NewPaymentIntentsCommand creates the payment-intents command group.
func NewPaymentIntentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payment-intents",
		Aliases: []string{"payment-intent", "pi"},
		Short:   "Manage payment intents",
		Long:    "Create payment intents and move them through confirmation, capture and cancellation",
	}

	cmd.AddCommand(newPaymentIntentsListCommand())
	cmd.AddCommand(newPaymentIntentsGetCommand())
	cmd.AddCommand(newPaymentIntentsCreateCommand())
	cmd.AddCommand(newPaymentIntentsConfirmCommand())
	cmd.AddCommand(newPaymentIntentsCaptureCommand())
	cmd.AddCommand(newPaymentIntentsCancelCommand())
	cmd.AddCommand(newPaymentIntentsSearchCommand())

	return cmd
}

func newPaymentIntentsListCommand() *cobra.Command {
	var (
		limit    int64
		all      bool
		customer string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payment intents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := validateLimit(limit)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := stripe.PaymentIntentListParams{}
			params.Limit = stripe.Int64(limit)

			if customer != "" {
				params.Customer = stripe.String(customer)
			}

			ctx := commandContext(cmd)

			var intents []stripe.PaymentIntent

			if all {
				paginator, err := client.PaymentIntents().ListAll(ctx, params)
				if err != nil {
					return err
				}

				for intent, err := range paginator.Stream(ctx, client) {
					if err != nil {
						return err
					}

					intents = append(intents, intent)
				}
			} else {
				page, err := client.PaymentIntents().List(ctx, params)
				if err != nil {
					return err
				}

				intents = page.Data
			}

			return render(cmd.OutOrStdout(), intents, paymentIntentHeader, paymentIntentRows(intents))
		},
	}

	addListFlags(cmd, &limit, &all)
	cmd.Flags().StringVar(&customer, "customer", "", "only payment intents of this customer")

	return cmd
}

func newPaymentIntentsGetCommand() *cobra.Command {
	var expand []string

	cmd := &cobra.Command{
		Use:   "get PAYMENT_INTENT_ID",
		Short: "Get payment intent details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			intent, err := client.PaymentIntents().Retrieve(commandContext(cmd), args[0], &stripe.Params{Expand: expand})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), intent, paymentIntentHeader, [][]string{paymentIntentRow(*intent)})
		},
	}

	cmd.Flags().StringSliceVar(&expand, "expand", nil, "fields to expand")

	return cmd
}

func newPaymentIntentsCreateCommand() *cobra.Command {
	var (
		amount        int64
		currency      string
		customer      string
		description   string
		paymentMethod string
		methodTypes   []string
		captureMethod string
		confirm       bool
		metadata      []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment intent",
		Long:  "Create a payment intent for an amount in the smallest currency unit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &stripe.PaymentIntentParams{
				Amount:             stripe.Int64(amount),
				Currency:           stripe.String(currency),
				PaymentMethodTypes: methodTypes,
			}

			if customer != "" {
				params.Customer = stripe.String(customer)
			}

			if description != "" {
				params.Description = stripe.String(description)
			}

			if paymentMethod != "" {
				params.PaymentMethod = stripe.String(paymentMethod)
			}

			if captureMethod != "" {
				params.CaptureMethod = stripe.String(captureMethod)
			}

			if confirm {
				params.Confirm = stripe.Bool(true)
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

			intent, err := client.PaymentIntents().Create(commandContext(cmd), params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), intent, paymentIntentHeader, [][]string{paymentIntentRow(*intent)})
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in the smallest currency unit")
	cmd.Flags().StringVar(&currency, "currency", "", "three-letter ISO currency code")
	cmd.Flags().StringVar(&customer, "customer", "", "customer id")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "payment method id")
	cmd.Flags().StringSliceVar(&methodTypes, "payment-method-types", nil, "allowed payment method types")
	cmd.Flags().StringVar(&captureMethod, "capture-method", "", "automatic or manual")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "confirm immediately")
	cmd.Flags().StringArrayVar(&metadata, "metadata", nil, "metadata as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("currency")

	return cmd
}

func newPaymentIntentsConfirmCommand() *cobra.Command {
	var (
		paymentMethod string
		returnURL     string
	)

	cmd := &cobra.Command{
		Use:   "confirm PAYMENT_INTENT_ID",
		Short: "Confirm a payment intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &stripe.PaymentIntentConfirmParams{}

			if paymentMethod != "" {
				params.PaymentMethod = stripe.String(paymentMethod)
			}

			if returnURL != "" {
				params.ReturnURL = stripe.String(returnURL)
			}

			intent, err := client.PaymentIntents().Confirm(commandContext(cmd), args[0], params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), intent, paymentIntentHeader, [][]string{paymentIntentRow(*intent)})
		},
	}

	cmd.Flags().StringVar(&paymentMethod, "payment-method", "", "payment method id")
	cmd.Flags().StringVar(&returnURL, "return-url", "", "URL to redirect to after authentication")

	return cmd
}

func newPaymentIntentsCaptureCommand() *cobra.Command {
	var amount int64

	cmd := &cobra.Command{
		Use:   "capture PAYMENT_INTENT_ID",
		Short: "Capture a payment intent",
		Long:  "Capture the funds of a payment intent in requires_capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &stripe.PaymentIntentCaptureParams{}
			if amount > 0 {
				params.AmountToCapture = stripe.Int64(amount)
			}

			intent, err := client.PaymentIntents().Capture(commandContext(cmd), args[0], params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), intent, paymentIntentHeader, [][]string{paymentIntentRow(*intent)})
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount to capture (default: all)")

	return cmd
}

func newPaymentIntentsCancelCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "cancel PAYMENT_INTENT_ID",
		Short: "Cancel a payment intent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &stripe.PaymentIntentCancelParams{}
			if reason != "" {
				params.CancellationReason = stripe.String(reason)
			}

			intent, err := client.PaymentIntents().Cancel(commandContext(cmd), args[0], params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), intent, paymentIntentHeader, [][]string{paymentIntentRow(*intent)})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "duplicate, fraudulent, requested_by_customer or abandoned")

	return cmd
}

func newPaymentIntentsSearchCommand() *cobra.Command {
	var (
		limit int64
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search payment intents",
		Long:  "Search payment intents with the search query language, e.g. \"status:'succeeded'\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validateLimit(limit)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := stripe.PaymentIntentSearchParams{}
			params.Query = args[0]
			params.Limit = stripe.Int64(limit)

			ctx := commandContext(cmd)

			paginator, err := client.PaymentIntents().Search(ctx, params)
			if err != nil {
				return err
			}

			intents := paginator.Page().Data
			if all {
				intents, err = paginator.GetAll(ctx, client)
				if err != nil {
					return err
				}
			}

			return render(cmd.OutOrStdout(), intents, paymentIntentHeader, paymentIntentRows(intents))
		},
	}

	addListFlags(cmd, &limit, &all)

	return cmd
}
