package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

var customerHeader = []string{"ID", "Email", "Name", "Balance", "Created"}

func customerRow(c stripe.Customer) []string {
	return []string{c.ID, valueOr(c.Email), valueOr(c.Name), strconv.FormatInt(c.Balance, 10), formatUnix(c.Created)}
}

func customerRows(customers []stripe.Customer) [][]string {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, customerRow(c))
	}

	return rows
}

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cus"},
		Short:   "Manage customers",
		Long:    "List, inspect, create, update, search and delete customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersUpdateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())
	cmd.AddCommand(newCustomersSearchCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		limit int64
		all   bool
		email string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := validateLimit(limit)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := stripe.CustomerListParams{}
			params.Limit = stripe.Int64(limit)

			if email != "" {
				params.Email = stripe.String(email)
			}

			ctx := commandContext(cmd)

			var customers []stripe.Customer

			if all {
				paginator, err := client.Customers().ListAll(ctx, params)
				if err != nil {
					return err
				}

				customers, err = paginator.GetAll(ctx, client)
				if err != nil {
					return err
				}
			} else {
				page, err := client.Customers().List(ctx, params)
				if err != nil {
					return err
				}

				customers = page.Data
			}

			return render(cmd.OutOrStdout(), customers, customerHeader, customerRows(customers))
		},
	}

	addListFlags(cmd, &limit, &all)
	cmd.Flags().StringVar(&email, "email", "", "only customers with this email")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	var expand []string

	cmd := &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Retrieve(commandContext(cmd), args[0], &stripe.Params{Expand: expand})
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), customer, customerHeader, [][]string{customerRow(*customer)})
		},
	}

	cmd.Flags().StringSliceVar(&expand, "expand", nil, "fields to expand")

	return cmd
}

// customerFlags holds the flags of create and update.
type customerFlags struct {
	email       string
	name        string
	description string
	phone       string
	metadata    []string
}

func (f *customerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.name, "name", "", "full name")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().StringArrayVar(&f.metadata, "metadata", nil, "metadata as key=value (repeatable)")
}

func (f *customerFlags) params(cmd *cobra.Command) (*stripe.CustomerParams, error) {
	params := &stripe.CustomerParams{}

	if cmd.Flags().Changed("email") {
		params.Email = stripe.String(f.email)
	}

	if cmd.Flags().Changed("name") {
		params.Name = stripe.String(f.name)
	}

	if cmd.Flags().Changed("description") {
		params.Description = stripe.String(f.description)
	}

	if cmd.Flags().Changed("phone") {
		params.Phone = stripe.String(f.phone)
	}

	metadata, err := parseMetadata(f.metadata)
	if err != nil {
		return nil, err
	}

	params.Metadata = metadata

	return params, nil
}

func newCustomersCreateCommand() *cobra.Command {
	var flags customerFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a new customer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := flags.params(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Create(commandContext(cmd), params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), customer, customerHeader, [][]string{customerRow(*customer)})
		},
	}

	flags.register(cmd)

	return cmd
}

func newCustomersUpdateCommand() *cobra.Command {
	var flags customerFlags

	cmd := &cobra.Command{
		Use:   "update CUSTOMER_ID",
		Short: "Update a customer",
		Long:  "Update the given fields of an existing customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.params(cmd)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Update(commandContext(cmd), args[0], params)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), customer, customerHeader, [][]string{customerRow(*customer)})
		},
	}

	flags.register(cmd)

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Long:  "Permanently delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			deleted, err := client.Customers().Delete(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), deleted,
				[]string{"ID", "Deleted"},
				[][]string{{deleted.ID, strconv.FormatBool(deleted.Deleted)}})
		},
	}
}

func newCustomersSearchCommand() *cobra.Command {
	var (
		limit int64
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search customers",
		Long:  "Search customers with the search query language, e.g. \"email:'jenny@example.com'\"",
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

			params := stripe.CustomerSearchParams{}
			params.Query = args[0]
			params.Limit = stripe.Int64(limit)

			ctx := commandContext(cmd)

			paginator, err := client.Customers().Search(ctx, params)
			if err != nil {
				return err
			}

			customers := paginator.Page().Data
			if all {
				customers, err = paginator.GetAll(ctx, client)
				if err != nil {
					return fmt.Errorf("searching customers: %w", err)
				}
			}

			return render(cmd.OutOrStdout(), customers, customerHeader, customerRows(customers))
		},
	}

	addListFlags(cmd, &limit, &all)

	return cmd
}
