package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

var eventHeader = []string{"ID", "Type", "Object", "Object ID", "Created"}

func eventRow(e stripe.Event) []string {
	object := e.Data.Object

	objectID := ""
	if o, ok := object.Value.(stripe.Object); ok {
		objectID = o.ObjectID()
	}

	return []string{e.ID, string(e.Type), valueOr(object.Type), valueOr(objectID), formatUnix(e.Created)}
}

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event", "evt"},
		Short:   "Inspect events",
		Long:    "List and inspect the events of the last 30 days",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		limit     int64
		all       bool
		eventType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long:  "List events, newest first. --type accepts wildcards such as \"customer.*\".",
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := validateLimit(limit)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := stripe.EventListParams{}
			params.Limit = stripe.Int64(limit)

			if eventType != "" {
				params.Type = stripe.String(strings.TrimSpace(eventType))
			}

			ctx := commandContext(cmd)

			paginator, err := client.Events().ListAll(ctx, params)
			if err != nil {
				return err
			}

			events := paginator.Page().Data
			if all {
				events = nil

				for event, err := range paginator.Stream(ctx, client) {
					if err != nil {
						return err
					}

					events = append(events, event)
				}
			}

			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, eventRow(e))
			}

			return render(cmd.OutOrStdout(), events, eventHeader, rows)
		},
	}

	addListFlags(cmd, &limit, &all)
	cmd.Flags().StringVar(&eventType, "type", "", "only events of this type")

	return cmd
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Get event details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			event, err := client.Events().Retrieve(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), event, eventHeader, [][]string{eventRow(*event)})
		},
	}
}
