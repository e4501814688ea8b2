// Package stripeclient builds clients that implement stripe.Client and
// stripe.BlockingClient.
//
// The stripe package holds the types: configuration, request strategies,
// errors, resources, list pages and paginators. This package wires them to
// the default HTTP backend.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/stripe-client/pkg/stripe"
//	  "github.com/fivetwenty-io/stripe-client/pkg/stripeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := stripeclient.New(&stripe.Config{
//	    SecretKey: "sk_test_...",
//	    Strategy:  stripe.ExponentialBackoff(3),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  customer, err := cli.Customers().Create(ctx, &stripe.CustomerParams{
//	    Email: stripe.String("jenny@example.com"),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Act on a connected account for a few calls.
//	  connected := cli.WithHeaders(stripe.Headers{StripeAccount: "acct_123"})
//	  _, _ = connected.Customers().Retrieve(ctx, customer.ID, nil)
//	}
//
// Pagination
//
// List calls return one page. ListAll returns a paginator that fetches the
// following pages on demand:
//
//	pages, err := cli.Customers().ListAll(ctx, stripe.CustomerListParams{})
//	for customer, err := range pages.Stream(ctx, cli) {
//	  ...
//	}
//
// Errors
//
// Failed calls return a *stripe.RequestError for API errors, a
// *stripe.ClientError for transport failures, a *stripe.JSONError when a
// successful body cannot be decoded and a *stripe.QueryStringError when the
// parameters cannot be encoded. Use errors.As to inspect them.
//
// Blocking calls
//
// NewBlocking returns a client whose methods take no context. Each call is
// bounded by a 30 second deadline and fails with stripe.ErrTimeout when it
// runs over; the call is not retried.
package stripeclient
