// Package stripe provides types, interfaces, and helpers for working with the
// Stripe API.
//
// # Overview
//
// The stripe package defines the resource types (Customer, Charge,
// PaymentIntent, Refund, Event), the parameter bags used to create, update
// and list them, and the interfaces of the resource-oriented clients. A
// concrete implementation is provided by the stripeclient package, which
// wires configuration, transport and the request pipeline.
//
//	cli, err := stripeclient.New(&stripe.Config{
//	  SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
//	  Strategy:  stripe.ExponentialBackoff(3),
//	})
//	if err != nil { log.Fatal(err) }
//
//	cus, err := cli.Customers().Create(ctx, &stripe.CustomerParams{
//	  Email: stripe.String("jenny@example.com"),
//	})
//
// # Request strategies
//
// Every call runs under a RequestStrategy. Once sends a single attempt.
// Idempotent sends a single attempt with a caller supplied idempotency key.
// Retry and ExponentialBackoff retry connection failures and 5xx, 409 and
// 429 responses, reusing one generated idempotency key across the attempts
// of a call. A Stripe-Should-Retry: false response header always stops
// retrying.
//
// # Pagination
//
// List endpoints return a List. ListPaginator walks the remaining pages using
// the id of the last item as the starting_after cursor:
//
//	pager, err := cli.Customers().ListAll(ctx, stripe.CustomerListParams{})
//	if err != nil { return err }
//
//	for cus, err := range pager.Stream(ctx, cli) {
//	  if err != nil { return err }
//	  fmt.Println(cus.ID)
//	}
//
// # Errors
//
// Non-2xx responses surface as *RequestError. Transport failures surface as
// *ClientError. Helpers such as IsNotFound, IsCardError and IsRateLimited
// branch on common cases.
package stripe
