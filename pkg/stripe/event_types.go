package stripe

import "encoding/json"

// EventType is the "type" of a webhook event.
type EventType string

// Known event types. Types the client does not know decode to EventTypeUnknown.
const (
	EventTypeAccountApplicationAuthorized             EventType = "account.application.authorized"
	EventTypeAccountApplicationDeauthorized           EventType = "account.application.deauthorized"
	EventTypeAccountExternalAccountCreated            EventType = "account.external_account.created"
	EventTypeAccountExternalAccountDeleted            EventType = "account.external_account.deleted"
	EventTypeAccountExternalAccountUpdated            EventType = "account.external_account.updated"
	EventTypeAccountUpdated                           EventType = "account.updated"
	EventTypeApplicationFeeCreated                    EventType = "application_fee.created"
	EventTypeApplicationFeeRefundUpdated              EventType = "application_fee.refund.updated"
	EventTypeApplicationFeeRefunded                   EventType = "application_fee.refunded"
	EventTypeBalanceAvailable                         EventType = "balance.available"
	EventTypeBillingPortalConfigurationCreated        EventType = "billing_portal.configuration.created"
	EventTypeBillingPortalConfigurationUpdated        EventType = "billing_portal.configuration.updated"
	EventTypeCapabilityUpdated                        EventType = "capability.updated"
	EventTypeCashBalanceFundsAvailable                EventType = "cash_balance.funds_available"
	EventTypeChargeCaptured                           EventType = "charge.captured"
	EventTypeChargeDisputeClosed                      EventType = "charge.dispute.closed"
	EventTypeChargeDisputeCreated                     EventType = "charge.dispute.created"
	EventTypeChargeDisputeFundsReinstated             EventType = "charge.dispute.funds_reinstated"
	EventTypeChargeDisputeFundsWithdrawn              EventType = "charge.dispute.funds_withdrawn"
	EventTypeChargeDisputeUpdated                     EventType = "charge.dispute.updated"
	EventTypeChargeExpired                            EventType = "charge.expired"
	EventTypeChargeFailed                             EventType = "charge.failed"
	EventTypeChargePending                            EventType = "charge.pending"
	EventTypeChargeRefundUpdated                      EventType = "charge.refund.updated"
	EventTypeChargeRefunded                           EventType = "charge.refunded"
	EventTypeChargeSucceeded                          EventType = "charge.succeeded"
	EventTypeChargeUpdated                            EventType = "charge.updated"
	EventTypeCheckoutSessionAsyncPaymentFailed        EventType = "checkout.session.async_payment_failed"
	EventTypeCheckoutSessionAsyncPaymentSucceeded     EventType = "checkout.session.async_payment_succeeded"
	EventTypeCheckoutSessionCompleted                 EventType = "checkout.session.completed"
	EventTypeCheckoutSessionExpired                   EventType = "checkout.session.expired"
	EventTypeCouponCreated                            EventType = "coupon.created"
	EventTypeCouponDeleted                            EventType = "coupon.deleted"
	EventTypeCouponUpdated                            EventType = "coupon.updated"
	EventTypeCreditNoteCreated                        EventType = "credit_note.created"
	EventTypeCreditNoteUpdated                        EventType = "credit_note.updated"
	EventTypeCreditNoteVoided                         EventType = "credit_note.voided"
	EventTypeCustomerCreated                          EventType = "customer.created"
	EventTypeCustomerDeleted                          EventType = "customer.deleted"
	EventTypeCustomerDiscountCreated                  EventType = "customer.discount.created"
	EventTypeCustomerDiscountDeleted                  EventType = "customer.discount.deleted"
	EventTypeCustomerDiscountUpdated                  EventType = "customer.discount.updated"
	EventTypeCustomerSourceCreated                    EventType = "customer.source.created"
	EventTypeCustomerSourceDeleted                    EventType = "customer.source.deleted"
	EventTypeCustomerSourceExpiring                   EventType = "customer.source.expiring"
	EventTypeCustomerSourceUpdated                    EventType = "customer.source.updated"
	EventTypeCustomerSubscriptionCreated              EventType = "customer.subscription.created"
	EventTypeCustomerSubscriptionDeleted              EventType = "customer.subscription.deleted"
	EventTypeCustomerSubscriptionPaused               EventType = "customer.subscription.paused"
	EventTypeCustomerSubscriptionPendingUpdateApplied EventType = "customer.subscription.pending_update_applied"
	EventTypeCustomerSubscriptionPendingUpdateExpired EventType = "customer.subscription.pending_update_expired"
	EventTypeCustomerSubscriptionResumed              EventType = "customer.subscription.resumed"
	EventTypeCustomerSubscriptionTrialWillEnd         EventType = "customer.subscription.trial_will_end"
	EventTypeCustomerSubscriptionUpdated              EventType = "customer.subscription.updated"
	EventTypeCustomerTaxIDCreated                     EventType = "customer.tax_id.created"
	EventTypeCustomerTaxIDDeleted                     EventType = "customer.tax_id.deleted"
	EventTypeCustomerTaxIDUpdated                     EventType = "customer.tax_id.updated"
	EventTypeCustomerUpdated                          EventType = "customer.updated"
	EventTypeFileCreated                              EventType = "file.created"
	EventTypeIdentityVerificationSessionCanceled      EventType = "identity.verification_session.canceled"
	EventTypeIdentityVerificationSessionCreated       EventType = "identity.verification_session.created"
	EventTypeIdentityVerificationSessionProcessing    EventType = "identity.verification_session.processing"
	EventTypeIdentityVerificationSessionRedacted      EventType = "identity.verification_session.redacted"
	EventTypeIdentityVerificationSessionRequiresInput EventType = "identity.verification_session.requires_input"
	EventTypeIdentityVerificationSessionVerified      EventType = "identity.verification_session.verified"
	EventTypeInvoiceCreated                           EventType = "invoice.created"
	EventTypeInvoiceDeleted                           EventType = "invoice.deleted"
	EventTypeInvoiceFinalizationFailed                EventType = "invoice.finalization_failed"
	EventTypeInvoiceFinalized                         EventType = "invoice.finalized"
	EventTypeInvoiceMarkedUncollectible               EventType = "invoice.marked_uncollectible"
	EventTypeInvoicePaid                              EventType = "invoice.paid"
	EventTypeInvoicePaymentActionRequired             EventType = "invoice.payment_action_required"
	EventTypeInvoicePaymentFailed                     EventType = "invoice.payment_failed"
	EventTypeInvoicePaymentSucceeded                  EventType = "invoice.payment_succeeded"
	EventTypeInvoiceSent                              EventType = "invoice.sent"
	EventTypeInvoiceUpcoming                          EventType = "invoice.upcoming"
	EventTypeInvoiceUpdated                           EventType = "invoice.updated"
	EventTypeInvoiceVoided                            EventType = "invoice.voided"
	EventTypeInvoiceItemCreated                       EventType = "invoiceitem.created"
	EventTypeInvoiceItemDeleted                       EventType = "invoiceitem.deleted"
	EventTypeInvoiceItemUpdated                       EventType = "invoiceitem.updated"
	EventTypeIssuingAuthorizationCreated              EventType = "issuing_authorization.created"
	EventTypeIssuingAuthorizationRequest              EventType = "issuing_authorization.request"
	EventTypeIssuingAuthorizationUpdated              EventType = "issuing_authorization.updated"
	EventTypeIssuingCardCreated                       EventType = "issuing_card.created"
	EventTypeIssuingCardUpdated                       EventType = "issuing_card.updated"
	EventTypeIssuingCardholderCreated                 EventType = "issuing_cardholder.created"
	EventTypeIssuingCardholderUpdated                 EventType = "issuing_cardholder.updated"
	EventTypeIssuingDisputeClosed                     EventType = "issuing_dispute.closed"
	EventTypeIssuingDisputeCreated                    EventType = "issuing_dispute.created"
	EventTypeIssuingDisputeFundsReinstated            EventType = "issuing_dispute.funds_reinstated"
	EventTypeIssuingDisputeSubmitted                  EventType = "issuing_dispute.submitted"
	EventTypeIssuingDisputeUpdated                    EventType = "issuing_dispute.updated"
	EventTypeIssuingTransactionCreated                EventType = "issuing_transaction.created"
	EventTypeIssuingTransactionUpdated                EventType = "issuing_transaction.updated"
	EventTypeMandateUpdated                           EventType = "mandate.updated"
	EventTypeOrderCreated                             EventType = "order.created"
	EventTypeOrderPaymentFailed                       EventType = "order.payment_failed"
	EventTypeOrderPaymentSucceeded                    EventType = "order.payment_succeeded"
	EventTypeOrderUpdated                             EventType = "order.updated"
	EventTypeOrderReturnCreated                       EventType = "order_return.created"
	EventTypeOrderReturnUpdated                       EventType = "order_return.updated"
	EventTypePaymentIntentAmountCapturableUpdated     EventType = "payment_intent.amount_capturable_updated"
	EventTypePaymentIntentCanceled                    EventType = "payment_intent.canceled"
	EventTypePaymentIntentCreated                     EventType = "payment_intent.created"
	EventTypePaymentIntentPartiallyFunded             EventType = "payment_intent.partially_funded"
	EventTypePaymentIntentPaymentFailed               EventType = "payment_intent.payment_failed"
	EventTypePaymentIntentProcessing                  EventType = "payment_intent.processing"
	EventTypePaymentIntentRequiresAction              EventType = "payment_intent.requires_action"
	EventTypePaymentIntentRequiresCapture             EventType = "payment_intent.requires_capture"
	EventTypePaymentIntentSucceeded                   EventType = "payment_intent.succeeded"
	EventTypePaymentLinkCreated                       EventType = "payment_link.created"
	EventTypePaymentLinkUpdated                       EventType = "payment_link.updated"
	EventTypePaymentMethodAttached                    EventType = "payment_method.attached"
	EventTypePaymentMethodAutomaticallyUpdated        EventType = "payment_method.automatically_updated"
	EventTypePaymentMethodDetached                    EventType = "payment_method.detached"
	EventTypePaymentMethodUpdated                     EventType = "payment_method.updated"
	EventTypePayoutCanceled                           EventType = "payout.canceled"
	EventTypePayoutCreated                            EventType = "payout.created"
	EventTypePayoutFailed                             EventType = "payout.failed"
	EventTypePayoutPaid                               EventType = "payout.paid"
	EventTypePayoutUpdated                            EventType = "payout.updated"
	EventTypePersonCreated                            EventType = "person.created"
	EventTypePersonDeleted                            EventType = "person.deleted"
	EventTypePersonUpdated                            EventType = "person.updated"
	EventTypePlanCreated                              EventType = "plan.created"
	EventTypePlanDeleted                              EventType = "plan.deleted"
	EventTypePlanUpdated                              EventType = "plan.updated"
	EventTypePriceCreated                             EventType = "price.created"
	EventTypePriceDeleted                             EventType = "price.deleted"
	EventTypePriceUpdated                             EventType = "price.updated"
	EventTypeProductCreated                           EventType = "product.created"
	EventTypeProductDeleted                           EventType = "product.deleted"
	EventTypeProductUpdated                           EventType = "product.updated"
	EventTypePromotionCodeCreated                     EventType = "promotion_code.created"
	EventTypePromotionCodeUpdated                     EventType = "promotion_code.updated"
	EventTypeQuoteAccepted                            EventType = "quote.accepted"
	EventTypeQuoteCanceled                            EventType = "quote.canceled"
	EventTypeQuoteCreated                             EventType = "quote.created"
	EventTypeQuoteFinalized                           EventType = "quote.finalized"
	EventTypeRadarEarlyFraudWarningCreated            EventType = "radar.early_fraud_warning.created"
	EventTypeRadarEarlyFraudWarningUpdated            EventType = "radar.early_fraud_warning.updated"
	EventTypeRecipientCreated                         EventType = "recipient.created"
	EventTypeRecipientDeleted                         EventType = "recipient.deleted"
	EventTypeRecipientUpdated                         EventType = "recipient.updated"
	EventTypeRefundCreated                            EventType = "refund.created"
	EventTypeRefundUpdated                            EventType = "refund.updated"
	EventTypeReportingReportRunFailed                 EventType = "reporting.report_run.failed"
	EventTypeReportingReportRunSucceeded              EventType = "reporting.report_run.succeeded"
	EventTypeReportingReportTypeUpdated               EventType = "reporting.report_type.updated"
	EventTypeReviewClosed                             EventType = "review.closed"
	EventTypeReviewOpened                             EventType = "review.opened"
	EventTypeSetupIntentCanceled                      EventType = "setup_intent.canceled"
	EventTypeSetupIntentCreated                       EventType = "setup_intent.created"
	EventTypeSetupIntentRequiresAction                EventType = "setup_intent.requires_action"
	EventTypeSetupIntentSetupFailed                   EventType = "setup_intent.setup_failed"
	EventTypeSetupIntentSucceeded                     EventType = "setup_intent.succeeded"
	EventTypeSigmaScheduledQueryRunCreated            EventType = "sigma.scheduled_query_run.created"
	EventTypeSKUCreated                               EventType = "sku.created"
	EventTypeSKUDeleted                               EventType = "sku.deleted"
	EventTypeSKUUpdated                               EventType = "sku.updated"
	EventTypeSourceCanceled                           EventType = "source.canceled"
	EventTypeSourceChargeable                         EventType = "source.chargeable"
	EventTypeSourceFailed                             EventType = "source.failed"
	EventTypeSourceMandateNotification                EventType = "source.mandate_notification"
	EventTypeSourceRefundAttributesRequired           EventType = "source.refund_attributes_required"
	EventTypeSourceTransactionCreated                 EventType = "source.transaction.created"
	EventTypeSourceTransactionUpdated                 EventType = "source.transaction.updated"
	EventTypeSubscriptionScheduleAborted              EventType = "subscription_schedule.aborted"
	EventTypeSubscriptionScheduleCanceled             EventType = "subscription_schedule.canceled"
	EventTypeSubscriptionScheduleCompleted            EventType = "subscription_schedule.completed"
	EventTypeSubscriptionScheduleCreated              EventType = "subscription_schedule.created"
	EventTypeSubscriptionScheduleExpiring             EventType = "subscription_schedule.expiring"
	EventTypeSubscriptionScheduleReleased             EventType = "subscription_schedule.released"
	EventTypeSubscriptionScheduleUpdated              EventType = "subscription_schedule.updated"
	EventTypeTaxRateCreated                           EventType = "tax_rate.created"
	EventTypeTaxRateUpdated                           EventType = "tax_rate.updated"
	EventTypeTerminalReaderActionFailed               EventType = "terminal.reader.action_failed"
	EventTypeTerminalReaderActionSucceeded            EventType = "terminal.reader.action_succeeded"
	EventTypeTestHelpersTestClockAdvancing            EventType = "test_helpers.test_clock.advancing"
	EventTypeTestHelpersTestClockCreated              EventType = "test_helpers.test_clock.created"
	EventTypeTestHelpersTestClockDeleted              EventType = "test_helpers.test_clock.deleted"
	EventTypeTestHelpersTestClockInternalFailure      EventType = "test_helpers.test_clock.internal_failure"
	EventTypeTestHelpersTestClockReady                EventType = "test_helpers.test_clock.ready"
	EventTypeTopupCanceled                            EventType = "topup.canceled"
	EventTypeTopupCreated                             EventType = "topup.created"
	EventTypeTopupFailed                              EventType = "topup.failed"
	EventTypeTopupReversed                            EventType = "topup.reversed"
	EventTypeTopupSucceeded                           EventType = "topup.succeeded"
	EventTypeTransferCreated                          EventType = "transfer.created"
	EventTypeTransferFailed                           EventType = "transfer.failed"
	EventTypeTransferPaid                             EventType = "transfer.paid"
	EventTypeTransferReversed                         EventType = "transfer.reversed"
	EventTypeTransferUpdated                          EventType = "transfer.updated"
	EventTypeUnknown                                  EventType = "unknown"
)

var knownEventTypes = map[EventType]struct{}{
	EventTypeAccountApplicationAuthorized:             {},
	EventTypeAccountApplicationDeauthorized:           {},
	EventTypeAccountExternalAccountCreated:            {},
	EventTypeAccountExternalAccountDeleted:            {},
	EventTypeAccountExternalAccountUpdated:            {},
	EventTypeAccountUpdated:                           {},
	EventTypeApplicationFeeCreated:                    {},
	EventTypeApplicationFeeRefundUpdated:              {},
	EventTypeApplicationFeeRefunded:                   {},
	EventTypeBalanceAvailable:                         {},
	EventTypeBillingPortalConfigurationCreated:        {},
	EventTypeBillingPortalConfigurationUpdated:        {},
	EventTypeCapabilityUpdated:                        {},
	EventTypeCashBalanceFundsAvailable:                {},
	EventTypeChargeCaptured:                           {},
	EventTypeChargeDisputeClosed:                      {},
	EventTypeChargeDisputeCreated:                     {},
	EventTypeChargeDisputeFundsReinstated:             {},
	EventTypeChargeDisputeFundsWithdrawn:              {},
	EventTypeChargeDisputeUpdated:                     {},
	EventTypeChargeExpired:                            {},
	EventTypeChargeFailed:                             {},
	EventTypeChargePending:                            {},
	EventTypeChargeRefundUpdated:                      {},
	EventTypeChargeRefunded:                           {},
	EventTypeChargeSucceeded:                          {},
	EventTypeChargeUpdated:                            {},
	EventTypeCheckoutSessionAsyncPaymentFailed:        {},
	EventTypeCheckoutSessionAsyncPaymentSucceeded:     {},
	EventTypeCheckoutSessionCompleted:                 {},
	EventTypeCheckoutSessionExpired:                   {},
	EventTypeCouponCreated:                            {},
	EventTypeCouponDeleted:                            {},
	EventTypeCouponUpdated:                            {},
	EventTypeCreditNoteCreated:                        {},
	EventTypeCreditNoteUpdated:                        {},
	EventTypeCreditNoteVoided:                         {},
	EventTypeCustomerCreated:                          {},
	EventTypeCustomerDeleted:                          {},
	EventTypeCustomerDiscountCreated:                  {},
	EventTypeCustomerDiscountDeleted:                  {},
	EventTypeCustomerDiscountUpdated:                  {},
	EventTypeCustomerSourceCreated:                    {},
	EventTypeCustomerSourceDeleted:                    {},
	EventTypeCustomerSourceExpiring:                   {},
	EventTypeCustomerSourceUpdated:                    {},
	EventTypeCustomerSubscriptionCreated:              {},
	EventTypeCustomerSubscriptionDeleted:              {},
	EventTypeCustomerSubscriptionPaused:               {},
	EventTypeCustomerSubscriptionPendingUpdateApplied: {},
	EventTypeCustomerSubscriptionPendingUpdateExpired: {},
	EventTypeCustomerSubscriptionResumed:              {},
	EventTypeCustomerSubscriptionTrialWillEnd:         {},
	EventTypeCustomerSubscriptionUpdated:              {},
	EventTypeCustomerTaxIDCreated:                     {},
	EventTypeCustomerTaxIDDeleted:                     {},
	EventTypeCustomerTaxIDUpdated:                     {},
	EventTypeCustomerUpdated:                          {},
	EventTypeFileCreated:                              {},
	EventTypeIdentityVerificationSessionCanceled:      {},
	EventTypeIdentityVerificationSessionCreated:       {},
	EventTypeIdentityVerificationSessionProcessing:    {},
	EventTypeIdentityVerificationSessionRedacted:      {},
	EventTypeIdentityVerificationSessionRequiresInput: {},
	EventTypeIdentityVerificationSessionVerified:      {},
	EventTypeInvoiceCreated:                           {},
	EventTypeInvoiceDeleted:                           {},
	EventTypeInvoiceFinalizationFailed:                {},
	EventTypeInvoiceFinalized:                         {},
	EventTypeInvoiceMarkedUncollectible:               {},
	EventTypeInvoicePaid:                              {},
	EventTypeInvoicePaymentActionRequired:             {},
	EventTypeInvoicePaymentFailed:                     {},
	EventTypeInvoicePaymentSucceeded:                  {},
	EventTypeInvoiceSent:                              {},
	EventTypeInvoiceUpcoming:                          {},
	EventTypeInvoiceUpdated:                           {},
	EventTypeInvoiceVoided:                            {},
	EventTypeInvoiceItemCreated:                       {},
	EventTypeInvoiceItemDeleted:                       {},
	EventTypeInvoiceItemUpdated:                       {},
	EventTypeIssuingAuthorizationCreated:              {},
	EventTypeIssuingAuthorizationRequest:              {},
	EventTypeIssuingAuthorizationUpdated:              {},
	EventTypeIssuingCardCreated:                       {},
	EventTypeIssuingCardUpdated:                       {},
	EventTypeIssuingCardholderCreated:                 {},
	EventTypeIssuingCardholderUpdated:                 {},
	EventTypeIssuingDisputeClosed:                     {},
	EventTypeIssuingDisputeCreated:                    {},
	EventTypeIssuingDisputeFundsReinstated:            {},
	EventTypeIssuingDisputeSubmitted:                  {},
	EventTypeIssuingDisputeUpdated:                    {},
	EventTypeIssuingTransactionCreated:                {},
	EventTypeIssuingTransactionUpdated:                {},
	EventTypeMandateUpdated:                           {},
	EventTypeOrderCreated:                             {},
	EventTypeOrderPaymentFailed:                       {},
	EventTypeOrderPaymentSucceeded:                    {},
	EventTypeOrderUpdated:                             {},
	EventTypeOrderReturnCreated:                       {},
	EventTypeOrderReturnUpdated:                       {},
	EventTypePaymentIntentAmountCapturableUpdated:     {},
	EventTypePaymentIntentCanceled:                    {},
	EventTypePaymentIntentCreated:                     {},
	EventTypePaymentIntentPartiallyFunded:             {},
	EventTypePaymentIntentPaymentFailed:               {},
	EventTypePaymentIntentProcessing:                  {},
	EventTypePaymentIntentRequiresAction:              {},
	EventTypePaymentIntentRequiresCapture:             {},
	EventTypePaymentIntentSucceeded:                   {},
	EventTypePaymentLinkCreated:                       {},
	EventTypePaymentLinkUpdated:                       {},
	EventTypePaymentMethodAttached:                    {},
	EventTypePaymentMethodAutomaticallyUpdated:        {},
	EventTypePaymentMethodDetached:                    {},
	EventTypePaymentMethodUpdated:                     {},
	EventTypePayoutCanceled:                           {},
	EventTypePayoutCreated:                            {},
	EventTypePayoutFailed:                             {},
	EventTypePayoutPaid:                               {},
	EventTypePayoutUpdated:                            {},
	EventTypePersonCreated:                            {},
	EventTypePersonDeleted:                            {},
	EventTypePersonUpdated:                            {},
	EventTypePlanCreated:                              {},
	EventTypePlanDeleted:                              {},
	EventTypePlanUpdated:                              {},
	EventTypePriceCreated:                             {},
	EventTypePriceDeleted:                             {},
	EventTypePriceUpdated:                             {},
	EventTypeProductCreated:                           {},
	EventTypeProductDeleted:                           {},
	EventTypeProductUpdated:                           {},
	EventTypePromotionCodeCreated:                     {},
	EventTypePromotionCodeUpdated:                     {},
	EventTypeQuoteAccepted:                            {},
	EventTypeQuoteCanceled:                            {},
	EventTypeQuoteCreated:                             {},
	EventTypeQuoteFinalized:                           {},
	EventTypeRadarEarlyFraudWarningCreated:            {},
	EventTypeRadarEarlyFraudWarningUpdated:            {},
	EventTypeRecipientCreated:                         {},
	EventTypeRecipientDeleted:                         {},
	EventTypeRecipientUpdated:                         {},
	EventTypeRefundCreated:                            {},
	EventTypeRefundUpdated:                            {},
	EventTypeReportingReportRunFailed:                 {},
	EventTypeReportingReportRunSucceeded:              {},
	EventTypeReportingReportTypeUpdated:               {},
	EventTypeReviewClosed:                             {},
	EventTypeReviewOpened:                             {},
	EventTypeSetupIntentCanceled:                      {},
	EventTypeSetupIntentCreated:                       {},
	EventTypeSetupIntentRequiresAction:                {},
	EventTypeSetupIntentSetupFailed:                   {},
	EventTypeSetupIntentSucceeded:                     {},
	EventTypeSigmaScheduledQueryRunCreated:            {},
	EventTypeSKUCreated:                               {},
	EventTypeSKUDeleted:                               {},
	EventTypeSKUUpdated:                               {},
	EventTypeSourceCanceled:                           {},
	EventTypeSourceChargeable:                         {},
	EventTypeSourceFailed:                             {},
	EventTypeSourceMandateNotification:                {},
	EventTypeSourceRefundAttributesRequired:           {},
	EventTypeSourceTransactionCreated:                 {},
	EventTypeSourceTransactionUpdated:                 {},
	EventTypeSubscriptionScheduleAborted:              {},
	EventTypeSubscriptionScheduleCanceled:             {},
	EventTypeSubscriptionScheduleCompleted:            {},
	EventTypeSubscriptionScheduleCreated:              {},
	EventTypeSubscriptionScheduleExpiring:             {},
	EventTypeSubscriptionScheduleReleased:             {},
	EventTypeSubscriptionScheduleUpdated:              {},
	EventTypeTaxRateCreated:                           {},
	EventTypeTaxRateUpdated:                           {},
	EventTypeTerminalReaderActionFailed:               {},
	EventTypeTerminalReaderActionSucceeded:            {},
	EventTypeTestHelpersTestClockAdvancing:            {},
	EventTypeTestHelpersTestClockCreated:              {},
	EventTypeTestHelpersTestClockDeleted:              {},
	EventTypeTestHelpersTestClockInternalFailure:      {},
	EventTypeTestHelpersTestClockReady:                {},
	EventTypeTopupCanceled:                            {},
	EventTypeTopupCreated:                             {},
	EventTypeTopupFailed:                              {},
	EventTypeTopupReversed:                            {},
	EventTypeTopupSucceeded:                           {},
	EventTypeTransferCreated:                          {},
	EventTypeTransferFailed:                           {},
	EventTypeTransferPaid:                             {},
	EventTypeTransferReversed:                         {},
	EventTypeTransferUpdated:                          {},
}

// UnmarshalJSON decodes unrecognized event types to EventTypeUnknown.
func (t *EventType) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	if _, ok := knownEventTypes[EventType(raw)]; !ok {
		*t = EventTypeUnknown

		return nil
	}

	*t = EventType(raw)

	return nil
}
