// Package stripepay wraps the Stripe calls this backend makes: connected
// Express accounts for clubs, onboarding links, and payment intents with
// the referral + platform fee split.
package stripepay

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type Client struct {
	api *client.API
}

func New(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

// CreateExpressAccount creates a connected merchant account for a club.
func (c *Client) CreateExpressAccount(email string) (string, error) {
	account, err := c.api.Accounts.New(&stripe.AccountParams{
		Type:    stripe.String(string(stripe.AccountTypeExpress)),
		Country: stripe.String("HR"),
		Email:   stripe.String(email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	})
	if err != nil {
		return "", err
	}
	return account.ID, nil
}

func (c *Client) CreateAccountLink(accountID, refreshURL, returnURL string) (string, error) {
	link, err := c.api.AccountLinks.New(&stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	})
	if err != nil {
		return "", err
	}
	return link.URL, nil
}

// CreatePaymentIntent creates an EUR intent routed to the club's connected
// account, with the combined referral + platform fee held back.
func (c *Client) CreatePaymentIntent(amountCents, applicationFeeCents int64, destination string, metadata map[string]string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:               stripe.Int64(amountCents),
		Currency:             stripe.String(string(stripe.CurrencyEUR)),
		ApplicationFeeAmount: stripe.Int64(applicationFeeCents),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(destination),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
