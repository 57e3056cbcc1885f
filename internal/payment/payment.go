// Package payment provides the interchangeable settlement methods offered at
// checkout. All variants are confirmation stubs: they cannot fail and reach
// no external gateway.
package payment

import (
	"fmt"

	"github.com/google/uuid"
)

type Method interface {
	Name() string
	Settle(amount float64) (string, error)
}

type Card struct{}

func (Card) Name() string { return "card" }

func (Card) Settle(amount float64) (string, error) {
	return fmt.Sprintf("card payment of %.2f confirmed (ref %s)", amount, uuid.NewString()), nil
}

type CashOnDelivery struct{}

func (CashOnDelivery) Name() string { return "cash on delivery" }

func (CashOnDelivery) Settle(amount float64) (string, error) {
	return fmt.Sprintf("cash on delivery of %.2f recorded (ref %s)", amount, uuid.NewString()), nil
}

type Wallet struct{}

func (Wallet) Name() string { return "wallet" }

func (Wallet) Settle(amount float64) (string, error) {
	return fmt.Sprintf("wallet payment of %.2f confirmed (ref %s)", amount, uuid.NewString()), nil
}

// FromChoice maps the checkout menu selection to a method.
func FromChoice(choice string) (Method, bool) {
	switch choice {
	case "1":
		return Card{}, true
	case "2":
		return CashOnDelivery{}, true
	case "3":
		return Wallet{}, true
	default:
		return nil, false
	}
}
