package entities

import "strings"

type UserRole string

const (
	UserRoleClient       UserRole = "client"
	UserRoleProfessional UserRole = "professional"
)

// User is a marketplace participant.
//
// PaymentAccounts maps a payment provider name to the external account
// reference of the user on that provider. A professional without an entry for
// the active provider has not finished onboarding and cannot be paid yet.
type User struct {
	ID              string            `json:"id"`
	Role            UserRole          `json:"role"`
	DisplayName     string            `json:"display_name"`
	PaymentAccounts map[string]string `json:"payment_accounts,omitempty"`
}

// CanReceivePayouts is false for client accounts. Rows without a role predate
// role tracking and are judged by their payment accounts alone.
func (u User) CanReceivePayouts() bool {
	return u.ID != "" && u.Role != UserRoleClient
}

func (u User) PaymentAccount(provider string) string {
	if u.PaymentAccounts == nil {
		return ""
	}
	return strings.TrimSpace(u.PaymentAccounts[provider])
}
