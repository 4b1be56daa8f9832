package domain

import (
	"time"
)

type NetworkAccountStatus string

const (
	NetworkAccountStatusActive   NetworkAccountStatus = "ACTIVE"
	NetworkAccountStatusInactive NetworkAccountStatus = "INACTIVE"
)

// NetworkAccount é uma rede do Ad Manager vinculada a um usuário do dashboard
type NetworkAccount struct {
	ID           string               `json:"id"`
	UserID       int                  `json:"user_id"`
	NetworkCode  string               `json:"network_code"`
	Name         string               `json:"name"`
	Nickname     *string              `json:"nickname"`
	CurrencyCode string               `json:"currency_code"`
	TimeZone     string               `json:"time_zone"`
	RefreshToken string               `json:"-"`
	AccessToken  string               `json:"-"`
	TokenExpiry  time.Time            `json:"-"`
	Status       NetworkAccountStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func (a *NetworkAccount) Enabled() bool {
	return a != nil && a.Status == NetworkAccountStatusActive
}

// DisplayName é o nome exibido nos relatórios: apelido quando definido,
// senão o nome da rede
func (a *NetworkAccount) DisplayName() string {
	if a == nil {
		return ""
	}

	if a.Nickname != nil && *a.Nickname != "" {
		return *a.Nickname
	}

	return a.Name
}

type NetworkAccountResponse struct {
	ID           string               `json:"id"`
	NetworkCode  string               `json:"network_code"`
	Name         string               `json:"name"`
	Nickname     *string              `json:"nickname"`
	CurrencyCode string               `json:"currency_code"`
	TimeZone     string               `json:"time_zone"`
	HasToken     bool                 `json:"hasToken"`
	Status       NetworkAccountStatus `json:"status"`
}

type UpdateNetworkAccountRequest struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type UpdateNetworkAccountResponse struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	Status   *string `json:"status,omitempty"`
}
