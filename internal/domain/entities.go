package domain

import (
	"math/big"
	"strings"
	"time"
)

// CoinDecimals is the fixed divisor applied to on-chain balance units when
// computing human-readable amounts (10^18).
var CoinDecimals = new(big.Float).SetFloat64(1e18)

// Price is a currency-tagged amount. Value is the raw on-chain balance as a
// decimal string (up to 78 digits, too large for uint64).
type Price struct {
	Component string `json:"component"`
	Value     string `json:"value"`
}

// Amount converts the raw on-chain value into a human-readable amount using
// the fixed coin divisor. Returns false if the value is not a decimal number.
func (p Price) Amount() (float64, bool) {
	raw, ok := new(big.Float).SetString(p.Value)
	if !ok {
		return 0, false
	}
	amount, _ := new(big.Float).Quo(raw, CoinDecimals).Float64()
	return amount, true
}

// CanonicalAmount computes the log amount from a price sequence: the first
// element is the canonical price. Returns false on an empty sequence or a
// non-numeric value.
func CanonicalAmount(prices []Price) (float64, bool) {
	if len(prices) == 0 {
		return 0, false
	}
	return prices[0].Amount()
}

// NormalizeCurrency upper-cases a chain currency code for log records.
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(currency)
}

// NativeCurrency is the chain's native token code, used for staking amounts
// that carry no currency tag of their own.
const NativeCurrency = "GLNK"

// Order is a genetic-testing order tracked on chain.
type Order struct {
	ID                   string    `json:"id"`
	ServiceID            string    `json:"service_id"`
	CustomerID           string    `json:"customer_id"`
	CustomerBoxPublicKey string    `json:"customer_box_public_key"`
	SellerID             string    `json:"seller_id"`
	DNASampleTrackingID  string    `json:"dna_sample_tracking_id"`
	Currency             string    `json:"currency"`
	Prices               []Price   `json:"prices"`
	AdditionalPrices     []Price   `json:"additional_prices"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// GeneticAnalysisOrder is an order for analysis of already-uploaded genetic data.
type GeneticAnalysisOrder struct {
	ID                        string    `json:"id"`
	ServiceID                 string    `json:"service_id"`
	CustomerID                string    `json:"customer_id"`
	CustomerBoxPublicKey      string    `json:"customer_box_public_key"`
	SellerID                  string    `json:"seller_id"`
	GeneticDataID             string    `json:"genetic_data_id"`
	GeneticAnalysisTrackingID string    `json:"genetic_analysis_tracking_id"`
	Currency                  string    `json:"currency"`
	Prices                    []Price   `json:"prices"`
	AdditionalPrices          []Price   `json:"additional_prices"`
	Status                    string    `json:"status"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// GeneticAnalystServiceInfo is the public subsection of a service document.
type GeneticAnalystServiceInfo struct {
	Name             string  `json:"name"`
	PricesByCurrency []Price `json:"prices_by_currency,omitempty"`
	ExpectedDuration string  `json:"expected_duration,omitempty"`
	Description      string  `json:"description,omitempty"`
	TestResultSample string  `json:"test_result_sample,omitempty"`
}

// GeneticAnalystService is a service offered by a genetic analyst.
type GeneticAnalystService struct {
	ID      string                    `json:"id"`
	OwnerID string                    `json:"owner_id"`
	Info    GeneticAnalystServiceInfo `json:"info"`
}

// DNASample is a physical sample tracked through lab quality control.
type DNASample struct {
	TrackingID string    `json:"tracking_id"`
	LabID      string    `json:"lab_id"`
	OwnerID    string    `json:"owner_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LabInfo is the public profile subsection of a lab.
type LabInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
}

// Lab is a registered laboratory with a staking lifecycle.
type Lab struct {
	AccountID   string    `json:"account_id"`
	Info        LabInfo   `json:"info"`
	StakeAmount string    `json:"stake_amount"`
	StakeStatus string    `json:"stake_status"`
	UnstakeAt   time.Time `json:"unstake_at"`
}
