package models

type ConvertRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"` // crypto symbol, e.g. "USDT"
	To     string  `json:"to"`   // fiat currency, e.g. "INR"
}

type ConvertResponse struct {
	ConvertedAmount float64 `json:"convertedAmount"`
	Currency        string  `json:"currency"`
	Rate            float64 `json:"rate"`
}
