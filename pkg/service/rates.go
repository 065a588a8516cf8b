package service

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/cache"
)

const coingeckoURL = "https://api.coingecko.com/api/v3/simple/price"

type RateService struct {
	client *resty.Client
}

func NewRateService() *RateService {
	return &RateService{client: resty.New()}
}

// Convert prices an amount of a crypto asset in a fiat currency using the
// CoinGecko simple-price API, with a short-lived in-memory cache in front.
func (s *RateService) Convert(req models.ConvertRequest) (models.ConvertResponse, error) {
	from := strings.ToLower(req.From)
	to := strings.ToLower(req.To)
	if from == "" || to == "" || req.Amount <= 0 {
		return models.ConvertResponse{}, models.ValidationError("amount, from and to are required")
	}

	key := currencyID(from) + "_" + to
	if rate, found := cache.GetCachedRate(key); found {
		return convertResponse(req, rate), nil
	}

	url := coingeckoURL + "?ids=" + currencyID(from) + "&vs_currencies=" + to
	resp, err := s.client.R().
		SetHeader("Accept", "application/json").
		SetResult(map[string]map[string]float64{}).
		Get(url)
	if err != nil {
		logrus.Errorf("rate lookup failed for %s: %v", key, err)
		return models.ConvertResponse{}, errors.New("could not fetch exchange rate")
	}
	if resp.IsError() {
		logrus.Errorf("rate lookup failed for %s: %s", key, resp.Status())
		return models.ConvertResponse{}, errors.New("could not fetch exchange rate")
	}

	data := *resp.Result().(*map[string]map[string]float64)
	rate := data[currencyID(from)][to]
	if rate == 0 {
		return models.ConvertResponse{}, errors.New("exchange rate unavailable")
	}

	cache.SetCachedRate(key, rate)
	return convertResponse(req, rate), nil
}

func convertResponse(req models.ConvertRequest, rate float64) models.ConvertResponse {
	return models.ConvertResponse{
		ConvertedAmount: req.Amount * rate,
		Currency:        strings.ToUpper(req.To),
		Rate:            rate,
	}
}

func currencyID(symbol string) string {
	switch strings.ToLower(symbol) {
	case "usdt":
		return "tether"
	case "btc":
		return "bitcoin"
	case "eth":
		return "ethereum"
	default:
		return strings.ToLower(symbol)
	}
}
