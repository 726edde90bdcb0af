package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/nravi/optionpulse/pkg/config"
	"github.com/nravi/optionpulse/pkg/httputil"
	"github.com/nravi/optionpulse/pkg/logger"
)

// Client fetches quotes and option chains from the public chart endpoints.
// All calls go through the shared rate-limited HTTP client; parsing failures
// surface as errors here and degrade to missing values one layer up.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	cfg        config.MarketDataConfig
}

// NewClient creates a new market data client
func NewClient(httpClient *httputil.Client, cfg config.MarketDataConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		cfg:        cfg,
	}
}

// chartResponse is the subset of the chart JSON payload we consume
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchLastPrice returns the most recent intraday close for a symbol
func (c *Client) FetchLastPrice(ctx context.Context, symbol string) (float64, error) {
	closes, err := c.fetchCloses(ctx, symbol, "1d", "1m")
	if err != nil {
		return 0, err
	}

	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil {
			return round2(*closes[i]), nil
		}
	}

	return 0, fmt.Errorf("no close data for %s", symbol)
}

// FetchDailyChange returns the day-over-day percent change for a symbol
func (c *Client) FetchDailyChange(ctx context.Context, symbol string) (float64, error) {
	closes, err := c.fetchCloses(ctx, symbol, "2d", "1d")
	if err != nil {
		return 0, err
	}

	var present []float64
	for _, v := range closes {
		if v != nil {
			present = append(present, *v)
		}
	}
	if len(present) < 2 {
		return 0, fmt.Errorf("insufficient close data for %s", symbol)
	}

	prev := present[len(present)-2]
	last := present[len(present)-1]
	if prev == 0 {
		return 0, fmt.Errorf("zero previous close for %s", symbol)
	}

	return round2((last - prev) / prev * 100), nil
}

// fetchCloses fetches and decodes the close series for a symbol
func (c *Client) fetchCloses(ctx context.Context, symbol, rng, interval string) ([]*float64, error) {
	url := fmt.Sprintf("%s/%s?range=%s&interval=%s", c.cfg.ChartBaseURL, symbol, rng, interval)

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("chart request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("decode chart response: %w", err)
	}

	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart error for %s: %s", symbol, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("empty chart result for %s", symbol)
	}

	return chart.Chart.Result[0].Indicators.Quote[0].Close, nil
}

// OIData is the option chain open-interest summary for the nearest expiry
type OIData struct {
	Ratio  float64 `json:"ratio"`
	PutOI  int64   `json:"put_oi"`
	CallOI int64   `json:"call_oi"`
	Expiry int64   `json:"expiry"` // unix timestamp of the expiry used
	Spot   float64 `json:"spot"`
}

// optionsResponse is the subset of the option chain payload we consume
type optionsResponse struct {
	OptionChain struct {
		Result []struct {
			Quote struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"quote"`
			Options []struct {
				ExpirationDate int64            `json:"expirationDate"`
				Calls          []optionContract `json:"calls"`
				Puts           []optionContract `json:"puts"`
			} `json:"options"`
		} `json:"result"`
	} `json:"optionChain"`
}

type optionContract struct {
	OpenInterest int64 `json:"openInterest"`
}

// FetchOIRatio fetches the put/call open-interest ratio for the nearest
// index-option expiry. A zero call OI makes the ratio undefined and is
// reported as an error, which callers treat as missing data.
func (c *Client) FetchOIRatio(ctx context.Context) (*OIData, error) {
	url := fmt.Sprintf("%s/%s", c.cfg.OptionsBaseURL, SymbolIndex)

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("option chain request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var chain optionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&chain); err != nil {
		return nil, fmt.Errorf("decode option chain: %w", err)
	}

	if len(chain.OptionChain.Result) == 0 || len(chain.OptionChain.Result[0].Options) == 0 {
		return nil, fmt.Errorf("empty option chain for %s", SymbolIndex)
	}

	result := chain.OptionChain.Result[0]
	nearest := result.Options[0]

	var putOI, callOI int64
	for _, p := range nearest.Puts {
		putOI += p.OpenInterest
	}
	for _, cc := range nearest.Calls {
		callOI += cc.OpenInterest
	}

	if callOI == 0 {
		return nil, fmt.Errorf("zero call open interest, ratio undefined")
	}

	data := &OIData{
		Ratio:  round3(float64(putOI) / float64(callOI)),
		PutOI:  putOI,
		CallOI: callOI,
		Expiry: nearest.ExpirationDate,
		Spot:   round2(result.Quote.RegularMarketPrice),
	}

	c.logger.WithFields(map[string]interface{}{
		"ratio":   data.Ratio,
		"put_oi":  putOI,
		"call_oi": callOI,
	}).Debug("Fetched OI ratio")

	return data, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
