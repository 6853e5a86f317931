package client

import (
	"fmt"
	"net/url"

	"TxVisualizer/internal/platform/server/handler/scenario"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

const (
	scenarios_endpoint = "/scenarios"
)

type SimulatorClient struct {
	client    *resty.Client
	serverUrl string
}

func NewSimulatorClient(serverUrl string) *SimulatorClient {
	return &SimulatorClient{
		client:    resty.New(),
		serverUrl: serverUrl,
	}
}

func (c *SimulatorClient) Scenarios() ([]scenario.ScenarioResponse, error) {
	var resp []scenario.ScenarioResponse
	res, err := c.client.R().SetResult(&resp).Get(c.serverUrl + scenarios_endpoint)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusError(res)
	}
	return resp, nil
}

func (c *SimulatorClient) Accounts(name string) ([]scenario.AccountResponse, error) {
	var resp []scenario.AccountResponse
	uri := fmt.Sprintf("%s%s/%s/accounts", c.serverUrl, scenarios_endpoint, url.PathEscape(name))
	res, err := c.client.R().SetResult(&resp).Get(uri)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusError(res)
	}
	return resp, nil
}

func (c *SimulatorClient) RunScenario(name string, amounts []string) (*scenario.RunScenarioResponse, error) {
	var resp scenario.RunScenarioResponse
	uri := fmt.Sprintf("%s%s/%s/runs", c.serverUrl, scenarios_endpoint, url.PathEscape(name))
	body := scenario.RunScenarioRequest{Amounts: amounts}
	res, err := c.client.R().SetResult(&resp).SetBody(&body).Post(uri)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusError(res)
	}
	return &resp, nil
}

func statusError(res *resty.Response) error {
	return errors.Newf("simulator responded %d: %s", res.StatusCode(), res.String())
}
