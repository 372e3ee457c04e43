package client

import (
	"net/http"

	"github.com/rwpenney/engclock/packages/app/jsonmodels"
)

const (
	routeInfo    = "info"
	routeHealthz = "healthz"
)

// Info gets the info of the node.
func (api *EngClockAPI) Info() (*jsonmodels.InfoResponse, error) {
	res := &jsonmodels.InfoResponse{}
	if err := api.do(http.MethodGet, routeInfo, nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Healthz reports whether the node is up and has published at least one
// clock-offset estimate.
func (api *EngClockAPI) Healthz() error {
	res, err := api.httpClient.Get(api.baseURL + "/" + routeHealthz)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return ErrUnavailable
	}
	return nil
}
