package charting

import (
	"errors"
	url2 "github.com/fernandosanchezjr/godprng/backend/url"
	"net/url"
)

const (
	DefaultLimit = 50
	DefaultAlpha = 0.01
)

var ErrInvalidParams = errors.New("invalid parameters")

type ServiceParams struct {
	Limit   int
	Alpha   float64
	Refresh bool
}

func ParseServiceParams(values url.Values) (params *ServiceParams, err error) {
	params = &ServiceParams{
		Limit:   DefaultLimit,
		Alpha:   DefaultAlpha,
		Refresh: false,
	}
	if err = url2.ParseInt("limit", values, &params.Limit); err != nil {
		return
	}
	if err = url2.ParseFloat("alpha", values, &params.Alpha); err != nil {
		return
	}
	if err = url2.ParseBool("refresh", values, &params.Refresh); err != nil {
		return
	}
	if params.Limit < 1 || params.Alpha <= 0 || params.Alpha >= 0.5 {
		err = ErrInvalidParams
	}
	return
}
