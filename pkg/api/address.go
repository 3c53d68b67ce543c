package api

import (
	json "github.com/json-iterator/go"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/client"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

// GetRegions retrieves the list of region names
func GetRegions() ([]string, error) {
	logger.Debug("Fetching regions")

	resp, err := client.GetClient().
		R().
		Get("/address/regions")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// GetDistricts retrieves district names within a region
func GetDistricts(region string) ([]string, error) {
	logger.Debug("Fetching districts", "region", region)

	resp, err := client.GetClient().
		R().
		SetQueryParam("region", region).
		Get("/address/districts")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

// GetCemeteries retrieves cemeteries within a region and district
func GetCemeteries(region, district string) ([]Cemetery, error) {
	logger.Debug("Fetching cemeteries", "region", region, "district", district)

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"region":   region,
			"district": district,
		}).
		Get("/cemeteries/select")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data []Cemetery `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}
