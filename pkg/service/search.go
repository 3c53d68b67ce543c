package service

import (
	"fmt"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/errors"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/formatter"
)

// SearchService resolves the region, district and cemetery lookups
// used to narrow the feed
type SearchService struct{}

// NewSearchService creates a new search service
func NewSearchService() *SearchService {
	return &SearchService{}
}

// Regions lists every known region
func (s *SearchService) Regions() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	regions, err := api.GetRegions()
	if err != nil {
		formatter.PrintError("Failed to fetch regions: %v", err)
		return err
	}

	if len(regions) == 0 {
		formatter.PrintInfo("No regions found")
		return nil
	}

	for _, region := range regions {
		fmt.Println(region)
	}
	return nil
}

// Districts lists the districts of a region
func (s *SearchService) Districts(region string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if region == "" {
		return errors.ValidationError("region", "cannot be empty")
	}

	districts, err := api.GetDistricts(region)
	if err != nil {
		formatter.PrintError("Failed to fetch districts: %v", err)
		return err
	}

	if len(districts) == 0 {
		formatter.PrintInfo("No districts found for %s", region)
		return nil
	}

	for _, district := range districts {
		fmt.Println(district)
	}
	return nil
}

// Cemeteries lists the cemeteries of a region and district
func (s *SearchService) Cemeteries(region, district string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if region == "" {
		return errors.ValidationError("region", "cannot be empty")
	}

	cemeteries, err := api.GetCemeteries(region, district)
	if err != nil {
		formatter.PrintError("Failed to fetch cemeteries: %v", err)
		return err
	}

	if len(cemeteries) == 0 {
		formatter.PrintInfo("No cemeteries found")
		return nil
	}

	headers := []string{"ID", "Name", "Region", "District"}
	rows := make([][]string, 0, len(cemeteries))
	for _, c := range cemeteries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.ID),
			c.Name,
			c.Region,
			c.District,
		})
	}
	formatter.PrintTable(headers, rows)
	return nil
}
