package mapper

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/models"
)

// HomepageTitle is the title of the dashboard homepage
const HomepageTitle = "Education Data Insights Dashboard"

// Catalogue resolves configured dataset keys to display titles
type Catalogue interface {
	DatasetTitle(key string) string
}

// SetTaxonomyDomain will set the taxonomy domain for a given page
func SetTaxonomyDomain(p *models.Page, domain string) {
	p.TaxonomyDomain = domain
}

// Homepage maps the configured datasets to the homepage model, ordered by title
func Homepage(datasets map[string]string, cat Catalogue, domain string) models.HomepagePage {
	var page models.HomepagePage
	page.Type = "ees-dashboard-homepage"
	page.BetaBannerEnabled = true
	page.Metadata.Title = HomepageTitle
	page.Metadata.Description = "Explore education statistics from the Explore Education Statistics platform"
	page.Breadcrumb = breadcrumb()
	SetTaxonomyDomain(&page.Page, domain)

	items := make([]models.DatasetItem, 0, len(datasets))
	for key, id := range datasets {
		items = append(items, models.DatasetItem{
			Key:   key,
			ID:    id,
			Title: cat.DatasetTitle(key),
			URI:   fmt.Sprintf("/%s", key),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Title != items[j].Title {
			return items[i].Title < items[j].Title
		}
		return items[i].Key < items[j].Key
	})
	page.Data.Items = items

	return page
}

// DatasetPage maps dataset metadata to the dashboard page model. The default
// selection is the first indicator, every time period and the first filter
// dimension with all of its values.
func DatasetPage(key, datasetID, title string, meta *ees.DatasetMetadata, domain string) models.DatasetPage {
	var page models.DatasetPage
	page.Type = "ees-dashboard-dataset"
	page.BetaBannerEnabled = true
	page.Metadata.Title = title
	page.Breadcrumb = append(breadcrumb(), models.TaxonomyNode{
		Title: title,
		URI:   fmt.Sprintf("/%s", key),
	})
	SetTaxonomyDomain(&page.Page, domain)

	data := models.Dataset{
		Key:              key,
		ID:               datasetID,
		Indicators:       IndicatorOptions(meta),
		TimePeriods:      TimePeriodOptions(meta),
		FilterDimensions: FilterDimensionOptions(meta),
		TableURI:         fmt.Sprintf("/api/datasets/%s/table", key),
		ExportURI:        fmt.Sprintf("/api/datasets/%s/export.xlsx", key),
	}

	if len(data.Indicators) > 0 {
		data.Selected.Indicator = data.Indicators[0].Value
	}
	data.Selected.Periods = optionValues(data.TimePeriods)
	if len(data.FilterDimensions) > 0 {
		data.Selected.Dimension = data.FilterDimensions[0].Value
		data.FilterValues, _ = FilterValueOptions(meta, data.Selected.Dimension)
		data.Selected.Values = optionValues(data.FilterValues)
	}

	data.ChartURI = fmt.Sprintf("/api/datasets/%s/chart?%s", key, ChartQuery(data.Selected))

	page.Data = data
	return page
}

// IndicatorOptions returns an option per indicator, labelled with its label
func IndicatorOptions(meta *ees.DatasetMetadata) []models.Option {
	if meta == nil {
		return nil
	}
	options := make([]models.Option, 0, len(meta.Indicators))
	for _, ind := range meta.Indicators {
		options = append(options, models.Option{Label: ind.Label, Value: ind.ID})
	}
	return options
}

// TimePeriodOptions returns an option per time period. Periods are selected by
// their label, which the query resolves back to a code.
func TimePeriodOptions(meta *ees.DatasetMetadata) []models.Option {
	if meta == nil {
		return nil
	}
	options := make([]models.Option, 0, len(meta.TimePeriods))
	for _, tp := range meta.TimePeriods {
		options = append(options, models.Option{Label: tp.Period, Value: tp.Period})
	}
	return options
}

// FilterDimensionOptions returns an option per filter dimension that has an id or key
func FilterDimensionOptions(meta *ees.DatasetMetadata) []models.Option {
	if meta == nil {
		return nil
	}
	options := make([]models.Option, 0, len(meta.Filters))
	for _, f := range meta.Filters {
		id := f.Identifier()
		if id == "" {
			continue
		}
		options = append(options, models.Option{Label: f.DisplayName(), Value: id})
	}
	return options
}

// FilterValueOptions returns the options of one filter dimension, and false when
// the dataset has no such dimension
func FilterValueOptions(meta *ees.DatasetMetadata, dimension string) ([]models.Option, bool) {
	if meta == nil || dimension == "" {
		return nil, false
	}
	f, ok := meta.Filter(dimension)
	if !ok {
		return nil, false
	}
	options := make([]models.Option, 0, len(f.Options))
	for _, o := range f.Options {
		options = append(options, models.Option{Label: o.Label, Value: o.ID})
	}
	return options, true
}

// FilterOptions maps one filter dimension to the filter options response
func FilterOptions(meta *ees.DatasetMetadata, dimension string) (models.FilterOptionsResponse, bool) {
	options, ok := FilterValueOptions(meta, dimension)
	if !ok {
		return models.FilterOptionsResponse{}, false
	}
	f, _ := meta.Filter(dimension)
	return models.FilterOptionsResponse{
		Dimension: dimension,
		Label:     f.DisplayName(),
		Options:   options,
	}, true
}

// ChartQuery builds the query string of the chart endpoint for a selection
func ChartQuery(s models.Selection) string {
	q := url.Values{}
	if s.Indicator != "" {
		q.Set("indicator", s.Indicator)
	}
	for _, p := range s.Periods {
		q.Add("period", p)
	}
	if s.Dimension != "" {
		q.Set("dimension", s.Dimension)
	}
	for _, v := range s.Values {
		q.Add("value", v)
	}
	return q.Encode()
}

func optionValues(options []models.Option) []string {
	values := make([]string, 0, len(options))
	for _, o := range options {
		values = append(values, o.Value)
	}
	return values
}

func breadcrumb() []models.TaxonomyNode {
	return []models.TaxonomyNode{
		{
			Title: "Home",
			URI:   "/",
		},
	}
}
