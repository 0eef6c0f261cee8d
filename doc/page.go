package doc

import "encoding/json"

// TotalUnknown is the Total of a page whose response did not report an
// overall result count.
const TotalUnknown = -1

// Page is one chunk of a paginated list response.
type Page struct {
	Documents []Document
	Total     int
}

func (p *Page) UnmarshalJSON(data []byte) error {
	var raw struct {
		Documents []Document `json:"documents"`
		Total     *int       `json:"total"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Documents = raw.Documents
	if raw.Total != nil {
		p.Total = *raw.Total
	} else {
		p.Total = TotalUnknown
	}
	return nil
}
