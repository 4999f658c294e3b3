package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// NumberList is an ordered sequence of numeric values persisted as JSON text
// (per-set weights, per-lap times). A corrupt stored value scans to nil
// instead of failing the read, so one bad row never breaks a whole listing.
type NumberList []float64

func (list NumberList) Value() (driver.Value, error) {
	if list == nil {
		return nil, nil
	}
	encoded, err := json.Marshal([]float64(list))
	if err != nil {
		return nil, fmt.Errorf("encode number list: %w", err)
	}
	return string(encoded), nil
}

func (list *NumberList) Scan(value any) error {
	if value == nil {
		*list = nil
		return nil
	}

	var raw []byte
	switch typed := value.(type) {
	case string:
		raw = []byte(typed)
	case []byte:
		raw = typed
	default:
		*list = nil
		return nil
	}

	if len(raw) == 0 {
		*list = nil
		return nil
	}

	decoded := make([]float64, 0)
	if err := json.Unmarshal(raw, &decoded); err != nil {
		*list = nil
		return nil
	}
	*list = decoded
	return nil
}
