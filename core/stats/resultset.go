package stats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"roster-manager/core/utils"
)

// ResultSet is one tabular block of a stats API response.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

type response struct {
	ResultSets []ResultSet `json:"resultSets"`
}

// Row gives named access to one row of a ResultSet.
type Row struct {
	index  map[string]int
	values []any
}

// Get returns the value under header, or nil when absent.
func (r Row) Get(header string) any {
	i, ok := r.index[header]
	if !ok || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

// String returns the value under header as a string ("" for null).
func (r Row) String(header string) string {
	return utils.ToString(r.Get(header))
}

// Int returns the value under header as an int.
func (r Row) Int(header string) (int, error) {
	return utils.ToInt(r.Get(header))
}

// Rows returns the rows of the set.
func (s ResultSet) Rows() []Row {
	index := make(map[string]int, len(s.Headers))
	for i, h := range s.Headers {
		index[h] = i
	}
	rows := make([]Row, len(s.RowSet))
	for i, values := range s.RowSet {
		rows[i] = Row{index: index, values: values}
	}
	return rows
}

// decodeResultSet extracts the named result set from a response body.
// Numbers stay json.Number so large ids survive.
func decodeResultSet(body []byte, name string) (ResultSet, error) {
	var resp response
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&resp); err != nil {
		return ResultSet{}, fmt.Errorf("failed to decode stats response: %w", err)
	}
	for _, set := range resp.ResultSets {
		if set.Name == name {
			return set, nil
		}
	}
	return ResultSet{}, fmt.Errorf("result set %q not found", name)
}
