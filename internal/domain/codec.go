package domain

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the board column-major, bottom slot first.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ToColumns())
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var columns [][]Mark
	if err := json.Unmarshal(data, &columns); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	parsed, err := FromColumns(columns)
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}
