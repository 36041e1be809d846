package repository

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// EncodeList stores an ordered string list in a single text column.
func EncodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	s, err := sonic.MarshalString(items)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return s, nil
}

func DecodeList(s string) ([]string, error) {
	items := make([]string, 0)
	if s == "" {
		return items, nil
	}
	if err := sonic.UnmarshalString(s, &items); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	return items, nil
}
