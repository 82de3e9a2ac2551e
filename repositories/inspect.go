package repositories

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is a human-readable view of one store entry.
type Record struct {
	Key    string `json:"key"`
	Type   string `json:"type"`
	ID     string `json:"id"`
	At     string `json:"at"`
	Detail string `json:"detail"`
}

// DescribeRecord decodes a raw key/value pair from the store.
// Unknown prefixes and undecodable values are reported as RAW.
func DescribeRecord(key string, val []byte) Record {
	record := Record{
		Key:    key,
		Type:   "RAW",
		At:     "--:--:--",
		Detail: "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	switch {
	case strings.HasPrefix(key, connectionPrefix):
		record.ID = strings.TrimPrefix(key, connectionPrefix)
		at, err := decodeConnection(val)
		if err != nil {
			record.Detail = "Error: unmarshal failed"
			return record
		}
		record.Type = "CONNECTION"
		record.At = at.Format(time.RFC3339)
	case strings.HasPrefix(key, groupPrefix):
		record.ID = strings.TrimPrefix(key, groupPrefix)
		group, err := decodeGroup(val)
		if err != nil {
			record.Detail = "Error: unmarshal failed"
			return record
		}
		record.Type = "GROUP"
		record.At = group.CreatedAt.Format(time.RFC3339)
		record.Detail = fmt.Sprintf("createdBy=%s", group.CreatedBy)
	case strings.HasPrefix(key, memberPrefix):
		name, ok := parseMemberKey(key)
		member, err := decodeMember(val)
		if !ok || err != nil {
			record.Detail = "Error: malformed member"
			return record
		}
		record.Type = "MEMBER"
		record.ID = string(name)
		record.Detail = "member=" + string(member)
	}
	return record
}
