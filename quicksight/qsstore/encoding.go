package qsstore

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// Key encoding for BadgerDB.
// Key format: [kind][separator][part][separator][part]...
//
// Parts are escaped so that they never contain the separator byte (0x00): a
// key's parts are recovered unambiguously and all keys of one parent share a
// prefix, whatever bytes an identifier holds. Version numbers are zero padded so
// lexical order is numeric order.

const (
	keySeparator byte = 0x00
	keyEscape    byte = 0x01
)

const (
	kindArn              = "arn"
	kindAssignment       = "assignment"
	kindDashboard        = "dashboard"
	kindDashboardVersion = "dashboard-version"
	kindDataSet          = "dataset"
	kindDataSource       = "datasource"
	kindGroup            = "group"
	kindIngestion        = "ingestion"
	kindMember           = "member"
	kindPermissions      = "permissions"
	kindTags             = "tags"
	kindTemplate         = "template"
	kindTemplateAlias    = "template-alias"
	kindTemplateVersion  = "template-version"
	kindUser             = "user"
)

func encodeKey(kind string, parts ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString(kind)
	for _, p := range parts {
		buf.WriteByte(keySeparator)
		writePart(&buf, p)
	}
	return buf.Bytes()
}

// writePart writes p with 0x00 as 0x01 0x01 and 0x01 as 0x01 0x02.
func writePart(buf *bytes.Buffer, p string) {
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case keySeparator:
			buf.WriteByte(keyEscape)
			buf.WriteByte(0x01)
		case keyEscape:
			buf.WriteByte(keyEscape)
			buf.WriteByte(0x02)
		default:
			buf.WriteByte(p[i])
		}
	}
}

// keyPrefix matches every key whose leading parts equal parts.
func keyPrefix(kind string, parts ...string) []byte {
	return append(encodeKey(kind, parts...), keySeparator)
}

func versionPart(n int64) string {
	return fmt.Sprintf("%020d", n)
}

// Pagination tokens are the URL-safe base64 of the last key returned. They are
// opaque to callers and only valid for the listing that produced them.

func encodeToken(key []byte) *string {
	s := base64.RawURLEncoding.EncodeToString(key)
	return &s
}

func decodeToken(token string, prefix []byte) ([]byte, error) {
	key, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || !bytes.HasPrefix(key, prefix) {
		return nil, invalidNextToken(token)
	}
	return key, nil
}
