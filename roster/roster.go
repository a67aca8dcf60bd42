// Package roster handles the user pool the browser keeps in memory:
// exporting it as user_pool.json and reading such a file back.
package roster

import (
	"bytes"
	"encoding/json"
	"errors"

	"polyconf/models"
)

// export file details
const (
	FileName    = "user_pool.json"
	ContentType = "application/json"
	Indent      = "    "
)

var null = []byte("null")

// ParseExportRequest - pulls the users array out of {"users": [...]}
func ParseExportRequest(body []byte) ([]json.RawMessage, error) {

	var fields map[string]json.RawMessage

	body = bytes.TrimSpace(body)

	if len(body) == 0 || bytes.Equal(body, null) {
		return nil, &models.MalformedInputError{Field: "body", Err: errors.New("expected a JSON object")}
	}

	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &models.MalformedInputError{Field: "body", Err: err}
	}

	raw := bytes.TrimSpace(fields["users"])

	if len(raw) == 0 || bytes.Equal(raw, null) {
		return []json.RawMessage{}, nil
	}

	if raw[0] != '[' {
		return nil, &models.MalformedInputError{Field: "users", Err: errors.New("expected an array")}
	}

	var users []json.RawMessage

	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, &models.MalformedInputError{Field: "users", Err: err}
	}

	return users, nil
}

// Export - serializes the records as given, indented by four spaces
func Export(users []json.RawMessage) (*models.File, error) {

	var compact bytes.Buffer

	compact.WriteByte('[')

	for i, u := range users {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := json.Compact(&compact, u); err != nil {
			return nil, &models.MalformedInputError{Field: "users", Err: err}
		}
	}

	compact.WriteByte(']')

	var out bytes.Buffer

	// json.Indent keeps key order and does not html-escape
	if err := json.Indent(&out, compact.Bytes(), "", Indent); err != nil {
		return nil, &models.UnexpectedError{Err: err}
	}

	return &models.File{
		Name:        FileName,
		ContentType: ContentType,
		Body:        out.Bytes(),
	}, nil
}
