package polycom

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"polyconf/models"
)

var null = []byte("null")

// ParseRequest - decodes a /generate payload
//
// Every top level key is optional and JSON null counts as absent. A key
// holding the wrong JSON type fails with a MalformedInputError naming it.
func ParseRequest(body []byte) (*models.GenerateRequest, error) {

	var (
		req    = new(models.GenerateRequest)
		fields map[string]json.RawMessage
	)

	body = bytes.TrimSpace(body)

	if len(body) == 0 || bytes.Equal(body, null) {
		return nil, &models.MalformedInputError{Field: "body", Err: errors.New("expected a JSON object")}
	}

	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &models.MalformedInputError{Field: "body", Err: err}
	}

	if err := decodeField(fields, "server_config", &req.ServerConfig); err != nil {
		return nil, err
	}

	if err := decodeField(fields, "user_config", &req.UserConfig); err != nil {
		return nil, err
	}

	if err := decodeField(fields, "phone_settings", &req.PhoneSettings); err != nil {
		return nil, err
	}

	attendants, err := decodeAttendants(fields["attendants"])
	if err != nil {
		return nil, err
	}

	req.Attendants = attendants

	return req, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst interface{}) error {

	raw := bytes.TrimSpace(fields[key])
	if len(raw) == 0 || bytes.Equal(raw, null) {
		return nil
	}

	if raw[0] != '{' {
		return &models.MalformedInputError{Field: key, Err: errors.New("expected an object")}
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return &models.MalformedInputError{Field: key, Err: err}
	}

	return nil
}

func decodeAttendants(raw json.RawMessage) ([]models.Attendant, error) {

	var items []json.RawMessage

	raw = bytes.TrimSpace(raw)

	if len(raw) == 0 || bytes.Equal(raw, null) {
		return nil, nil
	}

	if raw[0] != '[' {
		return nil, &models.MalformedInputError{Field: "attendants", Err: errors.New("expected an array")}
	}

	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &models.MalformedInputError{Field: "attendants", Err: err}
	}

	res := make([]models.Attendant, 0, len(items))

	for i, item := range items {

		field := fmt.Sprintf("attendants[%d]", i)
		item = bytes.TrimSpace(item)

		if len(item) == 0 || item[0] != '{' {
			return nil, &models.MalformedInputError{Field: field, Err: errors.New("expected an object")}
		}

		var a models.Attendant

		if err := json.Unmarshal(item, &a); err != nil {
			return nil, &models.MalformedInputError{Field: field, Err: err}
		}

		res = append(res, a)
	}

	return res, nil
}
