package roster

import (
	"bytes"
	"encoding/json"
	"errors"

	"polyconf/models"
)

// ErrInvalidFormat - the pool file is not JSON
var ErrInvalidFormat = errors.New("invalid JSON format")

// ErrNotArray - the pool file is JSON but not a list of users
var ErrNotArray = errors.New("invalid JSON format. Expected an array of users")

// Rejected - a record that imported but would not pass the user form
type Rejected struct {
	Index  int          `json:"index"`
	ID     int          `json:"id"`
	Errors []FieldError `json:"errors"`
}

// Pool - result of reading a user_pool.json file back
type Pool struct {
	Users   []models.RosterUser `json:"users"`
	Invalid []Rejected          `json:"invalid"`
}

// Import - parses an exported pool, numbering records that have no id
//
// Records keep their position. Ones failing Validate are still imported
// and listed in Invalid so the caller can flag them.
func Import(data []byte) (*Pool, error) {

	data = bytes.TrimSpace(data)

	if !json.Valid(data) {
		return nil, &models.MalformedInputError{Field: "pool", Err: ErrInvalidFormat}
	}

	if len(data) == 0 || data[0] != '[' {
		return nil, &models.MalformedInputError{Field: "pool", Err: ErrNotArray}
	}

	var users []models.RosterUser

	if err := json.Unmarshal(data, &users); err != nil {
		return nil, &models.MalformedInputError{Field: "pool", Err: err}
	}

	pool := &Pool{
		Users:   make([]models.RosterUser, 0, len(users)),
		Invalid: make([]Rejected, 0),
	}

	for i, u := range users {

		if u.ID == 0 {
			u.ID = i + 1
		}

		pool.Users = append(pool.Users, u)

		var verr *ValidationError

		if err := Validate(u); errors.As(err, &verr) {
			pool.Invalid = append(pool.Invalid, Rejected{Index: i, ID: u.ID, Errors: verr.Errors})
		}
	}

	return pool, nil
}
