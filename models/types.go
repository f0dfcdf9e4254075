package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a []string column as a JSON text blob so the same
// model works on postgres and the sqlite test driver.
type StringList []string

func (sl *StringList) Scan(value interface{}) error {
	if value == nil {
		*sl = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	return json.Unmarshal(bytes, sl)
}

func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		sl = StringList{}
	}
	b, err := json.Marshal(sl)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (StringList) GormDataType() string {
	return "text"
}
