package db

import "encoding/json"

// IngredientList decodes the JSON-encoded ingredients column into an ordered
// list. An empty column decodes to nil.
func (r Recipe) IngredientList() ([]string, error) {
	if r.Ingredients == "" || r.Ingredients == "[]" {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(r.Ingredients), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// EncodeIngredients encodes an ordered ingredient list for the ingredients
// column. A nil or empty list encodes as the empty JSON array.
func EncodeIngredients(list []string) (string, error) {
	if len(list) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
