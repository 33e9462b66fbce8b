package repository

import jsoniter "github.com/json-iterator/go"

// colunas de tabelas e resultados são gravadas como JSON em campos TEXT
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
