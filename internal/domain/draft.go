package domain

import "time"

// Draft guarda as tabelas que o usuário está editando no formulário
type Draft struct {
	CurrentRates FeeRates           `json:"currentRates"`
	NewRates     FeeRates           `json:"newRates"`
	Volumes      TransactionVolumes `json:"volumes"`
	UpdatedAt    *time.Time         `json:"updatedAt,omitempty"`
}

func EmptyDraft() *Draft {
	return &Draft{
		CurrentRates: EmptyFeeRates(),
		NewRates:     EmptyFeeRates(),
		Volumes:      EmptyTransactionVolumes(),
	}
}

func (d Draft) Validate() error {
	return ComparisonRequest{
		CurrentRates: d.CurrentRates,
		NewRates:     d.NewRates,
		Volumes:      d.Volumes,
	}.Validate()
}

type DraftPreview struct {
	Draft  *Draft            `json:"draft"`
	Result *ComparisonResult `json:"result"`
	Saved  bool              `json:"saved"`
}
