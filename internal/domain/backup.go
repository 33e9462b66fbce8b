package domain

import "time"

// HistoryBackup é uma cópia do histórico de um usuário em um dado momento
type HistoryBackup struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Entries   int       `json:"entries"`
	Payload   []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type BackupStatus struct {
	LastBackupAt    *time.Time      `json:"lastBackupAt"`
	Entries         int             `json:"entries"`
	BackupFrequency BackupFrequency `json:"backupFrequency"`
}
